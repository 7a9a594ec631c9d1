package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vitalsync/backend/internal/models"
	"github.com/vitalsync/backend/internal/storage"
)

// setupTestDB opens an in-memory SQLite database with the schema applied.
func setupTestDB(t *testing.T) *storage.DB {
	t.Helper()

	db, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(context.Background()))
	return db
}

// seedUser inserts a user row so foreign keys on record tables are satisfied.
func seedUser(t *testing.T, db *storage.DB) int64 {
	t.Helper()

	user, err := NewUserRepository(db).Create(context.Background(), &models.User{
		Email:        "test@example.com",
		PasswordHash: "not-a-real-hash",
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
	return user.ID
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
