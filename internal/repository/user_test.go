package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalsync/backend/internal/models"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.User{
		Email:        "alex@example.com",
		PasswordHash: "$2a$10$hash",
		Age:          intPtr(29),
		HeightCm:     floatPtr(178.5),
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	byEmail, err := repo.GetByEmail(ctx, "alex@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, "$2a$10$hash", byEmail.PasswordHash)
	require.NotNil(t, byEmail.Age)
	assert.Equal(t, 29, *byEmail.Age)
	assert.Nil(t, byEmail.WeightKg)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "alex@example.com", byID.Email)
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_DuplicateEmailRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{
		Email: "a@b.com", PasswordHash: "h", CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{
		Email: "a@b.com", PasswordHash: "h2", CreatedAt: time.Now().UTC(),
	})
	assert.Error(t, err)
}
