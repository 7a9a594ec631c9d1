package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalsync/backend/internal/models"
)

func TestPhysicalRepository_CreateAndQuery(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	repo := NewPhysicalRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.PhysicalRecord{
		UserID:          userID,
		HeartRate:       intPtr(68),
		BPSystolic:      intPtr(118),
		BPDiastolic:     intPtr(76),
		Steps:           intPtr(8200),
		CaloriesBurned:  floatPtr(2150.5),
		BodyTemperature: floatPtr(36.6),
		RecordedAt:      time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	records, err := repo.GetByUserSince(ctx, userID, time.Now().UTC().AddDate(0, 0, -1))
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	require.NotNil(t, got.HeartRate)
	assert.Equal(t, 68, *got.HeartRate)
	require.NotNil(t, got.CaloriesBurned)
	assert.Equal(t, 2150.5, *got.CaloriesBurned)
}

func TestPhysicalRepository_NilFieldsRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	repo := NewPhysicalRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.PhysicalRecord{
		UserID:     userID,
		Steps:      intPtr(5000),
		RecordedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	records, err := repo.GetLatest(ctx, userID, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Nil(t, records[0].HeartRate)
	assert.Nil(t, records[0].BodyTemperature)
	require.NotNil(t, records[0].Steps)
	assert.Equal(t, 5000, *records[0].Steps)
}

func TestPhysicalRepository_NewestFirstOrdering(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	repo := NewPhysicalRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for day := 0; day < 5; day++ {
		_, err := repo.Create(ctx, &models.PhysicalRecord{
			UserID:     userID,
			Steps:      intPtr(1000 * day),
			RecordedAt: base.AddDate(0, 0, day),
		})
		require.NoError(t, err)
	}

	records, err := repo.GetByUserSince(ctx, userID, base)
	require.NoError(t, err)
	require.Len(t, records, 5)

	for i := 1; i < len(records); i++ {
		assert.True(t, !records[i].RecordedAt.After(records[i-1].RecordedAt),
			"records must be sorted newest first")
	}
	assert.Equal(t, 4000, *records[0].Steps)
}

func TestPhysicalRepository_WindowFiltering(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	repo := NewPhysicalRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	for _, age := range []int{1, 10, 45} {
		_, err := repo.Create(ctx, &models.PhysicalRecord{
			UserID:     userID,
			Steps:      intPtr(age),
			RecordedAt: now.AddDate(0, 0, -age),
		})
		require.NoError(t, err)
	}

	records, err := repo.GetByUserSince(ctx, userID, now.AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.Len(t, records, 2, "the 45-day-old record falls outside the window")
}

func TestPhysicalRepository_GetLatestLimit(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	repo := NewPhysicalRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	for i := 0; i < 15; i++ {
		_, err := repo.Create(ctx, &models.PhysicalRecord{
			UserID:     userID,
			Steps:      intPtr(i),
			RecordedAt: now.AddDate(0, 0, -i),
		})
		require.NoError(t, err)
	}

	records, err := repo.GetLatest(ctx, userID, 10)
	require.NoError(t, err)
	assert.Len(t, records, 10)
	assert.Equal(t, 0, *records[0].Steps, "latest record first")
}

func TestPhysicalRepository_ScopedToUser(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)

	other, err := NewUserRepository(db).Create(context.Background(), &models.User{
		Email: "other@example.com", PasswordHash: "h", CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	repo := NewPhysicalRepository(db)
	ctx := context.Background()

	_, err = repo.Create(ctx, &models.PhysicalRecord{
		UserID: other.ID, Steps: intPtr(1), RecordedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	records, err := repo.GetLatest(ctx, userID, 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
