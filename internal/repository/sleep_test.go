package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalsync/backend/internal/models"
)

func TestSleepRepository_CreateAndQuery(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	repo := NewSleepRepository(db)
	ctx := context.Background()

	bedtime := time.Date(2026, 8, 28, 23, 15, 0, 0, time.UTC)
	wake := time.Date(2026, 8, 29, 6, 45, 0, 0, time.UTC)

	created, err := repo.Create(ctx, &models.SleepRecord{
		UserID:             userID,
		SleepDurationHours: floatPtr(7.5),
		SleepQuality:       intPtr(8),
		Bedtime:            &bedtime,
		WakeTime:           &wake,
		CreatedAt:          time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	records, err := repo.GetByUserSince(ctx, userID, time.Now().UTC().AddDate(0, 0, -1))
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	require.NotNil(t, got.SleepDurationHours)
	assert.Equal(t, 7.5, *got.SleepDurationHours)
	require.NotNil(t, got.Bedtime)
	assert.True(t, got.Bedtime.Equal(bedtime))
	require.NotNil(t, got.WakeTime)
	assert.True(t, got.WakeTime.Equal(wake))
}

func TestSleepRepository_QualityOnlyRecord(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	repo := NewSleepRepository(db)
	ctx := context.Background()

	// The shape written when a mental check-in carries sleep_quality
	_, err := repo.Create(ctx, &models.SleepRecord{
		UserID:       userID,
		SleepQuality: intPtr(6),
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)

	records, err := repo.GetByUserSince(ctx, userID, time.Now().UTC().AddDate(0, 0, -1))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Nil(t, records[0].SleepDurationHours)
	assert.Nil(t, records[0].Bedtime)
	require.NotNil(t, records[0].SleepQuality)
	assert.Equal(t, 6, *records[0].SleepQuality)
}

func TestSleepRepository_WindowsByCreatedAt(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	repo := NewSleepRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	for _, age := range []int{2, 20, 40} {
		_, err := repo.Create(ctx, &models.SleepRecord{
			UserID:             userID,
			SleepDurationHours: floatPtr(float64(age)),
			CreatedAt:          now.AddDate(0, 0, -age),
		})
		require.NoError(t, err)
	}

	records, err := repo.GetByUserSince(ctx, userID, now.AddDate(0, 0, -30))
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first
	assert.Equal(t, 2.0, *records[0].SleepDurationHours)
	assert.Equal(t, 20.0, *records[1].SleepDurationHours)
}

func TestMentalRepository_CreateAndQuery(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	repo := NewMentalRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.MentalRecord{
		UserID:       userID,
		MoodScore:    intPtr(7),
		StressLevel:  intPtr(3),
		AnxietyLevel: nil,
		EnergyLevel:  intPtr(6),
		RecordedAt:   time.Now().UTC(),
	})
	require.NoError(t, err)

	records, err := repo.GetLatest(ctx, userID, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	require.NotNil(t, got.MoodScore)
	assert.Equal(t, 7, *got.MoodScore)
	assert.Nil(t, got.AnxietyLevel)
}
