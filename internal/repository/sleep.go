package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/vitalsync/backend/internal/models"
	"github.com/vitalsync/backend/internal/storage"
)

type sleepRepository struct {
	q storage.Querier
}

// NewSleepRepository creates a new sleep record repository
func NewSleepRepository(db *storage.DB) SleepRepository {
	return &sleepRepository{q: db}
}

func (r *sleepRepository) Create(ctx context.Context, record *models.SleepRecord) (*models.SleepRecord, error) {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO sleep_data
		 (user_id, sleep_duration_hours, sleep_quality, bedtime, wake_time, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		record.UserID, record.SleepDurationHours, record.SleepQuality,
		formatTimePtr(record.Bedtime), formatTimePtr(record.WakeTime),
		formatTime(record.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sleep record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get sleep record id: %w", err)
	}

	created := *record
	created.ID = id
	return &created, nil
}

// GetByUserSince windows on created_at, the key sleep rows are ordered by
func (r *sleepRepository) GetByUserSince(ctx context.Context, userID int64, since time.Time) ([]models.SleepRecord, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, user_id, sleep_duration_hours, sleep_quality, bedtime, wake_time, created_at
		 FROM sleep_data
		 WHERE user_id = ? AND created_at >= ?
		 ORDER BY created_at DESC`,
		userID, formatTime(since))
	if err != nil {
		return nil, fmt.Errorf("failed to query sleep records: %w", err)
	}
	defer rows.Close()

	var records []models.SleepRecord
	for rows.Next() {
		var (
			rec       models.SleepRecord
			bedtime   *string
			wakeTime  *string
			createdAt string
		)
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.SleepDurationHours, &rec.SleepQuality,
			&bedtime, &wakeTime, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sleep record: %w", err)
		}
		rec.Bedtime = parseTimePtr(bedtime)
		rec.WakeTime = parseTimePtr(wakeTime)
		rec.CreatedAt = parseTime(createdAt)
		records = append(records, rec)
	}

	return records, rows.Err()
}
