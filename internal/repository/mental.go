package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/vitalsync/backend/internal/models"
	"github.com/vitalsync/backend/internal/storage"
)

type mentalRepository struct {
	q storage.Querier
}

// NewMentalRepository creates a new mental health record repository
func NewMentalRepository(db *storage.DB) MentalRepository {
	return &mentalRepository{q: db}
}

func (r *mentalRepository) Create(ctx context.Context, record *models.MentalRecord) (*models.MentalRecord, error) {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO mental_health
		 (user_id, mood_score, stress_level, anxiety_level, energy_level, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		record.UserID, record.MoodScore, record.StressLevel, record.AnxietyLevel,
		record.EnergyLevel, formatTime(record.RecordedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mental record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get mental record id: %w", err)
	}

	created := *record
	created.ID = id
	return &created, nil
}

func (r *mentalRepository) GetByUserSince(ctx context.Context, userID int64, since time.Time) ([]models.MentalRecord, error) {
	return r.query(ctx,
		`SELECT id, user_id, mood_score, stress_level, anxiety_level, energy_level, recorded_at
		 FROM mental_health
		 WHERE user_id = ? AND recorded_at >= ?
		 ORDER BY recorded_at DESC`,
		userID, formatTime(since))
}

func (r *mentalRepository) GetLatest(ctx context.Context, userID int64, limit int) ([]models.MentalRecord, error) {
	return r.query(ctx,
		`SELECT id, user_id, mood_score, stress_level, anxiety_level, energy_level, recorded_at
		 FROM mental_health
		 WHERE user_id = ?
		 ORDER BY recorded_at DESC
		 LIMIT ?`,
		userID, limit)
}

func (r *mentalRepository) query(ctx context.Context, query string, args ...any) ([]models.MentalRecord, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query mental records: %w", err)
	}
	defer rows.Close()

	var records []models.MentalRecord
	for rows.Next() {
		var (
			rec        models.MentalRecord
			recordedAt string
		)
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.MoodScore, &rec.StressLevel,
			&rec.AnxietyLevel, &rec.EnergyLevel, &recordedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan mental record: %w", err)
		}
		rec.RecordedAt = parseTime(recordedAt)
		records = append(records, rec)
	}

	return records, rows.Err()
}
