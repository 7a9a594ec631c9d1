package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/vitalsync/backend/internal/models"
	"github.com/vitalsync/backend/internal/storage"
)

type physicalRepository struct {
	q storage.Querier
}

// NewPhysicalRepository creates a new physical health record repository
func NewPhysicalRepository(db *storage.DB) PhysicalRepository {
	return &physicalRepository{q: db}
}

func (r *physicalRepository) Create(ctx context.Context, record *models.PhysicalRecord) (*models.PhysicalRecord, error) {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO physical_health
		 (user_id, heart_rate, blood_pressure_systolic, blood_pressure_diastolic,
		  steps, calories_burned, body_temperature, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.UserID, record.HeartRate, record.BPSystolic, record.BPDiastolic,
		record.Steps, record.CaloriesBurned, record.BodyTemperature,
		formatTime(record.RecordedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create physical record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get physical record id: %w", err)
	}

	created := *record
	created.ID = id
	return &created, nil
}

func (r *physicalRepository) GetByUserSince(ctx context.Context, userID int64, since time.Time) ([]models.PhysicalRecord, error) {
	return r.query(ctx,
		`SELECT id, user_id, heart_rate, blood_pressure_systolic, blood_pressure_diastolic,
		        steps, calories_burned, body_temperature, recorded_at
		 FROM physical_health
		 WHERE user_id = ? AND recorded_at >= ?
		 ORDER BY recorded_at DESC`,
		userID, formatTime(since))
}

func (r *physicalRepository) GetLatest(ctx context.Context, userID int64, limit int) ([]models.PhysicalRecord, error) {
	return r.query(ctx,
		`SELECT id, user_id, heart_rate, blood_pressure_systolic, blood_pressure_diastolic,
		        steps, calories_burned, body_temperature, recorded_at
		 FROM physical_health
		 WHERE user_id = ?
		 ORDER BY recorded_at DESC
		 LIMIT ?`,
		userID, limit)
}

func (r *physicalRepository) query(ctx context.Context, query string, args ...any) ([]models.PhysicalRecord, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query physical records: %w", err)
	}
	defer rows.Close()

	var records []models.PhysicalRecord
	for rows.Next() {
		var (
			rec        models.PhysicalRecord
			recordedAt string
		)
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.HeartRate, &rec.BPSystolic, &rec.BPDiastolic,
			&rec.Steps, &rec.CaloriesBurned, &rec.BodyTemperature, &recordedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan physical record: %w", err)
		}
		rec.RecordedAt = parseTime(recordedAt)
		records = append(records, rec)
	}

	return records, rows.Err()
}
