// Package repository provides data access over the SQLite store. All
// queries that feed the wellness engine return records newest-first.
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/vitalsync/backend/internal/models"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// PhysicalRepository defines the interface for physical health records
type PhysicalRepository interface {
	Create(ctx context.Context, record *models.PhysicalRecord) (*models.PhysicalRecord, error)
	// GetByUserSince returns records with recorded_at >= since, newest first
	GetByUserSince(ctx context.Context, userID int64, since time.Time) ([]models.PhysicalRecord, error)
	GetLatest(ctx context.Context, userID int64, limit int) ([]models.PhysicalRecord, error)
}

// MentalRepository defines the interface for mental health records
type MentalRepository interface {
	Create(ctx context.Context, record *models.MentalRecord) (*models.MentalRecord, error)
	// GetByUserSince returns records with recorded_at >= since, newest first
	GetByUserSince(ctx context.Context, userID int64, since time.Time) ([]models.MentalRecord, error)
	GetLatest(ctx context.Context, userID int64, limit int) ([]models.MentalRecord, error)
}

// SleepRepository defines the interface for sleep records.
// Sleep rows are windowed by created_at, not by a recording timestamp.
type SleepRepository interface {
	Create(ctx context.Context, record *models.SleepRecord) (*models.SleepRecord, error)
	// GetByUserSince returns records with created_at >= since, newest first
	GetByUserSince(ctx context.Context, userID int64, since time.Time) ([]models.SleepRecord, error)
}

// WellnessScoreRepository defines the interface for score snapshots.
// Snapshots are append-only; there are no update or delete operations.
type WellnessScoreRepository interface {
	Create(ctx context.Context, snapshot *models.WellnessScore) (*models.WellnessScore, error)
	// WithTx returns a copy of the repository that runs inside tx
	WithTx(tx *sql.Tx) WellnessScoreRepository
}

// InsightLogRepository defines the interface for the insight/recommendation log
type InsightLogRepository interface {
	Create(ctx context.Context, entry *models.InsightLog) (*models.InsightLog, error)
	// WithTx returns a copy of the repository that runs inside tx
	WithTx(tx *sql.Tx) InsightLogRepository
}

// GoogleFitTokenRepository defines the interface for per-user OAuth tokens
type GoogleFitTokenRepository interface {
	Upsert(ctx context.Context, token *models.GoogleFitToken) error
	GetByUserID(ctx context.Context, userID int64) (*models.GoogleFitToken, error)
}
