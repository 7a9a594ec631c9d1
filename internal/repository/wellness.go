package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vitalsync/backend/internal/models"
	"github.com/vitalsync/backend/internal/storage"
)

type wellnessScoreRepository struct {
	q storage.Querier
}

// NewWellnessScoreRepository creates a new wellness score repository
func NewWellnessScoreRepository(db *storage.DB) WellnessScoreRepository {
	return &wellnessScoreRepository{q: db}
}

func (r *wellnessScoreRepository) WithTx(tx *sql.Tx) WellnessScoreRepository {
	if tx == nil {
		return r
	}
	return &wellnessScoreRepository{q: tx}
}

func (r *wellnessScoreRepository) Create(ctx context.Context, snapshot *models.WellnessScore) (*models.WellnessScore, error) {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO wellness_scores (user_id, wellness_score, status, created_at)
		 VALUES (?, ?, ?, ?)`,
		snapshot.UserID, snapshot.Score, snapshot.Status, formatTime(snapshot.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create wellness score: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get wellness score id: %w", err)
	}

	created := *snapshot
	created.ID = id
	return &created, nil
}
