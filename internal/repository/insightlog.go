package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vitalsync/backend/internal/models"
	"github.com/vitalsync/backend/internal/storage"
)

type insightLogRepository struct {
	q storage.Querier
}

// NewInsightLogRepository creates a new insight log repository
func NewInsightLogRepository(db *storage.DB) InsightLogRepository {
	return &insightLogRepository{q: db}
}

func (r *insightLogRepository) WithTx(tx *sql.Tx) InsightLogRepository {
	if tx == nil {
		return r
	}
	return &insightLogRepository{q: tx}
}

func (r *insightLogRepository) Create(ctx context.Context, entry *models.InsightLog) (*models.InsightLog, error) {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO insights_log (user_id, insight_text, recommendation_text, created_at)
		 VALUES (?, ?, ?, ?)`,
		entry.UserID, entry.InsightText, entry.RecommendationText, formatTime(entry.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create insight log entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get insight log id: %w", err)
	}

	created := *entry
	created.ID = id
	return &created, nil
}
