package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vitalsync/backend/internal/models"
	"github.com/vitalsync/backend/internal/storage"
)

type googleFitTokenRepository struct {
	q storage.Querier
}

// NewGoogleFitTokenRepository creates a new Google Fit token repository
func NewGoogleFitTokenRepository(db *storage.DB) GoogleFitTokenRepository {
	return &googleFitTokenRepository{q: db}
}

// Upsert stores the token for a user, replacing any previous one. A refresh
// token is only overwritten when the new token carries one, since Google
// omits it on re-consent.
func (r *googleFitTokenRepository) Upsert(ctx context.Context, token *models.GoogleFitToken) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO google_fit_tokens
		 (user_id, access_token, refresh_token, token_type, expiry, scope, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   access_token  = excluded.access_token,
		   refresh_token = CASE WHEN excluded.refresh_token = '' THEN refresh_token ELSE excluded.refresh_token END,
		   token_type    = excluded.token_type,
		   expiry        = excluded.expiry,
		   scope         = excluded.scope,
		   updated_at    = excluded.updated_at`,
		token.UserID, token.AccessToken, token.RefreshToken, token.TokenType,
		formatTime(token.Expiry), token.Scope, formatTime(token.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert google fit token: %w", err)
	}
	return nil
}

func (r *googleFitTokenRepository) GetByUserID(ctx context.Context, userID int64) (*models.GoogleFitToken, error) {
	var (
		token     models.GoogleFitToken
		expiry    string
		updatedAt string
	)

	err := r.q.QueryRowContext(ctx,
		`SELECT user_id, access_token, refresh_token, token_type, expiry, scope, updated_at
		 FROM google_fit_tokens WHERE user_id = ?`,
		userID,
	).Scan(
		&token.UserID, &token.AccessToken, &token.RefreshToken,
		&token.TokenType, &expiry, &token.Scope, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query google fit token: %w", err)
	}

	token.Expiry = parseTime(expiry)
	token.UpdatedAt = parseTime(updatedAt)
	return &token, nil
}
