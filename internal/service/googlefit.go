package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/vitalsync/backend/internal/config"
	"github.com/vitalsync/backend/internal/logger"
	"github.com/vitalsync/backend/internal/models"
	"github.com/vitalsync/backend/internal/repository"
)

var (
	// ErrGoogleFitDisabled is returned when OAuth credentials are not configured
	ErrGoogleFitDisabled = errors.New("google fit integration is not configured")
	// ErrNotConnected is returned when a user has no stored Google Fit token
	ErrNotConnected = errors.New("google fit is not connected for this user")
)

const (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	fitnessScope      = "https://www.googleapis.com/auth/fitness.activity.read"
	fitnessAggregate  = "https://www.googleapis.com/fitness/v1/users/me/dataset:aggregate"
	defaultStepsDays  = 7
	dayBucketMillis   = 24 * 60 * 60 * 1000
	fitnessAPITimeout = 15 * time.Second
)

type googleFitService struct {
	cfg       config.GoogleConfig
	tokenRepo repository.GoogleFitTokenRepository
}

// NewGoogleFitService creates a new Google Fit service
func NewGoogleFitService(cfg config.GoogleConfig, tokenRepo repository.GoogleFitTokenRepository) GoogleFitService {
	return &googleFitService{cfg: cfg, tokenRepo: tokenRepo}
}

func (s *googleFitService) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     s.cfg.ClientID,
		ClientSecret: s.cfg.ClientSecret,
		RedirectURL:  s.cfg.RedirectURI,
		Scopes:       []string{fitnessScope},
		Endpoint: oauth2.Endpoint{
			AuthURL:  googleAuthURL,
			TokenURL: googleTokenURL,
		},
	}
}

// Connect exchanges an OAuth authorization code and stores the resulting
// token for the user, replacing any previous connection.
func (s *googleFitService) Connect(ctx context.Context, userID int64, code string) (*models.GoogleFitStatus, error) {
	if !s.cfg.Enabled() {
		return nil, ErrGoogleFitDisabled
	}

	token, err := s.oauthConfig().Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	scope, _ := token.Extra("scope").(string)

	if err := s.tokenRepo.Upsert(ctx, &models.GoogleFitToken{
		UserID:       userID,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry,
		Scope:        scope,
		UpdatedAt:    time.Now().UTC(),
	}); err != nil {
		return nil, fmt.Errorf("failed to store google fit token: %w", err)
	}

	logger.Ctx(ctx).Info("google fit connected", logger.Int64("user_id", userID))

	return &models.GoogleFitStatus{
		Status:    "connected",
		ExpiresAt: token.Expiry,
		Scope:     scope,
	}, nil
}

// Steps fetches daily step buckets for the user over the last days days.
// A token refreshed during the call is persisted so the next call starts
// from the newest credentials.
func (s *googleFitService) Steps(ctx context.Context, userID int64, days int) (*models.GoogleFitSteps, error) {
	if !s.cfg.Enabled() {
		return nil, ErrGoogleFitDisabled
	}
	if days <= 0 {
		days = defaultStepsDays
	}

	stored, err := s.tokenRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load google fit token: %w", err)
	}
	if stored == nil {
		return nil, ErrNotConnected
	}

	source := s.oauthConfig().TokenSource(ctx, &oauth2.Token{
		AccessToken:  stored.AccessToken,
		RefreshToken: stored.RefreshToken,
		TokenType:    stored.TokenType,
		Expiry:       stored.Expiry,
	})

	token, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh google fit token: %w", err)
	}

	if token.AccessToken != stored.AccessToken {
		if err := s.tokenRepo.Upsert(ctx, &models.GoogleFitToken{
			UserID:       userID,
			AccessToken:  token.AccessToken,
			RefreshToken: token.RefreshToken,
			TokenType:    token.TokenType,
			Expiry:       token.Expiry,
			Scope:        stored.Scope,
			UpdatedAt:    time.Now().UTC(),
		}); err != nil {
			logger.Ctx(ctx).Warn("failed to persist refreshed google fit token",
				logger.Int64("user_id", userID), logger.Err(err))
		}
	}

	buckets, err := s.fetchStepBuckets(ctx, token, days)
	if err != nil {
		return nil, err
	}

	return &models.GoogleFitSteps{
		StepsData:   buckets,
		PeriodDays:  days,
		RetrievedAt: time.Now().UTC(),
	}, nil
}

type aggregateRequest struct {
	AggregateBy     []aggregateBy `json:"aggregateBy"`
	BucketByTime    bucketByTime  `json:"bucketByTime"`
	StartTimeMillis int64         `json:"startTimeMillis"`
	EndTimeMillis   int64         `json:"endTimeMillis"`
}

type aggregateBy struct {
	DataTypeName string `json:"dataTypeName"`
}

type bucketByTime struct {
	DurationMillis int64 `json:"durationMillis"`
}

type aggregateResponse struct {
	Bucket []json.RawMessage `json:"bucket"`
}

func (s *googleFitService) fetchStepBuckets(ctx context.Context, token *oauth2.Token, days int) ([]json.RawMessage, error) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)

	body, err := json.Marshal(aggregateRequest{
		AggregateBy:     []aggregateBy{{DataTypeName: "com.google.step_count.delta"}},
		BucketByTime:    bucketByTime{DurationMillis: dayBucketMillis},
		StartTimeMillis: start.UnixMilli(),
		EndTimeMillis:   end.UnixMilli(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode aggregate request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, fitnessAPITimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fitnessAggregate, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build aggregate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	token.SetAuthHeader(req)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call fitness api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("fitness api returned %d: %s", resp.StatusCode, msg)
	}

	var parsed aggregateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode fitness api response: %w", err)
	}

	if parsed.Bucket == nil {
		parsed.Bucket = []json.RawMessage{}
	}
	return parsed.Bucket, nil
}
