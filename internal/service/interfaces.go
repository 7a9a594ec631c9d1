package service

import (
	"context"

	"github.com/vitalsync/backend/internal/models"
)

// SummaryService runs the wellness pipeline over a user's recent records.
// Both operations are total: computation failures surface as an
// Error-status result and persistence failures as an error-status store
// result, never as a returned error.
type SummaryService interface {
	// GenerateSummary computes the summary without side effects
	GenerateSummary(ctx context.Context, userID int64) *models.WellnessSummary
	// StoreSummary computes the summary and appends one score snapshot plus
	// one log row per insight and per recommendation, atomically
	StoreSummary(ctx context.Context, userID int64) *models.StoreResult
}

// RecordService defines the interface for health record writes and reads.
// Every successful write triggers a wellness summary store for the user.
type RecordService interface {
	AddPhysical(ctx context.Context, req *models.CreatePhysicalRequest) (*models.PhysicalRecord, error)
	GetPhysical(ctx context.Context, userID int64) ([]models.PhysicalRecord, error)
	AddMental(ctx context.Context, req *models.CreateMentalRequest) (*models.MentalRecord, error)
	GetMental(ctx context.Context, userID int64) ([]models.MentalRecord, error)
	AddSleep(ctx context.Context, req *models.CreateSleepRequest) (*models.SleepRecord, error)
}

// AuthService defines the interface for account management
type AuthService interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
}

// GoogleFitService defines the interface for the Google Fit integration
type GoogleFitService interface {
	Connect(ctx context.Context, userID int64, code string) (*models.GoogleFitStatus, error)
	Steps(ctx context.Context, userID int64, days int) (*models.GoogleFitSteps, error)
}
