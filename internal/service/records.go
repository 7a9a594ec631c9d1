package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vitalsync/backend/internal/logger"
	"github.com/vitalsync/backend/internal/models"
	"github.com/vitalsync/backend/internal/repository"
)

const latestRecordsLimit = 10

type recordService struct {
	physicalRepo repository.PhysicalRepository
	mentalRepo   repository.MentalRepository
	sleepRepo    repository.SleepRepository
	summaries    SummaryService
}

// NewRecordService creates a new record service
func NewRecordService(
	physicalRepo repository.PhysicalRepository,
	mentalRepo repository.MentalRepository,
	sleepRepo repository.SleepRepository,
	summaries SummaryService,
) RecordService {
	return &recordService{
		physicalRepo: physicalRepo,
		mentalRepo:   mentalRepo,
		sleepRepo:    sleepRepo,
		summaries:    summaries,
	}
}

func (s *recordService) AddPhysical(ctx context.Context, req *models.CreatePhysicalRequest) (*models.PhysicalRecord, error) {
	record, err := s.physicalRepo.Create(ctx, &models.PhysicalRecord{
		UserID:          req.UserID,
		HeartRate:       req.HeartRate,
		BPSystolic:      req.BPSystolic,
		BPDiastolic:     req.BPDiastolic,
		Steps:           req.Steps,
		CaloriesBurned:  req.CaloriesBurned,
		BodyTemperature: req.BodyTemperature,
		RecordedAt:      time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create physical record: %w", err)
	}

	s.refreshWellness(ctx, req.UserID)
	return record, nil
}

func (s *recordService) GetPhysical(ctx context.Context, userID int64) ([]models.PhysicalRecord, error) {
	records, err := s.physicalRepo.GetLatest(ctx, userID, latestRecordsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get physical records: %w", err)
	}
	return records, nil
}

// AddMental stores a mental health check-in. A sleep_quality value in the
// request is stored as a separate sleep record with no duration.
func (s *recordService) AddMental(ctx context.Context, req *models.CreateMentalRequest) (*models.MentalRecord, error) {
	now := time.Now().UTC()

	record, err := s.mentalRepo.Create(ctx, &models.MentalRecord{
		UserID:       req.UserID,
		MoodScore:    req.MoodScore,
		StressLevel:  req.StressLevel,
		AnxietyLevel: req.AnxietyLevel,
		EnergyLevel:  req.EnergyLevel,
		RecordedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create mental record: %w", err)
	}

	if req.SleepQuality != nil {
		if _, err := s.sleepRepo.Create(ctx, &models.SleepRecord{
			UserID:       req.UserID,
			SleepQuality: req.SleepQuality,
			CreatedAt:    now,
		}); err != nil {
			return nil, fmt.Errorf("failed to create sleep quality record: %w", err)
		}
	}

	s.refreshWellness(ctx, req.UserID)
	return record, nil
}

func (s *recordService) GetMental(ctx context.Context, userID int64) ([]models.MentalRecord, error) {
	records, err := s.mentalRepo.GetLatest(ctx, userID, latestRecordsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get mental records: %w", err)
	}
	return records, nil
}

func (s *recordService) AddSleep(ctx context.Context, req *models.CreateSleepRequest) (*models.SleepRecord, error) {
	record, err := s.sleepRepo.Create(ctx, &models.SleepRecord{
		UserID:             req.UserID,
		SleepDurationHours: req.SleepDurationHours,
		SleepQuality:       req.SleepQuality,
		Bedtime:            req.Bedtime,
		WakeTime:           req.WakeTime,
		CreatedAt:          time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sleep record: %w", err)
	}

	s.refreshWellness(ctx, req.UserID)
	return record, nil
}

// refreshWellness recomputes and stores the user's wellness snapshot after a
// record write. Store failures are logged but never fail the write itself.
func (s *recordService) refreshWellness(ctx context.Context, userID int64) {
	result := s.summaries.StoreSummary(ctx, userID)
	if result.Status == models.StoreStatusError {
		logger.Ctx(ctx).Warn("wellness refresh failed after record write",
			logger.Int64("user_id", userID),
			logger.String("message", result.Message))
	}
}
