package service

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/vitalsync/backend/internal/logger"
	"github.com/vitalsync/backend/internal/models"
	"github.com/vitalsync/backend/internal/repository"
)

// TxRunner runs a function inside a database transaction. Implemented by
// storage.DB; replaced by a pass-through in tests.
type TxRunner interface {
	InTx(ctx context.Context, fn func(tx *sql.Tx) error) error
}

type summaryService struct {
	physicalRepo repository.PhysicalRepository
	mentalRepo   repository.MentalRepository
	sleepRepo    repository.SleepRepository
	scoreRepo    repository.WellnessScoreRepository
	insightRepo  repository.InsightLogRepository
	tx           TxRunner
}

// NewSummaryService creates a new summary service
func NewSummaryService(
	physicalRepo repository.PhysicalRepository,
	mentalRepo repository.MentalRepository,
	sleepRepo repository.SleepRepository,
	scoreRepo repository.WellnessScoreRepository,
	insightRepo repository.InsightLogRepository,
	tx TxRunner,
) SummaryService {
	return &summaryService{
		physicalRepo: physicalRepo,
		mentalRepo:   mentalRepo,
		sleepRepo:    sleepRepo,
		scoreRepo:    scoreRepo,
		insightRepo:  insightRepo,
		tx:           tx,
	}
}

// GenerateSummary computes the full wellness summary for a user over the
// lookback window. It never fails: an unexpected computation error yields a
// result with the Error status instead.
func (s *summaryService) GenerateSummary(ctx context.Context, userID int64) (summary *models.WellnessSummary) {
	defer func() {
		if r := recover(); r != nil {
			logger.Ctx(ctx).Error("summary generation failed",
				logger.Int64("user_id", userID),
				logger.Any("panic", r))
			summary = errorSummary()
		}
	}()

	physical, mental, sleep := s.fetchWindow(ctx, userID)

	if len(physical) == 0 && len(mental) == 0 && len(sleep) == 0 {
		logger.Ctx(ctx).Warn("no health data found", logger.Int64("user_id", userID))
		return insufficientDataSummary()
	}

	averages := CalculateAverages(physical, mental, sleep)
	trends := CalculateTrends(physical, mental, sleep)
	score, status := CalculateWellnessScore(averages, trends)

	return &models.WellnessSummary{
		WellnessScore:   score,
		Status:          status,
		Insights:        GenerateInsights(averages, trends),
		Recommendations: GenerateRecommendations(averages, trends),
		ChartData:       FormatChartData(physical, mental, sleep),
		Metrics: &models.SummaryMetrics{
			AvgHeartRate:     roundPtr(averages.HeartRate, 2),
			AvgSteps:         roundPtr(averages.Steps, 0),
			AvgSleepDuration: roundPtr(averages.SleepDuration, 2),
			AvgStress:        roundPtr(averages.Stress, 2),
			AvgMood:          roundPtr(averages.Mood, 2),
		},
	}
}

// StoreSummary computes the summary and persists one wellness score
// snapshot plus one insights_log row per insight and per recommendation.
// All writes happen in a single transaction; a failure rolls back the whole
// batch and is reported as an error-status result.
func (s *summaryService) StoreSummary(ctx context.Context, userID int64) *models.StoreResult {
	physical, mental, sleep := s.fetchWindow(ctx, userID)

	if len(physical) == 0 && len(mental) == 0 && len(sleep) == 0 {
		logger.Ctx(ctx).Warn("no health data available to store wellness metrics",
			logger.Int64("user_id", userID))
		return &models.StoreResult{
			Status:  models.StoreStatusNoData,
			Message: "No health data available to calculate wellness metrics",
		}
	}

	averages := CalculateAverages(physical, mental, sleep)
	trends := CalculateTrends(physical, mental, sleep)
	score, status := CalculateWellnessScore(averages, trends)
	insights := GenerateInsights(averages, trends)
	recommendations := GenerateRecommendations(averages, trends)

	now := time.Now().UTC()

	var (
		snapshotID        int64
		insightIDs        []int64
		recommendationIDs []int64
	)

	err := s.tx.InTx(ctx, func(tx *sql.Tx) error {
		scores := s.scoreRepo.WithTx(tx)
		logs := s.insightRepo.WithTx(tx)

		snapshot, err := scores.Create(ctx, &models.WellnessScore{
			UserID:    userID,
			Score:     score,
			Status:    status,
			CreatedAt: now,
		})
		if err != nil {
			return err
		}
		snapshotID = snapshot.ID

		for _, text := range insights {
			entry, err := logs.Create(ctx, &models.InsightLog{
				UserID:      userID,
				InsightText: &text,
				CreatedAt:   now,
			})
			if err != nil {
				return err
			}
			insightIDs = append(insightIDs, entry.ID)
		}

		for _, text := range recommendations {
			entry, err := logs.Create(ctx, &models.InsightLog{
				UserID:             userID,
				RecommendationText: &text,
				CreatedAt:          now,
			})
			if err != nil {
				return err
			}
			recommendationIDs = append(recommendationIDs, entry.ID)
		}

		return nil
	})
	if err != nil {
		logger.Ctx(ctx).Error("failed to store wellness data",
			logger.Int64("user_id", userID), logger.Err(err))
		return &models.StoreResult{
			Status:  models.StoreStatusError,
			Message: fmt.Sprintf("Error storing wellness data: %v", err),
		}
	}

	logger.Ctx(ctx).Info("wellness data stored",
		logger.Int64("user_id", userID),
		logger.Int("score", score),
		logger.String("status", status),
		logger.Int("insights", len(insights)),
		logger.Int("recommendations", len(recommendations)))

	return &models.StoreResult{
		Status:               models.StoreStatusSuccess,
		WellnessScore:        score,
		WellnessStatus:       status,
		WellnessRecordID:     snapshotID,
		InsightLogIDs:        insightIDs,
		RecommendationLogIDs: recommendationIDs,
	}
}

// fetchWindow loads the lookback window for each record category. A category
// whose storage cannot be queried degrades to an empty list with a logged
// warning rather than aborting the summary.
func (s *summaryService) fetchWindow(ctx context.Context, userID int64) ([]models.PhysicalRecord, []models.MentalRecord, []models.SleepRecord) {
	since := time.Now().UTC().AddDate(0, 0, -LookbackDays)
	log := logger.Ctx(ctx)

	physical, err := s.physicalRepo.GetByUserSince(ctx, userID, since)
	if err != nil {
		log.Warn("could not fetch physical records", logger.Int64("user_id", userID), logger.Err(err))
		physical = nil
	}

	mental, err := s.mentalRepo.GetByUserSince(ctx, userID, since)
	if err != nil {
		log.Warn("could not fetch mental records", logger.Int64("user_id", userID), logger.Err(err))
		mental = nil
	}

	sleep, err := s.sleepRepo.GetByUserSince(ctx, userID, since)
	if err != nil {
		log.Warn("could not fetch sleep records", logger.Int64("user_id", userID), logger.Err(err))
		sleep = nil
	}

	return physical, mental, sleep
}

// insufficientDataSummary is returned when a user has no records in the
// window. Nothing is persisted for this case.
func insufficientDataSummary() *models.WellnessSummary {
	return &models.WellnessSummary{
		WellnessScore: 0,
		Status:        models.StatusInsufficientData,
		Insights:      []string{"No health data available. Start tracking your health!"},
		Recommendations: []string{
			"Log your physical health metrics daily",
			"Track your mental health and stress levels",
			"Record your sleep patterns",
		},
		ChartData: emptyChartData(),
	}
}

// errorSummary is the caught-failure result of the generate path
func errorSummary() *models.WellnessSummary {
	return &models.WellnessSummary{
		WellnessScore:   0,
		Status:          models.StatusError,
		Insights:        []string{"An error occurred while generating your health summary"},
		Recommendations: []string{"Please try again later"},
		ChartData:       emptyChartData(),
	}
}

func emptyChartData() models.ChartData {
	return models.ChartData{
		SleepTrend:    []models.ChartPoint{},
		StressTrend:   []models.ChartPoint{},
		ActivityTrend: []models.ChartPoint{},
		MoodTrend:     []models.ChartPoint{},
	}
}

// roundPtr rounds to the given number of decimal places, passing nil through
func roundPtr(v *float64, places int) *float64 {
	if v == nil {
		return nil
	}
	scale := math.Pow(10, float64(places))
	r := math.Round(*v*scale) / scale
	return &r
}
