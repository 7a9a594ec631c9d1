package service

import (
	"math"
	"testing"
	"time"

	"github.com/vitalsync/backend/internal/models"
)

func ptrInt(v int) *int           { return &v }
func ptrFloat(v float64) *float64 { return &v }
func ptrString(v string) *string  { return &v }

// physicalSeries builds n records newest-first with the given step counts,
// one per day ending today
func physicalSeries(steps []int) []models.PhysicalRecord {
	records := make([]models.PhysicalRecord, len(steps))
	now := time.Now().UTC()
	for i, s := range steps {
		s := s
		records[i] = models.PhysicalRecord{
			UserID:     1,
			Steps:      &s,
			RecordedAt: now.AddDate(0, 0, -i),
		}
	}
	return records
}

func mentalSeries(stress []int) []models.MentalRecord {
	records := make([]models.MentalRecord, len(stress))
	now := time.Now().UTC()
	for i, s := range stress {
		s := s
		records[i] = models.MentalRecord{
			UserID:      1,
			StressLevel: &s,
			RecordedAt:  now.AddDate(0, 0, -i),
		}
	}
	return records
}

func TestCalculateAverages_SkipsNilValues(t *testing.T) {
	records := []models.PhysicalRecord{
		{HeartRate: ptrInt(70)},
		{HeartRate: nil},
		{HeartRate: ptrInt(90)},
	}

	averages := CalculateAverages(records, nil, nil)

	if averages.HeartRate == nil {
		t.Fatal("Expected non-nil heart rate average")
	}
	if *averages.HeartRate != 80 {
		t.Errorf("Expected average 80 over the two present values, got %v", *averages.HeartRate)
	}
}

func TestCalculateAverages_AllNilGivesAbsent(t *testing.T) {
	records := []models.PhysicalRecord{
		{HeartRate: nil, Steps: ptrInt(5000)},
		{HeartRate: nil, Steps: ptrInt(7000)},
	}

	averages := CalculateAverages(records, nil, nil)

	if averages.HeartRate != nil {
		t.Errorf("Expected nil heart rate average, got %v", *averages.HeartRate)
	}
	if averages.Steps == nil || *averages.Steps != 6000 {
		t.Errorf("Expected steps average 6000, got %v", averages.Steps)
	}
}

func TestCalculateAverages_EmptyInput(t *testing.T) {
	averages := CalculateAverages(nil, nil, nil)

	if averages.HeartRate != nil || averages.Steps != nil || averages.SleepDuration != nil ||
		averages.Mood != nil || averages.Stress != nil {
		t.Error("Expected all averages nil for empty input")
	}
}

func TestCalculateTrends_RequiresFourteenRecords(t *testing.T) {
	// 13 records is one short of two full comparison windows
	steps := make([]int, 13)
	for i := range steps {
		steps[i] = 1000 * (i + 1)
	}

	trends := CalculateTrends(physicalSeries(steps), nil, nil)

	if trends.Steps != 0 {
		t.Errorf("Expected steps trend 0 with 13 records, got %v", trends.Steps)
	}
}

func TestCalculateTrends_PercentDelta(t *testing.T) {
	// Recent window averages 10000, older window averages 8000: +25%
	steps := []int{
		10000, 10000, 10000, 10000, 10000, 10000, 10000,
		8000, 8000, 8000, 8000, 8000, 8000, 8000,
	}

	trends := CalculateTrends(physicalSeries(steps), nil, nil)

	if math.Abs(trends.Steps-25) > 1e-9 {
		t.Errorf("Expected steps trend +25, got %v", trends.Steps)
	}
}

func TestCalculateTrends_ZeroOlderWindowGuard(t *testing.T) {
	steps := []int{
		5000, 5000, 5000, 5000, 5000, 5000, 5000,
		0, 0, 0, 0, 0, 0, 0,
	}

	trends := CalculateTrends(physicalSeries(steps), nil, nil)

	if trends.Steps != 0 {
		t.Errorf("Expected steps trend 0 when older window averages 0, got %v", trends.Steps)
	}
}

func TestCalculateTrends_IgnoresRecordsBeyondWindows(t *testing.T) {
	// 20 records; only the first 14 participate
	steps := make([]int, 20)
	for i := 0; i < 7; i++ {
		steps[i] = 6000
	}
	for i := 7; i < 14; i++ {
		steps[i] = 4000
	}
	for i := 14; i < 20; i++ {
		steps[i] = 99999
	}

	trends := CalculateTrends(physicalSeries(steps), nil, nil)

	if math.Abs(trends.Steps-50) > 1e-9 {
		t.Errorf("Expected steps trend +50, got %v", trends.Steps)
	}
}

func TestCalculateWellnessScore_HealthyProfile(t *testing.T) {
	averages := models.Averages{
		SleepDuration: ptrFloat(7.5),
		Stress:        ptrFloat(2),
		Steps:         ptrFloat(9000),
		Mood:          ptrFloat(8),
		HeartRate:     ptrFloat(70),
	}

	score, status := CalculateWellnessScore(averages, models.Trends{})

	// 100*.30 + 80*.25 + 100*.20 + 80*.15 + 100*.10 = 92
	if score != 92 {
		t.Errorf("Expected score 92, got %d", score)
	}
	if status != models.StatusExcellent {
		t.Errorf("Expected status Excellent, got %s", status)
	}
}

func TestCalculateWellnessScore_AllAbsentDefaults(t *testing.T) {
	score, status := CalculateWellnessScore(models.Averages{}, models.Trends{})

	if score != 50 {
		t.Errorf("Expected score 50 when every average is absent, got %d", score)
	}
	if status != models.StatusModerate {
		t.Errorf("Expected status Moderate, got %s", status)
	}
}

func TestCalculateWellnessScore_TruncatesComposite(t *testing.T) {
	// sleep 100*.30=30, stress (100-1.5*10)*.25=21.25, others default 50:
	// activity 10, mood 7.5, heart rate 5 -> composite 73.75 -> 73
	averages := models.Averages{
		SleepDuration: ptrFloat(7.5),
		Stress:        ptrFloat(1.5),
	}

	score, _ := CalculateWellnessScore(averages, models.Trends{})

	if score != 73 {
		t.Errorf("Expected truncated score 73, got %d", score)
	}
}

func TestCalculateWellnessScore_StressFloorsAtZero(t *testing.T) {
	averages := models.Averages{Stress: ptrFloat(10)}

	score, _ := CalculateWellnessScore(averages, models.Trends{})

	// stress sub-score 0, others default 50: 50*.30+0+50*.20+50*.15+50*.10 = 37.5
	if score != 37 {
		t.Errorf("Expected score 37, got %d", score)
	}
}

func TestCalculateWellnessScore_StatusBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		averages models.Averages
		want     string
	}{
		{
			// 24 + 15 + 8 + 9 + 10 = 66
			name: "good band",
			averages: models.Averages{
				SleepDuration: ptrFloat(6.5),
				Stress:        ptrFloat(4),
				Steps:         ptrFloat(4000),
				Mood:          ptrFloat(6),
				HeartRate:     ptrFloat(72),
			},
			want: models.StatusGood,
		},
		{
			// 30 + 10 + 17 + 10.5 + 8 = 75.5 -> 75, the excellent floor
			name: "excellent at boundary",
			averages: models.Averages{
				SleepDuration: ptrFloat(7.5),
				Stress:        ptrFloat(6),
				Steps:         ptrFloat(7000),
				Mood:          ptrFloat(7),
				HeartRate:     ptrFloat(100),
			},
			want: models.StatusExcellent,
		},
		{
			// 15 + 7.5 + 8 + 4.5 + 4 = 39
			name: "fair band",
			averages: models.Averages{
				SleepDuration: ptrFloat(5),
				Stress:        ptrFloat(7),
				Steps:         ptrFloat(2000),
				Mood:          ptrFloat(3),
				HeartRate:     ptrFloat(120),
			},
			want: models.StatusFair,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, status := CalculateWellnessScore(tt.averages, models.Trends{})
			if status != tt.want {
				t.Errorf("Expected status %s for score %d, got %s", tt.want, score, status)
			}
		})
	}
}

func TestFormatChartData_MostRecentFourteenAscending(t *testing.T) {
	steps := make([]int, 20)
	for i := range steps {
		steps[i] = 1000 * i
	}
	records := physicalSeries(steps)

	cd := FormatChartData(records, nil, nil)

	if len(cd.ActivityTrend) != ChartWindow {
		t.Fatalf("Expected %d chart points, got %d", ChartWindow, len(cd.ActivityTrend))
	}

	// Oldest charted record is index 13 (13000 steps), newest is index 0
	if cd.ActivityTrend[0].Value != 13000 {
		t.Errorf("Expected first point 13000, got %v", cd.ActivityTrend[0].Value)
	}
	if cd.ActivityTrend[len(cd.ActivityTrend)-1].Value != 0 {
		t.Errorf("Expected last point 0, got %v", cd.ActivityTrend[len(cd.ActivityTrend)-1].Value)
	}

	for i := 1; i < len(cd.ActivityTrend); i++ {
		if cd.ActivityTrend[i].Date < cd.ActivityTrend[i-1].Date {
			t.Fatalf("Chart dates not ascending at index %d", i)
		}
	}
}

func TestFormatChartData_NilValuesBecomeZero(t *testing.T) {
	now := time.Now().UTC()
	records := []models.MentalRecord{
		{StressLevel: nil, MoodScore: ptrInt(6), RecordedAt: now},
	}

	cd := FormatChartData(nil, records, nil)

	if len(cd.StressTrend) != 1 || cd.StressTrend[0].Value != 0 {
		t.Errorf("Expected nil stress charted as 0, got %+v", cd.StressTrend)
	}
	if len(cd.MoodTrend) != 1 || cd.MoodTrend[0].Value != 6 {
		t.Errorf("Expected mood charted as 6, got %+v", cd.MoodTrend)
	}
}

func TestFormatChartData_EmptyInputGivesEmptySeries(t *testing.T) {
	cd := FormatChartData(nil, nil, nil)

	if cd.SleepTrend == nil || cd.StressTrend == nil || cd.ActivityTrend == nil || cd.MoodTrend == nil {
		t.Fatal("Expected non-nil empty series")
	}
	if len(cd.SleepTrend) != 0 || len(cd.ActivityTrend) != 0 {
		t.Error("Expected empty series for empty input")
	}
}

func TestFormatChartData_SleepUsesCreatedAt(t *testing.T) {
	created := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	records := []models.SleepRecord{
		{SleepDurationHours: ptrFloat(7.2), CreatedAt: created},
	}

	cd := FormatChartData(nil, nil, records)

	if len(cd.SleepTrend) != 1 {
		t.Fatalf("Expected 1 sleep point, got %d", len(cd.SleepTrend))
	}
	if cd.SleepTrend[0].Date != "2026-03-10" {
		t.Errorf("Expected date 2026-03-10, got %s", cd.SleepTrend[0].Date)
	}
}

func TestCalculateAverages_MentalAndSleepMetrics(t *testing.T) {
	mental := []models.MentalRecord{
		{MoodScore: ptrInt(6), StressLevel: ptrInt(4), AnxietyLevel: ptrInt(3), EnergyLevel: ptrInt(7)},
		{MoodScore: ptrInt(8), StressLevel: ptrInt(2), AnxietyLevel: nil, EnergyLevel: ptrInt(5)},
	}
	sleep := []models.SleepRecord{
		{SleepDurationHours: ptrFloat(7), SleepQuality: ptrInt(8)},
		{SleepDurationHours: ptrFloat(8), SleepQuality: nil},
	}

	averages := CalculateAverages(nil, mental, sleep)

	if averages.Mood == nil || *averages.Mood != 7 {
		t.Errorf("Expected mood average 7, got %v", averages.Mood)
	}
	if averages.Stress == nil || *averages.Stress != 3 {
		t.Errorf("Expected stress average 3, got %v", averages.Stress)
	}
	if averages.Anxiety == nil || *averages.Anxiety != 3 {
		t.Errorf("Expected anxiety average 3 over one value, got %v", averages.Anxiety)
	}
	if averages.SleepDuration == nil || *averages.SleepDuration != 7.5 {
		t.Errorf("Expected sleep duration average 7.5, got %v", averages.SleepDuration)
	}
	if averages.SleepQuality == nil || *averages.SleepQuality != 8 {
		t.Errorf("Expected sleep quality average 8 over one value, got %v", averages.SleepQuality)
	}
}
