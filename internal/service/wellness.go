package service

import (
	"github.com/vitalsync/backend/internal/models"
)

const (
	// LookbackDays is the record window a summary is computed over
	LookbackDays = 30

	// MinRecordsForTrend is the minimum record count before a trend is reported
	MinRecordsForTrend = 14

	// TrendWindow is the size of each comparison window, in records
	TrendWindow = 7

	// ChartWindow is the number of most recent records per chart series
	ChartWindow = 14
)

// Sub-score weights. They sum to 1 so the composite stays on a 0-100 scale.
const (
	weightSleep     = 0.30
	weightStress    = 0.25
	weightActivity  = 0.20
	weightMood      = 0.15
	weightHeartRate = 0.10
)

// CalculateAverages computes per-metric arithmetic means across the record
// sets. Nil field values are excluded; a metric with no usable values at all
// yields a nil average, never zero. Input order does not matter.
func CalculateAverages(physical []models.PhysicalRecord, mental []models.MentalRecord, sleep []models.SleepRecord) models.Averages {
	var a models.Averages

	var (
		hr, sys, dia, steps, cals, temps meanAcc
	)
	for _, r := range physical {
		hr.addInt(r.HeartRate)
		sys.addInt(r.BPSystolic)
		dia.addInt(r.BPDiastolic)
		steps.addInt(r.Steps)
		cals.addFloat(r.CaloriesBurned)
		temps.addFloat(r.BodyTemperature)
	}
	a.HeartRate = hr.mean()
	a.BPSystolic = sys.mean()
	a.BPDiastolic = dia.mean()
	a.Steps = steps.mean()
	a.Calories = cals.mean()
	a.Temperature = temps.mean()

	var mood, stress, anxiety, energy meanAcc
	for _, r := range mental {
		mood.addInt(r.MoodScore)
		stress.addInt(r.StressLevel)
		anxiety.addInt(r.AnxietyLevel)
		energy.addInt(r.EnergyLevel)
	}
	a.Mood = mood.mean()
	a.Stress = stress.mean()
	a.Anxiety = anxiety.mean()
	a.Energy = energy.mean()

	var duration, quality meanAcc
	for _, r := range sleep {
		duration.addFloat(r.SleepDurationHours)
		quality.addInt(r.SleepQuality)
	}
	a.SleepDuration = duration.mean()
	a.SleepQuality = quality.mean()

	return a
}

// meanAcc accumulates non-nil values for one metric
type meanAcc struct {
	sum float64
	n   int
}

func (m *meanAcc) addInt(v *int) {
	if v != nil {
		m.sum += float64(*v)
		m.n++
	}
}

func (m *meanAcc) addFloat(v *float64) {
	if v != nil {
		m.sum += *v
		m.n++
	}
}

func (m *meanAcc) mean() *float64 {
	if m.n == 0 {
		return nil
	}
	v := m.sum / float64(m.n)
	return &v
}

// CalculateTrends compares the seven most recent records against the seven
// before them for each tracked metric. Inputs must be sorted newest-first.
// A metric reports 0 when its record set has fewer than 14 entries, when
// either window has no usable values, or when the older window's mean is
// not positive (division guard).
func CalculateTrends(physical []models.PhysicalRecord, mental []models.MentalRecord, sleep []models.SleepRecord) models.Trends {
	var t models.Trends

	if len(physical) >= MinRecordsForTrend {
		var recent, older meanAcc
		for _, r := range physical[:TrendWindow] {
			recent.addInt(r.Steps)
		}
		for _, r := range physical[TrendWindow : 2*TrendWindow] {
			older.addInt(r.Steps)
		}
		t.Steps = windowDelta(recent, older)
	}

	if len(mental) >= MinRecordsForTrend {
		var recentStress, olderStress, recentMood, olderMood meanAcc
		for _, r := range mental[:TrendWindow] {
			recentStress.addInt(r.StressLevel)
			recentMood.addInt(r.MoodScore)
		}
		for _, r := range mental[TrendWindow : 2*TrendWindow] {
			olderStress.addInt(r.StressLevel)
			olderMood.addInt(r.MoodScore)
		}
		t.Stress = windowDelta(recentStress, olderStress)
		t.Mood = windowDelta(recentMood, olderMood)
	}

	if len(sleep) >= MinRecordsForTrend {
		var recent, older meanAcc
		for _, r := range sleep[:TrendWindow] {
			recent.addFloat(r.SleepDurationHours)
		}
		for _, r := range sleep[TrendWindow : 2*TrendWindow] {
			older.addFloat(r.SleepDurationHours)
		}
		t.SleepDuration = windowDelta(recent, older)
	}

	return t
}

// windowDelta returns the percent change from the older window to the
// recent one, 0 when either window is unusable
func windowDelta(recent, older meanAcc) float64 {
	r := recent.mean()
	o := older.mean()
	if r == nil || o == nil || *o <= 0 {
		return 0
	}
	return (*r - *o) / *o * 100
}

// CalculateWellnessScore combines five weighted sub-scores into a 0-100
// composite and a status label. A sub-score defaults to 50 when its average
// is absent. Trends currently feed insight generation only; the formula
// ignores them.
func CalculateWellnessScore(a models.Averages, trends models.Trends) (int, string) {
	sleep := 50.0
	if a.SleepDuration != nil {
		switch h := *a.SleepDuration; {
		case h >= 7 && h <= 8:
			sleep = 100
		case h >= 6 && h < 7:
			sleep = 80
		case h > 8 && h <= 9:
			sleep = 85
		case h < 6:
			sleep = 50
		default:
			sleep = 40
		}
	}

	stress := 50.0
	if a.Stress != nil {
		stress = 100 - *a.Stress*10
		if stress < 0 {
			stress = 0
		}
	}

	activity := 50.0
	if a.Steps != nil {
		switch s := *a.Steps; {
		case s >= 8000:
			activity = 100
		case s >= 7000:
			activity = 85
		case s >= 5000:
			activity = 70
		default:
			activity = 40
		}
	}

	mood := 50.0
	if a.Mood != nil {
		mood = *a.Mood / 10 * 100
		if mood > 100 {
			mood = 100
		}
	}

	heartRate := 50.0
	if a.HeartRate != nil {
		switch hr := *a.HeartRate; {
		case hr >= 60 && hr <= 80:
			heartRate = 100
		case (hr >= 55 && hr < 60) || (hr > 80 && hr <= 100):
			heartRate = 80
		case (hr >= 50 && hr < 55) || (hr > 100 && hr <= 110):
			heartRate = 60
		default:
			heartRate = 40
		}
	}

	composite := sleep*weightSleep +
		stress*weightStress +
		activity*weightActivity +
		mood*weightMood +
		heartRate*weightHeartRate

	// Truncate, not round: 74.99 is a 74
	score := int(composite)

	var status string
	switch {
	case score >= 75:
		status = models.StatusExcellent
	case score >= 60:
		status = models.StatusGood
	case score >= 50:
		status = models.StatusModerate
	case score >= 35:
		status = models.StatusFair
	default:
		status = models.StatusCritical
	}

	return score, status
}

// FormatChartData reshapes the most recent records into per-day series for
// the four charted metrics. Inputs must be sorted newest-first; output is
// chronological ascending, at most ChartWindow points per series, nil
// values rendered as 0.
func FormatChartData(physical []models.PhysicalRecord, mental []models.MentalRecord, sleep []models.SleepRecord) models.ChartData {
	cd := models.ChartData{
		SleepTrend:    []models.ChartPoint{},
		StressTrend:   []models.ChartPoint{},
		ActivityTrend: []models.ChartPoint{},
		MoodTrend:     []models.ChartPoint{},
	}

	for i := chartStart(len(sleep)); i >= 0; i-- {
		r := sleep[i]
		cd.SleepTrend = append(cd.SleepTrend, models.ChartPoint{
			Date:  r.CreatedAt.Format("2006-01-02"),
			Value: floatOrZero(r.SleepDurationHours),
		})
	}

	for i := chartStart(len(mental)); i >= 0; i-- {
		r := mental[i]
		date := r.RecordedAt.Format("2006-01-02")
		cd.StressTrend = append(cd.StressTrend, models.ChartPoint{
			Date:  date,
			Value: intOrZero(r.StressLevel),
		})
		cd.MoodTrend = append(cd.MoodTrend, models.ChartPoint{
			Date:  date,
			Value: intOrZero(r.MoodScore),
		})
	}

	for i := chartStart(len(physical)); i >= 0; i-- {
		r := physical[i]
		cd.ActivityTrend = append(cd.ActivityTrend, models.ChartPoint{
			Date:  r.RecordedAt.Format("2006-01-02"),
			Value: intOrZero(r.Steps),
		})
	}

	return cd
}

// chartStart returns the index of the oldest record to chart in a
// newest-first slice
func chartStart(n int) int {
	if n > ChartWindow {
		return ChartWindow - 1
	}
	return n - 1
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func intOrZero(v *int) float64 {
	if v == nil {
		return 0
	}
	return float64(*v)
}
