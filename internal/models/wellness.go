package models

// Wellness status labels, thresholds applied to the composite score
const (
	StatusExcellent        = "Excellent"
	StatusGood             = "Good"
	StatusModerate         = "Moderate"
	StatusFair             = "Fair"
	StatusCritical         = "Critical"
	StatusInsufficientData = "Insufficient Data"
	StatusError            = "Error"
)

// Averages holds the per-metric arithmetic means over the lookback window.
// A nil entry means the window contained no usable values for that metric,
// which is distinct from an average of zero.
type Averages struct {
	HeartRate     *float64 `json:"avg_heart_rate"`
	BPSystolic    *float64 `json:"avg_blood_pressure_sys"`
	BPDiastolic   *float64 `json:"avg_blood_pressure_dia"`
	Steps         *float64 `json:"avg_steps"`
	Calories      *float64 `json:"avg_calories"`
	Temperature   *float64 `json:"avg_temperature"`
	Mood          *float64 `json:"avg_mood"`
	Stress        *float64 `json:"avg_stress"`
	Anxiety       *float64 `json:"avg_anxiety"`
	Energy        *float64 `json:"avg_energy"`
	SleepDuration *float64 `json:"avg_sleep_duration"`
	SleepQuality  *float64 `json:"avg_sleep_quality"`
}

// Trends holds signed percentage deltas between the most recent seven
// records and the seven before them. Zero when there is insufficient
// history for a metric.
type Trends struct {
	Steps         float64 `json:"steps_trend"`
	Stress        float64 `json:"stress_trend"`
	Mood          float64 `json:"mood_trend"`
	SleepDuration float64 `json:"sleep_duration_trend"`
}

// ChartPoint is one (calendar date, value) pair in a chart series
type ChartPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// ChartData holds the four chart-ready series, chronological ascending
type ChartData struct {
	SleepTrend    []ChartPoint `json:"sleep_trend"`
	StressTrend   []ChartPoint `json:"stress_trend"`
	ActivityTrend []ChartPoint `json:"activity_trend"`
	MoodTrend     []ChartPoint `json:"mood_trend"`
}

// SummaryMetrics echoes the headline averages back to the client, rounded
// for display
type SummaryMetrics struct {
	AvgHeartRate     *float64 `json:"avg_heart_rate"`
	AvgSteps         *float64 `json:"avg_steps"`
	AvgSleepDuration *float64 `json:"avg_sleep_duration"`
	AvgStress        *float64 `json:"avg_stress"`
	AvgMood          *float64 `json:"avg_mood"`
}

// WellnessSummary is the full response of the summary pipeline
type WellnessSummary struct {
	WellnessScore   int             `json:"wellness_score"`
	Status          string          `json:"status"`
	Insights        []string        `json:"insights"`
	Recommendations []string        `json:"recommendations"`
	ChartData       ChartData       `json:"chart_data"`
	Metrics         *SummaryMetrics `json:"metrics,omitempty"`
}

// Store result status values
const (
	StoreStatusSuccess = "success"
	StoreStatusNoData  = "no_data"
	StoreStatusError   = "error"
)

// StoreResult reports the outcome of persisting a wellness snapshot
type StoreResult struct {
	Status               string  `json:"status"`
	Message              string  `json:"message,omitempty"`
	WellnessScore        int     `json:"wellness_score,omitempty"`
	WellnessStatus       string  `json:"wellness_status,omitempty"`
	WellnessRecordID     int64   `json:"wellness_record_id,omitempty"`
	InsightLogIDs        []int64 `json:"insight_log_ids,omitempty"`
	RecommendationLogIDs []int64 `json:"recommendation_log_ids,omitempty"`
}
