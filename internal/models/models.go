package models

import "time"

// User represents a user account
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Age          *int      `json:"age,omitempty"`
	Gender       *string   `json:"gender,omitempty"`
	HeightCm     *float64  `json:"height_cm,omitempty"`
	WeightKg     *float64  `json:"weight_kg,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// PhysicalRecord represents one physical health measurement.
// Optional fields are nil when the user did not report them; nil values
// are excluded from averages, never treated as zero.
type PhysicalRecord struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	HeartRate       *int      `json:"heart_rate,omitempty"`
	BPSystolic      *int      `json:"bp_sys,omitempty"`
	BPDiastolic     *int      `json:"bp_dia,omitempty"`
	Steps           *int      `json:"steps,omitempty"`
	CaloriesBurned  *float64  `json:"calories_burned,omitempty"`
	BodyTemperature *float64  `json:"temperature,omitempty"`
	RecordedAt      time.Time `json:"recorded_at"`
}

// MentalRecord represents one mental health check-in, all scores on a 1-10 scale
type MentalRecord struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	MoodScore    *int      `json:"mood_score,omitempty"`
	StressLevel  *int      `json:"stress_level,omitempty"`
	AnxietyLevel *int      `json:"anxiety_level,omitempty"`
	EnergyLevel  *int      `json:"energy_level,omitempty"`
	RecordedAt   time.Time `json:"recorded_at"`
}

// SleepRecord represents one night of sleep tracking.
// Sleep rows are windowed and charted by CreatedAt rather than a recording
// timestamp; the other record categories use RecordedAt.
type SleepRecord struct {
	ID                 int64      `json:"id"`
	UserID             int64      `json:"user_id"`
	SleepDurationHours *float64   `json:"sleep_duration_hours,omitempty"`
	SleepQuality       *int       `json:"sleep_quality,omitempty"`
	Bedtime            *time.Time `json:"bedtime,omitempty"`
	WakeTime           *time.Time `json:"wake_time,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// WellnessScore is one persisted score snapshot. Rows are append-only:
// created once per summary store, never updated or deleted.
type WellnessScore struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Score     int       `json:"wellness_score"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// InsightLog is one persisted insight or recommendation. Exactly one of
// InsightText / RecommendationText is set per row.
type InsightLog struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	InsightText        *string   `json:"insight_text,omitempty"`
	RecommendationText *string   `json:"recommendation_text,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// GoogleFitToken is a persisted, user-scoped OAuth token for the Google Fit
// integration. One row per user, upserted on reconnect.
type GoogleFitToken struct {
	UserID       int64     `json:"user_id"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	TokenType    string    `json:"token_type"`
	Expiry       time.Time `json:"expiry"`
	Scope        string    `json:"scope"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SignupRequest represents the signup request
type SignupRequest struct {
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Age      *int     `json:"age"`
	Gender   *string  `json:"gender"`
	HeightCm *float64 `json:"height_cm"`
	WeightKg *float64 `json:"weight_kg"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// CreatePhysicalRequest represents the request to log physical health metrics
type CreatePhysicalRequest struct {
	UserID          int64    `json:"user_id" binding:"required"`
	HeartRate       *int     `json:"heart_rate"`
	BPSystolic      *int     `json:"bp_sys"`
	BPDiastolic     *int     `json:"bp_dia"`
	Steps           *int     `json:"steps"`
	CaloriesBurned  *float64 `json:"calories_burned"`
	BodyTemperature *float64 `json:"temperature"`
}

// CreateMentalRequest represents the request to log a mental health check-in.
// SleepQuality, when present, is stored as a separate sleep record.
type CreateMentalRequest struct {
	UserID       int64 `json:"user_id" binding:"required"`
	MoodScore    *int  `json:"mood_score" binding:"omitempty,min=1,max=10"`
	StressLevel  *int  `json:"stress_level" binding:"omitempty,min=1,max=10"`
	AnxietyLevel *int  `json:"anxiety_level" binding:"omitempty,min=1,max=10"`
	EnergyLevel  *int  `json:"energy_level" binding:"omitempty,min=1,max=10"`
	SleepQuality *int  `json:"sleep_quality" binding:"omitempty,min=1,max=10"`
}

// CreateSleepRequest represents the request to log a night of sleep
type CreateSleepRequest struct {
	UserID             int64      `json:"user_id" binding:"required"`
	SleepDurationHours *float64   `json:"sleep_duration_hours"`
	SleepQuality       *int       `json:"sleep_quality" binding:"omitempty,min=1,max=10"`
	Bedtime            *time.Time `json:"bedtime"`
	WakeTime           *time.Time `json:"wake_time"`
}

// CreateRecordResponse is returned after a successful record write
type CreateRecordResponse struct {
	Message  string `json:"message"`
	RecordID int64  `json:"record_id"`
	UserID   int64  `json:"user_id"`
}
