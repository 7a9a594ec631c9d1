package models

import (
	"encoding/json"
	"time"
)

// GoogleFitStatus is returned after a successful OAuth code exchange
type GoogleFitStatus struct {
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
	Scope     string    `json:"scope,omitempty"`
}

// GoogleFitSteps carries daily step buckets from the Google Fit aggregate
// API. Buckets are passed through untouched for the client to render.
type GoogleFitSteps struct {
	StepsData   []json.RawMessage `json:"steps_data"`
	PeriodDays  int               `json:"period_days"`
	RetrievedAt time.Time         `json:"retrieved_at"`
}
