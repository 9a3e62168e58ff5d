package models

import "github.com/goccy/go-json"

// RiskScores carries the per-disease probabilities (already scaled to 0-100
// by the backend).
type RiskScores struct {
	Diabetes     float64 `json:"diabetes"`
	HeartDisease float64 `json:"heart_disease"`
	Obesity      float64 `json:"obesity"`
}

// Prediction is the opaque risk result computed server-side. The client
// forwards it to display unmodified; recommendations and models_used keep
// whatever structure the backend chose.
type Prediction struct {
	ID               int             `json:"id"`
	UserID           int             `json:"user_id"`
	HealthRecordID   int             `json:"health_record_id"`
	Risks            RiskScores      `json:"risks"`
	OverallRiskScore float64         `json:"overall_risk_score"`
	RiskCategory     string          `json:"risk_category"`
	Recommendations  json.RawMessage `json:"recommendations,omitempty"`
	ModelsUsed       json.RawMessage `json:"models_used,omitempty"`
	CreatedAt        string          `json:"created_at,omitempty"`
}
