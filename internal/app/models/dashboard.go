package models

import "github.com/goccy/go-json"

// DashboardStats is the summary block of the dashboard view.
type DashboardStats struct {
	LatestPrediction   *Prediction `json:"latest_prediction"`
	TotalHealthRecords int         `json:"total_health_records"`
	TotalPredictions   int         `json:"total_predictions"`
	RiskTrend          string      `json:"risk_trend,omitempty"`
	AverageBMI         *float64    `json:"average_bmi,omitempty"`
	HasData            bool        `json:"has_data"`
}

// TimelinePoint is one entry of the prediction timeline chart data.
type TimelinePoint struct {
	ID               int        `json:"id"`
	Date             string     `json:"date"`
	OverallRiskScore float64    `json:"overall_risk_score"`
	RiskCategory     string     `json:"risk_category"`
	Risks            RiskScores `json:"risks"`
	Trend            string     `json:"trend,omitempty"`
	BMI              *float64   `json:"bmi,omitempty"`
}

type Timeline struct {
	Points      []TimelinePoint `json:"timeline"`
	TotalPoints int             `json:"total_points"`
}

// HealthHistory is the opaque history blob from /profile/history; the client
// relays it to display without interpreting it.
type HealthHistory struct {
	History json.RawMessage `json:"history"`
}
