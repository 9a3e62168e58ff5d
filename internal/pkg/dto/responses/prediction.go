package responses

import "healthpredict-client/internal/app/models"

// PredictionPayload is the success body of POST /predict.
type PredictionPayload struct {
	Message     string            `json:"message,omitempty"`
	Prediction  models.Prediction `json:"prediction"`
	Explanation string            `json:"explanation,omitempty"`
	Disclaimer  string            `json:"disclaimer,omitempty"`
}

// PredictionDetail is the body of GET /prediction/{id}; the associated
// health record rides along when the backend still has it.
type PredictionDetail struct {
	Prediction   models.Prediction    `json:"prediction"`
	HealthRecord *models.HealthRecord `json:"health_record,omitempty"`
}

// PredictionList is the paginated body of GET /predictions.
type PredictionList struct {
	Predictions []models.Prediction `json:"predictions"`
	Total       int                 `json:"total"`
	Page        int                 `json:"page"`
	PerPage     int                 `json:"per_page"`
	TotalPages  int                 `json:"total_pages"`
}

// AssessmentResult is what the wizard hands to the results view when the
// two-phase pipeline completes: the prediction plus the echoed draft.
type AssessmentResult struct {
	Prediction  models.Prediction  `json:"prediction"`
	Explanation string             `json:"explanation,omitempty"`
	FormData    models.WizardDraft `json:"form_data"`
}
