package responses

import "healthpredict-client/internal/app/models"

// HealthRecordPayload is the success body of POST /health/record and of the
// single-record read.
type HealthRecordPayload struct {
	Message      string              `json:"message,omitempty"`
	HealthRecord models.HealthRecord `json:"health_record"`
}

// HealthRecordList is the paginated body of GET /health/records.
type HealthRecordList struct {
	HealthRecords []models.HealthRecord `json:"health_records"`
	Total         int                   `json:"total"`
	Page          int                   `json:"page"`
	PerPage       int                   `json:"per_page"`
	TotalPages    int                   `json:"total_pages"`
}
