package responses

import "healthpredict-client/internal/app/models"

// Dashboard is the merged fan-in of the two independent dashboard reads.
// Either half may be missing when its fetch failed; Notices carries the
// user-facing message for each failed half.
type Dashboard struct {
	Stats    *models.DashboardStats `json:"stats,omitempty"`
	Timeline *models.Timeline       `json:"timeline,omitempty"`
	Notices  []string               `json:"notices,omitempty"`
}
