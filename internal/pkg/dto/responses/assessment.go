package responses

import "healthpredict-client/internal/app/models"

// WizardState is the snapshot of an in-progress assessment returned to the
// panel after every transition.
type WizardState struct {
	CurrentStep int                `json:"current_step"`
	Submitting  bool               `json:"submitting"`
	Draft       models.WizardDraft `json:"draft"`
}
