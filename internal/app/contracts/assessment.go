package contracts

import (
	"context"
	"healthpredict-client/internal/pkg/dto/requests"
	"healthpredict-client/internal/pkg/dto/responses"
)

// AssessmentManager owns the per-user wizard instances. Start always resets
// the draft; the other calls address the caller's active wizard and fail
// with ErrWizardNotStarted when there is none.
type AssessmentManager interface {
	Start(owner string) *responses.WizardState
	State(owner string) (*responses.WizardState, error)
	Update(owner string, request *requests.UpdateDraft) (*responses.WizardState, error)
	Retreat(owner string) (*responses.WizardState, error)

	// Advance moves to the next step, or, from the last step, runs the
	// two-phase submission pipeline. Exactly one of state/result is non-nil
	// on success: state while still stepping, result once submitted.
	Advance(ctx context.Context, owner string) (*responses.WizardState, *responses.AssessmentResult, error)

	// Abandon drops the owner's wizard, if any. Outstanding submissions run
	// to completion and their outcome is discarded.
	Abandon(owner string)
}
