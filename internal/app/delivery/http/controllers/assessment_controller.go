package controllers

import (
	"healthpredict-client/internal/app/contracts"
	"healthpredict-client/internal/pkg/constvars"
	"healthpredict-client/internal/pkg/dto/requests"
	"healthpredict-client/internal/pkg/exceptions"
	"healthpredict-client/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// AssessmentController drives the wizard over HTTP. The owner key is the
// session credential, so each logged-in user gets exactly one wizard and a
// re-login starts from a clean slate.
type AssessmentController struct {
	Log               *zap.Logger
	SessionStore      contracts.SessionStore
	AssessmentManager contracts.AssessmentManager
}

func NewAssessmentController(
	logger *zap.Logger,
	sessionStore contracts.SessionStore,
	assessmentManager contracts.AssessmentManager,
) *AssessmentController {
	return &AssessmentController{
		Log:               logger,
		SessionStore:      sessionStore,
		AssessmentManager: assessmentManager,
	}
}

func (ctrl *AssessmentController) Start(w http.ResponseWriter, r *http.Request) {
	state := ctrl.AssessmentManager.Start(ctrl.SessionStore.Token())
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.WizardStartedMessage, state)
}

func (ctrl *AssessmentController) State(w http.ResponseWriter, r *http.Request) {
	state, err := ctrl.AssessmentManager.State(ctrl.SessionStore.Token())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, "", state)
}

func (ctrl *AssessmentController) Update(w http.ResponseWriter, r *http.Request) {
	// Bind body to request; deliberately no validation, the wizard accepts
	// whatever the user typed until submission.
	request := new(requests.UpdateDraft)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	state, err := ctrl.AssessmentManager.Update(ctrl.SessionStore.Token(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardUpdatedMessage, state)
}

func (ctrl *AssessmentController) Back(w http.ResponseWriter, r *http.Request) {
	state, err := ctrl.AssessmentManager.Retreat(ctrl.SessionStore.Token())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, "", state)
}

// Next advances the wizard; from the last step it runs the submission
// pipeline, so this call may take as long as the backend does.
func (ctrl *AssessmentController) Next(w http.ResponseWriter, r *http.Request) {
	state, result, err := ctrl.AssessmentManager.Advance(r.Context(), ctrl.SessionStore.Token())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if result != nil {
		utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.WizardSubmittedMessage, result)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "", state)
}

func (ctrl *AssessmentController) Abandon(w http.ResponseWriter, r *http.Request) {
	ctrl.AssessmentManager.Abandon(ctrl.SessionStore.Token())
	utils.BuildSuccessResponse(w, constvars.StatusOK, "", nil)
}
