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

type ProfileController struct {
	Log     *zap.Logger
	Gateway contracts.Gateway
}

func NewProfileController(logger *zap.Logger, gateway contracts.Gateway) *ProfileController {
	return &ProfileController{
		Log:     logger,
		Gateway: gateway,
	}
}

func (ctrl *ProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	payload, err := ctrl.Gateway.GetProfile(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, payload)
}

func (ctrl *ProfileController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.UpdateProfile)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	payload, err := ctrl.Gateway.UpdateProfile(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateProfileSuccessMessage, payload)
}

func (ctrl *ProfileController) GetHealthHistory(w http.ResponseWriter, r *http.Request) {
	history, err := ctrl.Gateway.GetHealthHistory(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHistorySuccessMessage, history)
}
