package controllers

import (
	"healthpredict-client/internal/app/contracts"
	"healthpredict-client/internal/pkg/constvars"
	"healthpredict-client/internal/pkg/dto/requests"
	"healthpredict-client/internal/pkg/dto/responses"
	"healthpredict-client/internal/pkg/exceptions"
	"healthpredict-client/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log          *zap.Logger
	SessionStore contracts.SessionStore
}

func NewAuthController(logger *zap.Logger, sessionStore contracts.SessionStore) *AuthController {
	return &AuthController{
		Log:          logger,
		SessionStore: sessionStore,
	}
}

func (ctrl *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.Register)
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

	result := ctrl.SessionStore.Register(r.Context(), request)
	if !result.Success {
		utils.BuildSuccessResponse(w, constvars.StatusOK, "", result)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterSuccessMessage, result)
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.Login)
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

	result := ctrl.SessionStore.Login(r.Context(), request)
	if !result.Success {
		utils.BuildSuccessResponse(w, constvars.StatusOK, "", result)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, result)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	err := ctrl.SessionStore.Logout(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}

// Whoami reports the current session as the panel sees it locally; it never
// calls the backend and the token decode is informational only.
func (ctrl *AuthController) Whoami(w http.ResponseWriter, r *http.Request) {
	info := &responses.SessionInfo{
		Authenticated: ctrl.SessionStore.IsAuthenticated(),
		User:          ctrl.SessionStore.GetUser(),
	}
	if info.Authenticated {
		if claims, err := ctrl.SessionStore.TokenClaims(); err == nil {
			info.TokenClaims = claims
		}
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, "", info)
}
