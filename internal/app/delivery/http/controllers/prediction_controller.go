package controllers

import (
	"healthpredict-client/internal/app/config"
	"healthpredict-client/internal/app/contracts"
	"healthpredict-client/internal/pkg/constvars"
	"healthpredict-client/internal/pkg/exceptions"
	"healthpredict-client/internal/pkg/utils"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PredictionController struct {
	Log            *zap.Logger
	Gateway        contracts.Gateway
	InternalConfig *config.InternalConfig
}

func NewPredictionController(
	logger *zap.Logger,
	gateway contracts.Gateway,
	internalConfig *config.InternalConfig,
) *PredictionController {
	return &PredictionController{
		Log:            logger,
		Gateway:        gateway,
		InternalConfig: internalConfig,
	}
}

func (ctrl *PredictionController) ListPredictions(w http.ResponseWriter, r *http.Request) {
	page, pageSize := utils.ParsePagination(r, ctrl.InternalConfig.App.DefaultPageSize)

	list, err := ctrl.Gateway.GetPredictions(r.Context(), page, pageSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPredictionsSuccessMessage, list)
}

func (ctrl *PredictionController) GetPrediction(w http.ResponseWriter, r *http.Request) {
	predictionID, err := strconv.Atoi(chi.URLParam(r, "predictionID"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidInput(err))
		return
	}

	detail, err := ctrl.Gateway.GetPrediction(r.Context(), predictionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPredictionSuccessMessage, detail)
}
