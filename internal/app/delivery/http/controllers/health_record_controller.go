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

type HealthRecordController struct {
	Log            *zap.Logger
	Gateway        contracts.Gateway
	InternalConfig *config.InternalConfig
}

func NewHealthRecordController(
	logger *zap.Logger,
	gateway contracts.Gateway,
	internalConfig *config.InternalConfig,
) *HealthRecordController {
	return &HealthRecordController{
		Log:            logger,
		Gateway:        gateway,
		InternalConfig: internalConfig,
	}
}

func (ctrl *HealthRecordController) ListHealthRecords(w http.ResponseWriter, r *http.Request) {
	page, pageSize := utils.ParsePagination(r, ctrl.InternalConfig.App.DefaultPageSize)

	list, err := ctrl.Gateway.GetHealthRecords(r.Context(), page, pageSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRecordsSuccessMessage, list)
}

func (ctrl *HealthRecordController) GetHealthRecord(w http.ResponseWriter, r *http.Request) {
	recordID, err := strconv.Atoi(chi.URLParam(r, "recordID"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidInput(err))
		return
	}

	payload, err := ctrl.Gateway.GetHealthRecord(r.Context(), recordID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRecordSuccessMessage, payload)
}
