package controllers

import (
	"healthpredict-client/internal/app/contracts"
	"healthpredict-client/internal/pkg/constvars"
	"healthpredict-client/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log             *zap.Logger
	DashboardLoader contracts.DashboardLoader
}

func NewDashboardController(logger *zap.Logger, dashboardLoader contracts.DashboardLoader) *DashboardController {
	return &DashboardController{
		Log:             logger,
		DashboardLoader: dashboardLoader,
	}
}

// GetDashboard always answers 200; halves that failed to load are reported
// through the notices list rather than failing the view.
func (ctrl *DashboardController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard := ctrl.DashboardLoader.Load(r.Context())

	message := constvars.GetDashboardSuccessMessage
	if len(dashboard.Notices) > 0 {
		message = constvars.GetDashboardPartialFailureMessage
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, dashboard)
}
