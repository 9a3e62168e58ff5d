package routers

import (
	"healthpredict-client/internal/app/delivery/http/controllers"
	"healthpredict-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, mw *middlewares.Middlewares, dashboardController *controllers.DashboardController) {
	router.Use(mw.RouteGuard)
	router.Get("/", dashboardController.GetDashboard)
}
