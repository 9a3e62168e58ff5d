package routers

import (
	"healthpredict-client/internal/app/delivery/http/controllers"
	"healthpredict-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachHealthRecordRoutes(router chi.Router, mw *middlewares.Middlewares, healthRecordController *controllers.HealthRecordController) {
	router.Use(mw.RouteGuard)
	router.Get("/", healthRecordController.ListHealthRecords)
	router.Get("/{recordID}", healthRecordController.GetHealthRecord)
}
