package routers

import (
	"healthpredict-client/internal/app/delivery/http/controllers"
	"healthpredict-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPredictionRoutes(router chi.Router, mw *middlewares.Middlewares, predictionController *controllers.PredictionController) {
	router.Use(mw.RouteGuard)
	router.Get("/", predictionController.ListPredictions)
	router.Get("/{predictionID}", predictionController.GetPrediction)
}
