package routers

import (
	"healthpredict-client/internal/app/delivery/http/controllers"
	"healthpredict-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAssessmentRoutes(router chi.Router, mw *middlewares.Middlewares, assessmentController *controllers.AssessmentController) {
	router.Use(mw.RouteGuard)
	router.Post("/", assessmentController.Start)
	router.Get("/", assessmentController.State)
	router.Patch("/", assessmentController.Update)
	router.Post("/next", assessmentController.Next)
	router.Post("/back", assessmentController.Back)
	router.Delete("/", assessmentController.Abandon)
}
