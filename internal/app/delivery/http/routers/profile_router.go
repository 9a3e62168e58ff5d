package routers

import (
	"healthpredict-client/internal/app/delivery/http/controllers"
	"healthpredict-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachProfileRoutes(router chi.Router, mw *middlewares.Middlewares, profileController *controllers.ProfileController) {
	router.Use(mw.RouteGuard)
	router.Get("/", profileController.GetProfile)
	router.Put("/", profileController.UpdateProfile)
	router.Get("/history", profileController.GetHealthHistory)
}
