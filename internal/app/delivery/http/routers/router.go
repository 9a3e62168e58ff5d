package routers

import (
	"fmt"
	"healthpredict-client/internal/app/config"
	"healthpredict-client/internal/app/delivery/http/controllers"
	"healthpredict-client/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	assessmentController *controllers.AssessmentController,
	healthRecordController *controllers.HealthRecordController,
	predictionController *controllers.PredictionController,
	dashboardController *controllers.DashboardController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, internalConfig, middlewares, authController)
			})

			r.Route("/profile", func(r chi.Router) {
				attachProfileRoutes(r, middlewares, profileController)
			})

			r.Route("/assessment", func(r chi.Router) {
				attachAssessmentRoutes(r, middlewares, assessmentController)
			})

			r.Route("/health-records", func(r chi.Router) {
				attachHealthRecordRoutes(r, middlewares, healthRecordController)
			})

			r.Route("/predictions", func(r chi.Router) {
				attachPredictionRoutes(r, middlewares, predictionController)
			})

			r.Route("/dashboard", func(r chi.Router) {
				attachDashboardRoutes(r, middlewares, dashboardController)
			})
		})
	})
}
