package routers

import (
	"healthpredict-client/internal/app/config"
	"healthpredict-client/internal/app/delivery/http/controllers"
	"healthpredict-client/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, internalConfig *config.InternalConfig, mw *middlewares.Middlewares, authController *controllers.AuthController) {
	// Credential endpoints get their own stricter per-IP limiter on top of
	// the global one.
	loginLimiter := middlewares.NewRateLimiter(
		internalConfig.App.LoginMaxAttempts,
		time.Duration(internalConfig.App.LoginAttemptWindowSeconds)*time.Second,
		time.Duration(internalConfig.App.LoginBlockTimeSeconds)*time.Second,
	)

	router.With(loginLimiter.Limit).Post("/register", authController.Register)
	router.With(loginLimiter.Limit).Post("/login", authController.Login)
	router.With(mw.RouteGuard).Post("/logout", authController.Logout)
	router.Get("/whoami", authController.Whoami)
}
