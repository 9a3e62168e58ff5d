package main

import (
	"context"
	"healthpredict-client/internal/app/config"
	"healthpredict-client/internal/app/delivery/http/controllers"
	"healthpredict-client/internal/app/delivery/http/middlewares"
	"healthpredict-client/internal/app/delivery/http/routers"
	"healthpredict-client/internal/app/drivers/database"
	"healthpredict-client/internal/app/drivers/logger"
	"healthpredict-client/internal/app/services/dashboard"
	"healthpredict-client/internal/app/services/gateway"
	"healthpredict-client/internal/app/services/session"
	"healthpredict-client/internal/app/services/shared/keystore"
	"healthpredict-client/internal/app/services/wizard"
	"healthpredict-client/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)

	if err := internalConfig.Validate(); err != nil {
		logrus.Fatalf("Invalid application config: %v", err)
	}
	if err := driverConfig.Validate(); err != nil {
		logrus.Fatalf("Invalid driver config: %v", err)
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if driverConfig.Keystore.Driver == constvars.KeystoreDriverRedis {
		bootstrap.Redis = database.NewRedisClient(driverConfig)
	}

	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Printf("Error while closing drivers: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Keystore
	var sessionKeystore = keystore.NewFileKeystore(bootstrap.DriverConfig.Keystore.FilePath)
	if bootstrap.DriverConfig.Keystore.Driver == constvars.KeystoreDriverRedis {
		sessionKeystore = keystore.NewRedisKeystore(bootstrap.Redis, "healthpredict:")
	}

	// Gateway and session, bound through lazy credentials
	credentials := session.NewLazyCredentials()
	backendGateway := gateway.NewGatewayClient(bootstrap.InternalConfig.Backend.BaseUrl, credentials, bootstrap.Logger)
	sessionStore := session.NewSessionStore(backendGateway, sessionKeystore, bootstrap.Logger)
	credentials.Bind(sessionStore)

	hydrateCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sessionStore.Hydrate(hydrateCtx); err != nil {
		logrus.Printf("Could not restore previous session, starting logged out: %v", err)
	}

	// Services
	assessmentManager := wizard.NewAssessmentManager(backendGateway, bootstrap.Logger)
	dashboardLoader := dashboard.NewDashboardLoader(backendGateway, bootstrap.Logger)

	// Middlewares
	panelMiddlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		SessionStore:   sessionStore,
		InternalConfig: bootstrap.InternalConfig,
	}

	// Controllers
	authController := controllers.NewAuthController(bootstrap.Logger, sessionStore)
	profileController := controllers.NewProfileController(bootstrap.Logger, backendGateway)
	assessmentController := controllers.NewAssessmentController(bootstrap.Logger, sessionStore, assessmentManager)
	healthRecordController := controllers.NewHealthRecordController(bootstrap.Logger, backendGateway, bootstrap.InternalConfig)
	predictionController := controllers.NewPredictionController(bootstrap.Logger, backendGateway, bootstrap.InternalConfig)
	dashboardController := controllers.NewDashboardController(bootstrap.Logger, dashboardLoader)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		panelMiddlewares,
		authController,
		profileController,
		assessmentController,
		healthRecordController,
		predictionController,
		dashboardController,
	)
}
