package middlewares

import (
	"healthpredict-client/internal/app/config"
	"healthpredict-client/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionStore   contracts.SessionStore
	InternalConfig *config.InternalConfig
}
