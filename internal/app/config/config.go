package config

import (
	"healthpredict-client/internal/pkg/constvars"
	"healthpredict-client/internal/pkg/exceptions"
	"healthpredict-client/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		Keystore: Keystore{
			Driver:   utils.GetEnvString("KEYSTORE_DRIVER", constvars.KeystoreDriverFile),
			FilePath: utils.GetEnvString("KEYSTORE_FILE_PATH", ".healthpredict/session.json"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":3000"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			LoginMaxAttempts:          utils.GetEnvInt("APP_LOGIN_MAX_ATTEMPTS", 5),
			LoginAttemptWindowSeconds: utils.GetEnvInt("APP_LOGIN_ATTEMPT_WINDOW_SECONDS", 60),
			LoginBlockTimeSeconds:     utils.GetEnvInt("APP_LOGIN_BLOCK_TIME_SECONDS", 300),
			DefaultPageSize:           utils.GetEnvInt("APP_DEFAULT_PAGE_SIZE", 10),
		},
		Backend: Backend{
			BaseUrl: utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:5000/api"),
		},
	}
}

// Validate checks the assembled configuration before anything is wired.
// Wizard input is deliberately never validated; this only covers the app's
// own settings.
func (c *InternalConfig) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return exceptions.ErrConfigValidation(err)
	}
	return nil
}

func (d *DriverConfig) Validate() error {
	if err := utils.ValidateStruct(d); err != nil {
		return exceptions.ErrConfigValidation(err)
	}
	return nil
}
