package config

type (
	DriverConfig struct {
		Redis    Redis
		Logger   Logger
		Keystore Keystore
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	// Keystore selects where the session pair is mirrored: an atomic JSON
	// file (default) or Redis for shared deployments.
	Keystore struct {
		Driver   string `validate:"oneof=file redis"`
		FilePath string
	}
)
