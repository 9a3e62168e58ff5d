package config

type InternalConfig struct {
	App     App     `mapstructure:"app"`
	Backend Backend `mapstructure:"backend"`
}

type App struct {
	Env                       string `mapstructure:"env"`
	Port                      string `mapstructure:"port"`
	Version                   string `mapstructure:"version"`
	Address                   string `mapstructure:"address"`
	Timezone                  string `mapstructure:"timezone"`
	EndpointPrefix            string `mapstructure:"endpoint_prefix"`
	MaxRequests               int    `mapstructure:"max_requests"`
	ShutdownTimeout           int    `mapstructure:"shutdown_timeout"`
	LoginMaxAttempts          int    `mapstructure:"login_max_attempts"`
	LoginAttemptWindowSeconds int    `mapstructure:"login_attempt_window_seconds"`
	LoginBlockTimeSeconds     int    `mapstructure:"login_block_time_seconds"`
	DefaultPageSize           int    `mapstructure:"default_page_size"`
}

// Backend points at the prediction service every gateway call is relative
// to. No request timeout is configured on purpose: an in-flight submission
// runs until it settles.
type Backend struct {
	BaseUrl string `mapstructure:"base_url" validate:"required,url"`
}
