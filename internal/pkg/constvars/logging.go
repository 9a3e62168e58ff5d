package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingStatusCodeKey   = "status_code"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingUserIDKey       = "user_id"
	LoggingRecordIDKey     = "health_record_id"
	LoggingPredictionIDKey = "prediction_id"
	LoggingWizardStepKey   = "wizard_step"
	LoggingErrorCodeKey    = "error_code"
	LoggingKeystoreKeyKey  = "keystore_key"
)
