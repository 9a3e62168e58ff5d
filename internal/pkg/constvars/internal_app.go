package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_USER_KEY         ContextKey = "session_user"
)

const (
	REQUEST_ID_PREFIX = "HLTHPRD_CLI_"
)

// Fixed keystore keys. The credential and the cached profile live under these
// two names and are always cleared together.
const (
	StorageAccessTokenKey = "access_token"
	StorageUserKey        = "user"
)

// Backend endpoint paths, relative to the configured backend base URL.
const (
	EndpointAuthRegister      = "/auth/register"
	EndpointAuthLogin         = "/auth/login"
	EndpointAuthLogout        = "/auth/logout"
	EndpointProfile           = "/profile"
	EndpointProfileHistory    = "/profile/history"
	EndpointHealthRecord      = "/health/record"
	EndpointHealthRecords     = "/health/records"
	EndpointPredict           = "/predict"
	EndpointPredictions       = "/predictions"
	EndpointPrediction        = "/prediction"
	EndpointDashboardStats    = "/dashboard/stats"
	EndpointDashboardTimeline = "/dashboard/timeline"
)

// Assessment wizard steps. The flow is a fixed linear sequence.
const (
	WizardStepPersonalInfo = 1
	WizardStepPhysicalData = 2
	WizardStepHealthMetric = 3
	WizardStepLifestyle    = 4

	WizardStepFirst = WizardStepPersonalInfo
	WizardStepLast  = WizardStepLifestyle
)

const (
	AppPaginationUrlFormat = "%s?page=%d&per_page=%d"
)

const (
	KeystoreDriverFile  = "file"
	KeystoreDriverRedis = "redis"
)

// Local panel entry point the route guard redirects unauthenticated
// navigation to.
const (
	LoginEntryPath = "/login"
)
