package constvars

// Validation messages, mapped by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"url":      "must be a valid URL",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of %s",
}

// Validator tags whose message carries the tag parameter.
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error codes surfaced in the normalized gateway outcome. ErrCodeNetwork and
// ErrCodeRequestFailed mirror the backend contract: transport failures carry
// the former, non-2xx responses without a parseable body carry the latter.
const (
	ErrCodeNetwork       = "Network error"
	ErrCodeRequestFailed = "Request failed"
)

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNoActiveAssessment            = "no assessment in progress, start a new one first"
	ErrClientAssessmentBusy                = "your assessment is already being submitted"
	ErrClientUnknownNetworkFailure         = "Unknown error"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON"
	ErrDevCannotMarshalJSON        = "cannot marshal JSON"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevDecodeBackendResponse    = "failed to decode backend response for %s"
	ErrDevBackendRejectedRequest   = "backend rejected %s request"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevAuthTokenMissing         = "authorization token missing"
	ErrDevAuthTokenInvalidOrParsed = "authorization token cannot be parsed"
	ErrDevSessionHydrateFailed     = "failed to hydrate session from keystore"
	ErrDevSessionPersistFailed     = "failed to persist session to keystore"
	ErrDevSessionClearFailed       = "failed to clear session from keystore"
	ErrDevKeystoreReadFailed       = "failed to read key %q from keystore"
	ErrDevKeystoreWriteFailed      = "failed to write key %q to keystore"
	ErrDevKeystoreDeleteFailed     = "failed to delete key %q from keystore"
	ErrDevWizardNotStarted         = "wizard has no active draft"
	ErrDevWizardAlreadySubmitting  = "wizard submission already in flight"
	ErrDevWizardRecovered          = "wizard submission recovered from panic"
	ErrDevConfigValidationFailed   = "configuration validation failed"
)
