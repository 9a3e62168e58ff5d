package exceptions

import (
	"fmt"
	"healthpredict-client/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrInvalidInput = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevInvalidInput)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrConfigValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevConfigValidationFailed)
	}

	// Auth / session
	ErrNotAuthenticated = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenUnparseable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrParsed)
	}
	ErrSessionHydrate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSessionHydrateFailed)
	}
	ErrSessionPersist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSessionPersistFailed)
	}
	ErrSessionClear = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSessionClearFailed)
	}

	// Keystore
	ErrKeystoreRead = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevKeystoreReadFailed, key))
	}
	ErrKeystoreWrite = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevKeystoreWriteFailed, key))
	}
	ErrKeystoreDelete = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevKeystoreDeleteFailed, key))
	}

	// Wizard
	ErrWizardNotStarted = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientNoActiveAssessment, constvars.ErrDevWizardNotStarted)
	}
	ErrWizardBusy = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientAssessmentBusy, constvars.ErrDevWizardAlreadySubmitting)
	}
	ErrWizardRecovered = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevWizardRecovered)
	}

	// HTTP plumbing toward the backend
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrDecodeResponse = func(err error, capability string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevDecodeBackendResponse, capability))
	}
)

// ErrNetworkFailure converts a transport-level failure (DNS, refused
// connection, timeout) into the fixed {error:"Network error"} outcome. No raw
// transport error ever reaches a gateway caller.
func ErrNetworkFailure(err error) *CustomError {
	message := constvars.ErrClientUnknownNetworkFailure
	if err != nil {
		message = err.Error()
	}
	custom := BuildNewCustomError(err, constvars.StatusServiceUnavailable, message, constvars.ErrDevSendHTTPRequest)
	custom.ErrorCode = constvars.ErrCodeNetwork
	return custom
}

// ErrBackendRejected converts a non-2xx backend response into the normalized
// outcome, preserving the server's own error and message verbatim.
func ErrBackendRejected(statusCode int, errorCode, message, capability string) *CustomError {
	if errorCode == "" {
		errorCode = constvars.ErrCodeRequestFailed
	}
	custom := BuildNewCustomError(nil, statusCode, message, fmt.Sprintf(constvars.ErrDevBackendRejectedRequest, capability))
	custom.ErrorCode = errorCode
	return custom
}
