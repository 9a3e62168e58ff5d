package responses

import "healthpredict-client/internal/app/models"

// AuthPayload is the success body of /auth/login and /auth/register.
type AuthPayload struct {
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}

// SessionResult is what SessionStore.Login/Register hand back to callers:
// success with the stored profile, or the gateway's error pair unchanged.
type SessionResult struct {
	Success   bool         `json:"success"`
	User      *models.User `json:"user,omitempty"`
	ErrorCode string       `json:"error,omitempty"`
	Message   string       `json:"message,omitempty"`
}

// SessionInfo is the whoami view: cached profile plus the informational
// decode of the stored token.
type SessionInfo struct {
	Authenticated bool                `json:"authenticated"`
	User          *models.User        `json:"user,omitempty"`
	TokenClaims   *models.TokenClaims `json:"token_claims,omitempty"`
}
