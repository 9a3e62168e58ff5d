package contracts

import (
	"context"
	"healthpredict-client/internal/app/models"
	"healthpredict-client/internal/pkg/dto/requests"
	"healthpredict-client/internal/pkg/dto/responses"
)

// SessionStore is the only component permitted to mutate persisted
// authentication state. IsAuthenticated and GetUser are synchronous reads of
// the in-memory pair; the keystore is only touched on Hydrate and on
// successful login/register/logout.
type SessionStore interface {
	CredentialReader

	Hydrate(ctx context.Context) error
	IsAuthenticated() bool
	GetUser() *models.User
	TokenClaims() (*models.TokenClaims, error)

	Login(ctx context.Context, request *requests.Login) *responses.SessionResult
	Register(ctx context.Context, request *requests.Register) *responses.SessionResult
	Logout(ctx context.Context) error
	Clear(ctx context.Context) error
}
