package session

import (
	"context"
	"errors"
	"healthpredict-client/internal/app/contracts"
	"healthpredict-client/internal/app/models"
	"healthpredict-client/internal/pkg/constvars"
	"healthpredict-client/internal/pkg/dto/requests"
	"healthpredict-client/internal/pkg/dto/responses"
	"healthpredict-client/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

type sessionStore struct {
	Gateway  contracts.Gateway
	Keystore contracts.Keystore
	Log      *zap.Logger

	mu      sync.RWMutex
	session models.Session
}

var (
	sessionStoreInstance *sessionStore
	onceSessionStore     sync.Once
)

func NewSessionStore(
	gateway contracts.Gateway,
	keystore contracts.Keystore,
	logger *zap.Logger,
) contracts.SessionStore {
	onceSessionStore.Do(func() {
		sessionStoreInstance = &sessionStore{
			Gateway:  gateway,
			Keystore: keystore,
			Log:      logger,
		}
	})
	return sessionStoreInstance
}

// Hydrate loads the persisted pair into memory. A missing token leaves the
// store unauthenticated; a cached profile that no longer parses is dropped
// while the token is kept, the next profile load will refresh it.
func (s *sessionStore) Hydrate(ctx context.Context) error {
	s.Log.Info("sessionStore.Hydrate called")

	token, err := s.Keystore.Get(ctx, constvars.StorageAccessTokenKey)
	if err != nil {
		s.Log.Error("sessionStore.Hydrate error reading token", zap.Error(err))
		return exceptions.ErrSessionHydrate(err)
	}
	rawUser, err := s.Keystore.Get(ctx, constvars.StorageUserKey)
	if err != nil {
		s.Log.Error("sessionStore.Hydrate error reading user", zap.Error(err))
		return exceptions.ErrSessionHydrate(err)
	}

	var user *models.User
	if rawUser != "" {
		user = new(models.User)
		if err := json.Unmarshal([]byte(rawUser), user); err != nil {
			s.Log.Warn("sessionStore.Hydrate dropping unreadable cached profile", zap.Error(err))
			user = nil
		}
	}

	s.mu.Lock()
	s.session = models.Session{Token: token, User: user}
	s.mu.Unlock()

	s.Log.Info("sessionStore.Hydrate succeeded",
		zap.Bool("authenticated", token != ""),
	)
	return nil
}

func (s *sessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

func (s *sessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Authenticated()
}

func (s *sessionStore) GetUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session.User == nil {
		return nil
	}
	user := *s.session.User
	return &user
}

// TokenClaims decodes the stored token without verifying its signature. The
// result is informational only and never gates access.
func (s *sessionStore) TokenClaims() (*models.TokenClaims, error) {
	token := s.Token()
	if token == "" {
		return nil, exceptions.ErrNotAuthenticated(nil)
	}

	claims := new(jwt.RegisteredClaims)
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, exceptions.ErrTokenUnparseable(err)
	}

	decoded := &models.TokenClaims{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		issuedAt := claims.IssuedAt.Time
		decoded.IssuedAt = &issuedAt
	}
	if claims.ExpiresAt != nil {
		expiresAt := claims.ExpiresAt.Time
		decoded.ExpiresAt = &expiresAt
	}
	return decoded, nil
}

func (s *sessionStore) Login(ctx context.Context, request *requests.Login) *responses.SessionResult {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("sessionStore.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload, err := s.Gateway.Login(ctx, request)
	if err != nil {
		return s.failedResult(requestID, "sessionStore.Login", err)
	}
	return s.adoptSession(ctx, requestID, "sessionStore.Login", payload)
}

func (s *sessionStore) Register(ctx context.Context, request *requests.Register) *responses.SessionResult {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("sessionStore.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload, err := s.Gateway.Register(ctx, request)
	if err != nil {
		return s.failedResult(requestID, "sessionStore.Register", err)
	}
	return s.adoptSession(ctx, requestID, "sessionStore.Register", payload)
}

// Logout tells the backend best-effort, then always destroys the local pair.
// A dead backend must never trap the user in a session.
func (s *sessionStore) Logout(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("sessionStore.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := s.Gateway.Logout(ctx); err != nil {
		s.Log.Warn("sessionStore.Logout backend call failed, clearing anyway",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return s.Clear(ctx)
}

// Clear destroys the pair in memory first, then in the keystore. The
// in-memory state is gone even when the keystore delete fails.
func (s *sessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.session = models.Session{}
	s.mu.Unlock()

	err := s.Keystore.Delete(ctx, constvars.StorageAccessTokenKey, constvars.StorageUserKey)
	if err != nil {
		s.Log.Error("sessionStore.Clear error deleting persisted pair", zap.Error(err))
		return exceptions.ErrSessionClear(err)
	}
	return nil
}

// adoptSession installs the pair from a successful auth exchange: keystore
// first, then memory. A persist failure is logged but does not undo the
// login, the session simply will not survive a restart.
func (s *sessionStore) adoptSession(ctx context.Context, requestID, operation string, payload *responses.AuthPayload) *responses.SessionResult {
	user := payload.User

	if err := s.Keystore.Set(ctx, constvars.StorageAccessTokenKey, payload.AccessToken); err != nil {
		s.Log.Warn(operation+" could not persist token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if rawUser, err := json.Marshal(user); err == nil {
		if err := s.Keystore.Set(ctx, constvars.StorageUserKey, string(rawUser)); err != nil {
			s.Log.Warn(operation+" could not persist profile",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	s.mu.Lock()
	s.session = models.Session{Token: payload.AccessToken, User: &user}
	s.mu.Unlock()

	s.Log.Info(operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, user.ID),
	)
	return &responses.SessionResult{Success: true, User: s.GetUser()}
}

// failedResult maps a gateway error onto the result shape, carrying the
// normalized pair through unchanged.
func (s *sessionStore) failedResult(requestID, operation string, err error) *responses.SessionResult {
	s.Log.Warn(operation+" rejected",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)

	var custom *exceptions.CustomError
	if errors.As(err, &custom) {
		return &responses.SessionResult{
			Success:   false,
			ErrorCode: custom.ErrorCode,
			Message:   custom.ClientMessage,
		}
	}
	return &responses.SessionResult{
		Success:   false,
		ErrorCode: constvars.ErrCodeRequestFailed,
		Message:   err.Error(),
	}
}
