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
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeKeystore struct {
	entries map[string]string
	failing bool
}

func newFakeKeystore() *fakeKeystore {
	return &fakeKeystore{entries: make(map[string]string)}
}

func (f *fakeKeystore) Get(ctx context.Context, key string) (string, error) {
	if f.failing {
		return "", errors.New("storage unavailable")
	}
	return f.entries[key], nil
}

func (f *fakeKeystore) Set(ctx context.Context, key, value string) error {
	if f.failing {
		return errors.New("storage unavailable")
	}
	f.entries[key] = value
	return nil
}

func (f *fakeKeystore) Delete(ctx context.Context, keys ...string) error {
	if f.failing {
		return errors.New("storage unavailable")
	}
	for _, key := range keys {
		delete(f.entries, key)
	}
	return nil
}

type fakeGateway struct {
	contracts.Gateway

	loginFn  func(ctx context.Context, request *requests.Login) (*responses.AuthPayload, error)
	logoutFn func(ctx context.Context) error
}

func (f *fakeGateway) Login(ctx context.Context, request *requests.Login) (*responses.AuthPayload, error) {
	return f.loginFn(ctx, request)
}

func (f *fakeGateway) Register(ctx context.Context, request *requests.Register) (*responses.AuthPayload, error) {
	return &responses.AuthPayload{AccessToken: "t-reg", User: models.User{ID: 2, Name: "B"}}, nil
}

func (f *fakeGateway) Logout(ctx context.Context) error {
	if f.logoutFn != nil {
		return f.logoutFn(ctx)
	}
	return nil
}

func newTestStore(gw contracts.Gateway, ks contracts.Keystore) *sessionStore {
	return &sessionStore{
		Gateway:  gw,
		Keystore: ks,
		Log:      zap.NewNop(),
	}
}

func TestLoginStoresPair(t *testing.T) {
	gw := &fakeGateway{
		loginFn: func(ctx context.Context, request *requests.Login) (*responses.AuthPayload, error) {
			assert.Equal(t, "a@b.com", request.Email)
			return &responses.AuthPayload{
				AccessToken: "t1",
				User:        models.User{ID: 1, Email: "a@b.com", Name: "A"},
			}, nil
		},
	}
	ks := newFakeKeystore()
	store := newTestStore(gw, ks)

	result := store.Login(context.Background(), &requests.Login{Email: "a@b.com", Password: "pw"})
	require.True(t, result.Success)
	require.NotNil(t, result.User)
	assert.Equal(t, "A", result.User.Name)

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "t1", store.Token())
	assert.Equal(t, "t1", ks.entries[constvars.StorageAccessTokenKey])
	assert.Contains(t, ks.entries[constvars.StorageUserKey], `"a@b.com"`)
}

func TestLoginFailurePassesErrorPairThrough(t *testing.T) {
	gw := &fakeGateway{
		loginFn: func(ctx context.Context, request *requests.Login) (*responses.AuthPayload, error) {
			return nil, exceptions.ErrBackendRejected(401, "Invalid credentials", "wrong email or password", "login")
		},
	}
	ks := newFakeKeystore()
	store := newTestStore(gw, ks)

	result := store.Login(context.Background(), &requests.Login{Email: "a@b.com", Password: "nope"})
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid credentials", result.ErrorCode)
	assert.Equal(t, "wrong email or password", result.Message)

	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, ks.entries)
}

func TestLoginNetworkFailureIsNormalized(t *testing.T) {
	gw := &fakeGateway{
		loginFn: func(ctx context.Context, request *requests.Login) (*responses.AuthPayload, error) {
			return nil, exceptions.ErrNetworkFailure(errors.New("dial tcp: connection refused"))
		},
	}
	store := newTestStore(gw, newFakeKeystore())

	result := store.Login(context.Background(), &requests.Login{Email: "a@b.com", Password: "pw"})
	assert.False(t, result.Success)
	assert.Equal(t, constvars.ErrCodeNetwork, result.ErrorCode)
	assert.Equal(t, "dial tcp: connection refused", result.Message)
}

func TestRegisterStoresPair(t *testing.T) {
	store := newTestStore(&fakeGateway{}, newFakeKeystore())

	result := store.Register(context.Background(), &requests.Register{Email: "b@c.com", Password: "pw", Name: "B"})
	require.True(t, result.Success)
	assert.Equal(t, "t-reg", store.Token())
	assert.Equal(t, 2, store.GetUser().ID)
}

func TestLogoutClearsDespiteBackendFailure(t *testing.T) {
	gw := &fakeGateway{
		loginFn: func(ctx context.Context, request *requests.Login) (*responses.AuthPayload, error) {
			return &responses.AuthPayload{AccessToken: "t1", User: models.User{ID: 1, Name: "A"}}, nil
		},
		logoutFn: func(ctx context.Context) error {
			return exceptions.ErrNetworkFailure(errors.New("backend down"))
		},
	}
	ks := newFakeKeystore()
	store := newTestStore(gw, ks)

	store.Login(context.Background(), &requests.Login{Email: "a@b.com", Password: "pw"})
	require.True(t, store.IsAuthenticated())

	err := store.Logout(context.Background())
	require.NoError(t, err, "a dead backend never traps the user in a session")
	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.GetUser())
	assert.Empty(t, ks.entries, "both keys are removed together")
}

func TestSessionRoundTripAcrossRestart(t *testing.T) {
	gw := &fakeGateway{
		loginFn: func(ctx context.Context, request *requests.Login) (*responses.AuthPayload, error) {
			return &responses.AuthPayload{
				AccessToken: "t1",
				User:        models.User{ID: 1, Email: "a@b.com", Name: "A"},
			}, nil
		},
	}
	ks := newFakeKeystore()

	first := newTestStore(gw, ks)
	first.Login(context.Background(), &requests.Login{Email: "a@b.com", Password: "pw"})

	second := newTestStore(gw, ks)
	require.NoError(t, second.Hydrate(context.Background()))

	assert.Equal(t, first.Token(), second.Token())
	assert.Equal(t, first.GetUser(), second.GetUser())
}

func TestHydrateRestoresSession(t *testing.T) {
	ks := newFakeKeystore()
	ks.entries[constvars.StorageAccessTokenKey] = "t1"
	ks.entries[constvars.StorageUserKey] = `{"id":1,"email":"a@b.com","name":"A"}`

	store := newTestStore(&fakeGateway{}, ks)
	require.NoError(t, store.Hydrate(context.Background()))

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "t1", store.Token())
	require.NotNil(t, store.GetUser())
	assert.Equal(t, "A", store.GetUser().Name)
}

func TestHydrateDropsCorruptProfileButKeepsToken(t *testing.T) {
	ks := newFakeKeystore()
	ks.entries[constvars.StorageAccessTokenKey] = "t1"
	ks.entries[constvars.StorageUserKey] = "{not json"

	store := newTestStore(&fakeGateway{}, ks)
	require.NoError(t, store.Hydrate(context.Background()))

	assert.True(t, store.IsAuthenticated())
	assert.Nil(t, store.GetUser())
}

func TestHydrateFailsOnUnreadableKeystore(t *testing.T) {
	ks := newFakeKeystore()
	ks.failing = true

	store := newTestStore(&fakeGateway{}, ks)
	err := store.Hydrate(context.Background())
	require.Error(t, err)
	assert.False(t, store.IsAuthenticated())
}

func TestGetUserReturnsCopy(t *testing.T) {
	ks := newFakeKeystore()
	ks.entries[constvars.StorageAccessTokenKey] = "t1"
	ks.entries[constvars.StorageUserKey] = `{"id":1,"name":"A"}`

	store := newTestStore(&fakeGateway{}, ks)
	require.NoError(t, store.Hydrate(context.Background()))

	first := store.GetUser()
	first.Name = "mutated"
	assert.Equal(t, "A", store.GetUser().Name)
}

func TestTokenClaimsInformationalDecode(t *testing.T) {
	expiry := time.Now().Add(-time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(expiry),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	ks := newFakeKeystore()
	ks.entries[constvars.StorageAccessTokenKey] = signed

	store := newTestStore(&fakeGateway{}, ks)
	require.NoError(t, store.Hydrate(context.Background()))

	// expired tokens still count as authenticated, expiry is only ever
	// detected by a backend rejection
	assert.True(t, store.IsAuthenticated())

	claims, err := store.TokenClaims()
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, expiry, *claims.ExpiresAt, time.Second)
}

func TestTokenClaimsOnOpaqueToken(t *testing.T) {
	ks := newFakeKeystore()
	ks.entries[constvars.StorageAccessTokenKey] = "not-a-jwt"

	store := newTestStore(&fakeGateway{}, ks)
	require.NoError(t, store.Hydrate(context.Background()))

	assert.True(t, store.IsAuthenticated(), "token validity is never checked locally")
	_, err := store.TokenClaims()
	assert.Error(t, err)
}

func TestLazyCredentials(t *testing.T) {
	credentials := NewLazyCredentials()
	assert.Empty(t, credentials.Token())

	ks := newFakeKeystore()
	ks.entries[constvars.StorageAccessTokenKey] = "t1"
	store := newTestStore(&fakeGateway{}, ks)
	require.NoError(t, store.Hydrate(context.Background()))

	credentials.Bind(store)
	assert.Equal(t, "t1", credentials.Token())
}
