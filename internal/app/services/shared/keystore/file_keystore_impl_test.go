package keystore

import (
	"context"
	"healthpredict-client/internal/pkg/constvars"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKeystoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileKeystore(path)
	ctx := context.Background()

	value, err := store.Get(ctx, constvars.StorageAccessTokenKey)
	require.NoError(t, err)
	assert.Empty(t, value, "absent key reads as empty string")

	require.NoError(t, store.Set(ctx, constvars.StorageAccessTokenKey, "t1"))
	require.NoError(t, store.Set(ctx, constvars.StorageUserKey, `{"id":1}`))

	value, err = store.Get(ctx, constvars.StorageAccessTokenKey)
	require.NoError(t, err)
	assert.Equal(t, "t1", value)
}

func TestFileKeystoreSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	ctx := context.Background()

	first := NewFileKeystore(path)
	require.NoError(t, first.Set(ctx, constvars.StorageAccessTokenKey, "t1"))

	second := NewFileKeystore(path)
	value, err := second.Get(ctx, constvars.StorageAccessTokenKey)
	require.NoError(t, err)
	assert.Equal(t, "t1", value)
}

func TestFileKeystoreDeleteMultipleKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileKeystore(path)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, constvars.StorageAccessTokenKey, "t1"))
	require.NoError(t, store.Set(ctx, constvars.StorageUserKey, `{"id":1}`))

	require.NoError(t, store.Delete(ctx, constvars.StorageAccessTokenKey, constvars.StorageUserKey))

	token, err := store.Get(ctx, constvars.StorageAccessTokenKey)
	require.NoError(t, err)
	assert.Empty(t, token)
	user, err := store.Get(ctx, constvars.StorageUserKey)
	require.NoError(t, err)
	assert.Empty(t, user)
}

func TestFileKeystoreDeleteAbsentKeyIsNoop(t *testing.T) {
	store := NewFileKeystore(filepath.Join(t.TempDir(), "session.json"))
	assert.NoError(t, store.Delete(context.Background(), "never-written"))
}

func TestFileKeystoreCreatesParentDirWithTightPermissions(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	path := filepath.Join(dir, "session.json")
	store := NewFileKeystore(path)

	require.NoError(t, store.Set(context.Background(), constvars.StorageAccessTokenKey, "t1"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "the credential file is owner-only")
}

func TestFileKeystoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{corrupt"), 0o600))

	store := NewFileKeystore(path)
	_, err := store.Get(context.Background(), constvars.StorageAccessTokenKey)
	assert.Error(t, err)
}
