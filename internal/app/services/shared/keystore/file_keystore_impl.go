package keystore

import (
	"context"
	"healthpredict-client/internal/app/contracts"
	"healthpredict-client/internal/pkg/exceptions"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
)

type fileKeystore struct {
	path string
	mu   sync.Mutex
}

// NewFileKeystore keeps all entries in one JSON object on disk, the local
// stand-in for browser storage when no Redis is configured. Writes go through
// a temp file and rename so a crash never leaves a half-written store.
func NewFileKeystore(path string) contracts.Keystore {
	return &fileKeystore{path: path}
}

func (f *fileKeystore) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return "", exceptions.ErrKeystoreRead(err, key)
	}
	return entries[key], nil
}

func (f *fileKeystore) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return exceptions.ErrKeystoreWrite(err, key)
	}
	entries[key] = value
	if err := f.store(entries); err != nil {
		return exceptions.ErrKeystoreWrite(err, key)
	}
	return nil
}

func (f *fileKeystore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return exceptions.ErrKeystoreDelete(err, keys[0])
	}
	for _, key := range keys {
		delete(entries, key)
	}
	if err := f.store(entries); err != nil {
		return exceptions.ErrKeystoreDelete(err, keys[0])
	}
	return nil
}

func (f *fileKeystore) load() (map[string]string, error) {
	raw, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	} else if err != nil {
		return nil, err
	}

	entries := map[string]string{}
	if len(raw) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (f *fileKeystore) store(entries map[string]string) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".keystore-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, f.path)
}
