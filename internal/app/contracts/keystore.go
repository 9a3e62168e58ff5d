package contracts

import "context"

// Keystore is the durable key-value storage the session pair is mirrored
// into, the client-side analog of browser local storage. Get returns an
// empty string for an absent key; only storage failures are errors.
type Keystore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}
