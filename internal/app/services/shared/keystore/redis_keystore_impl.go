package keystore

import (
	"context"
	"healthpredict-client/internal/app/contracts"
	"healthpredict-client/internal/pkg/exceptions"

	"github.com/redis/go-redis/v9"
)

type redisKeystore struct {
	client *redis.Client
	prefix string
}

// NewRedisKeystore stores each entry as a plain string under prefix+key.
// Entries never expire; the session pair lives until an explicit Delete.
func NewRedisKeystore(client *redis.Client, prefix string) contracts.Keystore {
	return &redisKeystore{client: client, prefix: prefix}
}

func (r *redisKeystore) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, r.prefix+key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrKeystoreRead(err, key)
	}
	return data, nil
}

func (r *redisKeystore) Set(ctx context.Context, key, value string) error {
	err := r.client.Set(ctx, r.prefix+key, value, 0).Err()
	if err != nil {
		return exceptions.ErrKeystoreWrite(err, key)
	}
	return nil
}

func (r *redisKeystore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = r.prefix + key
	}
	err := r.client.Del(ctx, prefixed...).Err()
	if err != nil {
		return exceptions.ErrKeystoreDelete(err, keys[0])
	}
	return nil
}
