package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

// envelope wraps every stored value with its version so CAS can compare
// without a second key.
type envelope struct {
	Version int64           `json:"v"`
	Data    json.RawMessage `json:"data"`
}

// Redis is the durable KV implementation. CompareAndSwap uses the go-redis
// WATCH/MULTI optimistic transaction: if another client touches the key
// between the read and the EXEC, the transaction aborts and we report a
// conflict for the caller's retry loop.
type Redis struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, int64, error) {
	raw, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, 0, ErrNotFound
	}
	if err != nil {
		return nil, 0, err
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, 0, err
	}
	return env.Data, env.Version, nil
}

func (r *Redis) Put(ctx context.Context, key string, value []byte) error {
	_, version, err := r.Get(ctx, key)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	raw, err := json.Marshal(envelope{Version: version + 1, Data: value})
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, key, raw, 0).Err()
}

func (r *Redis) CompareAndSwap(ctx context.Context, key string, value []byte, version int64) error {
	txn := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		current := int64(0)
		switch {
		case errors.Is(err, redis.Nil):
			// absent — only version 0 may create
		case err != nil:
			return err
		default:
			var env envelope
			if err := json.Unmarshal(raw, &env); err != nil {
				return err
			}
			current = env.Version
		}
		if current != version {
			return ErrConflict
		}

		next, err := json.Marshal(envelope{Version: version + 1, Data: value})
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, next, 0)
			return nil
		})
		return err
	}

	err := r.rdb.Watch(ctx, txn, key)
	if errors.Is(err, redis.TxFailedErr) {
		// Key changed between WATCH and EXEC — same outcome as a stale version.
		return ErrConflict
	}
	return err
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, key).Err()
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}
