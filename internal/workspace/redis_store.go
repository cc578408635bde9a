package workspace

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "salesdesk:workspace:"
	maxTxRetries     = 3
)

// RedisStore keeps workspaces as JSON documents with a sliding TTL.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
	prefix string
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithKeyPrefix replaces the "salesdesk:workspace:" key prefix.
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) { s.prefix = prefix }
}

func NewRedisStore(client redis.UniversalClient, ttl time.Duration, opts ...RedisOption) *RedisStore {
	s := &RedisStore{client: client, ttl: ttl, prefix: defaultKeyPrefix}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) key(visitorID string) string {
	return s.prefix + visitorID
}

func (s *RedisStore) Load(ctx context.Context, visitorID string) (Workspace, error) {
	return s.get(ctx, s.client, visitorID)
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (s *RedisStore) get(ctx context.Context, c getter, visitorID string) (Workspace, error) {
	data, err := c.Get(ctx, s.key(visitorID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return New(), nil
	}
	if err != nil {
		return Workspace{}, errors.Join(ErrStoreUnavailable, err)
	}

	ws := New()
	if err := json.Unmarshal(data, &ws); err != nil {
		return Workspace{}, errors.Join(ErrCorruptState, err)
	}
	return ws, nil
}

// Update runs fn inside an optimistic WATCH transaction and retries when
// another request for the same visitor wrote first.
func (s *RedisStore) Update(ctx context.Context, visitorID string, fn func(*Workspace) error) (Workspace, error) {
	key := s.key(visitorID)

	var (
		result Workspace
		fnErr  error
	)
	txf := func(tx *redis.Tx) error {
		ws, err := s.get(ctx, tx, visitorID)
		if err != nil {
			return err
		}
		if fnErr = fn(&ws); fnErr != nil {
			return fnErr
		}
		data, err := json.Marshal(ws)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, s.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		result = ws
		return nil
	}

	for range maxTxRetries {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		switch {
		case err == nil:
			return result, nil
		case fnErr != nil, errors.Is(err, ErrStoreUnavailable), errors.Is(err, ErrCorruptState):
			return Workspace{}, err
		default:
			return Workspace{}, errors.Join(ErrStoreUnavailable, err)
		}
	}
	return Workspace{}, ErrConflict
}

func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
