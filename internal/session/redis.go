package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// lockTTL bounds how long an in-flight mark survives a crashed request.
const lockTTL = 5 * time.Minute

// Redis stores sessions in Redis so several server instances can share them.
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedis connects to redisURL (redis://[:password@]host:port/db).
// ttl <= 0 uses DefaultTTL.
func NewRedis(redisURL, prefix string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	opts.PoolSize = 10
	opts.MinIdleConns = 2
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{client: client, prefix: prefix + "session:", ttl: ttl}, nil
}

func (r *Redis) key(id string) string     { return r.prefix + id }
func (r *Redis) lockKey(id string) string { return r.prefix + "inflight:" + id }

func (r *Redis) Get(ctx context.Context, id string) (*State, bool, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	s, err := decode(data)
	if err != nil {
		return nil, false, err
	}
	return s, true, nil
}

func (r *Redis) Put(ctx context.Context, id string, s *State) error {
	data, err := encode(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(id), data, r.ttl).Err()
}

func (r *Redis) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, r.key(id), r.lockKey(id)).Err()
}

func (r *Redis) Acquire(ctx context.Context, id string) (bool, error) {
	return r.client.SetNX(ctx, r.lockKey(id), 1, lockTTL).Result()
}

func (r *Redis) Release(ctx context.Context, id string) error {
	return r.client.Del(ctx, r.lockKey(id)).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
