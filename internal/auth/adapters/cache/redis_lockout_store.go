package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ramordeeple/patient-management/internal/auth/ports"
)

// Failed logins live in one hash per login identifier under
// auth:login_failures:<key>. The hash expires on its own so abandoned
// counters do not accumulate.
const (
	loginFailuresPrefix = "auth:login_failures:"
	fieldFailures       = "failures"
	fieldLockExpires    = "lock_expires"

	counterTTL = 24 * time.Hour
)

type RedisLockoutStore struct {
	client *redis.Client
}

func NewRedisLockoutStore(client *redis.Client) *RedisLockoutStore {
	return &RedisLockoutStore{client: client}
}

func (s *RedisLockoutStore) Get(ctx context.Context, key string) (ports.LockoutState, error) {
	fields, err := s.client.HGetAll(ctx, loginFailuresPrefix+key).Result()
	if err != nil {
		return ports.LockoutState{}, err
	}

	var state ports.LockoutState
	if n, convErr := strconv.Atoi(fields[fieldFailures]); convErr == nil {
		state.FailedCount = n
	}
	if unix, convErr := strconv.ParseInt(fields[fieldLockExpires], 10, 64); convErr == nil && unix > 0 {
		expires := time.Unix(unix, 0).UTC()
		state.LockedUntil = &expires
	}
	return state, nil
}

func (s *RedisLockoutStore) RecordFailure(ctx context.Context, key string, now time.Time, threshold int, lockoutWindow time.Duration) (ports.LockoutState, error) {
	hashKey := loginFailuresPrefix + key

	failures, err := s.client.HIncrBy(ctx, hashKey, fieldFailures, 1).Result()
	if err != nil {
		return ports.LockoutState{}, err
	}
	state := ports.LockoutState{FailedCount: int(failures)}

	if int(failures) < threshold {
		_ = s.client.Expire(ctx, hashKey, counterTTL).Err()
		return state, nil
	}

	expires := now.Add(lockoutWindow).UTC()
	_, err = s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, hashKey, fieldLockExpires, expires.Unix())
		p.Expire(ctx, hashKey, lockoutWindow+counterTTL)
		return nil
	})
	if err != nil {
		return ports.LockoutState{}, err
	}
	state.LockedUntil = &expires
	return state, nil
}

func (s *RedisLockoutStore) Clear(ctx context.Context, key string) error {
	return s.client.Del(ctx, loginFailuresPrefix+key).Err()
}

var _ ports.LockoutStore = (*RedisLockoutStore)(nil)
