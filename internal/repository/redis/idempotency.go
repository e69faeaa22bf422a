package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const idemNS = "housedraw:v1:idem"

func KeyIdemPurchase(houseID string, idemKey string) string {
	return fmt.Sprintf("%s:purchases:%s:%s", idemNS, houseID, idemKey)
}

// IdempotencyStore remembers the response of a request per Idempotency-Key.
// A key holds either "LOCK" while the first request runs or "RES:<status>:<payload>".
type IdempotencyStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewIdempotencyStore(rdb *redis.Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{rdb: rdb, ttl: ttl}
}

func (s *IdempotencyStore) AcquireLock(ctx context.Context, key string, lockTTL time.Duration) (bool, error) {
	return s.rdb.SetNX(ctx, key, "LOCK", lockTTL).Result()
}

func (s *IdempotencyStore) SaveResult(ctx context.Context, key string, status int, jsonPayload string) error {
	val := fmt.Sprintf("RES:%d:%s", status, jsonPayload)
	return s.rdb.Set(ctx, key, val, s.ttl).Err()
}

func (s *IdempotencyStore) GetResult(ctx context.Context, key string) (int, string, bool, error) {
	v, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, "", false, nil
	}
	if err != nil {
		return 0, "", false, err
	}

	return parseStoredResult(v)
}

func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

func parseStoredResult(v string) (int, string, bool, error) {
	if !strings.HasPrefix(v, "RES:") {
		return 0, "", false, nil
	}

	rest := strings.TrimPrefix(v, "RES:")
	code, payload, ok := strings.Cut(rest, ":")
	if !ok {
		return 0, "", false, fmt.Errorf("malformed idempotency record")
	}

	var status int
	if _, err := fmt.Sscan(code, &status); err != nil {
		return 0, "", false, fmt.Errorf("malformed idempotency status: %w", err)
	}

	return status, payload, true, nil
}
