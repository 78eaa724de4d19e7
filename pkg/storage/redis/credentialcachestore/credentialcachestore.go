/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credentialcachestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redisapi "github.com/redis/go-redis/v9"

	"github.com/dresume/credit/pkg/canister"
	"github.com/dresume/credit/pkg/storage/redis"
)

const (
	keyPrefix  = "credit-credentials"
	DefaultTTL = 30 * time.Second
)

// Store keeps per-principal credential lists in Redis so several clients can share them.
type Store struct {
	redisClient *redis.Client
	ttl         time.Duration
}

// New creates Store. Entries expire after ttl.
func New(redisClient *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Store{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func (s *Store) Get(ctx context.Context, key string) ([]canister.Credential, bool, error) {
	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout(ctx)
	defer cancel()

	b, err := s.redisClient.API().Get(ctxWithTimeout, resolveRedisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redisapi.Nil) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("credentials find failed: %w", err)
	}

	var creds []canister.Credential

	if err = json.Unmarshal(b, &creds); err != nil {
		return nil, false, fmt.Errorf("credentials decode failed: %w", err)
	}

	return creds, true, nil
}

func (s *Store) Set(ctx context.Context, key string, creds []canister.Credential) error {
	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout(ctx)
	defer cancel()

	b, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("credentials encode failed: %w", err)
	}

	if err = s.redisClient.API().Set(ctxWithTimeout, resolveRedisKey(key), b, s.ttl).Err(); err != nil {
		return fmt.Errorf("credentials set failed: %w", err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout(ctx)
	defer cancel()

	if err := s.redisClient.API().Del(ctxWithTimeout, resolveRedisKey(key)).Err(); err != nil {
		return fmt.Errorf("credentials delete failed: %w", err)
	}

	return nil
}

func resolveRedisKey(key string) string {
	return fmt.Sprintf("%s-%s", keyPrefix, key)
}
