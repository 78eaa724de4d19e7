/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credentialcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bluele/gcache"

	"github.com/dresume/credit/pkg/canister"
)

const (
	DefaultSize = 128
	DefaultTTL  = 30 * time.Second
)

// Store keeps per-principal credential lists in process memory.
// The underlying gcache is thread safe.
type Store struct {
	cache gcache.Cache
	ttl   time.Duration
}

type options struct {
	size  int
	ttl   time.Duration
	clock gcache.Clock
}

type Opt func(*options)

func WithSize(size int) Opt {
	return func(o *options) {
		o.size = size
	}
}

func WithTTL(ttl time.Duration) Opt {
	return func(o *options) {
		o.ttl = ttl
	}
}

func WithClock(clock gcache.Clock) Opt {
	return func(o *options) {
		o.clock = clock
	}
}

// New returns an LRU backed store.
func New(opts ...Opt) *Store {
	op := &options{
		size: DefaultSize,
		ttl:  DefaultTTL,
	}

	for _, f := range opts {
		f(op)
	}

	builder := gcache.New(op.size).LRU()

	if op.clock != nil {
		builder = builder.Clock(op.clock)
	}

	return &Store{
		cache: builder.Build(),
		ttl:   op.ttl,
	}
}

func (s *Store) Get(_ context.Context, key string) ([]canister.Credential, bool, error) {
	v, err := s.cache.Get(key)
	if err != nil {
		if errors.Is(err, gcache.KeyNotFoundError) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("get cached credentials: %w", err)
	}

	creds, ok := v.([]canister.Credential)
	if !ok {
		return nil, false, fmt.Errorf("unexpected cache value %T", v)
	}

	return append([]canister.Credential(nil), creds...), true, nil
}

func (s *Store) Set(_ context.Context, key string, creds []canister.Credential) error {
	if err := s.cache.SetWithExpire(key, append([]canister.Credential(nil), creds...), s.ttl); err != nil {
		return fmt.Errorf("cache credentials: %w", err)
	}

	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.cache.Remove(key)

	return nil
}
