/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"context"
	"sync"
	"time"

	"github.com/alexliesenfeld/health"
)

// ResponseTime is the latency of one named check.
type ResponseTime struct {
	Last    time.Duration
	Average time.Duration
}

// ResponseTimes collects check latencies reported by Interceptor.
type ResponseTimes struct {
	mu    sync.Mutex
	times map[string]ResponseTime
}

func NewResponseTimes() *ResponseTimes {
	return &ResponseTimes{times: map[string]ResponseTime{}}
}

// Interceptor measures every check it wraps.
func (r *ResponseTimes) Interceptor() health.Interceptor {
	return func(next health.InterceptorFunc) health.InterceptorFunc {
		return func(ctx context.Context, name string, state health.CheckState) health.CheckState {
			start := time.Now()
			result := next(ctx, name, state)

			r.record(name, time.Since(start))

			return result
		}
	}
}

func (r *ResponseTimes) record(name string, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.times[name]
	if !ok {
		r.times[name] = ResponseTime{Last: elapsed, Average: elapsed}

		return
	}

	r.times[name] = ResponseTime{
		Last:    elapsed,
		Average: (prev.Average + elapsed) / 2, //nolint:gomnd
	}
}

// Get returns the latency recorded for name.
func (r *ResponseTimes) Get(name string) (ResponseTime, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.times[name]

	return t, ok
}
