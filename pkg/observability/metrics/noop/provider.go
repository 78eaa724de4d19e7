/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noop

import (
	"net/http"
	"time"

	"github.com/dresume/credit/pkg/observability/metrics"
)

// NoMetrics provides default no operation implementation for the NoMetrics interface.
type NoMetrics struct{}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	return &NoMetrics{}
}

func (n *NoMetrics) CanisterCallTime(_, _ string, _ time.Duration) {}
func (n *NoMetrics) CanisterCallFailed(_, _, _ string)             {}
func (n *NoMetrics) LoginTime(_ string, _ time.Duration)           {}
func (n *NoMetrics) LoginFailed(_, _ string)                       {}
func (n *NoMetrics) SessionTransition(_ string)                    {}
func (n *NoMetrics) CacheHit()                                     {}
func (n *NoMetrics) CacheMiss()                                    {}

func (n *NoMetrics) InstrumentHTTPTransport(_ metrics.ClientID, transport http.RoundTripper) http.RoundTripper {
	return transport
}
