/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"net/http"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
)

// Logger used by different metrics provider.
var Logger = log.New("metrics-provider")

// Constants used by different metrics provider.
const (
	// Namespace Organization namespace.
	Namespace = "credit"

	// Canister remote calls.
	Canister                  = "canister"
	CanisterCallTimeMetric    = "call_seconds"
	CanisterCallFailureMetric = "call_failures_total"

	// Session login flows.
	Session                 = "session"
	LoginTimeMetric         = "login_seconds"
	LoginFailureMetric      = "login_failures_total"
	SessionTransitionMetric = "transitions_total"

	// Cache of "my credentials".
	Cache           = "cache"
	CacheHitMetric  = "hits_total"
	CacheMissMetric = "misses_total"

	// HTTPClient outbound HTTP requests.
	HTTPClient = "http_client"
)

// ClientID names an instrumented outbound HTTP client.
type ClientID string

const (
	ClientCanisterAgent ClientID = "canister-agent"
)

// Provider is an interface for metrics provider.
type Provider interface {
	// Create creates a metrics provider instance
	Create() error
	// Destroy destroys the metrics provider instance
	Destroy() error
	// Metrics providers metrics
	Metrics() Metrics
}

// Metrics is an interface for the metrics to be supported by the provider.
//
//nolint:interfacebloat
type Metrics interface {
	CanisterCallTime(service, method string, value time.Duration)
	CanisterCallFailed(service, method, code string)
	LoginTime(provider string, value time.Duration)
	LoginFailed(provider, code string)
	SessionTransition(state string)
	CacheHit()
	CacheMiss()
	InstrumentHTTPTransport(client ClientID, transport http.RoundTripper) http.RoundTripper
}
