/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package clientfactory

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/alexliesenfeld/health"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/dresume/credit/internal/logfields"
	"github.com/dresume/credit/pkg/canister"
	"github.com/dresume/credit/pkg/canister/actor"
	"github.com/dresume/credit/pkg/canister/agent"
	"github.com/dresume/credit/pkg/canister/simulator"
	"github.com/dresume/credit/pkg/clienterr"
	"github.com/dresume/credit/pkg/identity"
	"github.com/dresume/credit/pkg/observability/metrics"
	"github.com/dresume/credit/pkg/observability/metrics/noop"
	"github.com/dresume/credit/pkg/principal"
	"github.com/dresume/credit/pkg/session"
)

var logger = log.New("client-factory")

const defaultHealthTimeout = 10 * time.Second

var errNotConfigured = errors.New("canister id is not configured")

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds the factory configuration.
type Config struct {
	Host        string
	CanisterIDs map[canister.ServiceName]principal.Principal
	// Network backs demo sessions. A fresh network is created when nil.
	Network       *simulator.Network
	HTTPClient    httpClient
	Metrics       metrics.Metrics
	HealthTimeout time.Duration
}

// Factory builds service handles for a session.
type Factory struct {
	host          string
	canisterIDs   map[canister.ServiceName]principal.Principal
	network       *simulator.Network
	httpClient    httpClient
	metrics       metrics.Metrics
	healthTimeout time.Duration
}

// HealthReport is the reachability of each configured service.
type HealthReport struct {
	Services map[canister.ServiceName]bool `json:"services"`
	Errors   []string                      `json:"errors,omitempty"`
}

// Healthy reports whether every service is reachable.
func (r *HealthReport) Healthy() bool {
	for _, ok := range r.Services {
		if !ok {
			return false
		}
	}

	return len(r.Services) > 0
}

// New returns a new Factory.
func New(config *Config) *Factory {
	f := &Factory{
		host:          config.Host,
		canisterIDs:   config.CanisterIDs,
		network:       config.Network,
		httpClient:    config.HTTPClient,
		metrics:       config.Metrics,
		healthTimeout: config.HealthTimeout,
	}

	if f.canisterIDs == nil {
		f.canisterIDs = map[canister.ServiceName]principal.Principal{}
	}

	if f.network == nil {
		f.network = simulator.New(&simulator.Config{})
	}

	if f.metrics == nil {
		f.metrics = noop.GetMetrics()
	}

	if f.healthTimeout <= 0 {
		f.healthTimeout = defaultHealthTimeout
	}

	return f
}

// Network returns the simulated network used for demo sessions.
func (f *Factory) Network() *simulator.Network {
	return f.network
}

func (f *Factory) CredentialRegistry(sess session.Session) (canister.CredentialRegistry, error) {
	if err := checkSession(sess, "CredentialRegistry"); err != nil {
		return nil, err
	}

	if sess.IsDemoMode {
		return f.network.CredentialRegistry(sess.Principal), nil
	}

	a, id, err := f.agentFor(canister.CredentialService, sess.Identity)
	if err != nil {
		return nil, err
	}

	return actor.NewCredentialRegistry(a, id), nil
}

func (f *Factory) UserRegistry(sess session.Session) (canister.UserRegistry, error) {
	if err := checkSession(sess, "UserRegistry"); err != nil {
		return nil, err
	}

	if sess.IsDemoMode {
		return f.network.UserRegistry(sess.Principal), nil
	}

	a, id, err := f.agentFor(canister.UserService, sess.Identity)
	if err != nil {
		return nil, err
	}

	return actor.NewUserRegistry(a, id), nil
}

func (f *Factory) DocumentStorage(sess session.Session) (canister.DocumentStorage, error) {
	if err := checkSession(sess, "DocumentStorage"); err != nil {
		return nil, err
	}

	if sess.IsDemoMode {
		return f.network.DocumentStorage(sess.Principal), nil
	}

	a, id, err := f.agentFor(canister.DocumentService, sess.Identity)
	if err != nil {
		return nil, err
	}

	return actor.NewDocumentStorage(a, id), nil
}

func checkSession(sess session.Session, operation string) error {
	if !sess.IsAuthenticated() {
		return clienterr.NewNotAuthenticatedError(clienterr.ClientFactory, operation)
	}

	return nil
}

func (f *Factory) agentFor(service canister.ServiceName, id identity.Identity) (*agent.Agent, principal.Principal, error) {
	canisterID, ok := f.canisterIDs[service]
	if !ok || canisterID.IsZero() {
		return nil, principal.Principal{}, clienterr.NewCustomError(clienterr.InternalError,
			fmt.Errorf("%s: %w", service, errNotConfigured)).
			WithComponent(clienterr.ClientFactory)
	}

	a, err := agent.New(&agent.Config{
		Host:       f.host,
		Identity:   id,
		HTTPClient: f.httpClient,
		Metrics:    f.metrics,
		Service:    service,
	})
	if err != nil {
		return nil, principal.Principal{}, clienterr.NewCustomError(clienterr.InternalError, err).
			WithComponent(clienterr.ClientFactory)
	}

	return a, canisterID, nil
}

// Checks returns one reachability check per known service.
func (f *Factory) Checks() []health.Check {
	checks := make([]health.Check, 0, len(canister.Services))

	for _, service := range canister.Services {
		service := service

		checks = append(checks, health.Check{
			Name:  string(service),
			Check: f.probe(service),
		})
	}

	return checks
}

// Checker exposes the service checks for the diagnostics endpoint.
func (f *Factory) Checker(opts ...health.CheckerOption) health.Checker {
	options := []health.CheckerOption{health.WithTimeout(f.healthTimeout)}

	for _, c := range f.Checks() {
		options = append(options, health.WithCheck(c))
	}

	return health.NewChecker(append(options, opts...)...)
}

// HealthCheck probes every service once.
func (f *Factory) HealthCheck(ctx context.Context) *HealthReport {
	var (
		mu     sync.Mutex
		errMsg = map[string]string{}
	)

	options := []health.CheckerOption{health.WithTimeout(f.healthTimeout), health.WithDisabledCache()}

	for _, c := range f.Checks() {
		check := c.Check
		name := c.Name

		c.Check = func(ctx context.Context) error {
			err := check(ctx)
			if err != nil {
				mu.Lock()
				errMsg[name] = err.Error()
				mu.Unlock()
			}

			return err
		}

		options = append(options, health.WithCheck(c))
	}

	result := health.NewChecker(options...).Check(ctx)

	report := &HealthReport{Services: map[canister.ServiceName]bool{}}

	if result.Details != nil {
		for name, cr := range *result.Details {
			report.Services[canister.ServiceName(name)] = cr.Status == health.StatusUp
		}
	}

	mu.Lock()
	defer mu.Unlock()

	for name, msg := range errMsg {
		report.Errors = append(report.Errors, fmt.Sprintf("%s: %s", name, msg))
	}

	sort.Strings(report.Errors)

	logger.Debug("Health check completed", logfields.WithTotal(len(report.Services)),
		logfields.WithAdditionalMessage(fmt.Sprintf("errors=%d", len(report.Errors))))

	return report
}

func (f *Factory) probe(service canister.ServiceName) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		canisterID, ok := f.canisterIDs[service]
		if !ok || canisterID.IsZero() {
			return errNotConfigured
		}

		a, err := agent.New(&agent.Config{
			Host:       f.host,
			HTTPClient: f.httpClient,
			Metrics:    f.metrics,
			Service:    service,
		})
		if err != nil {
			return err
		}

		return a.ReadState(ctx, canisterID)
	}
}
