/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
	"go.uber.org/zap"

	"github.com/dresume/credit/internal/logfields"
	"github.com/dresume/credit/pkg/clienterr"
	"github.com/dresume/credit/pkg/identity"
	"github.com/dresume/credit/pkg/observability/metrics"
	"github.com/dresume/credit/pkg/observability/metrics/noop"
	"github.com/dresume/credit/pkg/principal"
)

var logger = log.New("session-manager")

const (
	realProviderName = "internet-identity"
	demoProviderName = "demo"
)

// Config holds the session manager configuration.
type Config struct {
	Provider IdentityProvider
	// DemoProvider is nil when demo login is disabled.
	DemoProvider IdentityProvider
	Metrics      metrics.Metrics
}

// Manager owns the authentication lifecycle.
type Manager struct {
	provider     IdentityProvider
	demoProvider IdentityProvider
	metrics      metrics.Metrics

	// opMutex serializes login, logout and refresh.
	opMutex sync.Mutex

	mutex       sync.RWMutex
	current     Session
	lastErr     error
	subscribers []func(Session)
}

// New returns a manager in the Uninitialized state.
func New(config *Config) (*Manager, error) {
	if config.Provider == nil {
		return nil, errors.New("identity provider is required")
	}

	m := &Manager{
		provider:     config.Provider,
		demoProvider: config.DemoProvider,
		metrics:      config.Metrics,
		current:      Session{State: Uninitialized},
	}

	if m.metrics == nil {
		m.metrics = noop.GetMetrics()
	}

	return m, nil
}

// Session returns the current session snapshot.
func (m *Manager) Session() Session {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.current
}

// Err returns the error of the last failed operation, or nil.
func (m *Manager) Err() error {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.lastErr
}

// DemoEnabled reports whether demo login is available.
func (m *Manager) DemoEnabled() bool {
	return m.demoProvider != nil
}

// Subscribe registers fn to be called after every state transition.
func (m *Manager) Subscribe(fn func(Session)) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.subscribers = append(m.subscribers, fn)
}

// Refresh re-probes persisted state. Demo state is probed first.
func (m *Manager) Refresh(ctx context.Context) Session {
	m.opMutex.Lock()
	defer m.opMutex.Unlock()

	return m.refresh(ctx)
}

func (m *Manager) refresh(ctx context.Context) Session {
	var probeErr error

	if m.demoProvider != nil {
		id, err := m.demoProvider.Restore(ctx)
		if err != nil {
			probeErr = m.wrap("Refresh", err)

			logger.Warn("Failed to restore demo session", log.WithError(err))
		} else if isUsable(id) {
			return m.transition(newSession(DemoAuthenticated, id), nil)
		}
	}

	id, err := m.provider.Restore(ctx)
	if err != nil {
		logger.Warn("Failed to restore session", log.WithError(err))

		return m.transition(Session{State: Anonymous}, m.wrap("Refresh", err))
	}

	if isUsable(id) {
		return m.transition(newSession(Authenticated, id), probeErr)
	}

	return m.transition(Session{State: Anonymous}, probeErr)
}

// Login runs the interactive login flow. An active session is logged out first.
func (m *Manager) Login(ctx context.Context) error {
	m.opMutex.Lock()
	defer m.opMutex.Unlock()

	if err := m.endActiveSession(ctx); err != nil {
		return err
	}

	start := time.Now()

	id, err := m.provider.Login(ctx, &LoginRequest{})
	if err == nil && !isUsable(id) {
		err = clienterr.NewCustomError(clienterr.NotAuthenticated,
			errors.New("identity provider returned an anonymous principal"))
	}

	if err != nil {
		err = m.wrap("Login", err)

		m.metrics.LoginFailed(realProviderName, string(clienterr.CodeOf(err)))
		m.transition(Session{State: Anonymous}, err)

		return err
	}

	m.metrics.LoginTime(realProviderName, time.Since(start))

	if m.demoProvider != nil {
		if err = m.demoProvider.Logout(ctx); err != nil {
			logger.Warn("Failed to clear demo session", log.WithError(err))
		}
	}

	m.transition(newSession(Authenticated, id), nil)

	return nil
}

// LoginDemo validates principalText and starts a demo session.
func (m *Manager) LoginDemo(ctx context.Context, principalText string) error {
	m.opMutex.Lock()
	defer m.opMutex.Unlock()

	if m.demoProvider == nil {
		return m.fail("LoginDemo", clienterr.NewValidationError("demo login is disabled"))
	}

	p, err := principal.FromText(principalText)
	if err != nil {
		m.metrics.LoginFailed(demoProviderName, string(clienterr.InvalidInput))

		return m.fail("LoginDemo", clienterr.NewCustomError(clienterr.InvalidInput, err))
	}

	if p.IsAnonymous() || p.IsManagementCanister() {
		m.metrics.LoginFailed(demoProviderName, string(clienterr.InvalidInput))

		return m.fail("LoginDemo", clienterr.NewValidationError("principal %s cannot log in", p))
	}

	if err = m.endActiveSession(ctx); err != nil {
		return err
	}

	start := time.Now()

	id, err := m.demoProvider.Login(ctx, &LoginRequest{Principal: p.String()})
	if err != nil {
		err = m.wrap("LoginDemo", err)

		m.metrics.LoginFailed(demoProviderName, string(clienterr.CodeOf(err)))
		m.transition(Session{State: Anonymous}, err)

		return err
	}

	m.metrics.LoginTime(demoProviderName, time.Since(start))
	m.transition(newSession(DemoAuthenticated, id), nil)

	return nil
}

// Logout ends the active session. It is a no-op when there is none.
func (m *Manager) Logout(ctx context.Context) error {
	m.opMutex.Lock()
	defer m.opMutex.Unlock()

	if !m.Session().IsAuthenticated() {
		if m.Session().State == Uninitialized {
			m.transition(Session{State: Anonymous}, m.Err())
		}

		return nil
	}

	return m.endActiveSession(ctx)
}

func (m *Manager) endActiveSession(ctx context.Context) error {
	current := m.Session()

	var err error

	switch current.State {
	case Authenticated:
		err = m.provider.Logout(ctx)
	case DemoAuthenticated:
		err = m.demoProvider.Logout(ctx)
	case Uninitialized, Anonymous:
		return nil
	}

	// The local session ends even when the provider fails to clear its record.
	if err != nil {
		err = m.wrap("Logout", err)

		logger.Warn("Failed to clear persisted session", log.WithError(err))
	}

	m.transition(Session{State: Anonymous}, err)

	return err
}

func (m *Manager) fail(operation string, err error) error {
	err = m.wrap(operation, err)

	m.mutex.Lock()
	m.lastErr = err
	m.mutex.Unlock()

	return err
}

func (m *Manager) transition(s Session, err error) Session {
	m.mutex.Lock()
	prev := m.current.State
	m.current = s
	m.lastErr = err
	subscribers := append([]func(Session){}, m.subscribers...)
	m.mutex.Unlock()

	if prev != s.State {
		m.metrics.SessionTransition(s.State.String())

		fields := []zap.Field{logfields.WithSessionState(s.State.String())}
		if !s.Principal.IsZero() {
			fields = append(fields, logfields.WithPrincipal(s.Principal.String()))
		}

		logger.Info("Session state changed", fields...)
	}

	for _, fn := range subscribers {
		fn(s)
	}

	return s
}

func (m *Manager) wrap(operation string, err error) error {
	var ce *clienterr.CustomError
	if errors.As(err, &ce) {
		return &clienterr.CustomError{
			Code:      ce.Code,
			Component: clienterr.SessionManager,
			Operation: operation,
			Err:       err,
		}
	}

	return clienterr.NewCustomError(clienterr.InternalError, fmt.Errorf("%s: %w", operation, err)).
		WithComponent(clienterr.SessionManager).WithOperation(operation)
}

func newSession(state State, id identity.Identity) Session {
	return Session{
		State:      state,
		Principal:  id.Principal(),
		Identity:   id,
		IsDemoMode: state == DemoAuthenticated,
	}
}

func isUsable(id identity.Identity) bool {
	if id == nil {
		return false
	}

	p := id.Principal()

	return !p.IsZero() && !p.IsAnonymous() && !p.IsManagementCanister()
}
