/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package demo

//go:generate mockgen -destination provider_mocks_test.go -self_package mocks -package demo_test -source=provider.go -mock_names demoStore=MockDemoStore

import (
	"context"
	"errors"
	"fmt"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/dresume/credit/internal/logfields"
	"github.com/dresume/credit/pkg/clienterr"
	"github.com/dresume/credit/pkg/identity"
	"github.com/dresume/credit/pkg/principal"
	"github.com/dresume/credit/pkg/session"
	"github.com/dresume/credit/pkg/storage/sessionstore"
)

var logger = log.New("demo-provider")

type demoStore interface {
	SaveDemoPrincipal(text string) error
	LoadDemoPrincipal() (string, error)
	DeleteDemoPrincipal() error
}

// Config holds the demo provider configuration.
type Config struct {
	Store demoStore
}

// Provider logs in with a caller supplied principal and no cryptographic proof.
type Provider struct {
	store demoStore
}

var _ session.IdentityProvider = (*Provider)(nil)

func New(config *Config) *Provider {
	return &Provider{store: config.Store}
}

func (p *Provider) Restore(_ context.Context) (identity.Identity, error) {
	text, err := p.store.LoadDemoPrincipal()
	if err != nil {
		if errors.Is(err, sessionstore.ErrNotFound) {
			return nil, nil //nolint:nilnil
		}

		return nil, fmt.Errorf("load demo principal: %w", err)
	}

	id, err := parse(text)
	if err != nil {
		logger.Warn("Discarding invalid demo principal", logfields.WithPrincipal(text), log.WithError(err))

		if delErr := p.store.DeleteDemoPrincipal(); delErr != nil {
			return nil, fmt.Errorf("delete demo principal: %w", delErr)
		}

		return nil, nil //nolint:nilnil
	}

	return id, nil
}

func (p *Provider) Login(_ context.Context, req *session.LoginRequest) (identity.Identity, error) {
	if req == nil || req.Principal == "" {
		return nil, clienterr.NewValidationError("principal is required")
	}

	id, err := parse(req.Principal)
	if err != nil {
		return nil, clienterr.NewCustomError(clienterr.InvalidInput, err).
			WithComponent(clienterr.IdentityProvider).WithOperation("Login")
	}

	if err = p.store.SaveDemoPrincipal(id.Principal().String()); err != nil {
		return nil, fmt.Errorf("save demo principal: %w", err)
	}

	logger.Debug("Demo login", logfields.WithPrincipal(id.Principal().String()))

	return id, nil
}

func (p *Provider) Logout(_ context.Context) error {
	if err := p.store.DeleteDemoPrincipal(); err != nil {
		return fmt.Errorf("delete demo principal: %w", err)
	}

	return nil
}

func parse(text string) (*identity.DemoIdentity, error) {
	pr, err := principal.FromText(text)
	if err != nil {
		return nil, err
	}

	if pr.IsAnonymous() || pr.IsManagementCanister() {
		return nil, fmt.Errorf("%w: %s is not a user principal", principal.ErrInvalidPrincipal, pr)
	}

	return identity.NewDemo(pr), nil
}
