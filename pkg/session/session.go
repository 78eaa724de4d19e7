/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package session

//go:generate mockgen -destination session_mocks_test.go -self_package mocks -package session_test -source=session.go -mock_names IdentityProvider=MockIdentityProvider

import (
	"context"

	"github.com/dresume/credit/pkg/identity"
	"github.com/dresume/credit/pkg/principal"
)

// State is the authentication state of a session.
type State int

const (
	Uninitialized State = iota
	Anonymous
	Authenticated
	DemoAuthenticated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Anonymous:
		return "Anonymous"
	case Authenticated:
		return "Authenticated"
	case DemoAuthenticated:
		return "DemoAuthenticated"
	default:
		return "Unknown"
	}
}

// Session is a snapshot of the caller's authentication state.
type Session struct {
	State      State
	Principal  principal.Principal
	Identity   identity.Identity
	IsDemoMode bool
}

// IsAuthenticated reports whether signed or demo calls can be made.
func (s Session) IsAuthenticated() bool {
	return s.State == Authenticated || s.State == DemoAuthenticated
}

// LoginRequest carries provider specific login input.
type LoginRequest struct {
	// Principal is the textual principal for demo logins.
	Principal string
}

// IdentityProvider establishes identities for the session manager.
type IdentityProvider interface {
	// Restore returns the persisted identity, or nil when there is none.
	Restore(ctx context.Context) (identity.Identity, error)
	// Login runs the provider's login flow.
	Login(ctx context.Context, req *LoginRequest) (identity.Identity, error)
	// Logout invalidates the persisted identity.
	Logout(ctx context.Context) error
}
