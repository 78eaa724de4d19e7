/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package simulator

import (
	"context"
	"net/mail"
	"strings"

	"github.com/dresume/credit/pkg/canister"
	"github.com/dresume/credit/pkg/principal"
)

var _ canister.UserRegistry = (*UserRegistry)(nil)

// UserRegistry simulates the user registry for one caller.
type UserRegistry struct {
	network *Network
	caller  principal.Principal
}

func (r *UserRegistry) RegisterUser(_ context.Context, email string, role canister.UserRole,
	organizationName *string) (*canister.User, error) {
	n := r.network

	if _, err := mail.ParseAddress(email); err != nil || strings.ContainsAny(email, "<> ") {
		return nil, invalidInput("invalid email address")
	}

	if !role.Valid() {
		return nil, invalidInput("invalid role " + role.String())
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	key := r.caller.String()

	if _, ok := n.users[key]; ok {
		return nil, alreadyExists()
	}

	now := canister.NewTime(n.now().UTC())

	u := &canister.User{
		ID:                 r.caller,
		Email:              email,
		Role:               role,
		OrganizationName:   clonePtr(organizationName),
		VerificationStatus: canister.StatusPending,
		DocumentsSubmitted: []string{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	n.users[key] = u
	n.userOrder = append(n.userOrder, key)
	n.version++

	return cloneUser(u)
}

func (r *UserRegistry) GetMyProfile(ctx context.Context) (*canister.User, error) {
	return r.GetUser(ctx, r.caller)
}

func (r *UserRegistry) GetUser(_ context.Context, id principal.Principal) (*canister.User, error) {
	r.network.mu.Lock()
	defer r.network.mu.Unlock()

	u, ok := r.network.users[id.String()]
	if !ok {
		return nil, notFound()
	}

	return cloneUser(u)
}

func (r *UserRegistry) GetAllUsers(_ context.Context) ([]canister.User, error) {
	n := r.network

	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.isAdmin(r.caller) {
		return nil, unauthorized()
	}

	out := make([]canister.User, 0, len(n.userOrder))

	for _, key := range n.userOrder {
		u, err := cloneUser(n.users[key])
		if err != nil {
			return nil, err
		}

		out = append(out, *u)
	}

	return out, nil
}

func (r *UserRegistry) UpdateVerificationStatus(_ context.Context, id principal.Principal,
	status canister.VerificationStatus) (*canister.User, error) {
	n := r.network

	if !status.Valid() {
		return nil, invalidInput("invalid verification status " + status.String())
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.isAdmin(r.caller) {
		return nil, unauthorized()
	}

	u, ok := n.users[id.String()]
	if !ok {
		return nil, notFound()
	}

	u.VerificationStatus = status
	u.UpdatedAt = canister.NewTime(n.now().UTC())
	n.version++

	return cloneUser(u)
}

func (r *UserRegistry) IsAdminPrincipal(_ context.Context, p principal.Principal) (bool, error) {
	r.network.mu.Lock()
	defer r.network.mu.Unlock()

	return r.network.isAdmin(p), nil
}
