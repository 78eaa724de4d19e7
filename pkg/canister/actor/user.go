/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package actor

import (
	"context"

	"github.com/dresume/credit/pkg/canister"
	"github.com/dresume/credit/pkg/principal"
)

var _ canister.UserRegistry = (*UserRegistry)(nil)

// UserRegistry calls the user registry canister.
type UserRegistry struct {
	base
}

// NewUserRegistry returns an actor bound to canisterID.
func NewUserRegistry(inv invoker, canisterID principal.Principal) *UserRegistry {
	return &UserRegistry{base: base{invoker: inv, canisterID: canisterID}}
}

func (r *UserRegistry) RegisterUser(ctx context.Context, email string, role canister.UserRole,
	organizationName *string) (*canister.User, error) {
	out := &canister.User{}

	if err := r.callResult(ctx, "registerUser", out, email, role, opt(organizationName)); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *UserRegistry) GetMyProfile(ctx context.Context) (*canister.User, error) {
	out := &canister.User{}

	if err := r.queryResult(ctx, "getMyProfile", out); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *UserRegistry) GetUser(ctx context.Context, id principal.Principal) (*canister.User, error) {
	out := &canister.User{}

	if err := r.queryResult(ctx, "getUser", out, id); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *UserRegistry) GetAllUsers(ctx context.Context) ([]canister.User, error) {
	var out []canister.User

	if err := r.queryResult(ctx, "getAllUsers", &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *UserRegistry) UpdateVerificationStatus(ctx context.Context, id principal.Principal,
	status canister.VerificationStatus) (*canister.User, error) {
	out := &canister.User{}

	if err := r.callResult(ctx, "updateVerificationStatus", out, id, status); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *UserRegistry) IsAdminPrincipal(ctx context.Context, p principal.Principal) (bool, error) {
	var out bool

	if err := r.query(ctx, "isAdminPrincipal", &out, p); err != nil {
		return false, err
	}

	return out, nil
}
