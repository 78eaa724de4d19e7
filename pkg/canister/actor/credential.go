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

var _ canister.CredentialRegistry = (*CredentialRegistry)(nil)

// CredentialRegistry calls the credential registry canister.
type CredentialRegistry struct {
	base
}

// NewCredentialRegistry returns an actor bound to canisterID.
func NewCredentialRegistry(inv invoker, canisterID principal.Principal) *CredentialRegistry {
	return &CredentialRegistry{base: base{invoker: inv, canisterID: canisterID}}
}

func (r *CredentialRegistry) CreateCredential(ctx context.Context,
	req *canister.CreateCredentialRequest) (*canister.CreateCredentialResult, error) {
	metadata := req.Metadata
	if metadata == nil {
		metadata = canister.Metadata{}
	}

	out := &canister.CreateCredentialResult{}

	err := r.callResult(ctx, "createCredential", out,
		req.CredentialType, req.Title, req.Description, req.Recipient, req.RecipientName,
		opt(req.ExpiresAt), metadata, opt(req.DocumentHash))
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *CredentialRegistry) GetCredential(ctx context.Context, id string) (*canister.Credential, error) {
	out := &canister.Credential{}

	if err := r.queryResult(ctx, "getCredential", out, id); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *CredentialRegistry) GetCredentialByToken(ctx context.Context, tokenID string) (*canister.Credential, error) {
	out := &canister.Credential{}

	if err := r.queryResult(ctx, "getCredentialByToken", out, tokenID); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *CredentialRegistry) GetCredentialsByIssuer(ctx context.Context,
	issuer principal.Principal) ([]canister.Credential, error) {
	var out []canister.Credential

	if err := r.query(ctx, "getCredentialsByIssuer", &out, issuer); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *CredentialRegistry) GetCredentialsByRecipient(ctx context.Context,
	recipient string) ([]canister.Credential, error) {
	var out []canister.Credential

	if err := r.query(ctx, "getCredentialsByRecipient", &out, recipient); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *CredentialRegistry) GetNFT(ctx context.Context, tokenID string) (*canister.NFT, error) {
	out := &canister.NFT{}

	if err := r.queryResult(ctx, "getNFT", out, tokenID); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *CredentialRegistry) GetNFTsByOwner(ctx context.Context, owner principal.Principal) ([]canister.NFT, error) {
	var out []canister.NFT

	if err := r.query(ctx, "getNFTsByOwner", &out, owner); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *CredentialRegistry) RevokeCredential(ctx context.Context, id string) (*canister.Credential, error) {
	out := &canister.Credential{}

	if err := r.callResult(ctx, "revokeCredential", out, id); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *CredentialRegistry) SearchCredentials(ctx context.Context,
	filter *canister.SearchFilter) ([]canister.Credential, error) {
	if filter == nil {
		filter = &canister.SearchFilter{}
	}

	var out []canister.Credential

	if err := r.query(ctx, "searchCredentials", &out, filter); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *CredentialRegistry) TransferNFT(ctx context.Context, tokenID string,
	newOwner principal.Principal) (*canister.NFT, error) {
	out := &canister.NFT{}

	if err := r.callResult(ctx, "transferNFT", out, tokenID, newOwner); err != nil {
		return nil, err
	}

	return out, nil
}
