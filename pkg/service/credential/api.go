/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"context"

	"github.com/dresume/credit/pkg/canister"
	"github.com/dresume/credit/pkg/principal"
)

// CreateResult is the outcome of a successful credential creation.
type CreateResult struct {
	Credential   *canister.Credential `json:"credential"`
	NFT          *canister.NFT        `json:"nft"`
	TokenID      string               `json:"tokenId"`
	CredentialID string               `json:"credentialId"`
}

type ServiceInterface interface {
	CreateCredential(ctx context.Context, req *canister.CreateCredentialRequest) (*CreateResult, error)
	CreateSoulBoundToken(ctx context.Context, req *canister.CreateCredentialRequest,
		issuerRole canister.UserRole) (*CreateResult, error)
	GetMyCredentials(ctx context.Context) ([]canister.Credential, error)
	GetCredentialsByIssuer(ctx context.Context, issuer *principal.Principal) ([]canister.Credential, error)
	GetCredentialByToken(ctx context.Context, tokenID string) (*canister.Credential, error)
	GetCredentialByID(ctx context.Context, id string) (*canister.Credential, error)
	SearchCredentials(ctx context.Context, filter *canister.SearchFilter) ([]canister.Credential, error)
	GetNFT(ctx context.Context, tokenID string) (*canister.NFT, error)
	GetMyNFTs(ctx context.Context) ([]canister.NFT, error)
	RevokeCredential(ctx context.Context, id string) (*canister.Credential, error)
	TransferNFT(ctx context.Context, tokenID string, newOwner principal.Principal) (*canister.NFT, error)
	InvalidateCache(ctx context.Context) error
}
