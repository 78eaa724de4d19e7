/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package simulator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/dresume/credit/pkg/canister"
	"github.com/dresume/credit/pkg/principal"
)

var _ canister.CredentialRegistry = (*CredentialRegistry)(nil)

// CredentialRegistry simulates the credential registry for one caller.
type CredentialRegistry struct {
	network *Network
	caller  principal.Principal
}

func (r *CredentialRegistry) CreateCredential(_ context.Context,
	req *canister.CreateCredentialRequest) (*canister.CreateCredentialResult, error) {
	n := r.network

	if !req.CredentialType.Valid() {
		return nil, invalidInput(fmt.Sprintf("invalid credential type %s", req.CredentialType))
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, invalidInput("title is required")
	}

	if strings.TrimSpace(req.Recipient) == "" {
		return nil, invalidInput("recipient is required")
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	now := n.now().UTC()

	if req.ExpiresAt != nil && !req.ExpiresAt.IsZero() && req.ExpiresAt.Before(now) {
		return nil, invalidInput("expiration is in the past")
	}

	n.credSeq++
	id := fmt.Sprintf("cred-%06d", n.credSeq)
	tokenID := n.nextTokenID(req.CredentialType, now.Year())

	txHash := sha256.Sum256([]byte(id + "/" + tokenID))
	txID := "0x" + hex.EncodeToString(txHash[:16])

	cred := &canister.Credential{
		ID:             id,
		TokenID:        tokenID,
		Title:          req.Title,
		Description:    req.Description,
		CredentialType: req.CredentialType,
		Issuer:         r.caller,
		Recipient:      req.Recipient,
		RecipientName:  req.RecipientName,
		IssuedAt:       canister.NewTime(now),
		ExpiresAt:      clonePtr(req.ExpiresAt),
		Metadata:       cloneMetadata(req.Metadata),
		DocumentHash:   clonePtr(req.DocumentHash),
		BlockchainTxID: &txID,
	}

	owner := r.caller
	if p, err := principal.FromText(req.Recipient); err == nil && !p.IsAnonymous() {
		owner = p
	}

	nft := &canister.NFT{
		TokenID:   tokenID,
		Owner:     owner,
		CreatedAt: canister.NewTime(now),
		Metadata: canister.NFTMetadata{
			Name:        req.Title,
			Description: req.Description,
			Issuer:      r.caller.String(),
			Recipient:   req.Recipient,
			IssuedAt:    canister.NewTime(now),
			Attributes:  cloneMetadata(req.Metadata).With("credentialType", req.CredentialType.String()),
		},
	}

	n.credentials = append(n.credentials, cred)
	n.credByID[id] = cred
	n.credByToken[tokenID] = cred
	n.nfts[tokenID] = nft
	n.nftOrder = append(n.nftOrder, tokenID)
	n.version++

	outCred, err := cloneCredential(cred)
	if err != nil {
		return nil, canister.NewAPIError(canister.InternalError, err.Error())
	}

	outNFT, err := cloneNFT(nft)
	if err != nil {
		return nil, canister.NewAPIError(canister.InternalError, err.Error())
	}

	return &canister.CreateCredentialResult{Credential: *outCred, NFT: *outNFT}, nil
}

func (n *Network) nextTokenID(t canister.CredentialType, year int) string {
	key := fmt.Sprintf("%s-%d", t.TokenPrefix(), year)
	n.tokenSeq[key]++

	return fmt.Sprintf("%s-%03d", key, n.tokenSeq[key])
}

func (r *CredentialRegistry) GetCredential(_ context.Context, id string) (*canister.Credential, error) {
	return r.lookup(r.network.credByID, id)
}

func (r *CredentialRegistry) GetCredentialByToken(_ context.Context, tokenID string) (*canister.Credential, error) {
	return r.lookup(r.network.credByToken, tokenID)
}

func (r *CredentialRegistry) lookup(index map[string]*canister.Credential, key string) (*canister.Credential, error) {
	r.network.mu.Lock()
	defer r.network.mu.Unlock()

	c, ok := index[key]
	if !ok {
		return nil, notFound()
	}

	return cloneCredential(c)
}

func (r *CredentialRegistry) GetCredentialsByIssuer(_ context.Context,
	issuer principal.Principal) ([]canister.Credential, error) {
	return r.filter(func(c *canister.Credential) bool { return c.Issuer.Equal(issuer) })
}

func (r *CredentialRegistry) GetCredentialsByRecipient(_ context.Context,
	recipient string) ([]canister.Credential, error) {
	return r.filter(func(c *canister.Credential) bool { return c.Recipient == recipient })
}

func (r *CredentialRegistry) SearchCredentials(_ context.Context,
	filter *canister.SearchFilter) ([]canister.Credential, error) {
	return r.filter(filter.Matches)
}

func (r *CredentialRegistry) filter(match func(c *canister.Credential) bool) ([]canister.Credential, error) {
	r.network.mu.Lock()
	defer r.network.mu.Unlock()

	return cloneCredentials(lo.Filter(r.network.credentials, func(c *canister.Credential, _ int) bool {
		return match(c)
	}))
}

func (r *CredentialRegistry) GetNFT(_ context.Context, tokenID string) (*canister.NFT, error) {
	r.network.mu.Lock()
	defer r.network.mu.Unlock()

	nft, ok := r.network.nfts[tokenID]
	if !ok {
		return nil, notFound()
	}

	return cloneNFT(nft)
}

func (r *CredentialRegistry) GetNFTsByOwner(_ context.Context, owner principal.Principal) ([]canister.NFT, error) {
	n := r.network

	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]canister.NFT, 0)

	for _, tokenID := range n.nftOrder {
		nft := n.nfts[tokenID]
		if !nft.Owner.Equal(owner) {
			continue
		}

		cp, err := cloneNFT(nft)
		if err != nil {
			return nil, err
		}

		out = append(out, *cp)
	}

	return out, nil
}

func (r *CredentialRegistry) RevokeCredential(_ context.Context, id string) (*canister.Credential, error) {
	n := r.network

	n.mu.Lock()
	defer n.mu.Unlock()

	c, ok := n.credByID[id]
	if !ok {
		return nil, notFound()
	}

	if !c.Issuer.Equal(r.caller) {
		return nil, unauthorized()
	}

	if c.IsRevoked {
		return nil, invalidInput("credential is already revoked")
	}

	c.IsRevoked = true
	n.version++

	return cloneCredential(c)
}

func (r *CredentialRegistry) TransferNFT(_ context.Context, tokenID string,
	newOwner principal.Principal) (*canister.NFT, error) {
	n := r.network

	if newOwner.IsZero() || newOwner.IsAnonymous() {
		return nil, invalidInput("new owner must be a non-anonymous principal")
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	nft, ok := n.nfts[tokenID]
	if !ok {
		return nil, notFound()
	}

	if !nft.Owner.Equal(r.caller) {
		return nil, unauthorized()
	}

	if nft.IsSoulBound() {
		return nil, unauthorized()
	}

	nft.Owner = newOwner
	n.version++

	return cloneNFT(nft)
}
