/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package simulator

import (
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/dresume/credit/pkg/canister"
)

// Values handed out never alias network state.

func cloneCredential(c *canister.Credential) (*canister.Credential, error) {
	out := &canister.Credential{}

	if err := copier.Copy(out, c); err != nil {
		return nil, fmt.Errorf("copy credential: %w", err)
	}

	out.Metadata = cloneMetadata(c.Metadata)
	out.ExpiresAt = clonePtr(c.ExpiresAt)
	out.DocumentHash = clonePtr(c.DocumentHash)
	out.BlockchainTxID = clonePtr(c.BlockchainTxID)

	return out, nil
}

func cloneCredentials(in []*canister.Credential) ([]canister.Credential, error) {
	out := make([]canister.Credential, 0, len(in))

	for _, c := range in {
		cp, err := cloneCredential(c)
		if err != nil {
			return nil, err
		}

		out = append(out, *cp)
	}

	return out, nil
}

func cloneNFT(n *canister.NFT) (*canister.NFT, error) {
	out := &canister.NFT{}

	if err := copier.Copy(out, n); err != nil {
		return nil, fmt.Errorf("copy nft: %w", err)
	}

	out.Metadata.Attributes = cloneMetadata(n.Metadata.Attributes)

	return out, nil
}

func cloneUser(u *canister.User) (*canister.User, error) {
	out := &canister.User{}

	if err := copier.Copy(out, u); err != nil {
		return nil, fmt.Errorf("copy user: %w", err)
	}

	out.OrganizationName = clonePtr(u.OrganizationName)
	out.DocumentsSubmitted = append([]string{}, u.DocumentsSubmitted...)

	return out, nil
}

func cloneMetadata(m canister.Metadata) canister.Metadata {
	return append(canister.Metadata{}, m...)
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}

	cp := *v

	return &cp
}
