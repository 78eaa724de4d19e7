/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package canister

import (
	"github.com/samber/lo"

	"github.com/dresume/credit/pkg/principal"
)

// SearchFilter is a conjunction of optional credential predicates. Nil fields match anything.
type SearchFilter struct {
	Issuer         *principal.Principal `json:"issuer"`
	Recipient      *string              `json:"recipient"`
	CredentialType *CredentialType      `json:"credentialType"`
	IsRevoked      *bool                `json:"isRevoked"`
	IssuedAfter    *Time                `json:"issuedAfter"`
	IssuedBefore   *Time                `json:"issuedBefore"`
}

// Matches reports whether c satisfies every set predicate.
func (f *SearchFilter) Matches(c *Credential) bool {
	if f == nil {
		return true
	}

	switch {
	case f.Issuer != nil && !f.Issuer.Equal(c.Issuer):
		return false
	case f.Recipient != nil && *f.Recipient != c.Recipient:
		return false
	case f.CredentialType != nil && !f.CredentialType.Equal(c.CredentialType):
		return false
	case f.IsRevoked != nil && *f.IsRevoked != c.IsRevoked:
		return false
	case f.IssuedAfter != nil && c.IssuedAt.Before(f.IssuedAfter.Time):
		return false
	case f.IssuedBefore != nil && c.IssuedAt.After(f.IssuedBefore.Time):
		return false
	}

	return true
}

// Apply returns the credentials matching the filter, keeping input order.
func (f *SearchFilter) Apply(credentials []Credential) []Credential {
	return lo.Filter(credentials, func(c Credential, _ int) bool {
		return f.Matches(&c)
	})
}
