/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package identity

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dresume/credit/pkg/principal"
)

// ErrInvalidDelegation is returned for delegation chains that cannot authorize a session key.
var ErrInvalidDelegation = errors.New("invalid delegation chain")

// HexBytes is a byte slice encoded as lower-case hex in JSON.
type HexBytes []byte

// MarshalJSON encodes b as a hex string.
func (b HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(b))
}

// UnmarshalJSON decodes a hex string.
func (b *HexBytes) UnmarshalJSON(data []byte) error {
	var s string

	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	decoded, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("decode hex: %w", err)
	}

	*b = decoded

	return nil
}

// Expiration is a point in time encoded as hex nanoseconds since the epoch.
type Expiration time.Time

// MarshalJSON encodes e as hex nanoseconds.
func (e Expiration) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(time.Time(e).UnixNano(), 16))
}

// UnmarshalJSON decodes hex nanoseconds.
func (e *Expiration) UnmarshalJSON(data []byte) error {
	var s string

	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	ns, err := strconv.ParseInt(s, 16, 64)
	if err != nil {
		return fmt.Errorf("parse expiration: %w", err)
	}

	*e = Expiration(time.Unix(0, ns).UTC())

	return nil
}

// Delegation authorizes PubKey to act for the delegating key until Expiration.
type Delegation struct {
	PubKey     HexBytes   `json:"pubkey"`
	Expiration Expiration `json:"expiration"`
	Targets    []string   `json:"targets,omitempty"`
}

// SignedDelegation is a delegation with the delegator's signature.
type SignedDelegation struct {
	Delegation Delegation `json:"delegation"`
	Signature  HexBytes   `json:"signature"`
}

// DelegationChain links the root PublicKey to the last delegated key.
type DelegationChain struct {
	Delegations []SignedDelegation `json:"delegations"`
	PublicKey   HexBytes           `json:"publicKey"`
}

// ParseDelegationChain decodes and structurally validates a chain.
func ParseDelegationChain(data []byte) (*DelegationChain, error) {
	chain := &DelegationChain{}

	if err := json.Unmarshal(data, chain); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDelegation, err.Error())
	}

	if len(chain.PublicKey) == 0 {
		return nil, fmt.Errorf("%w: missing public key", ErrInvalidDelegation)
	}

	if len(chain.Delegations) == 0 {
		return nil, fmt.Errorf("%w: no delegations", ErrInvalidDelegation)
	}

	return chain, nil
}

// Principal returns the principal of the root key.
func (c *DelegationChain) Principal() principal.Principal {
	return principal.SelfAuthenticating(c.PublicKey)
}

// Expiration returns the earliest expiration across the chain.
func (c *DelegationChain) Expiration() time.Time {
	var earliest time.Time

	for i, d := range c.Delegations {
		exp := time.Time(d.Delegation.Expiration)

		if i == 0 || exp.Before(earliest) {
			earliest = exp
		}
	}

	return earliest
}

// Expired reports whether any delegation in the chain has expired at now.
func (c *DelegationChain) Expired(now time.Time) bool {
	return !now.Before(c.Expiration())
}

// Authorizes reports whether the chain ends at the given DER public key.
func (c *DelegationChain) Authorizes(derPublicKey []byte) bool {
	if len(c.Delegations) == 0 {
		return false
	}

	return bytes.Equal(c.Delegations[len(c.Delegations)-1].Delegation.PubKey, derPublicKey)
}

// DelegationIdentity signs with a session key on behalf of the chain's root principal.
type DelegationIdentity struct {
	session *Ed25519Identity
	chain   *DelegationChain
}

// NewDelegation binds a session key to a chain that authorizes it.
func NewDelegation(session *Ed25519Identity, chain *DelegationChain) (*DelegationIdentity, error) {
	if chain == nil {
		return nil, fmt.Errorf("%w: nil chain", ErrInvalidDelegation)
	}

	if !chain.Authorizes(session.PublicKey()) {
		return nil, fmt.Errorf("%w: chain does not end at the session key", ErrInvalidDelegation)
	}

	return &DelegationIdentity{session: session, chain: chain}, nil
}

// Principal returns the delegating principal.
func (i *DelegationIdentity) Principal() principal.Principal {
	return i.chain.Principal()
}

// PublicKey returns the DER-encoded session public key.
func (i *DelegationIdentity) PublicKey() []byte {
	return i.session.PublicKey()
}

// Sign signs payload with the session key, using the delegating principal as key id.
func (i *DelegationIdentity) Sign(payload []byte) (string, error) {
	return signJWS(i.session.PrivateKey(), i.Principal().String(), payload)
}

// Delegation returns the chain.
func (i *DelegationIdentity) Delegation() *DelegationChain {
	return i.chain
}

// SessionKey returns the underlying session key identity.
func (i *DelegationIdentity) SessionKey() *Ed25519Identity {
	return i.session
}
