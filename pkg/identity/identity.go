/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package identity provides the signing handles bound to a principal.
package identity

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"errors"
	"fmt"

	"github.com/go-jose/go-jose/v3"

	"github.com/dresume/credit/pkg/principal"
)

// ErrUnsigned is returned by identities that never sign requests (demo and anonymous callers).
var ErrUnsigned = errors.New("identity does not sign requests")

// Identity is a cryptographic handle for the caller.
type Identity interface {
	// Principal returns the principal requests are sent as.
	Principal() principal.Principal
	// PublicKey returns the DER-encoded public key of the signing key, if any.
	PublicKey() []byte
	// Sign produces a compact JWS over payload.
	Sign(payload []byte) (string, error)
	// Delegation returns the delegation chain that authorizes the signing key, if any.
	Delegation() *DelegationChain
}

var (
	_ Identity = (*Ed25519Identity)(nil)
	_ Identity = (*DelegationIdentity)(nil)
	_ Identity = (*DemoIdentity)(nil)
	_ Identity = (*AnonymousIdentity)(nil)
)

// Ed25519Identity signs with an ed25519 key and acts as its self-authenticating principal.
type Ed25519Identity struct {
	privateKey ed25519.PrivateKey
	der        []byte
	principal  principal.Principal
}

// GenerateEd25519 creates an identity with a fresh random key.
func GenerateEd25519() (*Ed25519Identity, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate ed25519 key: %w", err)
	}

	return NewEd25519(priv)
}

// NewEd25519 wraps an existing ed25519 private key.
func NewEd25519(privateKey ed25519.PrivateKey) (*Ed25519Identity, error) {
	if len(privateKey) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("invalid ed25519 private key size %d", len(privateKey))
	}

	der, err := x509.MarshalPKIXPublicKey(privateKey.Public())
	if err != nil {
		return nil, fmt.Errorf("marshal public key: %w", err)
	}

	return &Ed25519Identity{
		privateKey: privateKey,
		der:        der,
		principal:  principal.SelfAuthenticating(der),
	}, nil
}

// Principal returns the self-authenticating principal of the key.
func (i *Ed25519Identity) Principal() principal.Principal {
	return i.principal
}

// PublicKey returns the DER-encoded public key.
func (i *Ed25519Identity) PublicKey() []byte {
	return append([]byte(nil), i.der...)
}

// PrivateKey returns the private key. Callers persisting it are responsible for protecting it.
func (i *Ed25519Identity) PrivateKey() ed25519.PrivateKey {
	return i.privateKey
}

// Sign produces an EdDSA compact JWS over payload with the principal as key id.
func (i *Ed25519Identity) Sign(payload []byte) (string, error) {
	return signJWS(i.privateKey, i.principal.String(), payload)
}

// Delegation returns nil; a bare key is not delegated.
func (i *Ed25519Identity) Delegation() *DelegationChain {
	return nil
}

// DemoIdentity carries a principal without any key material.
type DemoIdentity struct {
	principal principal.Principal
}

// NewDemo creates a demo identity for p.
func NewDemo(p principal.Principal) *DemoIdentity {
	return &DemoIdentity{principal: p}
}

func (i *DemoIdentity) Principal() principal.Principal { return i.principal }

func (i *DemoIdentity) PublicKey() []byte { return nil }

func (i *DemoIdentity) Sign([]byte) (string, error) { return "", ErrUnsigned }

func (i *DemoIdentity) Delegation() *DelegationChain { return nil }

// AnonymousIdentity is the identity of unauthenticated callers.
type AnonymousIdentity struct{}

func (AnonymousIdentity) Principal() principal.Principal { return principal.Anonymous() }

func (AnonymousIdentity) PublicKey() []byte { return nil }

func (AnonymousIdentity) Sign([]byte) (string, error) { return "", ErrUnsigned }

func (AnonymousIdentity) Delegation() *DelegationChain { return nil }

func signJWS(key ed25519.PrivateKey, kid string, payload []byte) (string, error) {
	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.EdDSA, Key: key},
		(&jose.SignerOptions{}).WithHeader(jose.HeaderKey("kid"), kid),
	)
	if err != nil {
		return "", fmt.Errorf("create jws signer: %w", err)
	}

	jws, err := signer.Sign(payload)
	if err != nil {
		return "", fmt.Errorf("sign payload: %w", err)
	}

	compact, err := jws.CompactSerialize()
	if err != nil {
		return "", fmt.Errorf("serialize jws: %w", err)
	}

	return compact, nil
}
