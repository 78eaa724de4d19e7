/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package principal implements the textual and binary forms of principals, the opaque
// identity references used to address callers and canisters.
package principal

import (
	"bytes"
	"crypto/sha256"
	"encoding/base32"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"strings"
)

const (
	// MaxLength is the maximum length of a principal in bytes.
	MaxLength = 29

	groupSize = 5

	anonymousSuffix          = 0x04
	selfAuthenticatingSuffix = 0x02
)

// ErrInvalidPrincipal is returned when a principal text or byte form is malformed.
var ErrInvalidPrincipal = errors.New("invalid principal")

var encoding = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

// Principal is an immutable identity reference. The zero value means "no principal".
type Principal struct {
	raw string
	set bool
}

// FromBytes creates a principal from its binary form.
func FromBytes(b []byte) (Principal, error) {
	if len(b) > MaxLength {
		return Principal{}, fmt.Errorf("%w: length %d exceeds %d bytes", ErrInvalidPrincipal, len(b), MaxLength)
	}

	return Principal{raw: string(b), set: true}, nil
}

// MustFromText is like FromText but panics on malformed input. Intended for constants and tests.
func MustFromText(s string) Principal {
	p, err := FromText(s)
	if err != nil {
		panic(err)
	}

	return p
}

// FromText parses the dash-grouped, checksummed base32 text form of a principal.
func FromText(s string) (Principal, error) {
	if s == "" {
		return Principal{}, fmt.Errorf("%w: empty text", ErrInvalidPrincipal)
	}

	if s != strings.ToLower(s) {
		return Principal{}, fmt.Errorf("%w: text must be lower case", ErrInvalidPrincipal)
	}

	decoded, err := encoding.DecodeString(strings.ReplaceAll(s, "-", ""))
	if err != nil {
		return Principal{}, fmt.Errorf("%w: decode base32: %s", ErrInvalidPrincipal, err.Error())
	}

	if len(decoded) < crc32.Size {
		return Principal{}, fmt.Errorf("%w: text too short", ErrInvalidPrincipal)
	}

	body := decoded[crc32.Size:]

	if binary.BigEndian.Uint32(decoded[:crc32.Size]) != crc32.ChecksumIEEE(body) {
		return Principal{}, fmt.Errorf("%w: checksum mismatch", ErrInvalidPrincipal)
	}

	p, err := FromBytes(body)
	if err != nil {
		return Principal{}, err
	}

	if p.String() != s {
		return Principal{}, fmt.Errorf("%w: text is not in canonical form", ErrInvalidPrincipal)
	}

	return p, nil
}

// Anonymous returns the principal used by unauthenticated callers.
func Anonymous() Principal {
	return Principal{raw: string([]byte{anonymousSuffix}), set: true}
}

// ManagementCanister returns the principal of the management canister ("aaaaa-aa").
func ManagementCanister() Principal {
	return Principal{set: true}
}

// SelfAuthenticating derives the principal controlled by the given DER-encoded public key.
func SelfAuthenticating(derPublicKey []byte) Principal {
	sum := sha256.Sum224(derPublicKey)

	return Principal{raw: string(append(sum[:], selfAuthenticatingSuffix)), set: true}
}

// IsZero reports whether p holds no principal at all.
func (p Principal) IsZero() bool {
	return !p.set
}

// IsAnonymous reports whether p is the anonymous principal.
func (p Principal) IsAnonymous() bool {
	return p.set && p.raw == string([]byte{anonymousSuffix})
}

// IsManagementCanister reports whether p is the management canister principal.
func (p Principal) IsManagementCanister() bool {
	return p.set && p.raw == ""
}

// Bytes returns a copy of the binary form.
func (p Principal) Bytes() []byte {
	return []byte(p.raw)
}

// Equal reports whether both principals are the same.
func (p Principal) Equal(other Principal) bool {
	return p.set == other.set && p.raw == other.raw
}

// String returns the canonical text form, or an empty string for the zero value.
func (p Principal) String() string {
	if !p.set {
		return ""
	}

	checksum := make([]byte, crc32.Size)
	binary.BigEndian.PutUint32(checksum, crc32.ChecksumIEEE([]byte(p.raw)))

	text := encoding.EncodeToString(append(checksum, p.raw...))

	var b strings.Builder

	for i := 0; i < len(text); i += groupSize {
		if i > 0 {
			b.WriteByte('-')
		}

		end := i + groupSize
		if end > len(text) {
			end = len(text)
		}

		b.WriteString(text[i:end])
	}

	return b.String()
}

// MarshalJSON encodes the principal as its text form.
func (p Principal) MarshalJSON() ([]byte, error) {
	if !p.set {
		return []byte("null"), nil
	}

	return json.Marshal(p.String())
}

// UnmarshalJSON decodes the principal from its text form.
func (p *Principal) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*p = Principal{}

		return nil
	}

	var s string

	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPrincipal, err.Error())
	}

	parsed, err := FromText(s)
	if err != nil {
		return err
	}

	*p = parsed

	return nil
}
