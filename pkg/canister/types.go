/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package canister

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dresume/credit/pkg/principal"
)

// Time is a point in time carried on the wire as nanoseconds since the Unix epoch.
type Time struct {
	time.Time
}

// NewTime wraps t.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// Nanos returns the wire representation.
func (t Time) Nanos() int64 {
	if t.IsZero() {
		return 0
	}

	return t.UnixNano()
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Nanos())
}

func (t *Time) UnmarshalJSON(data []byte) error {
	var ns int64

	if err := json.Unmarshal(data, &ns); err != nil {
		return fmt.Errorf("decode time: %w", err)
	}

	if ns == 0 {
		*t = Time{}

		return nil
	}

	*t = Time{Time: time.Unix(0, ns).UTC()}

	return nil
}

// MetadataEntry is a single key/value pair.
type MetadataEntry struct {
	Key   string
	Value string
}

// Metadata is an ordered list of key/value string pairs.
type Metadata []MetadataEntry

// Get returns the first value stored under key.
func (m Metadata) Get(key string) (string, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}

	return "", false
}

// With returns a copy of m with the pair appended.
func (m Metadata) With(key, value string) Metadata {
	out := make(Metadata, len(m), len(m)+1)
	copy(out, m)

	return append(out, MetadataEntry{Key: key, Value: value})
}

func (e MetadataEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{e.Key, e.Value})
}

func (e *MetadataEntry) UnmarshalJSON(data []byte) error {
	var pair [2]string

	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("decode metadata pair: %w", err)
	}

	e.Key, e.Value = pair[0], pair[1]

	return nil
}

// Metadata keys with a meaning to the client layer.
const (
	MetadataSoulBound  = "soulbound"
	MetadataIssuerRole = "issuerRole"
)

// Credential is a credential record owned by the registry.
type Credential struct {
	ID             string              `json:"id"`
	TokenID        string              `json:"tokenId"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	CredentialType CredentialType      `json:"credentialType"`
	Issuer         principal.Principal `json:"issuer"`
	Recipient      string              `json:"recipient"`
	RecipientName  string              `json:"recipientName"`
	IssuedAt       Time                `json:"issuedAt"`
	ExpiresAt      *Time               `json:"expiresAt"`
	IsRevoked      bool                `json:"isRevoked"`
	Metadata       Metadata            `json:"metadata"`
	DocumentHash   *string             `json:"documentHash"`
	BlockchainTxID *string             `json:"blockchainTxId"`
}

// IsSoulBound reports whether the credential was issued as non-transferable.
func (c *Credential) IsSoulBound() bool {
	v, ok := c.Metadata.Get(MetadataSoulBound)

	return ok && v == "true"
}

// NFTMetadata describes the token wrapper of a credential.
type NFTMetadata struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Issuer      string   `json:"issuer"`
	Recipient   string   `json:"recipient"`
	IssuedAt    Time     `json:"issuedAt"`
	Attributes  Metadata `json:"attributes"`
}

// NFT is the token wrapper around a credential.
type NFT struct {
	TokenID   string              `json:"tokenId"`
	Owner     principal.Principal `json:"owner"`
	CreatedAt Time                `json:"createdAt"`
	Metadata  NFTMetadata         `json:"metadata"`
}

// IsSoulBound reports whether the token is bound to its recipient.
func (n *NFT) IsSoulBound() bool {
	v, ok := n.Metadata.Attributes.Get(MetadataSoulBound)

	return ok && v == "true"
}

// User is a registered platform user.
type User struct {
	ID                 principal.Principal `json:"id"`
	Email              string              `json:"email"`
	Role               UserRole            `json:"role"`
	OrganizationName   *string             `json:"organizationName"`
	VerificationStatus VerificationStatus  `json:"verificationStatus"`
	DocumentsSubmitted []string            `json:"documentsSubmitted"`
	CreatedAt          Time                `json:"createdAt"`
	UpdatedAt          Time                `json:"updatedAt"`
}

// DocumentMetadata describes a stored document.
type DocumentMetadata struct {
	Hash        string              `json:"hash"`
	Filename    string              `json:"filename"`
	ContentType string              `json:"contentType"`
	Size        uint64              `json:"size"`
	Owner       principal.Principal `json:"owner"`
	UploadedAt  Time                `json:"uploadedAt"`
}

// Document is a stored document and its metadata.
type Document struct {
	Content  []byte           `json:"content"`
	Metadata DocumentMetadata `json:"metadata"`
}

// CreateCredentialRequest carries the arguments of createCredential.
type CreateCredentialRequest struct {
	CredentialType CredentialType `json:"credentialType"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Recipient      string         `json:"recipient"`
	RecipientName  string         `json:"recipientName"`
	ExpiresAt      *Time          `json:"expiresAt"`
	Metadata       Metadata       `json:"metadata"`
	DocumentHash   *string        `json:"documentHash"`
}

// CreateCredentialResult is the success half of createCredential.
type CreateCredentialResult struct {
	Credential Credential
	NFT        NFT
}

func (r CreateCredentialResult) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{r.Credential, r.NFT})
}

func (r *CreateCredentialResult) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage

	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("decode credential tuple: %w", err)
	}

	if err := json.Unmarshal(pair[0], &r.Credential); err != nil {
		return fmt.Errorf("decode credential: %w", err)
	}

	if err := json.Unmarshal(pair[1], &r.NFT); err != nil {
		return fmt.Errorf("decode nft: %w", err)
	}

	return nil
}
