/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package simulator provides in-process stand-ins for the remote services. They keep the
// same method set and success/error envelope and are used for demo sessions.
package simulator

import (
	"sync"
	"time"

	"github.com/dresume/credit/pkg/canister"
	"github.com/dresume/credit/pkg/principal"
)

const defaultMaxDocumentSize = 10 << 20

// Config holds the simulated network configuration.
type Config struct {
	Admins          []principal.Principal
	MaxDocumentSize int
	Clock           func() time.Time
}

// Network is the shared in-memory state behind every simulated handle.
type Network struct {
	mu sync.Mutex

	now     func() time.Time
	admins  map[string]bool
	maxSize int

	credentials []*canister.Credential
	credByID    map[string]*canister.Credential
	credByToken map[string]*canister.Credential
	nfts        map[string]*canister.NFT
	nftOrder    []string
	credSeq     int
	tokenSeq    map[string]int
	users       map[string]*canister.User
	userOrder   []string
	documents   map[string]*canister.Document
	docOrder    []string

	// version counts mutations since New or Restore.
	version uint64
}

// New returns an empty network.
func New(config *Config) *Network {
	n := &Network{
		now:         config.Clock,
		admins:      map[string]bool{},
		maxSize:     config.MaxDocumentSize,
		credByID:    map[string]*canister.Credential{},
		credByToken: map[string]*canister.Credential{},
		nfts:        map[string]*canister.NFT{},
		tokenSeq:    map[string]int{},
		users:       map[string]*canister.User{},
		documents:   map[string]*canister.Document{},
	}

	if n.now == nil {
		n.now = time.Now
	}

	if n.maxSize <= 0 {
		n.maxSize = defaultMaxDocumentSize
	}

	for _, a := range config.Admins {
		n.admins[a.String()] = true
	}

	return n
}

// CredentialRegistry returns a registry handle acting as caller.
func (n *Network) CredentialRegistry(caller principal.Principal) *CredentialRegistry {
	return &CredentialRegistry{network: n, caller: caller}
}

// UserRegistry returns a user registry handle acting as caller.
func (n *Network) UserRegistry(caller principal.Principal) *UserRegistry {
	return &UserRegistry{network: n, caller: caller}
}

// DocumentStorage returns a document storage handle acting as caller.
func (n *Network) DocumentStorage(caller principal.Principal) *DocumentStorage {
	return &DocumentStorage{network: n, caller: caller}
}

func (n *Network) isAdmin(p principal.Principal) bool {
	return n.admins[p.String()]
}

func invalidInput(detail string) error {
	return canister.NewAPIError(canister.InvalidInput, detail)
}

func notFound() error {
	return canister.NewAPIError(canister.NotFound, "")
}

func unauthorized() error {
	return canister.NewAPIError(canister.Unauthorized, "")
}

func alreadyExists() error {
	return canister.NewAPIError(canister.AlreadyExists, "")
}
