/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sessionstore

import (
	"encoding/json"
	"errors"
	"fmt"

	ariesstorage "github.com/hyperledger/aries-framework-go/spi/storage"

	"github.com/dresume/credit/pkg/canister/simulator"
	"github.com/dresume/credit/pkg/identity"
)

const (
	storeName = "credit_session"

	identityKey      = "identity"
	demoPrincipalKey = "demo_principal"
	demoNetworkKey   = "demo_network"
)

// ErrNotFound is returned when no record is persisted under the requested key.
var ErrNotFound = errors.New("session record not found")

// IdentityRecord is the persisted state of an interactive login.
type IdentityRecord struct {
	SecretKey  []byte                    `json:"secretKey"`
	Delegation *identity.DelegationChain `json:"delegation"`
}

// Store persists the identity record, the demo principal and the demo network state under
// separate keys.
type Store struct {
	ariesStore ariesstorage.Store
}

// New opens the session store on provider.
func New(provider ariesstorage.Provider) (*Store, error) {
	ariesStore, err := provider.OpenStore(storeName)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	return &Store{ariesStore: ariesStore}, nil
}

func (s *Store) SaveIdentity(rec *IdentityRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal identity record: %w", err)
	}

	return s.ariesStore.Put(identityKey, b)
}

func (s *Store) LoadIdentity() (*IdentityRecord, error) {
	b, err := s.get(identityKey)
	if err != nil {
		return nil, err
	}

	rec := &IdentityRecord{}

	if err = json.Unmarshal(b, rec); err != nil {
		return nil, fmt.Errorf("unmarshal identity record: %w", err)
	}

	return rec, nil
}

func (s *Store) DeleteIdentity() error {
	return s.delete(identityKey)
}

func (s *Store) SaveDemoPrincipal(text string) error {
	return s.ariesStore.Put(demoPrincipalKey, []byte(text))
}

func (s *Store) LoadDemoPrincipal() (string, error) {
	b, err := s.get(demoPrincipalKey)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func (s *Store) DeleteDemoPrincipal() error {
	return s.delete(demoPrincipalKey)
}

// SaveDemoNetwork persists the state of the simulated services used by demo sessions.
func (s *Store) SaveDemoNetwork(snapshot *simulator.Snapshot) error {
	b, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal demo network: %w", err)
	}

	return s.ariesStore.Put(demoNetworkKey, b)
}

func (s *Store) LoadDemoNetwork() (*simulator.Snapshot, error) {
	b, err := s.get(demoNetworkKey)
	if err != nil {
		return nil, err
	}

	snapshot := &simulator.Snapshot{}

	if err = json.Unmarshal(b, snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal demo network: %w", err)
	}

	return snapshot, nil
}

func (s *Store) DeleteDemoNetwork() error {
	return s.delete(demoNetworkKey)
}

func (s *Store) get(key string) ([]byte, error) {
	b, err := s.ariesStore.Get(key)
	if err != nil {
		if errors.Is(err, ariesstorage.ErrDataNotFound) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("get %s: %w", key, err)
	}

	return b, nil
}

func (s *Store) delete(key string) error {
	if err := s.ariesStore.Delete(key); err != nil && !errors.Is(err, ariesstorage.ErrDataNotFound) {
		return fmt.Errorf("delete %s: %w", key, err)
	}

	return nil
}
