/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package simulator

import (
	"fmt"

	"github.com/dresume/credit/pkg/canister"
)

// Snapshot is the serializable state of a Network. Slices keep insertion order.
type Snapshot struct {
	Credentials   []canister.Credential `json:"credentials"`
	NFTs          []canister.NFT        `json:"nfts"`
	Users         []canister.User       `json:"users"`
	Documents     []canister.Document   `json:"documents"`
	CredentialSeq int                   `json:"credentialSeq"`
	TokenSeq      map[string]int        `json:"tokenSeq"`
}

// Version returns the number of mutations applied since New or the last Restore.
func (n *Network) Version() uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.version
}

// Snapshot returns a copy of the network state.
func (n *Network) Snapshot() (*Snapshot, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	creds, err := cloneCredentials(n.credentials)
	if err != nil {
		return nil, err
	}

	s := &Snapshot{
		Credentials:   creds,
		NFTs:          make([]canister.NFT, 0, len(n.nftOrder)),
		Users:         make([]canister.User, 0, len(n.userOrder)),
		Documents:     make([]canister.Document, 0, len(n.docOrder)),
		CredentialSeq: n.credSeq,
		TokenSeq:      make(map[string]int, len(n.tokenSeq)),
	}

	for _, tokenID := range n.nftOrder {
		nft, err := cloneNFT(n.nfts[tokenID])
		if err != nil {
			return nil, err
		}

		s.NFTs = append(s.NFTs, *nft)
	}

	for _, key := range n.userOrder {
		u, err := cloneUser(n.users[key])
		if err != nil {
			return nil, err
		}

		s.Users = append(s.Users, *u)
	}

	for _, hash := range n.docOrder {
		doc := n.documents[hash]

		s.Documents = append(s.Documents, canister.Document{
			Content:  append([]byte{}, doc.Content...),
			Metadata: doc.Metadata,
		})
	}

	for k, v := range n.tokenSeq {
		s.TokenSeq[k] = v
	}

	return s, nil
}

// Restore replaces the network state with s. On error the state is left unchanged.
func (n *Network) Restore(s *Snapshot) error {
	st, err := newState(s)
	if err != nil {
		return fmt.Errorf("restore network: %w", err)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.credentials = st.credentials
	n.credByID = st.credByID
	n.credByToken = st.credByToken
	n.nfts = st.nfts
	n.nftOrder = st.nftOrder
	n.credSeq = st.credSeq
	n.tokenSeq = st.tokenSeq
	n.users = st.users
	n.userOrder = st.userOrder
	n.documents = st.documents
	n.docOrder = st.docOrder
	n.version = 0

	return nil
}

type state struct {
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
}

// nolint:gocyclo
func newState(s *Snapshot) (*state, error) {
	st := &state{
		credByID:    map[string]*canister.Credential{},
		credByToken: map[string]*canister.Credential{},
		nfts:        map[string]*canister.NFT{},
		credSeq:     s.CredentialSeq,
		tokenSeq:    map[string]int{},
		users:       map[string]*canister.User{},
		documents:   map[string]*canister.Document{},
	}

	for i := range s.Credentials {
		c, err := cloneCredential(&s.Credentials[i])
		if err != nil {
			return nil, err
		}

		if _, ok := st.credByID[c.ID]; ok {
			return nil, fmt.Errorf("duplicate credential id %s", c.ID)
		}

		if _, ok := st.credByToken[c.TokenID]; ok {
			return nil, fmt.Errorf("duplicate token id %s", c.TokenID)
		}

		st.credentials = append(st.credentials, c)
		st.credByID[c.ID] = c
		st.credByToken[c.TokenID] = c
	}

	for i := range s.NFTs {
		nft, err := cloneNFT(&s.NFTs[i])
		if err != nil {
			return nil, err
		}

		if _, ok := st.credByToken[nft.TokenID]; !ok {
			return nil, fmt.Errorf("nft %s has no credential", nft.TokenID)
		}

		if _, ok := st.nfts[nft.TokenID]; ok {
			return nil, fmt.Errorf("duplicate nft %s", nft.TokenID)
		}

		st.nfts[nft.TokenID] = nft
		st.nftOrder = append(st.nftOrder, nft.TokenID)
	}

	for i := range s.Users {
		u, err := cloneUser(&s.Users[i])
		if err != nil {
			return nil, err
		}

		key := u.ID.String()

		if _, ok := st.users[key]; ok {
			return nil, fmt.Errorf("duplicate user %s", key)
		}

		st.users[key] = u
		st.userOrder = append(st.userOrder, key)
	}

	for i := range s.Documents {
		doc := s.Documents[i]

		if _, ok := st.documents[doc.Metadata.Hash]; ok {
			return nil, fmt.Errorf("duplicate document %s", doc.Metadata.Hash)
		}

		st.documents[doc.Metadata.Hash] = &canister.Document{
			Content:  append([]byte{}, doc.Content...),
			Metadata: doc.Metadata,
		}
		st.docOrder = append(st.docOrder, doc.Metadata.Hash)
	}

	for k, v := range s.TokenSeq {
		st.tokenSeq[k] = v
	}

	if st.credSeq < len(st.credentials) {
		st.credSeq = len(st.credentials)
	}

	return st, nil
}
