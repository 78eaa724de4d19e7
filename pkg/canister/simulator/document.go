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

	"github.com/dresume/credit/pkg/canister"
	"github.com/dresume/credit/pkg/principal"
)

var _ canister.DocumentStorage = (*DocumentStorage)(nil)

// DocumentStorage simulates content-addressed document storage for one caller.
type DocumentStorage struct {
	network *Network
	caller  principal.Principal
}

func (s *DocumentStorage) UploadDocument(_ context.Context, filename, contentType string,
	content []byte) (*canister.DocumentMetadata, error) {
	n := s.network

	if strings.TrimSpace(filename) == "" {
		return nil, invalidInput("filename is required")
	}

	if len(content) == 0 {
		return nil, invalidInput("document is empty")
	}

	if len(content) > n.maxSize {
		return nil, invalidInput(fmt.Sprintf("document exceeds %d bytes", n.maxSize))
	}

	sum := sha256.Sum256(content)
	hash := hex.EncodeToString(sum[:])

	n.mu.Lock()
	defer n.mu.Unlock()

	if existing, ok := n.documents[hash]; ok {
		if !existing.Metadata.Owner.Equal(s.caller) {
			return nil, alreadyExists()
		}

		meta := existing.Metadata

		return &meta, nil
	}

	doc := &canister.Document{
		Content: append([]byte{}, content...),
		Metadata: canister.DocumentMetadata{
			Hash:        hash,
			Filename:    filename,
			ContentType: contentType,
			Size:        uint64(len(content)),
			Owner:       s.caller,
			UploadedAt:  canister.NewTime(n.now().UTC()),
		},
	}

	n.documents[hash] = doc
	n.docOrder = append(n.docOrder, hash)
	n.version++

	if u, ok := n.users[s.caller.String()]; ok {
		u.DocumentsSubmitted = append(u.DocumentsSubmitted, hash)
	}

	meta := doc.Metadata

	return &meta, nil
}

func (s *DocumentStorage) GetDocument(_ context.Context, hash string) (*canister.Document, error) {
	s.network.mu.Lock()
	defer s.network.mu.Unlock()

	doc, ok := s.network.documents[strings.ToLower(hash)]
	if !ok {
		return nil, notFound()
	}

	return &canister.Document{
		Content:  append([]byte{}, doc.Content...),
		Metadata: doc.Metadata,
	}, nil
}

func (s *DocumentStorage) GetMyDocuments(_ context.Context) ([]canister.DocumentMetadata, error) {
	n := s.network

	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]canister.DocumentMetadata, 0)

	for _, hash := range n.docOrder {
		if meta := n.documents[hash].Metadata; meta.Owner.Equal(s.caller) {
			out = append(out, meta)
		}
	}

	return out, nil
}
