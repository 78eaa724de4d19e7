/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package actor

import (
	"context"

	"github.com/dresume/credit/pkg/canister"
	"github.com/dresume/credit/pkg/principal"
)

var _ canister.DocumentStorage = (*DocumentStorage)(nil)

// DocumentStorage calls the document storage canister.
type DocumentStorage struct {
	base
}

// NewDocumentStorage returns an actor bound to canisterID.
func NewDocumentStorage(inv invoker, canisterID principal.Principal) *DocumentStorage {
	return &DocumentStorage{base: base{invoker: inv, canisterID: canisterID}}
}

func (s *DocumentStorage) UploadDocument(ctx context.Context, filename, contentType string,
	content []byte) (*canister.DocumentMetadata, error) {
	out := &canister.DocumentMetadata{}

	if err := s.callResult(ctx, "uploadDocument", out, filename, contentType, content); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *DocumentStorage) GetDocument(ctx context.Context, hash string) (*canister.Document, error) {
	out := &canister.Document{}

	if err := s.queryResult(ctx, "getDocument", out, hash); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *DocumentStorage) GetMyDocuments(ctx context.Context) ([]canister.DocumentMetadata, error) {
	var out []canister.DocumentMetadata

	if err := s.query(ctx, "getMyDocuments", &out); err != nil {
		return nil, err
	}

	return out, nil
}
