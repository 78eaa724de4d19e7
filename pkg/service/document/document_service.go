/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package document

import (
	"context"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/dresume/credit/internal/logfields"
	"github.com/dresume/credit/pkg/canister"
	"github.com/dresume/credit/pkg/clienterr"
	"github.com/dresume/credit/pkg/session"
)

var logger = log.New("document-service")

type sessionSource interface {
	Session() session.Session
}

type clientFactory interface {
	DocumentStorage(sess session.Session) (canister.DocumentStorage, error)
}

type Config struct {
	Sessions sessionSource
	Clients  clientFactory
}

// Service uploads supporting documents whose hash can be referenced from a credential.
type Service struct {
	sessions sessionSource
	clients  clientFactory
}

func New(config *Config) *Service {
	return &Service{
		sessions: config.Sessions,
		clients:  config.Clients,
	}
}

// Upload stores content. An empty contentType is derived from the file extension or the content.
func (s *Service) Upload(ctx context.Context, filename, contentType string,
	content []byte) (*canister.DocumentMetadata, error) {
	storage, err := s.storage("Upload")
	if err != nil {
		return nil, err
	}

	if contentType == "" {
		contentType = detectContentType(filename, content)
	}

	meta, err := storage.UploadDocument(ctx, filepath.Base(filename), contentType, content)
	if err != nil {
		return nil, clienterr.FromRemote(clienterr.DocumentService, "Upload", err)
	}

	logger.Info("Document uploaded", logfields.WithAdditionalMessage(meta.Hash))

	return meta, nil
}

// Get returns nil for unknown hashes.
func (s *Service) Get(ctx context.Context, hash string) (*canister.Document, error) {
	storage, err := s.storage("Get")
	if err != nil {
		return nil, err
	}

	doc, err := storage.GetDocument(ctx, strings.ToLower(strings.TrimSpace(hash)))
	if err != nil {
		if canister.IsNotFound(err) {
			return nil, nil //nolint:nilnil
		}

		return nil, clienterr.FromRemote(clienterr.DocumentService, "Get", err)
	}

	return doc, nil
}

func (s *Service) ListMine(ctx context.Context) ([]canister.DocumentMetadata, error) {
	storage, err := s.storage("ListMine")
	if err != nil {
		return nil, err
	}

	docs, err := storage.GetMyDocuments(ctx)
	if err != nil {
		return nil, clienterr.FromRemote(clienterr.DocumentService, "ListMine", err)
	}

	return docs, nil
}

func (s *Service) storage(operation string) (canister.DocumentStorage, error) {
	sess := s.sessions.Session()
	if !sess.IsAuthenticated() {
		return nil, clienterr.NewNotAuthenticatedError(clienterr.DocumentService, operation)
	}

	return s.clients.DocumentStorage(sess)
}

func detectContentType(filename string, content []byte) string {
	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		return ct
	}

	return http.DetectContentType(content)
}
