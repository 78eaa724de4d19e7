/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination service_mocks_test.go -self_package mocks -package credential_test -source=credential_service.go -mock_names sessionSource=MockSessionSource,clientFactory=MockClientFactory,cacheStore=MockCacheStore
//go:generate mockgen -destination registry_mocks_test.go -package credential_test github.com/dresume/credit/pkg/canister CredentialRegistry

package credential

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/dresume/credit/internal/logfields"
	"github.com/dresume/credit/pkg/canister"
	"github.com/dresume/credit/pkg/clienterr"
	"github.com/dresume/credit/pkg/observability/metrics"
	"github.com/dresume/credit/pkg/observability/metrics/noop"
	"github.com/dresume/credit/pkg/principal"
	"github.com/dresume/credit/pkg/session"
)

var logger = log.New("credential-service")

type sessionSource interface {
	Session() session.Session
}

type clientFactory interface {
	CredentialRegistry(sess session.Session) (canister.CredentialRegistry, error)
}

type cacheStore interface {
	Get(ctx context.Context, key string) ([]canister.Credential, bool, error)
	Set(ctx context.Context, key string, creds []canister.Credential) error
	Delete(ctx context.Context, key string) error
}

type Config struct {
	Sessions sessionSource
	Clients  clientFactory
	// Cache holds "my credentials" per principal. Caching is off when nil.
	Cache   cacheStore
	Metrics metrics.Metrics
}

type Service struct {
	sessions sessionSource
	clients  clientFactory
	cache    cacheStore
	metrics  metrics.Metrics
}

var _ ServiceInterface = (*Service)(nil)

func New(config *Config) *Service {
	s := &Service{
		sessions: config.Sessions,
		clients:  config.Clients,
		cache:    config.Cache,
		metrics:  config.Metrics,
	}

	if s.metrics == nil {
		s.metrics = noop.GetMetrics()
	}

	return s
}

func (s *Service) CreateCredential(ctx context.Context, req *canister.CreateCredentialRequest) (*CreateResult, error) {
	return s.create(ctx, "CreateCredential", req, nil)
}

// CreateSoulBoundToken creates a credential whose NFT cannot be transferred.
func (s *Service) CreateSoulBoundToken(ctx context.Context, req *canister.CreateCredentialRequest,
	issuerRole canister.UserRole) (*CreateResult, error) {
	return s.create(ctx, "CreateSoulBoundToken", req, &issuerRole)
}

// create issues req. A non-nil issuerRole makes it a soul-bound token.
func (s *Service) create(ctx context.Context, operation string, req *canister.CreateCredentialRequest,
	issuerRole *canister.UserRole) (*CreateResult, error) {
	sess, registry, err := s.registry(operation)
	if err != nil {
		return nil, err
	}

	if verr := validateRequest(req, issuerRole); verr != nil {
		return nil, verr.WithComponent(clienterr.CredentialService).WithOperation(operation)
	}

	if issuerRole != nil {
		sbt := *req
		sbt.Metadata = req.Metadata.
			With(canister.MetadataSoulBound, "true").
			With(canister.MetadataIssuerRole, issuerRole.String())
		req = &sbt
	}

	res, err := registry.CreateCredential(ctx, req)
	if err != nil {
		return nil, s.remoteError(operation, err)
	}

	logger.Info("Credential created",
		logfields.WithCredentialID(res.Credential.ID),
		logfields.WithTokenID(res.Credential.TokenID),
		logfields.WithPrincipal(sess.Principal.String()),
	)

	s.refresh(ctx, sess, registry)

	return &CreateResult{
		Credential:   &res.Credential,
		NFT:          &res.NFT,
		TokenID:      res.Credential.TokenID,
		CredentialID: res.Credential.ID,
	}, nil
}

// GetMyCredentials returns credentials received or issued by the current principal.
// Without an authenticated session it returns an empty list.
func (s *Service) GetMyCredentials(ctx context.Context) ([]canister.Credential, error) {
	sess := s.sessions.Session()
	if !sess.IsAuthenticated() {
		return []canister.Credential{}, nil
	}

	if creds, ok := s.cached(ctx, sess); ok {
		return creds, nil
	}

	registry, err := s.clients.CredentialRegistry(sess)
	if err != nil {
		return nil, err
	}

	return s.load(ctx, sess, registry)
}

func (s *Service) GetCredentialsByIssuer(ctx context.Context,
	issuer *principal.Principal) ([]canister.Credential, error) {
	sess, registry, err := s.registry("GetCredentialsByIssuer")
	if err != nil {
		return nil, err
	}

	target := sess.Principal
	if issuer != nil {
		target = *issuer
	}

	if target.IsZero() || target.IsAnonymous() {
		return nil, clienterr.NewValidationError("issuer principal is required").
			WithComponent(clienterr.CredentialService).WithOperation("GetCredentialsByIssuer")
	}

	creds, err := registry.GetCredentialsByIssuer(ctx, target)
	if err != nil {
		return nil, s.remoteError("GetCredentialsByIssuer", err)
	}

	return creds, nil
}

func (s *Service) GetCredentialByToken(ctx context.Context, tokenID string) (*canister.Credential, error) {
	_, registry, err := s.registry("GetCredentialByToken")
	if err != nil {
		return nil, err
	}

	cred, err := registry.GetCredentialByToken(ctx, tokenID)

	return lookup(cred, err, s.remoteError("GetCredentialByToken", err))
}

func (s *Service) GetCredentialByID(ctx context.Context, id string) (*canister.Credential, error) {
	_, registry, err := s.registry("GetCredentialByID")
	if err != nil {
		return nil, err
	}

	cred, err := registry.GetCredential(ctx, id)

	return lookup(cred, err, s.remoteError("GetCredentialByID", err))
}

func (s *Service) SearchCredentials(ctx context.Context, filter *canister.SearchFilter) ([]canister.Credential, error) {
	_, registry, err := s.registry("SearchCredentials")
	if err != nil {
		return nil, err
	}

	if filter == nil {
		filter = &canister.SearchFilter{}
	}

	creds, err := registry.SearchCredentials(ctx, filter)
	if err != nil {
		return nil, s.remoteError("SearchCredentials", err)
	}

	return creds, nil
}

func (s *Service) GetNFT(ctx context.Context, tokenID string) (*canister.NFT, error) {
	_, registry, err := s.registry("GetNFT")
	if err != nil {
		return nil, err
	}

	nft, err := registry.GetNFT(ctx, tokenID)

	return lookup(nft, err, s.remoteError("GetNFT", err))
}

func (s *Service) GetMyNFTs(ctx context.Context) ([]canister.NFT, error) {
	sess, registry, err := s.registry("GetMyNFTs")
	if err != nil {
		return nil, err
	}

	nfts, err := registry.GetNFTsByOwner(ctx, sess.Principal)
	if err != nil {
		return nil, s.remoteError("GetMyNFTs", err)
	}

	return nfts, nil
}

func (s *Service) RevokeCredential(ctx context.Context, id string) (*canister.Credential, error) {
	sess, registry, err := s.registry("RevokeCredential")
	if err != nil {
		return nil, err
	}

	cred, err := registry.RevokeCredential(ctx, id)
	if err != nil {
		return nil, s.remoteError("RevokeCredential", err)
	}

	logger.Info("Credential revoked", logfields.WithCredentialID(id))

	s.refresh(ctx, sess, registry)

	return cred, nil
}

// TransferNFT moves a token to newOwner. Soul-bound tokens are refused before the registry is called.
func (s *Service) TransferNFT(ctx context.Context, tokenID string, newOwner principal.Principal) (*canister.NFT, error) {
	const operation = "TransferNFT"

	sess, registry, err := s.registry(operation)
	if err != nil {
		return nil, err
	}

	if newOwner.IsZero() || newOwner.IsAnonymous() {
		return nil, clienterr.NewValidationError("new owner must be a non-anonymous principal").
			WithComponent(clienterr.CredentialService).WithOperation(operation)
	}

	current, err := registry.GetNFT(ctx, tokenID)
	if err != nil {
		return nil, s.remoteError(operation, err)
	}

	if current.IsSoulBound() {
		return nil, clienterr.NewValidationError("token %s is soul-bound and cannot be transferred", tokenID).
			WithComponent(clienterr.CredentialService).WithOperation(operation)
	}

	nft, err := registry.TransferNFT(ctx, tokenID, newOwner)
	if err != nil {
		return nil, s.remoteError(operation, err)
	}

	logger.Info("NFT transferred", logfields.WithTokenID(tokenID), logfields.WithPrincipal(newOwner.String()))

	s.refresh(ctx, sess, registry)

	return nft, nil
}

// InvalidateCache drops the cached list of the current principal.
func (s *Service) InvalidateCache(ctx context.Context) error {
	sess := s.sessions.Session()
	if s.cache == nil || !sess.IsAuthenticated() {
		return nil
	}

	if err := s.cache.Delete(ctx, sess.Principal.String()); err != nil {
		return fmt.Errorf("invalidate credential cache: %w", err)
	}

	return nil
}

func (s *Service) registry(operation string) (session.Session, canister.CredentialRegistry, error) {
	sess := s.sessions.Session()
	if !sess.IsAuthenticated() {
		return sess, nil, clienterr.NewNotAuthenticatedError(clienterr.CredentialService, operation)
	}

	registry, err := s.clients.CredentialRegistry(sess)
	if err != nil {
		return sess, nil, err
	}

	return sess, registry, nil
}

func (s *Service) cached(ctx context.Context, sess session.Session) ([]canister.Credential, bool) {
	if s.cache == nil {
		return nil, false
	}

	creds, ok, err := s.cache.Get(ctx, sess.Principal.String())
	if err != nil {
		logger.Warn("Failed to read credential cache", log.WithError(err))

		ok = false
	}

	if ok {
		s.metrics.CacheHit()
	} else {
		s.metrics.CacheMiss()
	}

	return creds, ok
}

// load fetches recipient then issuer credentials, keeping the first occurrence of each id.
func (s *Service) load(ctx context.Context, sess session.Session,
	registry canister.CredentialRegistry) ([]canister.Credential, error) {
	const operation = "GetMyCredentials"

	received, err := registry.GetCredentialsByRecipient(ctx, sess.Principal.String())
	if err != nil {
		return nil, s.remoteError(operation, err)
	}

	issued, err := registry.GetCredentialsByIssuer(ctx, sess.Principal)
	if err != nil {
		return nil, s.remoteError(operation, err)
	}

	creds := lo.UniqBy(append(received, issued...), func(c canister.Credential) string {
		return c.ID
	})

	if s.cache != nil {
		if err = s.cache.Set(ctx, sess.Principal.String(), creds); err != nil {
			logger.Warn("Failed to write credential cache", log.WithError(err))
		}
	}

	return creds, nil
}

func (s *Service) refresh(ctx context.Context, sess session.Session, registry canister.CredentialRegistry) {
	if s.cache == nil {
		return
	}

	creds, err := s.load(ctx, sess, registry)
	if err != nil {
		logger.Warn("Failed to refresh credential cache", log.WithError(err))

		if delErr := s.cache.Delete(ctx, sess.Principal.String()); delErr != nil {
			logger.Warn("Failed to drop stale credential cache", log.WithError(delErr))
		}

		return
	}

	logger.Debug("Credential cache refreshed", logfields.WithTotal(len(creds)))
}

func (s *Service) remoteError(operation string, err error) error {
	if err == nil {
		return nil
	}

	return clienterr.FromRemote(clienterr.CredentialService, operation, err)
}

func validateRequest(req *canister.CreateCredentialRequest, issuerRole *canister.UserRole) *clienterr.CustomError {
	if req == nil {
		return clienterr.NewValidationError("credential request is required")
	}

	if !req.CredentialType.Valid() {
		return clienterr.NewValidationError("invalid credential type %s", req.CredentialType)
	}

	if issuerRole != nil && !issuerRole.Valid() {
		return clienterr.NewValidationError("invalid issuer role %s", *issuerRole)
	}

	return nil
}

// lookup turns a NotFound result into nil.
func lookup[T any](v *T, err, wrapped error) (*T, error) {
	if err == nil {
		return v, nil
	}

	if canister.IsNotFound(err) {
		return nil, nil
	}

	return nil, wrapped
}
