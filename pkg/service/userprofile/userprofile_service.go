/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination service_mocks_test.go -self_package mocks -package userprofile_test -source=userprofile_service.go -mock_names sessionSource=MockSessionSource,clientFactory=MockClientFactory
//go:generate mockgen -destination registry_mocks_test.go -package userprofile_test github.com/dresume/credit/pkg/canister UserRegistry

package userprofile

import (
	"context"
	"strings"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/dresume/credit/internal/logfields"
	"github.com/dresume/credit/pkg/canister"
	"github.com/dresume/credit/pkg/clienterr"
	"github.com/dresume/credit/pkg/principal"
	"github.com/dresume/credit/pkg/session"
)

var logger = log.New("user-profile-service")

type sessionSource interface {
	Session() session.Session
}

type clientFactory interface {
	UserRegistry(sess session.Session) (canister.UserRegistry, error)
}

type Config struct {
	Sessions sessionSource
	Clients  clientFactory
}

// Service registers the caller and manages verification status of other users.
// Authorization of privileged calls is left to the registry.
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

// RegisterUser registers the calling identity. The role cannot be changed afterwards.
func (s *Service) RegisterUser(ctx context.Context, email string, role canister.UserRole,
	organizationName *string) (*canister.User, error) {
	const operation = "RegisterUser"

	registry, err := s.registry(operation)
	if err != nil {
		return nil, err
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return nil, clienterr.NewValidationError("email is required").
			WithComponent(clienterr.UserProfileService).WithOperation(operation)
	}

	if !role.Valid() {
		return nil, clienterr.NewValidationError("invalid role %s", role).
			WithComponent(clienterr.UserProfileService).WithOperation(operation)
	}

	if organizationName != nil {
		trimmed := strings.TrimSpace(*organizationName)
		if trimmed == "" {
			organizationName = nil
		} else {
			organizationName = &trimmed
		}
	}

	user, err := registry.RegisterUser(ctx, email, role, organizationName)
	if err != nil {
		return nil, clienterr.FromRemote(clienterr.UserProfileService, operation, err)
	}

	logger.Info("User registered", logfields.WithPrincipal(user.ID.String()))

	return user, nil
}

// GetMyProfile returns nil when there is no usable client or the caller is not registered.
func (s *Service) GetMyProfile(ctx context.Context) (*canister.User, error) {
	sess := s.sessions.Session()
	if !sess.IsAuthenticated() {
		return nil, nil //nolint:nilnil
	}

	registry, err := s.clients.UserRegistry(sess)
	if err != nil {
		logger.Debug("No user registry for session", log.WithError(err))

		return nil, nil //nolint:nilnil
	}

	user, err := registry.GetMyProfile(ctx)
	if err != nil {
		if canister.IsNotFound(err) {
			return nil, nil //nolint:nilnil
		}

		return nil, clienterr.FromRemote(clienterr.UserProfileService, "GetMyProfile", err)
	}

	return user, nil
}

// GetUser returns nil for unknown users.
func (s *Service) GetUser(ctx context.Context, id principal.Principal) (*canister.User, error) {
	registry, err := s.registry("GetUser")
	if err != nil {
		return nil, err
	}

	user, err := registry.GetUser(ctx, id)
	if err != nil {
		if canister.IsNotFound(err) {
			return nil, nil //nolint:nilnil
		}

		return nil, clienterr.FromRemote(clienterr.UserProfileService, "GetUser", err)
	}

	return user, nil
}

func (s *Service) UpdateVerificationStatus(ctx context.Context, id principal.Principal,
	status canister.VerificationStatus) (*canister.User, error) {
	const operation = "UpdateVerificationStatus"

	registry, err := s.registry(operation)
	if err != nil {
		return nil, err
	}

	if !status.Valid() {
		return nil, clienterr.NewValidationError("invalid verification status %s", status).
			WithComponent(clienterr.UserProfileService).WithOperation(operation)
	}

	user, err := registry.UpdateVerificationStatus(ctx, id, status)
	if err != nil {
		return nil, clienterr.FromRemote(clienterr.UserProfileService, operation, err)
	}

	logger.Info("Verification status updated", logfields.WithPrincipal(id.String()),
		logfields.WithAdditionalMessage(status.String()))

	return user, nil
}

func (s *Service) GetAllUsers(ctx context.Context) ([]canister.User, error) {
	registry, err := s.registry("GetAllUsers")
	if err != nil {
		return nil, err
	}

	users, err := registry.GetAllUsers(ctx)
	if err != nil {
		return nil, clienterr.FromRemote(clienterr.UserProfileService, "GetAllUsers", err)
	}

	return users, nil
}

// IsAdmin reports whether the current principal has admin rights.
func (s *Service) IsAdmin(ctx context.Context) (bool, error) {
	sess := s.sessions.Session()

	registry, err := s.registry("IsAdmin")
	if err != nil {
		return false, err
	}

	ok, err := registry.IsAdminPrincipal(ctx, sess.Principal)
	if err != nil {
		return false, clienterr.FromRemote(clienterr.UserProfileService, "IsAdmin", err)
	}

	return ok, nil
}

func (s *Service) registry(operation string) (canister.UserRegistry, error) {
	sess := s.sessions.Session()
	if !sess.IsAuthenticated() {
		return nil, clienterr.NewNotAuthenticatedError(clienterr.UserProfileService, operation)
	}

	return s.clients.UserRegistry(sess)
}
