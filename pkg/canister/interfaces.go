/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package canister

import (
	"context"

	"github.com/dresume/credit/pkg/principal"
)

// ServiceName identifies a remote service.
type ServiceName string

const (
	CredentialService ServiceName = "credential"
	UserService       ServiceName = "user"
	DocumentService   ServiceName = "document"
)

// Services lists every remote service the client talks to.
var Services = []ServiceName{CredentialService, UserService, DocumentService}

// CredentialRegistry is the credential registry service.
// Result-returning methods report remote failures as *APIError.
type CredentialRegistry interface {
	CreateCredential(ctx context.Context, req *CreateCredentialRequest) (*CreateCredentialResult, error)
	GetCredential(ctx context.Context, id string) (*Credential, error)
	GetCredentialByToken(ctx context.Context, tokenID string) (*Credential, error)
	GetCredentialsByIssuer(ctx context.Context, issuer principal.Principal) ([]Credential, error)
	GetCredentialsByRecipient(ctx context.Context, recipient string) ([]Credential, error)
	GetNFT(ctx context.Context, tokenID string) (*NFT, error)
	GetNFTsByOwner(ctx context.Context, owner principal.Principal) ([]NFT, error)
	RevokeCredential(ctx context.Context, id string) (*Credential, error)
	SearchCredentials(ctx context.Context, filter *SearchFilter) ([]Credential, error)
	TransferNFT(ctx context.Context, tokenID string, newOwner principal.Principal) (*NFT, error)
}

// UserRegistry is the user registry service.
type UserRegistry interface {
	RegisterUser(ctx context.Context, email string, role UserRole, organizationName *string) (*User, error)
	GetMyProfile(ctx context.Context) (*User, error)
	GetUser(ctx context.Context, id principal.Principal) (*User, error)
	GetAllUsers(ctx context.Context) ([]User, error)
	UpdateVerificationStatus(ctx context.Context, id principal.Principal, status VerificationStatus) (*User, error)
	IsAdminPrincipal(ctx context.Context, p principal.Principal) (bool, error)
}

// DocumentStorage is the document storage service.
type DocumentStorage interface {
	UploadDocument(ctx context.Context, filename, contentType string, content []byte) (*DocumentMetadata, error)
	GetDocument(ctx context.Context, hash string) (*Document, error)
	GetMyDocuments(ctx context.Context) ([]DocumentMetadata, error)
}
