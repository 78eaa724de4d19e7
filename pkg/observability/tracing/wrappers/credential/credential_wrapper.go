/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package credential . Service

package credential

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dresume/credit/pkg/canister"
	"github.com/dresume/credit/pkg/observability/tracing/attributeutil"
	"github.com/dresume/credit/pkg/principal"
	"github.com/dresume/credit/pkg/service/credential"
)

var _ Service = (*Wrapper)(nil)

type Service credential.ServiceInterface

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) CreateCredential(ctx context.Context,
	req *canister.CreateCredentialRequest) (*credential.CreateResult, error) {
	ctx, span := w.tracer.Start(ctx, "credential.CreateCredential")
	defer span.End()

	span.SetAttributes(requestAttribute(req))

	res, err := w.svc.CreateCredential(ctx, req)
	if err != nil {
		return nil, fail(span, err)
	}

	span.SetAttributes(attribute.String("token_id", res.TokenID))

	return res, nil
}

func (w *Wrapper) CreateSoulBoundToken(ctx context.Context, req *canister.CreateCredentialRequest,
	issuerRole canister.UserRole) (*credential.CreateResult, error) {
	ctx, span := w.tracer.Start(ctx, "credential.CreateSoulBoundToken")
	defer span.End()

	span.SetAttributes(requestAttribute(req), attribute.String("issuer_role", issuerRole.String()))

	res, err := w.svc.CreateSoulBoundToken(ctx, req, issuerRole)
	if err != nil {
		return nil, fail(span, err)
	}

	span.SetAttributes(attribute.String("token_id", res.TokenID))

	return res, nil
}

func (w *Wrapper) GetMyCredentials(ctx context.Context) ([]canister.Credential, error) {
	ctx, span := w.tracer.Start(ctx, "credential.GetMyCredentials")
	defer span.End()

	creds, err := w.svc.GetMyCredentials(ctx)
	if err != nil {
		return nil, fail(span, err)
	}

	span.SetAttributes(attribute.Int("count", len(creds)))

	return creds, nil
}

func (w *Wrapper) GetCredentialsByIssuer(ctx context.Context,
	issuer *principal.Principal) ([]canister.Credential, error) {
	ctx, span := w.tracer.Start(ctx, "credential.GetCredentialsByIssuer")
	defer span.End()

	if issuer != nil {
		span.SetAttributes(attribute.String("issuer", issuer.String()))
	}

	creds, err := w.svc.GetCredentialsByIssuer(ctx, issuer)
	if err != nil {
		return nil, fail(span, err)
	}

	return creds, nil
}

func (w *Wrapper) GetCredentialByToken(ctx context.Context, tokenID string) (*canister.Credential, error) {
	ctx, span := w.tracer.Start(ctx, "credential.GetCredentialByToken")
	defer span.End()

	span.SetAttributes(attribute.String("token_id", tokenID))

	cred, err := w.svc.GetCredentialByToken(ctx, tokenID)
	if err != nil {
		return nil, fail(span, err)
	}

	return cred, nil
}

func (w *Wrapper) GetCredentialByID(ctx context.Context, id string) (*canister.Credential, error) {
	ctx, span := w.tracer.Start(ctx, "credential.GetCredentialByID")
	defer span.End()

	span.SetAttributes(attribute.String("credential_id", id))

	cred, err := w.svc.GetCredentialByID(ctx, id)
	if err != nil {
		return nil, fail(span, err)
	}

	return cred, nil
}

func (w *Wrapper) SearchCredentials(ctx context.Context, filter *canister.SearchFilter) ([]canister.Credential, error) {
	ctx, span := w.tracer.Start(ctx, "credential.SearchCredentials")
	defer span.End()

	span.SetAttributes(attributeutil.JSON("filter", filter))

	creds, err := w.svc.SearchCredentials(ctx, filter)
	if err != nil {
		return nil, fail(span, err)
	}

	span.SetAttributes(attribute.Int("count", len(creds)))

	return creds, nil
}

func (w *Wrapper) GetNFT(ctx context.Context, tokenID string) (*canister.NFT, error) {
	ctx, span := w.tracer.Start(ctx, "credential.GetNFT")
	defer span.End()

	span.SetAttributes(attribute.String("token_id", tokenID))

	nft, err := w.svc.GetNFT(ctx, tokenID)
	if err != nil {
		return nil, fail(span, err)
	}

	return nft, nil
}

func (w *Wrapper) GetMyNFTs(ctx context.Context) ([]canister.NFT, error) {
	ctx, span := w.tracer.Start(ctx, "credential.GetMyNFTs")
	defer span.End()

	nfts, err := w.svc.GetMyNFTs(ctx)
	if err != nil {
		return nil, fail(span, err)
	}

	span.SetAttributes(attribute.Int("count", len(nfts)))

	return nfts, nil
}

func (w *Wrapper) RevokeCredential(ctx context.Context, id string) (*canister.Credential, error) {
	ctx, span := w.tracer.Start(ctx, "credential.RevokeCredential")
	defer span.End()

	span.SetAttributes(attribute.String("credential_id", id))

	cred, err := w.svc.RevokeCredential(ctx, id)
	if err != nil {
		return nil, fail(span, err)
	}

	return cred, nil
}

func (w *Wrapper) TransferNFT(ctx context.Context, tokenID string,
	newOwner principal.Principal) (*canister.NFT, error) {
	ctx, span := w.tracer.Start(ctx, "credential.TransferNFT")
	defer span.End()

	span.SetAttributes(attribute.String("token_id", tokenID), attribute.String("new_owner", newOwner.String()))

	nft, err := w.svc.TransferNFT(ctx, tokenID, newOwner)
	if err != nil {
		return nil, fail(span, err)
	}

	return nft, nil
}

func (w *Wrapper) InvalidateCache(ctx context.Context) error {
	ctx, span := w.tracer.Start(ctx, "credential.InvalidateCache")
	defer span.End()

	if err := w.svc.InvalidateCache(ctx); err != nil {
		return fail(span, err)
	}

	return nil
}

func requestAttribute(req *canister.CreateCredentialRequest) attribute.KeyValue {
	return attributeutil.JSON("request", req, attributeutil.WithRedacted("recipientName"))
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}
