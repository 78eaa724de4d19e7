/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dresume/credit/pkg/canister"
	"github.com/dresume/credit/pkg/clienterr"
	"github.com/dresume/credit/pkg/principal"
)

const (
	credentialTypeFlagName = "type"
	titleFlagName          = "title"
	descriptionFlagName    = "description"
	recipientFlagName      = "recipient"
	recipientNameFlagName  = "recipient-name"
	expiresAtFlagName      = "expires-at"
	metadataFlagName       = "metadata"
	documentHashFlagName   = "document-hash"
	issuerRoleFlagName     = "issuer-role"
	issuerFlagName         = "issuer"
	revokedFlagName        = "revoked"
	issuedAfterFlagName    = "issued-after"
	issuedBeforeFlagName   = "issued-before"
	refreshFlagName        = "refresh"
)

type credentialRequestFlags struct {
	credentialType string
	title          string
	description    string
	recipient      string
	recipientName  string
	expiresAt      string
	metadata       []string
	documentHash   string
}

func (f *credentialRequestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.credentialType, credentialTypeFlagName, "",
		"Credential type: Skill, Academic, Achievement, Professional, Certification, WorkExperience or Other:<label>")
	cmd.Flags().StringVar(&f.title, titleFlagName, "", "Credential title")
	cmd.Flags().StringVar(&f.description, descriptionFlagName, "", "Credential description")
	cmd.Flags().StringVar(&f.recipient, recipientFlagName, "", "Recipient identifier")
	cmd.Flags().StringVar(&f.recipientName, recipientNameFlagName, "", "Recipient display name")
	cmd.Flags().StringVar(&f.expiresAt, expiresAtFlagName, "", "Expiry time in RFC 3339 format")
	cmd.Flags().StringArrayVar(&f.metadata, metadataFlagName, []string{},
		"Metadata pair in key=value form. This flag can be repeated")
	cmd.Flags().StringVar(&f.documentHash, documentHashFlagName, "", "Hash of an uploaded supporting document")
}

func (f *credentialRequestFlags) request() (*canister.CreateCredentialRequest, error) {
	credentialType, err := canister.ParseCredentialType(f.credentialType)
	if err != nil {
		return nil, clienterr.NewCustomError(clienterr.InvalidInput, err)
	}

	req := &canister.CreateCredentialRequest{
		CredentialType: credentialType,
		Title:          f.title,
		Description:    f.description,
		Recipient:      f.recipient,
		RecipientName:  f.recipientName,
		Metadata:       canister.Metadata{},
	}

	if f.expiresAt != "" {
		expiresAt, parseErr := parseTime(expiresAtFlagName, f.expiresAt)
		if parseErr != nil {
			return nil, parseErr
		}

		req.ExpiresAt = expiresAt
	}

	for _, pair := range f.metadata {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, clienterr.NewValidationError("%s: expected key=value, got %q", metadataFlagName, pair)
		}

		req.Metadata = req.Metadata.With(key, value)
	}

	if f.documentHash != "" {
		hash := f.documentHash
		req.DocumentHash = &hash
	}

	return req, nil
}

func NewCredentialCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credential",
		Short: "Issue, look up and revoke credentials",
	}

	cmd.AddCommand(newCreateCredentialCommand())
	cmd.AddCommand(newCreateSoulBoundTokenCommand())
	cmd.AddCommand(newGetCredentialCommand())
	cmd.AddCommand(newGetCredentialByTokenCommand())
	cmd.AddCommand(newListMyCredentialsCommand())
	cmd.AddCommand(newListIssuedCredentialsCommand())
	cmd.AddCommand(newSearchCredentialsCommand())
	cmd.AddCommand(newRevokeCredentialCommand())

	return cmd
}

func newCreateCredentialCommand() *cobra.Command {
	flags := &credentialRequestFlags{}

	cmd := newServiceCommand("create", "Issue a credential and its token", cobra.NoArgs,
		func(ctx context.Context, cmd *cobra.Command, svc *services, _ []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}

			result, err := svc.credentials.CreateCredential(ctx, req)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), result)
		})

	flags.register(cmd)

	return cmd
}

func newCreateSoulBoundTokenCommand() *cobra.Command {
	flags := &credentialRequestFlags{}

	var issuerRole string

	cmd := newServiceCommand("sbt", "Issue a non-transferable credential token", cobra.NoArgs,
		func(ctx context.Context, cmd *cobra.Command, svc *services, _ []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}

			role, err := canister.ParseUserRole(issuerRole)
			if err != nil {
				return clienterr.NewCustomError(clienterr.InvalidInput, err)
			}

			result, err := svc.credentials.CreateSoulBoundToken(ctx, req, role)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), result)
		})

	flags.register(cmd)
	cmd.Flags().StringVar(&issuerRole, issuerRoleFlagName, "",
		"Role of the issuer: Individual, Educational, Company, CertificationBody, NGO or Platform")

	return cmd
}

func newGetCredentialCommand() *cobra.Command {
	return newServiceCommand("get <id>", "Show a credential by id", cobra.ExactArgs(1),
		func(ctx context.Context, cmd *cobra.Command, svc *services, args []string) error {
			c, err := svc.credentials.GetCredentialByID(ctx, args[0])
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), c)
		})
}

func newGetCredentialByTokenCommand() *cobra.Command {
	return newServiceCommand("token <token-id>", "Show a credential by token id", cobra.ExactArgs(1),
		func(ctx context.Context, cmd *cobra.Command, svc *services, args []string) error {
			c, err := svc.credentials.GetCredentialByToken(ctx, args[0])
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), c)
		})
}

func newListMyCredentialsCommand() *cobra.Command {
	var refresh bool

	cmd := newServiceCommand("list", "List credentials issued to or by the current identity", cobra.NoArgs,
		func(ctx context.Context, cmd *cobra.Command, svc *services, _ []string) error {
			if refresh {
				if err := svc.credentials.InvalidateCache(ctx); err != nil {
					return err
				}
			}

			creds, err := svc.credentials.GetMyCredentials(ctx)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), creds)
		})

	cmd.Flags().BoolVar(&refresh, refreshFlagName, false, "Bypass the credential cache")

	return cmd
}

func newListIssuedCredentialsCommand() *cobra.Command {
	var issuer string

	cmd := newServiceCommand("issued", "List credentials issued by a principal", cobra.NoArgs,
		func(ctx context.Context, cmd *cobra.Command, svc *services, _ []string) error {
			var p *principal.Principal

			if issuer != "" {
				parsed, err := parsePrincipal(issuerFlagName, issuer)
				if err != nil {
					return err
				}

				p = &parsed
			}

			creds, err := svc.credentials.GetCredentialsByIssuer(ctx, p)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), creds)
		})

	cmd.Flags().StringVar(&issuer, issuerFlagName, "", "Issuer principal. Defaults to the current identity")

	return cmd
}

func newSearchCredentialsCommand() *cobra.Command {
	var issuer, recipient, credentialType, revoked, issuedAfter, issuedBefore string

	cmd := newServiceCommand("search", "Search credentials. Every set filter must match", cobra.NoArgs,
		func(ctx context.Context, cmd *cobra.Command, svc *services, _ []string) error {
			filter := &canister.SearchFilter{}

			if issuer != "" {
				p, err := parsePrincipal(issuerFlagName, issuer)
				if err != nil {
					return err
				}

				filter.Issuer = &p
			}

			if recipient != "" {
				filter.Recipient = &recipient
			}

			if credentialType != "" {
				t, err := canister.ParseCredentialType(credentialType)
				if err != nil {
					return clienterr.NewCustomError(clienterr.InvalidInput, err)
				}

				filter.CredentialType = &t
			}

			if revoked != "" {
				b, err := strconv.ParseBool(revoked)
				if err != nil {
					return clienterr.NewValidationError("%s: %s", revokedFlagName, err)
				}

				filter.IsRevoked = &b
			}

			var err error

			if issuedAfter != "" {
				if filter.IssuedAfter, err = parseTime(issuedAfterFlagName, issuedAfter); err != nil {
					return err
				}
			}

			if issuedBefore != "" {
				if filter.IssuedBefore, err = parseTime(issuedBeforeFlagName, issuedBefore); err != nil {
					return err
				}
			}

			creds, err := svc.credentials.SearchCredentials(ctx, filter)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), creds)
		})

	cmd.Flags().StringVar(&issuer, issuerFlagName, "", "Issuer principal")
	cmd.Flags().StringVar(&recipient, recipientFlagName, "", "Recipient identifier")
	cmd.Flags().StringVar(&credentialType, credentialTypeFlagName, "", "Credential type")
	cmd.Flags().StringVar(&revoked, revokedFlagName, "", "Revocation state [true] [false]")
	cmd.Flags().StringVar(&issuedAfter, issuedAfterFlagName, "", "Issued at or after, RFC 3339")
	cmd.Flags().StringVar(&issuedBefore, issuedBeforeFlagName, "", "Issued at or before, RFC 3339")

	return cmd
}

func newRevokeCredentialCommand() *cobra.Command {
	return newServiceCommand("revoke <id>", "Revoke a credential issued by the current identity", cobra.ExactArgs(1),
		func(ctx context.Context, cmd *cobra.Command, svc *services, args []string) error {
			c, err := svc.credentials.RevokeCredential(ctx, args[0])
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), c)
		})
}

func parsePrincipal(flagName, text string) (principal.Principal, error) {
	p, err := principal.FromText(text)
	if err != nil {
		return principal.Principal{}, clienterr.NewCustomError(clienterr.InvalidInput,
			fmt.Errorf("%s: %w", flagName, err))
	}

	return p, nil
}

func parseTime(flagName, text string) (*canister.Time, error) {
	t, err := time.Parse(time.RFC3339, text)
	if err != nil {
		return nil, clienterr.NewCustomError(clienterr.InvalidInput, fmt.Errorf("%s: %w", flagName, err))
	}

	ct := canister.NewTime(t)

	return &ct, nil
}
