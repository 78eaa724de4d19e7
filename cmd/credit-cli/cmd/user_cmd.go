/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dresume/credit/pkg/canister"
	"github.com/dresume/credit/pkg/clienterr"
)

const (
	emailFlagName        = "email"
	roleFlagName         = "role"
	organizationFlagName = "organization"
)

func NewUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Register and manage user profiles",
	}

	cmd.AddCommand(newRegisterUserCommand())

	cmd.AddCommand(newServiceCommand("profile", "Show the profile of the current identity", cobra.NoArgs,
		func(ctx context.Context, cmd *cobra.Command, svc *services, _ []string) error {
			u, err := svc.users.GetMyProfile(ctx)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), u)
		}))

	cmd.AddCommand(newServiceCommand("get <principal>", "Show a user", cobra.ExactArgs(1),
		func(ctx context.Context, cmd *cobra.Command, svc *services, args []string) error {
			id, err := parsePrincipal("principal", args[0])
			if err != nil {
				return err
			}

			u, err := svc.users.GetUser(ctx, id)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), u)
		}))

	cmd.AddCommand(newServiceCommand("list", "List every registered user", cobra.NoArgs,
		func(ctx context.Context, cmd *cobra.Command, svc *services, _ []string) error {
			users, err := svc.users.GetAllUsers(ctx)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), users)
		}))

	cmd.AddCommand(newServiceCommand("set-status <principal> <status>",
		"Set the verification status of a user: Pending, UnderReview, Approved or Rejected", cobra.ExactArgs(2),
		func(ctx context.Context, cmd *cobra.Command, svc *services, args []string) error {
			id, err := parsePrincipal("principal", args[0])
			if err != nil {
				return err
			}

			status, err := canister.ParseVerificationStatus(args[1])
			if err != nil {
				return clienterr.NewCustomError(clienterr.InvalidInput, err)
			}

			u, err := svc.users.UpdateVerificationStatus(ctx, id, status)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), u)
		}))

	cmd.AddCommand(newServiceCommand("is-admin", "Report whether the current identity is an administrator",
		cobra.NoArgs,
		func(ctx context.Context, cmd *cobra.Command, svc *services, _ []string) error {
			admin, err := svc.users.IsAdmin(ctx)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), map[string]bool{"admin": admin})
		}))

	return cmd
}

func newRegisterUserCommand() *cobra.Command {
	var email, role, organization string

	cmd := newServiceCommand("register", "Register the current identity", cobra.NoArgs,
		func(ctx context.Context, cmd *cobra.Command, svc *services, _ []string) error {
			userRole, err := canister.ParseUserRole(role)
			if err != nil {
				return clienterr.NewCustomError(clienterr.InvalidInput, err)
			}

			var org *string
			if organization != "" {
				org = &organization
			}

			u, err := svc.users.RegisterUser(ctx, email, userRole, org)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), u)
		})

	cmd.Flags().StringVar(&email, emailFlagName, "", "Contact email")
	cmd.Flags().StringVar(&role, roleFlagName, "",
		"Role: Individual, Educational, Company, CertificationBody, NGO or Platform")
	cmd.Flags().StringVar(&organization, organizationFlagName, "", "Organization name")

	return cmd
}
