/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func NewNFTCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nft",
		Short: "Inspect and transfer credential tokens",
	}

	cmd.AddCommand(newServiceCommand("get <token-id>", "Show a token", cobra.ExactArgs(1),
		func(ctx context.Context, cmd *cobra.Command, svc *services, args []string) error {
			nft, err := svc.credentials.GetNFT(ctx, args[0])
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), nft)
		}))

	cmd.AddCommand(newServiceCommand("list", "List tokens owned by the current identity", cobra.NoArgs,
		func(ctx context.Context, cmd *cobra.Command, svc *services, _ []string) error {
			nfts, err := svc.credentials.GetMyNFTs(ctx)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), nfts)
		}))

	cmd.AddCommand(newServiceCommand("transfer <token-id> <new-owner>", "Transfer a token to another principal",
		cobra.ExactArgs(2),
		func(ctx context.Context, cmd *cobra.Command, svc *services, args []string) error {
			newOwner, err := parsePrincipal("new-owner", args[1])
			if err != nil {
				return err
			}

			nft, err := svc.credentials.TransferNFT(ctx, args[0], newOwner)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), nft)
		}))

	return cmd
}
