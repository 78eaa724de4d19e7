/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/dresume/credit/pkg/clienterr"
)

type runFunc func(ctx context.Context, cmd *cobra.Command, svc *services, args []string) error

// NewRootCommand returns the credit-cli command tree.
func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "credit-cli",
		Short:         "Credential registry client",
		Long:          "credit-cli issues, looks up and manages credentials, user profiles and documents.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(NewLoginCommand())
	rootCmd.AddCommand(NewLoginDemoCommand())
	rootCmd.AddCommand(NewLogoutCommand())
	rootCmd.AddCommand(NewWhoAmICommand())
	rootCmd.AddCommand(NewCredentialCommand())
	rootCmd.AddCommand(NewNFTCommand())
	rootCmd.AddCommand(NewUserCommand())
	rootCmd.AddCommand(NewDocumentCommand())
	rootCmd.AddCommand(NewHealthCommand())
	rootCmd.AddCommand(NewServeCommand(version))

	return rootCmd
}

// FormatError renders err with its code and a hint when it carries one.
func FormatError(err error) string {
	msg, code, component := clienterr.GetErrorDetails(err)
	if code == "" {
		return "Error: " + msg
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Error [%s]", code)

	if component != "" {
		fmt.Fprintf(&b, " %s", component)
	}

	fmt.Fprintf(&b, ": %s", msg)

	var ce *clienterr.CustomError
	if errors.As(err, &ce) && ce.Hint() != "" {
		fmt.Fprintf(&b, "\nHint: %s", ce.Hint())
	}

	return b.String()
}

func newServiceCommand(use, short string, args cobra.PositionalArgs, run runFunc) *cobra.Command {
	c := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := getParameters(cmd)
			if err != nil {
				return err
			}

			svc, err := initServices(cmd.Context(), params, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			defer svc.Close()

			runErr := run(cmd.Context(), cmd, svc, args)

			if saveErr := svc.saveDemoNetwork(); saveErr != nil {
				if runErr == nil {
					return saveErr
				}

				logger.Warn("Failed to save demo network", log.WithError(saveErr))
			}

			return runErr
		},
	}

	createFlags(c)

	return c
}

func printJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}
