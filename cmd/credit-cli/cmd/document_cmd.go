/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const (
	contentTypeFlagName = "content-type"
	outputFlagName      = "output"

	documentFileMode = 0o600
)

func NewDocumentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "document",
		Short: "Upload and fetch supporting documents",
	}

	cmd.AddCommand(newUploadDocumentCommand())
	cmd.AddCommand(newGetDocumentCommand())

	cmd.AddCommand(newServiceCommand("list", "List documents uploaded by the current identity", cobra.NoArgs,
		func(ctx context.Context, cmd *cobra.Command, svc *services, _ []string) error {
			docs, err := svc.documents.ListMine(ctx)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), docs)
		}))

	return cmd
}

func newUploadDocumentCommand() *cobra.Command {
	var contentType string

	cmd := newServiceCommand("upload <file>", "Upload a document and print its hash", cobra.ExactArgs(1),
		func(ctx context.Context, cmd *cobra.Command, svc *services, args []string) error {
			content, err := os.ReadFile(filepath.Clean(args[0]))
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}

			meta, err := svc.documents.Upload(ctx, args[0], contentType, content)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), meta)
		})

	cmd.Flags().StringVar(&contentType, contentTypeFlagName, "",
		"Content type. Detected from the file name or content when empty")

	return cmd
}

func newGetDocumentCommand() *cobra.Command {
	var output string

	cmd := newServiceCommand("get <hash>", "Show document metadata, optionally saving its content",
		cobra.ExactArgs(1),
		func(ctx context.Context, cmd *cobra.Command, svc *services, args []string) error {
			doc, err := svc.documents.Get(ctx, args[0])
			if err != nil {
				return err
			}

			if doc == nil {
				return printJSON(cmd.OutOrStdout(), nil)
			}

			if output != "" {
				if err = os.WriteFile(filepath.Clean(output), doc.Content, documentFileMode); err != nil {
					return fmt.Errorf("write document: %w", err)
				}
			}

			return printJSON(cmd.OutOrStdout(), doc.Metadata)
		})

	cmd.Flags().StringVar(&output, outputFlagName, "", "File to write the document content to")

	return cmd
}
