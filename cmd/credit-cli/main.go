/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"fmt"
	"os"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/dresume/credit/cmd/credit-cli/cmd"
)

var logger = log.New("credit-cli")

var Version string // set at build time

func main() {
	rootCmd := cmd.NewRootCommand(Version)

	if err := rootCmd.Execute(); err != nil {
		logger.Debug("Command failed", log.WithError(err))

		fmt.Fprintln(os.Stderr, cmd.FormatError(err))
		os.Exit(1)
	}
}
