/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trustbloc/logutil-go/pkg/log"
)

var logger = log.New("common-test")

func TestSetLogLevels(t *testing.T) {
	t.Cleanup(func() { log.SetLevel("", log.INFO) })

	t.Run("default only", func(t *testing.T) {
		SetLogLevels(logger, "DEBUG")

		require.Equal(t, log.DEBUG, log.GetLevel(""))
	})

	t.Run("module and default", func(t *testing.T) {
		SetLogLevels(logger, "credential-service=WARNING:ERROR")

		require.Equal(t, log.ERROR, log.GetLevel(""))
		require.Equal(t, log.WARNING, log.GetLevel("credential-service"))
	})

	t.Run("invalid level", func(t *testing.T) {
		log.SetLevel("", log.ERROR)

		SetLogLevels(logger, "mango")

		require.Equal(t, log.INFO, log.GetLevel(""))
	})
}
