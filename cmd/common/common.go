/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/dresume/credit/internal/logfields"
)

const (
	// LogLevelFlagName is the flag name used for setting log levels.
	LogLevelFlagName = "log-level"
	// LogLevelEnvKey is the env var name used for setting log levels.
	LogLevelEnvKey = "LOG_LEVEL"
	// LogLevelFlagShorthand is the shorthand flag name used for setting log levels.
	LogLevelFlagShorthand = "l"
	// LogLevelPrefixFlagUsage is the usage text for the log level flag.
	LogLevelPrefixFlagUsage = "Logging levels per module plus a default, in the form" +
		" module1=level1:module2=level2:defaultLevel." +
		" Supported levels are: CRITICAL, ERROR, WARNING, INFO, DEBUG." +
		" Example: session-manager=DEBUG:credential-service=WARNING:INFO. Defaults to INFO." +
		" Alternatively, this can be set with the following environment variable: " + LogLevelEnvKey
)

// SetLogLevels applies a log level spec. An invalid spec resets every module to INFO.
func SetLogLevels(logger *log.Log, spec string) {
	if err := log.SetSpec(spec); err != nil {
		logger.Warn("Invalid log level spec, defaulting to INFO",
			logfields.WithUserLogLevel(spec), log.WithError(err))

		log.SetLevel("", log.INFO)

		return
	}

	if log.GetLevel("") == log.DEBUG {
		logger.Info("Default log level is DEBUG, output may be verbose")
	}
}
