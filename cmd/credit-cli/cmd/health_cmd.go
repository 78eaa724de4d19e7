/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/dresume/credit/internal/logfields"
	"github.com/dresume/credit/pkg/canister/clientfactory"
)

const waitFlagName = "wait"

var errUnhealthy = errors.New("one or more services are unavailable")

func NewHealthCommand() *cobra.Command {
	var wait time.Duration

	cmd := newServiceCommand("health", "Probe every configured service", cobra.NoArgs,
		func(ctx context.Context, cmd *cobra.Command, svc *services, _ []string) error {
			report, err := waitHealthy(ctx, svc.factory, wait)

			if printErr := printJSON(cmd.OutOrStdout(), report); printErr != nil {
				return printErr
			}

			return err
		})

	cmd.Flags().DurationVar(&wait, waitFlagName, 0,
		"Keep probing with exponential backoff until every service is up or the duration elapses")

	return cmd
}

func waitHealthy(ctx context.Context, factory *clientfactory.Factory,
	wait time.Duration) (*clientfactory.HealthReport, error) {
	var report *clientfactory.HealthReport

	check := func() error {
		report = factory.HealthCheck(ctx)
		if !report.Healthy() {
			return errUnhealthy
		}

		return nil
	}

	if wait <= 0 {
		err := check()

		return report, err
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = wait

	err := backoff.RetryNotify(check, backoff.WithContext(b, ctx),
		func(retryErr error, t time.Duration) {
			logger.Info("Services are not healthy yet, will sleep before trying again.",
				logfields.WithSleep(t), log.WithError(retryErr))
		})
	if err != nil {
		return report, fmt.Errorf("wait for services: %w", err)
	}

	return report, nil
}
