/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexliesenfeld/health"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/dresume/credit/internal/logfields"
	"github.com/dresume/credit/pkg/observability/health/healthutil"
	"github.com/dresume/credit/pkg/observability/metrics/prometheus"
	"github.com/dresume/credit/pkg/restapi/v1/diagnostics"
)

const (
	listenAddrFlagName = "listen-addr"
	defaultListenAddr  = "127.0.0.1:8048"

	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

func NewServeCommand(version string) *cobra.Command {
	var listenAddr string

	cmd := newServiceCommand("serve", "Serve health, version, log level and metrics endpoints", cobra.NoArgs,
		func(ctx context.Context, _ *cobra.Command, svc *services, _ []string) error {
			e, err := newDiagnosticsRouter(svc, version)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              listenAddr,
				Handler:           e,
				ReadHeaderTimeout: readHeaderTimeout,
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			go func() {
				<-ctx.Done()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()

				if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
					logger.Warn("Failed to shut down diagnostics server", log.WithError(shutdownErr))
				}
			}()

			logger.Info("Starting diagnostics server", logfields.WithHostURL(listenAddr))

			if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve diagnostics: %w", err)
			}

			return nil
		})

	cmd.Flags().StringVar(&listenAddr, listenAddrFlagName, defaultListenAddr, "Address to serve diagnostics on")

	return cmd
}

func newDiagnosticsRouter(svc *services, version string) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	responseTimes := healthutil.NewResponseTimes()

	opts := []health.CheckerOption{health.WithInterceptors(responseTimes.Interceptor())}

	if svc.redisClient != nil {
		opts = append(opts, health.WithCheck(health.Check{
			Name:  "redis",
			Check: svc.redisClient.Ping,
		}))
	}

	if svc.params.metricsProvider == metricsProviderPrometheus {
		if err := prometheus.NewPrometheusProvider(e).Create(); err != nil {
			return nil, fmt.Errorf("create metrics provider: %w", err)
		}
	}

	diagnostics.NewController(e, &diagnostics.Config{
		Checker:       svc.factory.Checker(opts...),
		ResponseTimes: responseTimes,
		Version:       version,
	})

	return e, nil
}
