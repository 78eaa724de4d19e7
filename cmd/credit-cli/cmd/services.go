/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/hyperledger/aries-framework-go/spi/storage"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel"

	"github.com/dresume/credit/cmd/common"
	"github.com/dresume/credit/internal/logfields"
	tlsutil "github.com/dresume/credit/internal/pkg/utils/tls"
	"github.com/dresume/credit/pkg/canister"
	"github.com/dresume/credit/pkg/canister/clientfactory"
	"github.com/dresume/credit/pkg/canister/simulator"
	"github.com/dresume/credit/pkg/observability/metrics"
	"github.com/dresume/credit/pkg/observability/metrics/noop"
	"github.com/dresume/credit/pkg/observability/metrics/prometheus"
	"github.com/dresume/credit/pkg/observability/tracing"
	credentialtracing "github.com/dresume/credit/pkg/observability/tracing/wrappers/credential"
	"github.com/dresume/credit/pkg/service/credential"
	"github.com/dresume/credit/pkg/service/document"
	"github.com/dresume/credit/pkg/service/userprofile"
	"github.com/dresume/credit/pkg/session"
	"github.com/dresume/credit/pkg/session/demo"
	"github.com/dresume/credit/pkg/session/internetidentity"
	"github.com/dresume/credit/pkg/storage/gcache/credentialcache"
	"github.com/dresume/credit/pkg/storage/redis"
	"github.com/dresume/credit/pkg/storage/redis/credentialcachestore"
	"github.com/dresume/credit/pkg/storage/sessionstore"
)

var logger = log.New("credit-cli")

type credentialCache interface {
	Get(ctx context.Context, key string) ([]canister.Credential, bool, error)
	Set(ctx context.Context, key string, creds []canister.Credential) error
	Delete(ctx context.Context, key string) error
}

// services is the object graph shared by every command.
type services struct {
	params      *parameters
	sessions    *session.Manager
	factory     *clientfactory.Factory
	credentials credential.ServiceInterface
	users       *userprofile.Service
	documents   *document.Service
	metrics     metrics.Metrics
	redisClient *redis.Client
	store       *sessionstore.Store
	demoNetwork *simulator.Network

	closers []func()
}

// nolint:funlen
func initServices(ctx context.Context, params *parameters, out io.Writer) (*services, error) {
	if params.logLevel != "" {
		common.SetLogLevels(logger, params.logLevel)
	}

	svc := &services{
		params:  params,
		metrics: noop.GetMetrics(),
	}

	if params.metricsProvider == metricsProviderPrometheus {
		svc.metrics = prometheus.GetMetrics()
	}

	shutdownTracing, tracer, err := tracing.Initialize(params.tracingProvider, defaultTracingServiceName)
	if err != nil {
		return nil, fmt.Errorf("initialize tracing: %w", err)
	}

	svc.closers = append(svc.closers, shutdownTracing)

	tlsConfig, err := tlsutil.NewConfig(params.tlsParameters.systemCertPool, params.tlsParameters.caCerts)
	if err != nil {
		svc.Close()

		return nil, fmt.Errorf("init tls: %w", err)
	}

	storeProvider, err := common.InitStore(params.dbParameters, logger)
	if err != nil {
		svc.Close()

		return nil, err
	}

	svc.closers = append(svc.closers, func() { closeProvider(storeProvider) })

	store, err := sessionstore.New(storeProvider)
	if err != nil {
		svc.Close()

		return nil, err
	}

	svc.store = store

	realProvider, err := internetidentity.New(&internetidentity.Config{
		ProviderURL: params.identityProviderURL,
		Store:       store,
		Timeout:     params.loginTimeout,
		Out:         out,
	})
	if err != nil {
		svc.Close()

		return nil, err
	}

	sessionConfig := &session.Config{
		Provider: realProvider,
		Metrics:  svc.metrics,
	}

	if params.demoLoginEnabled {
		sessionConfig.DemoProvider = demo.New(&demo.Config{Store: store})
	}

	svc.sessions, err = session.New(sessionConfig)
	if err != nil {
		svc.Close()

		return nil, err
	}

	svc.demoNetwork = simulator.New(&simulator.Config{
		Admins: params.demoAdmins,
	})

	if err = svc.loadDemoNetwork(); err != nil {
		svc.Close()

		return nil, err
	}

	svc.factory = clientfactory.New(&clientfactory.Config{
		Host:        params.host,
		CanisterIDs: params.canisterIDs,
		Network:     svc.demoNetwork,
		HTTPClient: &http.Client{
			Transport: svc.metrics.InstrumentHTTPTransport(metrics.ClientCanisterAgent,
				&http.Transport{TLSClientConfig: tlsConfig}),
		},
		Metrics: svc.metrics,
	})

	cache, err := svc.initCache(params, tlsConfig)
	if err != nil {
		svc.Close()

		return nil, err
	}

	svc.credentials = credentialtracing.Wrap(credential.New(&credential.Config{
		Sessions: svc.sessions,
		Clients:  svc.factory,
		Cache:    cache,
		Metrics:  svc.metrics,
	}), tracer)

	svc.users = userprofile.New(&userprofile.Config{
		Sessions: svc.sessions,
		Clients:  svc.factory,
	})

	svc.documents = document.New(&document.Config{
		Sessions: svc.sessions,
		Clients:  svc.factory,
	})

	s := svc.sessions.Refresh(ctx)
	if refreshErr := svc.sessions.Err(); refreshErr != nil {
		logger.Warn("Session restored with errors", log.WithError(refreshErr))
	}

	logger.Debug("Services initialized", logfields.WithSessionState(s.State.String()))

	return svc, nil
}

func (s *services) initCache(params *parameters, tlsConfig *tls.Config) (credentialCache, error) {
	cp := params.cacheParameters

	if cp.cacheType != cacheTypeRedis {
		return credentialcache.New(credentialcache.WithTTL(cp.ttl)), nil
	}

	opts := []redis.ClientOpt{
		redis.WithPassword(cp.redisPassword),
		redis.WithMasterName(cp.redisMasterName),
	}

	if !cp.redisDisableTLS {
		opts = append(opts, redis.WithTLSConfig(tlsConfig))
	}

	if params.tracingProvider != tracing.None {
		opts = append(opts, redis.WithTraceProvider(otel.GetTracerProvider()))
	}

	client, err := redis.New(cp.redisURLs, opts...)
	if err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	s.redisClient = client
	s.closers = append(s.closers, func() {
		if closeErr := client.Close(); closeErr != nil {
			logger.Warn("Failed to close redis client", log.WithError(closeErr))
		}
	})

	return credentialcachestore.New(client, cp.ttl), nil
}

// loadDemoNetwork restores the demo network saved by a previous command. A snapshot that
// cannot be decoded or restored is discarded and the network starts empty.
func (s *services) loadDemoNetwork() error {
	snapshot, err := s.store.LoadDemoNetwork()
	if errors.Is(err, sessionstore.ErrNotFound) {
		return nil
	}

	if err == nil {
		err = s.demoNetwork.Restore(snapshot)
	}

	if err != nil {
		logger.Warn("Discarding saved demo network", log.WithError(err))

		if deleteErr := s.store.DeleteDemoNetwork(); deleteErr != nil {
			return fmt.Errorf("delete demo network: %w", deleteErr)
		}
	}

	return nil
}

// saveDemoNetwork persists the demo network when the command changed it.
func (s *services) saveDemoNetwork() error {
	if s.demoNetwork == nil || s.demoNetwork.Version() == 0 {
		return nil
	}

	snapshot, err := s.demoNetwork.Snapshot()
	if err != nil {
		return fmt.Errorf("snapshot demo network: %w", err)
	}

	if err = s.store.SaveDemoNetwork(snapshot); err != nil {
		return fmt.Errorf("save demo network: %w", err)
	}

	return nil
}

// Close releases every resource opened by initServices, in reverse order.
func (s *services) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}

	s.closers = nil
}

func closeProvider(p storage.Provider) {
	if err := p.Close(); err != nil {
		logger.Warn("Failed to close storage provider", log.WithError(err))
	}
}
