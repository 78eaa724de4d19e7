/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/dresume/credit/cmd/common"
	"github.com/dresume/credit/pkg/canister"
	"github.com/dresume/credit/pkg/observability/tracing"
	"github.com/dresume/credit/pkg/principal"
	"github.com/dresume/credit/pkg/session/internetidentity"
	"github.com/dresume/credit/pkg/storage/gcache/credentialcache"
)

// network params
const (
	networkFlagName  = "network"
	networkEnvKey    = "CREDIT_NETWORK"
	networkFlagUsage = "Network to talk to. Possible values: [local, ic] (default: local)." +
		" Selects the default gateway and identity provider URLs." +
		" Alternatively, this can be set with the following environment variable: " + networkEnvKey

	hostFlagName  = "host"
	hostEnvKey    = "CREDIT_HOST"
	hostFlagUsage = "Gateway URL. Overrides the network default." +
		" Alternatively, this can be set with the following environment variable: " + hostEnvKey

	identityProviderURLFlagName  = "identity-provider-url"
	identityProviderURLEnvKey    = "CREDIT_IDENTITY_PROVIDER_URL"
	identityProviderURLFlagUsage = "Identity provider URL. Overrides the network default." +
		" Alternatively, this can be set with the following environment variable: " + identityProviderURLEnvKey

	credentialCanisterFlagName  = "credential-canister-id"
	credentialCanisterEnvKey    = "CREDIT_CREDENTIAL_CANISTER_ID"
	credentialCanisterFlagUsage = "Principal of the credential registry." +
		" Alternatively, this can be set with the following environment variable: " + credentialCanisterEnvKey

	userCanisterFlagName  = "user-canister-id"
	userCanisterEnvKey    = "CREDIT_USER_CANISTER_ID"
	userCanisterFlagUsage = "Principal of the user registry." +
		" Alternatively, this can be set with the following environment variable: " + userCanisterEnvKey

	documentCanisterFlagName  = "document-canister-id"
	documentCanisterEnvKey    = "CREDIT_DOCUMENT_CANISTER_ID"
	documentCanisterFlagUsage = "Principal of the document storage." +
		" Alternatively, this can be set with the following environment variable: " + documentCanisterEnvKey
)

// session params
const (
	demoLoginEnabledFlagName  = "demo-login-enabled"
	demoLoginEnabledEnvKey    = "CREDIT_DEMO_LOGIN_ENABLED"
	demoLoginEnabledFlagUsage = "Allows logging in with a bare principal against simulated services." +
		" Possible values [true] [false]. Defaults to false." +
		" Alternatively, this can be set with the following environment variable: " + demoLoginEnabledEnvKey

	demoAdminsFlagName  = "demo-admin"
	demoAdminsEnvKey    = "CREDIT_DEMO_ADMINS"
	demoAdminsFlagUsage = "Principals treated as administrators by the simulated user registry." +
		" This flag can be repeated, allowing for multiple principals." +
		" Alternatively, this can be set with the following environment variable (in CSV format): " +
		demoAdminsEnvKey

	loginTimeoutFlagName  = "login-timeout"
	loginTimeoutEnvKey    = "CREDIT_LOGIN_TIMEOUT"
	loginTimeoutFlagUsage = "How long to wait for the browser login to complete. Default: 60s." +
		" Alternatively, this can be set with the following environment variable: " + loginTimeoutEnvKey
)

// cache params
const (
	cacheTypeFlagName  = "cache-type"
	cacheTypeEnvKey    = "CREDIT_CACHE_TYPE"
	cacheTypeFlagUsage = "Where \"my credentials\" are cached. Possible values: [memory, redis] (default: memory)." +
		" Alternatively, this can be set with the following environment variable: " + cacheTypeEnvKey

	cacheTTLFlagName  = "cache-ttl"
	cacheTTLEnvKey    = "CREDIT_CACHE_TTL"
	cacheTTLFlagUsage = "How long cached credentials are served. Default: 30s." +
		" Alternatively, this can be set with the following environment variable: " + cacheTTLEnvKey

	redisURLFlagName  = "redis-url"
	redisURLEnvKey    = "CREDIT_REDIS_URL"
	redisURLFlagUsage = "Redis address. This flag can be repeated, allowing for multiple addresses." +
		" Alternatively, this can be set with the following environment variable (in CSV format): " + redisURLEnvKey

	redisPasswordFlagName  = "redis-password"
	redisPasswordEnvKey    = "CREDIT_REDIS_PASSWORD"
	redisPasswordFlagUsage = "Redis password." +
		" Alternatively, this can be set with the following environment variable: " + redisPasswordEnvKey

	redisMasterNameFlagName  = "redis-master-name"
	redisMasterNameEnvKey    = "CREDIT_REDIS_MASTER_NAME"
	redisMasterNameFlagUsage = "Sentinel master name. When set, the addresses are treated as sentinels." +
		" Alternatively, this can be set with the following environment variable: " + redisMasterNameEnvKey

	redisDisableTLSFlagName  = "redis-disable-tls"
	redisDisableTLSEnvKey    = "CREDIT_REDIS_DISABLE_TLS"
	redisDisableTLSFlagUsage = "Connects to Redis without TLS. Possible values [true] [false]. Defaults to false." +
		" Alternatively, this can be set with the following environment variable: " + redisDisableTLSEnvKey
)

// tls params
const (
	tlsSystemCertPoolFlagName  = "tls-systemcertpool"
	tlsSystemCertPoolEnvKey    = "CREDIT_TLS_SYSTEMCERTPOOL"
	tlsSystemCertPoolFlagUsage = "Use system certificate pool." +
		" Possible values [true] [false]. Defaults to true if not set." +
		" Alternatively, this can be set with the following environment variable: " + tlsSystemCertPoolEnvKey

	tlsCACertsFlagName  = "tls-cacerts"
	tlsCACertsEnvKey    = "CREDIT_TLS_CACERTS"
	tlsCACertsFlagUsage = "Comma-Separated list of ca certs path." +
		" Alternatively, this can be set with the following environment variable: " + tlsCACertsEnvKey
)

// observability params
const (
	tracingProviderFlagName  = "tracing-provider"
	tracingProviderEnvKey    = "CREDIT_TRACING_PROVIDER"
	tracingProviderFlagUsage = "Tracing exporter. Possible values: [STDOUT, JAEGER]. Tracing is off when empty." +
		" Alternatively, this can be set with the following environment variable: " + tracingProviderEnvKey

	metricsProviderFlagName  = "metrics-provider"
	metricsProviderEnvKey    = "CREDIT_METRICS_PROVIDER"
	metricsProviderFlagUsage = "Metrics provider. Possible values: [prometheus]. Metrics are off when empty." +
		" Alternatively, this can be set with the following environment variable: " + metricsProviderEnvKey
)

const (
	networkLocal = "local"
	networkIC    = "ic"

	cacheTypeMemory = "memory"
	cacheTypeRedis  = "redis"

	metricsProviderPrometheus = "prometheus"

	defaultTracingServiceName = "credit-cli"
)

type networkDefaults struct {
	host             string
	identityProvider string
}

// nolint:gochecknoglobals
var knownNetworks = map[string]networkDefaults{
	networkLocal: {host: "http://127.0.0.1:4943", identityProvider: "http://127.0.0.1:4943/identity"},
	networkIC:    {host: "https://icp-api.io", identityProvider: "https://identity.ic0.app"},
}

type parameters struct {
	host                string
	identityProviderURL string
	canisterIDs         map[canister.ServiceName]principal.Principal
	demoLoginEnabled    bool
	demoAdmins          []principal.Principal
	loginTimeout        time.Duration
	dbParameters        *common.DBParameters
	cacheParameters     *cacheParameters
	tlsParameters       *tlsParameters
	tracingProvider     tracing.SpanExporterType
	metricsProvider     string
	logLevel            string
}

type cacheParameters struct {
	cacheType       string
	ttl             time.Duration
	redisURLs       []string
	redisPassword   string
	redisMasterName string
	redisDisableTLS bool
}

type tlsParameters struct {
	systemCertPool bool
	caCerts        []string
}

func getParameters(cmd *cobra.Command) (*parameters, error) {
	network, err := cmdutils.GetUserSetVarFromString(cmd, networkFlagName, networkEnvKey, true)
	if err != nil {
		return nil, err
	}

	if network == "" {
		network = networkLocal
	}

	defaults, ok := knownNetworks[network]
	if !ok {
		return nil, fmt.Errorf("unsupported network: %s", network)
	}

	host := cmdutils.GetUserSetOptionalVarFromString(cmd, hostFlagName, hostEnvKey)
	if host == "" {
		host = defaults.host
	}

	identityProviderURL := cmdutils.GetUserSetOptionalVarFromString(cmd, identityProviderURLFlagName,
		identityProviderURLEnvKey)
	if identityProviderURL == "" {
		identityProviderURL = defaults.identityProvider
	}

	canisterIDs, err := getCanisterIDs(cmd)
	if err != nil {
		return nil, err
	}

	demoLoginEnabled, err := getBool(cmd, demoLoginEnabledFlagName, demoLoginEnabledEnvKey, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", demoLoginEnabledFlagName, err)
	}

	var demoAdmins []principal.Principal

	for _, text := range cmdutils.GetUserSetOptionalVarFromArrayString(cmd, demoAdminsFlagName, demoAdminsEnvKey) {
		p, parseErr := principal.FromText(text)
		if parseErr != nil {
			return nil, fmt.Errorf("%s: %w", demoAdminsFlagName, parseErr)
		}

		demoAdmins = append(demoAdmins, p)
	}

	loginTimeout, err := getDuration(cmd, loginTimeoutFlagName, loginTimeoutEnvKey, internetidentity.DefaultTimeout)
	if err != nil {
		return nil, err
	}

	dbParameters, err := common.DBParams(cmd)
	if err != nil {
		return nil, err
	}

	cacheParams, err := getCacheParameters(cmd)
	if err != nil {
		return nil, err
	}

	tlsParams, err := getTLS(cmd)
	if err != nil {
		return nil, err
	}

	tracingProvider := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingProviderFlagName, tracingProviderEnvKey)
	if !tracing.IsExporterSupported(tracingProvider) {
		return nil, fmt.Errorf("unsupported tracing provider: %s", tracingProvider)
	}

	metricsProvider := cmdutils.GetUserSetOptionalVarFromString(cmd, metricsProviderFlagName, metricsProviderEnvKey)
	if metricsProvider != "" && metricsProvider != metricsProviderPrometheus {
		return nil, fmt.Errorf("unsupported metrics provider: %s", metricsProvider)
	}

	return &parameters{
		host:                host,
		identityProviderURL: identityProviderURL,
		canisterIDs:         canisterIDs,
		demoLoginEnabled:    demoLoginEnabled,
		demoAdmins:          demoAdmins,
		loginTimeout:        loginTimeout,
		dbParameters:        dbParameters,
		cacheParameters:     cacheParams,
		tlsParameters:       tlsParams,
		tracingProvider:     tracingProvider,
		metricsProvider:     metricsProvider,
		logLevel:            cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey),
	}, nil
}

func getCanisterIDs(cmd *cobra.Command) (map[canister.ServiceName]principal.Principal, error) {
	flags := map[canister.ServiceName][2]string{
		canister.CredentialService: {credentialCanisterFlagName, credentialCanisterEnvKey},
		canister.UserService:       {userCanisterFlagName, userCanisterEnvKey},
		canister.DocumentService:   {documentCanisterFlagName, documentCanisterEnvKey},
	}

	ids := map[canister.ServiceName]principal.Principal{}

	for service, f := range flags {
		text := cmdutils.GetUserSetOptionalVarFromString(cmd, f[0], f[1])
		if text == "" {
			continue
		}

		id, err := principal.FromText(text)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f[0], err)
		}

		ids[service] = id
	}

	return ids, nil
}

func getCacheParameters(cmd *cobra.Command) (*cacheParameters, error) {
	cacheType := cmdutils.GetUserSetOptionalVarFromString(cmd, cacheTypeFlagName, cacheTypeEnvKey)

	switch cacheType {
	case "":
		cacheType = cacheTypeMemory
	case cacheTypeMemory, cacheTypeRedis:
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cacheType)
	}

	ttl, err := getDuration(cmd, cacheTTLFlagName, cacheTTLEnvKey, credentialcache.DefaultTTL)
	if err != nil {
		return nil, err
	}

	params := &cacheParameters{
		cacheType: cacheType,
		ttl:       ttl,
	}

	if cacheType != cacheTypeRedis {
		return params, nil
	}

	params.redisURLs, err = cmdutils.GetUserSetVarFromArrayString(cmd, redisURLFlagName, redisURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	params.redisPassword = cmdutils.GetUserSetOptionalVarFromString(cmd, redisPasswordFlagName, redisPasswordEnvKey)

	params.redisMasterName = cmdutils.GetUserSetOptionalVarFromString(cmd, redisMasterNameFlagName,
		redisMasterNameEnvKey)

	params.redisDisableTLS, err = getBool(cmd, redisDisableTLSFlagName, redisDisableTLSEnvKey, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", redisDisableTLSFlagName, err)
	}

	return params, nil
}

func getTLS(cmd *cobra.Command) (*tlsParameters, error) {
	systemCertPool, err := getBool(cmd, tlsSystemCertPoolFlagName, tlsSystemCertPoolEnvKey, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tlsSystemCertPoolFlagName, err)
	}

	return &tlsParameters{
		systemCertPool: systemCertPool,
		caCerts:        cmdutils.GetUserSetOptionalVarFromArrayString(cmd, tlsCACertsFlagName, tlsCACertsEnvKey),
	}, nil
}

func getBool(cmd *cobra.Command, flagName, envKey string, defaultValue bool) (bool, error) {
	s := cmdutils.GetUserSetOptionalVarFromString(cmd, flagName, envKey)
	if s == "" {
		return defaultValue, nil
	}

	return strconv.ParseBool(s)
}

func getDuration(cmd *cobra.Command, flagName, envKey string,
	defaultDuration time.Duration) (time.Duration, error) {
	timeoutStr, err := cmdutils.GetUserSetVarFromString(cmd, flagName, envKey, true)
	if err != nil {
		return -1, err
	}

	if timeoutStr == "" {
		return defaultDuration, nil
	}

	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return -1, fmt.Errorf("invalid value [%s]: %w", timeoutStr, err)
	}

	return timeout, nil
}

func createFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(networkFlagName, "", "", networkFlagUsage)
	cmd.Flags().StringP(hostFlagName, "", "", hostFlagUsage)
	cmd.Flags().StringP(identityProviderURLFlagName, "", "", identityProviderURLFlagUsage)
	cmd.Flags().StringP(credentialCanisterFlagName, "", "", credentialCanisterFlagUsage)
	cmd.Flags().StringP(userCanisterFlagName, "", "", userCanisterFlagUsage)
	cmd.Flags().StringP(documentCanisterFlagName, "", "", documentCanisterFlagUsage)
	cmd.Flags().StringP(demoLoginEnabledFlagName, "", "", demoLoginEnabledFlagUsage)
	cmd.Flags().StringArrayP(demoAdminsFlagName, "", []string{}, demoAdminsFlagUsage)
	cmd.Flags().StringP(loginTimeoutFlagName, "", "", loginTimeoutFlagUsage)
	cmd.Flags().StringP(cacheTypeFlagName, "", "", cacheTypeFlagUsage)
	cmd.Flags().StringP(cacheTTLFlagName, "", "", cacheTTLFlagUsage)
	cmd.Flags().StringArrayP(redisURLFlagName, "", []string{}, redisURLFlagUsage)
	cmd.Flags().StringP(redisPasswordFlagName, "", "", redisPasswordFlagUsage)
	cmd.Flags().StringP(redisMasterNameFlagName, "", "", redisMasterNameFlagUsage)
	cmd.Flags().StringP(redisDisableTLSFlagName, "", "", redisDisableTLSFlagUsage)
	cmd.Flags().StringP(tlsSystemCertPoolFlagName, "", "", tlsSystemCertPoolFlagUsage)
	cmd.Flags().StringArrayP(tlsCACertsFlagName, "", []string{}, tlsCACertsFlagUsage)
	cmd.Flags().StringP(tracingProviderFlagName, "", "", tracingProviderFlagUsage)
	cmd.Flags().StringP(metricsProviderFlagName, "", "", metricsProviderFlagUsage)
	cmd.Flags().StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "", common.LogLevelPrefixFlagUsage)

	common.Flags(cmd)
}
