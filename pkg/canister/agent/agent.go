/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/dresume/credit/internal/logfields"
	"github.com/dresume/credit/pkg/canister"
	"github.com/dresume/credit/pkg/clienterr"
	"github.com/dresume/credit/pkg/identity"
	"github.com/dresume/credit/pkg/observability/metrics"
	"github.com/dresume/credit/pkg/observability/metrics/noop"
	"github.com/dresume/credit/pkg/principal"
)

var logger = log.New("canister-agent")

const (
	defaultIngressExpiry = 4 * time.Minute
	// Fits a base64-encoded 10 MiB document plus its envelope.
	defaultMaxResponseSize = 32 << 20

	requestTypeQuery     = "query"
	requestTypeCall      = "call"
	requestTypeReadState = "read_state"

	statusReplied  = "replied"
	statusRejected = "rejected"
)

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds the agent configuration.
type Config struct {
	Host          string
	Identity      identity.Identity
	HTTPClient    httpClient
	Metrics       metrics.Metrics
	IngressExpiry time.Duration
	// Service labels metrics and logs.
	Service canister.ServiceName
	Clock   func() time.Time
	// MaxResponseSize caps the bytes read from a gateway reply. Defaults to 32 MiB.
	MaxResponseSize int64
}

// Agent sends signed requests to a canister gateway on behalf of one identity.
type Agent struct {
	host          string
	identity      identity.Identity
	client        httpClient
	metrics       metrics.Metrics
	ingressExpiry time.Duration
	service       string
	now           func() time.Time
	maxResponse   int64
}

// New returns a new Agent.
func New(config *Config) (*Agent, error) {
	if config.Host == "" {
		return nil, errors.New("agent host is required")
	}

	a := &Agent{
		host:          strings.TrimSuffix(config.Host, "/"),
		identity:      config.Identity,
		client:        config.HTTPClient,
		metrics:       config.Metrics,
		ingressExpiry: config.IngressExpiry,
		service:       string(config.Service),
		now:           config.Clock,
		maxResponse:   config.MaxResponseSize,
	}

	if a.identity == nil {
		a.identity = identity.AnonymousIdentity{}
	}

	if a.metrics == nil {
		a.metrics = noop.GetMetrics()
	}

	if a.client == nil {
		a.client = &http.Client{
			Transport: a.metrics.InstrumentHTTPTransport(metrics.ClientCanisterAgent, http.DefaultTransport),
		}
	}

	if a.ingressExpiry <= 0 {
		a.ingressExpiry = defaultIngressExpiry
	}

	if a.now == nil {
		a.now = time.Now
	}

	if a.maxResponse <= 0 {
		a.maxResponse = defaultMaxResponseSize
	}

	return a, nil
}

// Identity returns the identity the agent signs with.
func (a *Agent) Identity() identity.Identity {
	return a.identity
}

// Host returns the gateway URL.
func (a *Agent) Host() string {
	return a.host
}

type content struct {
	RequestType   string          `json:"request_type"`
	CanisterID    string          `json:"canister_id"`
	MethodName    string          `json:"method_name,omitempty"`
	Arg           json.RawMessage `json:"arg,omitempty"`
	Paths         [][]string      `json:"paths,omitempty"`
	Sender        string          `json:"sender"`
	Nonce         string          `json:"nonce"`
	IngressExpiry int64           `json:"ingress_expiry"`
}

type envelope struct {
	Content          *content                  `json:"content"`
	SenderPubKey     []byte                    `json:"sender_pubkey,omitempty"`
	SenderSig        string                    `json:"sender_sig,omitempty"`
	SenderDelegation *identity.DelegationChain `json:"sender_delegation,omitempty"`
}

// Query performs a read-only call and decodes the reply into result.
func (a *Agent) Query(ctx context.Context, canisterID principal.Principal, method string,
	args []interface{}, result interface{}) error {
	return a.invoke(ctx, requestTypeQuery, canisterID, method, args, result)
}

// Call performs an update call and decodes the reply into result.
func (a *Agent) Call(ctx context.Context, canisterID principal.Principal, method string,
	args []interface{}, result interface{}) error {
	return a.invoke(ctx, requestTypeCall, canisterID, method, args, result)
}

// ReadState requests the module hash of the canister. A nil error means the gateway
// answered for that canister.
func (a *Agent) ReadState(ctx context.Context, canisterID principal.Principal) error {
	c := &content{
		RequestType: requestTypeReadState,
		CanisterID:  canisterID.String(),
		Paths:       [][]string{{"canister", canisterID.String(), "module_hash"}},
	}

	_, err := a.send(ctx, c)
	if err != nil {
		return clienterr.FromRemote(clienterr.CanisterAgent, requestTypeReadState, err)
	}

	return nil
}

func (a *Agent) invoke(ctx context.Context, requestType string, canisterID principal.Principal,
	method string, args []interface{}, result interface{}) error {
	start := a.now()

	err := a.doInvoke(ctx, requestType, canisterID, method, args, result)

	duration := a.now().Sub(start)
	a.metrics.CanisterCallTime(a.service, method, duration)

	if err != nil {
		a.metrics.CanisterCallFailed(a.service, method, string(clienterr.CodeOf(err)))

		logger.Debug("canister call failed", logfields.WithCanisterID(canisterID.String()),
			logfields.WithMethod(method), logfields.WithDuration(duration), log.WithError(err))

		return err
	}

	logger.Debug("canister call", logfields.WithCanisterID(canisterID.String()),
		logfields.WithMethod(method), logfields.WithDuration(duration))

	return nil
}

func (a *Agent) doInvoke(ctx context.Context, requestType string, canisterID principal.Principal,
	method string, args []interface{}, result interface{}) error {
	if args == nil {
		args = []interface{}{}
	}

	arg, err := json.Marshal(args)
	if err != nil {
		return clienterr.NewCustomError(clienterr.InvalidInput, fmt.Errorf("encode arguments: %w", err)).
			WithComponent(clienterr.CanisterAgent).WithOperation(method)
	}

	body, err := a.send(ctx, &content{
		RequestType: requestType,
		CanisterID:  canisterID.String(),
		MethodName:  method,
		Arg:         arg,
	})
	if err != nil {
		var ce *clienterr.CustomError
		if errors.As(err, &ce) {
			return ce.WithOperation(method)
		}

		return err
	}

	status := gjson.GetBytes(body, "status").String()

	switch status {
	case statusReplied:
		reply := gjson.GetBytes(body, "reply")
		if !reply.Exists() {
			return newInternalError(method, errors.New("reply is missing"))
		}

		if result == nil {
			return nil
		}

		if err = json.Unmarshal([]byte(reply.Raw), result); err != nil {
			return newInternalError(method, fmt.Errorf("decode reply: %w", err))
		}

		return nil
	case statusRejected:
		return newInternalError(method, fmt.Errorf("rejected with code %d: %s",
			gjson.GetBytes(body, "reject_code").Int(), gjson.GetBytes(body, "reject_message").String()))
	default:
		return newInternalError(method, fmt.Errorf("unexpected response status %q", status))
	}
}

func (a *Agent) send(ctx context.Context, c *content) ([]byte, error) {
	c.Sender = a.identity.Principal().String()
	c.Nonce = uuid.NewString()
	c.IngressExpiry = a.now().Add(a.ingressExpiry).UnixNano()

	env, err := a.sign(c)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	if err = json.NewEncoder(&buf).Encode(env); err != nil {
		return nil, newInternalError(c.MethodName, fmt.Errorf("encode envelope: %w", err))
	}

	url := fmt.Sprintf("%s/api/v2/canister/%s/%s", a.host, c.CanisterID, c.RequestType)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, newInternalError(c.MethodName, fmt.Errorf("create request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, clienterr.NewCustomError(clienterr.NetworkError, fmt.Errorf("send request: %w", err)).
			WithComponent(clienterr.CanisterAgent)
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Debug("failed to close response body", log.WithError(closeErr))
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, a.maxResponse+1))
	if err != nil {
		return nil, clienterr.NewCustomError(clienterr.NetworkError, fmt.Errorf("read response: %w", err)).
			WithComponent(clienterr.CanisterAgent)
	}

	if int64(len(body)) > a.maxResponse {
		return nil, clienterr.NewCustomError(clienterr.InternalError,
			fmt.Errorf("response exceeds %d bytes", a.maxResponse)).
			WithComponent(clienterr.CanisterAgent)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, clienterr.NewCustomError(clienterr.NetworkError,
			fmt.Errorf("unexpected status code %d with body %s", resp.StatusCode, string(body))).
			WithComponent(clienterr.CanisterAgent)
	}

	return body, nil
}

func (a *Agent) sign(c *content) (*envelope, error) {
	env := &envelope{Content: c}

	if a.identity.Principal().IsAnonymous() {
		return env, nil
	}

	payload, err := json.Marshal(c)
	if err != nil {
		return nil, newInternalError(c.MethodName, fmt.Errorf("encode content: %w", err))
	}

	sig, err := a.identity.Sign(payload)
	if err != nil {
		return nil, clienterr.NewCustomError(clienterr.NotAuthenticated, fmt.Errorf("sign request: %w", err)).
			WithComponent(clienterr.CanisterAgent).WithOperation(c.MethodName)
	}

	env.SenderPubKey = a.identity.PublicKey()
	env.SenderSig = sig
	env.SenderDelegation = a.identity.Delegation()

	return env, nil
}

func newInternalError(method string, err error) *clienterr.CustomError {
	return clienterr.NewCustomError(clienterr.InternalError, err).
		WithComponent(clienterr.CanisterAgent).WithOperation(method)
}
