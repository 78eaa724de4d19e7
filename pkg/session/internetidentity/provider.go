/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package internetidentity

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cli/browser"
	"github.com/google/uuid"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/dresume/credit/internal/logfields"
	"github.com/dresume/credit/pkg/clienterr"
	"github.com/dresume/credit/pkg/identity"
	"github.com/dresume/credit/pkg/session"
	"github.com/dresume/credit/pkg/storage/sessionstore"
)

var logger = log.New("internet-identity")

const (
	DefaultTimeout       = 60 * time.Second
	DefaultMaxTimeToLive = 8 * time.Hour

	defaultListenAddr = "127.0.0.1:0"
	callbackPath      = "/callback"
	readHeaderTimeout = 10 * time.Second
)

type identityStore interface {
	SaveIdentity(rec *sessionstore.IdentityRecord) error
	LoadIdentity() (*sessionstore.IdentityRecord, error)
	DeleteIdentity() error
}

// Config holds the interactive login configuration.
type Config struct {
	ProviderURL   string
	Store         identityStore
	Timeout       time.Duration
	MaxTimeToLive time.Duration
	ListenAddr    string
	// Opener shows the authorization page. Defaults to the system browser.
	Opener func(url string) error
	// Out receives the authorization URL so it can be opened manually.
	Out   io.Writer
	Clock func() time.Time
}

// Provider logs in through the identity provider's authorization page and keeps the
// resulting delegation in the session store.
type Provider struct {
	providerURL   string
	store         identityStore
	timeout       time.Duration
	maxTimeToLive time.Duration
	listenAddr    string
	opener        func(url string) error
	out           io.Writer
	now           func() time.Time
}

var _ session.IdentityProvider = (*Provider)(nil)

func New(config *Config) (*Provider, error) {
	if config.ProviderURL == "" {
		return nil, errors.New("identity provider url is required")
	}

	if config.Store == nil {
		return nil, errors.New("identity store is required")
	}

	p := &Provider{
		providerURL:   strings.TrimSuffix(config.ProviderURL, "/"),
		store:         config.Store,
		timeout:       config.Timeout,
		maxTimeToLive: config.MaxTimeToLive,
		listenAddr:    config.ListenAddr,
		opener:        config.Opener,
		out:           config.Out,
		now:           config.Clock,
	}

	if p.timeout <= 0 {
		p.timeout = DefaultTimeout
	}

	if p.maxTimeToLive <= 0 {
		p.maxTimeToLive = DefaultMaxTimeToLive
	}

	if p.listenAddr == "" {
		p.listenAddr = defaultListenAddr
	}

	if p.opener == nil {
		p.opener = browser.OpenURL
	}

	if p.now == nil {
		p.now = time.Now
	}

	return p, nil
}

// Restore returns the persisted delegation identity. Expired or malformed records are deleted.
func (p *Provider) Restore(_ context.Context) (identity.Identity, error) {
	rec, err := p.store.LoadIdentity()
	if err != nil {
		if errors.Is(err, sessionstore.ErrNotFound) {
			return nil, nil //nolint:nilnil
		}

		return nil, fmt.Errorf("load identity: %w", err)
	}

	id, err := p.fromRecord(rec)
	if err != nil {
		logger.Info("Discarding persisted identity", log.WithError(err))

		if delErr := p.store.DeleteIdentity(); delErr != nil {
			return nil, fmt.Errorf("delete identity: %w", delErr)
		}

		return nil, nil //nolint:nilnil
	}

	return id, nil
}

func (p *Provider) fromRecord(rec *sessionstore.IdentityRecord) (*identity.DelegationIdentity, error) {
	sessionKey, err := identity.NewEd25519(rec.SecretKey)
	if err != nil {
		return nil, err
	}

	return p.bind(sessionKey, rec.Delegation)
}

func (p *Provider) bind(sessionKey *identity.Ed25519Identity,
	chain *identity.DelegationChain) (*identity.DelegationIdentity, error) {
	id, err := identity.NewDelegation(sessionKey, chain)
	if err != nil {
		return nil, err
	}

	if chain.Expired(p.now()) {
		return nil, fmt.Errorf("%w: delegation expired", identity.ErrInvalidDelegation)
	}

	return id, nil
}

// Login opens the authorization page and waits for the callback, the timeout or ctx.
func (p *Provider) Login(ctx context.Context, _ *session.LoginRequest) (identity.Identity, error) {
	sessionKey, err := identity.GenerateEd25519()
	if err != nil {
		return nil, newError(clienterr.InternalError, fmt.Errorf("generate session key: %w", err))
	}

	listener, err := net.Listen("tcp", p.listenAddr)
	if err != nil {
		return nil, newError(clienterr.NetworkError, fmt.Errorf("listen for callback: %w", err))
	}

	state := uuid.NewString()

	server := &callbackServer{
		state:   state,
		results: make(chan callbackResult, 1),
	}

	httpServer := &http.Server{Handler: server, ReadHeaderTimeout: readHeaderTimeout}

	go func() {
		if serveErr := httpServer.Serve(listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Warn("Callback server stopped", log.WithError(serveErr))
		}
	}()

	defer func() {
		if closeErr := httpServer.Close(); closeErr != nil {
			logger.Debug("Failed to close callback server", log.WithError(closeErr))
		}
	}()

	authURL := p.authorizeURL(sessionKey, fmt.Sprintf("http://%s%s", listener.Addr().String(), callbackPath), state)

	if p.out != nil {
		_, _ = fmt.Fprintf(p.out, "Log in with a browser:\n\n%s\n\n", authURL)
	}

	logger.Debug("Opening identity provider", logfields.WithHostURL(p.providerURL))

	if err = p.opener(authURL); err != nil {
		return nil, newError(clienterr.PopupBlocked, fmt.Errorf("open login page: %w", err))
	}

	timer := time.NewTimer(p.timeout)
	defer timer.Stop()

	select {
	case res := <-server.results:
		if res.err != nil {
			return nil, res.err
		}

		return p.complete(sessionKey, res.delegation)
	case <-timer.C:
		return nil, newError(clienterr.Timeout, fmt.Errorf("no response from identity provider within %s", p.timeout))
	case <-ctx.Done():
		return nil, newError(clienterr.UserCancelled, ctx.Err())
	}
}

func (p *Provider) complete(sessionKey *identity.Ed25519Identity, raw []byte) (identity.Identity, error) {
	chain, err := identity.ParseDelegationChain(raw)
	if err != nil {
		return nil, newError(clienterr.InvalidInput, err)
	}

	id, err := p.bind(sessionKey, chain)
	if err != nil {
		return nil, newError(clienterr.InvalidInput, err)
	}

	err = p.store.SaveIdentity(&sessionstore.IdentityRecord{
		SecretKey:  sessionKey.PrivateKey(),
		Delegation: chain,
	})
	if err != nil {
		return nil, newError(clienterr.InternalError, fmt.Errorf("save identity: %w", err))
	}

	logger.Info("Logged in", logfields.WithPrincipal(id.Principal().String()))

	return id, nil
}

// Logout deletes the persisted delegation.
func (p *Provider) Logout(_ context.Context) error {
	if err := p.store.DeleteIdentity(); err != nil {
		return fmt.Errorf("delete identity: %w", err)
	}

	return nil
}

func (p *Provider) authorizeURL(sessionKey *identity.Ed25519Identity, redirectURI, state string) string {
	q := url.Values{}
	q.Set("session_public_key", base64.RawURLEncoding.EncodeToString(sessionKey.PublicKey()))
	q.Set("redirect_uri", redirectURI)
	q.Set("state", state)
	q.Set("max_time_to_live", strconv.FormatInt(p.maxTimeToLive.Nanoseconds(), 10))

	return p.providerURL + "/authorize?" + q.Encode()
}

func newError(code clienterr.ErrorCode, err error) *clienterr.CustomError {
	return clienterr.NewCustomError(code, err).
		WithComponent(clienterr.IdentityProvider).WithOperation("Login")
}

type callbackResult struct {
	delegation []byte
	err        error
}

type callbackServer struct {
	state   string
	results chan callbackResult
}

func (s *callbackServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != callbackPath {
		http.NotFound(w, r)

		return
	}

	q := r.URL.Query()

	if q.Get("state") != s.state {
		http.Error(w, "state mismatch", http.StatusBadRequest)

		return
	}

	var res callbackResult

	switch {
	case q.Get("error") != "":
		res.err = newError(clienterr.UserCancelled, fmt.Errorf("identity provider: %s", q.Get("error")))
	case q.Get("delegation") != "":
		raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(q.Get("delegation"), "="))
		if err != nil {
			http.Error(w, "delegation is not base64url", http.StatusBadRequest)

			return
		}

		res.delegation = raw
	default:
		http.Error(w, "delegation is empty", http.StatusBadRequest)

		return
	}

	select {
	case s.results <- res:
	default:
		http.Error(w, "login already completed", http.StatusConflict)

		return
	}

	w.Header().Add("content-type", "text/html")
	_, _ = fmt.Fprintf(w, "<p>Login completed. You may now close this page.</p>")
}
