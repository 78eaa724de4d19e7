/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/dresume/credit/cmd/common"
	"github.com/dresume/credit/pkg/clienterr"
)

func execute(t *testing.T, dbDir string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	root := NewRootCommand("v0.0.1-test")
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append(args, "--"+common.DatabaseURLFlagName, "leveldb://"+dbDir))

	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func TestSessionCommands(t *testing.T) {
	dbDir := t.TempDir()
	demo := []string{"--" + demoLoginEnabledFlagName, "true"}

	out, err := execute(t, dbDir, "whoami")
	require.NoError(t, err)
	require.Equal(t, "Anonymous", gjson.Get(out, "state").String())
	require.Equal(t, gjson.Null, gjson.Get(out, "principal").Type)

	out, err = execute(t, dbDir, append([]string{"login-demo", demoPrincipal}, demo...)...)
	require.NoError(t, err)
	require.Equal(t, "DemoAuthenticated", gjson.Get(out, "state").String())
	require.Equal(t, demoPrincipal, gjson.Get(out, "principal").String())
	require.True(t, gjson.Get(out, "demoMode").Bool())

	out, err = execute(t, dbDir, append([]string{"whoami"}, demo...)...)
	require.NoError(t, err)
	require.Equal(t, "DemoAuthenticated", gjson.Get(out, "state").String())
	require.Equal(t, demoPrincipal, gjson.Get(out, "principal").String())

	for i := 0; i < 2; i++ {
		out, err = execute(t, dbDir, append([]string{"logout"}, demo...)...)
		require.NoError(t, err)
		require.Equal(t, "Anonymous", gjson.Get(out, "state").String())
		require.False(t, gjson.Get(out, "demoMode").Bool())
	}
}

func TestLoginDemo_Errors(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		_, err := execute(t, t.TempDir(), "login-demo", demoPrincipal)
		require.Error(t, err)
		require.Equal(t, clienterr.InvalidInput, clienterr.CodeOf(err))
	})

	t.Run("malformed principal", func(t *testing.T) {
		_, err := execute(t, t.TempDir(), "login-demo", "not-a-principal", "--"+demoLoginEnabledFlagName, "true")
		require.Error(t, err)
		require.Equal(t, clienterr.InvalidInput, clienterr.CodeOf(err))
	})

	t.Run("missing argument", func(t *testing.T) {
		_, err := execute(t, t.TempDir(), "login-demo")
		require.ErrorContains(t, err, "accepts 1 arg(s)")
	})
}

func TestCredentialCommands(t *testing.T) {
	dbDir := t.TempDir()
	demo := []string{"--" + demoLoginEnabledFlagName, "true"}

	_, err := execute(t, dbDir, append([]string{"login-demo", demoPrincipal}, demo...)...)
	require.NoError(t, err)

	t.Run("create", func(t *testing.T) {
		out, err := execute(t, dbDir, append([]string{"credential", "create",
			"--type", "Skill",
			"--title", "Go",
			"--description", "Backend development",
			"--recipient", "alice@example.com",
			"--recipient-name", "Alice",
			"--metadata", "level=expert",
		}, demo...)...)
		require.NoError(t, err)

		require.Regexp(t, regexp.MustCompile(`^[A-Z]{2}-\d{4}-\d{3}$`), gjson.Get(out, "tokenId").String())
		require.Equal(t, gjson.Get(out, "tokenId").String(), gjson.Get(out, "credential.tokenId").String())
		require.Equal(t, demoPrincipal, gjson.Get(out, "credential.issuer").String())
		require.Equal(t, "level", gjson.Get(out, "credential.metadata.0.0").String())
		require.Equal(t, "expert", gjson.Get(out, "credential.metadata.0.1").String())
	})

	t.Run("create with missing title", func(t *testing.T) {
		_, err := execute(t, dbDir, append([]string{"credential", "create",
			"--type", "Skill",
			"--recipient", "alice@example.com",
		}, demo...)...)
		require.Error(t, err)
		require.Equal(t, clienterr.InvalidInput, clienterr.CodeOf(err))
	})

	t.Run("create with invalid type", func(t *testing.T) {
		_, err := execute(t, dbDir, append([]string{"credential", "create",
			"--type", "Diploma",
			"--title", "Go",
			"--recipient", "alice@example.com",
		}, demo...)...)
		require.Error(t, err)
		require.Equal(t, clienterr.InvalidInput, clienterr.CodeOf(err))
	})

	t.Run("create with invalid metadata", func(t *testing.T) {
		_, err := execute(t, dbDir, append([]string{"credential", "create",
			"--type", "Skill",
			"--title", "Go",
			"--recipient", "alice@example.com",
			"--metadata", "level",
		}, demo...)...)
		require.Error(t, err)
		require.Equal(t, clienterr.InvalidInput, clienterr.CodeOf(err))
	})

	t.Run("unknown token", func(t *testing.T) {
		out, err := execute(t, dbDir, append([]string{"credential", "token", "UNKNOWN-0000-000"}, demo...)...)
		require.NoError(t, err)
		require.Equal(t, "null", strings.TrimSpace(out))
	})

	t.Run("list", func(t *testing.T) {
		out, err := execute(t, dbDir, append([]string{"credential", "list", "--refresh"}, demo...)...)
		require.NoError(t, err)
		require.True(t, gjson.Parse(out).IsArray())
	})
}

func TestDemoStatePersists(t *testing.T) {
	dbDir := t.TempDir()
	demo := []string{"--" + demoLoginEnabledFlagName, "true"}

	_, err := execute(t, dbDir, append([]string{"login-demo", demoPrincipal}, demo...)...)
	require.NoError(t, err)

	t.Run("credential is visible to later commands", func(t *testing.T) {
		out, err := execute(t, dbDir, append([]string{"credential", "create",
			"--type", "Education",
			"--title", "BSc Computer Science",
			"--recipient", "bob@example.com",
		}, demo...)...)
		require.NoError(t, err)

		tokenID := gjson.Get(out, "tokenId").String()
		credentialID := gjson.Get(out, "credential.id").String()
		require.NotEmpty(t, tokenID)

		out, err = execute(t, dbDir, append([]string{"credential", "list", "--refresh"}, demo...)...)
		require.NoError(t, err)
		require.Contains(t, gjson.Get(out, "#.tokenId").String(), tokenID)

		out, err = execute(t, dbDir, append([]string{"credential", "issued"}, demo...)...)
		require.NoError(t, err)
		require.Contains(t, gjson.Get(out, "#.id").String(), credentialID)

		out, err = execute(t, dbDir, append([]string{"credential", "token", tokenID}, demo...)...)
		require.NoError(t, err)
		require.Equal(t, credentialID, gjson.Get(out, "id").String())

		out, err = execute(t, dbDir, append([]string{"credential", "create",
			"--type", "Education",
			"--title", "MSc Computer Science",
			"--recipient", "bob@example.com",
		}, demo...)...)
		require.NoError(t, err)
		require.NotEqual(t, tokenID, gjson.Get(out, "tokenId").String())
		require.NotEqual(t, credentialID, gjson.Get(out, "credential.id").String())
	})

	t.Run("registration is unique across commands", func(t *testing.T) {
		out, err := execute(t, dbDir, append([]string{"user", "register",
			"--email", "carol@example.com",
			"--role", "Individual",
		}, demo...)...)
		require.NoError(t, err)
		require.Equal(t, "Individual", gjson.Get(out, "role").String())

		_, err = execute(t, dbDir, append([]string{"user", "register",
			"--email", "carol@example.com",
			"--role", "Company",
		}, demo...)...)
		require.Error(t, err)
		require.Equal(t, clienterr.AlreadyExists, clienterr.CodeOf(err))

		out, err = execute(t, dbDir, append([]string{"user", "profile"}, demo...)...)
		require.NoError(t, err)
		require.Equal(t, "Individual", gjson.Get(out, "role").String())
		require.Equal(t, "carol@example.com", gjson.Get(out, "email").String())
	})

	t.Run("separate databases do not share state", func(t *testing.T) {
		other := t.TempDir()

		_, err := execute(t, other, append([]string{"login-demo", demoPrincipal}, demo...)...)
		require.NoError(t, err)

		out, err := execute(t, other, append([]string{"user", "profile"}, demo...)...)
		require.NoError(t, err)
		require.Equal(t, "null", strings.TrimSpace(out))
	})
}

func TestDocumentCommands(t *testing.T) {
	dbDir := t.TempDir()
	demo := []string{"--" + demoLoginEnabledFlagName, "true"}

	_, err := execute(t, dbDir, append([]string{"login-demo", demoPrincipal}, demo...)...)
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(file, []byte("ten years of Go"), 0o600))

	out, err := execute(t, dbDir, append([]string{"document", "upload", file}, demo...)...)
	require.NoError(t, err)
	require.Len(t, gjson.Get(out, "hash").String(), 64)
	require.Equal(t, int64(15), gjson.Get(out, "size").Int())

	out, err = execute(t, dbDir, append([]string{"document", "get", strings.Repeat("0", 64)}, demo...)...)
	require.NoError(t, err)
	require.Equal(t, "null", strings.TrimSpace(out))

	_, err = execute(t, dbDir, append([]string{"document", "upload", filepath.Join(t.TempDir(), "missing")},
		demo...)...)
	require.ErrorContains(t, err, "read document")
}

func TestNotAuthenticated(t *testing.T) {
	t.Run("profile is empty", func(t *testing.T) {
		out, err := execute(t, t.TempDir(), "user", "profile")
		require.NoError(t, err)
		require.Equal(t, "null", strings.TrimSpace(out))
	})

	dbDir := t.TempDir()

	for _, args := range [][]string{
		{"nft", "list"},
		{"user", "list"},
		{"document", "list"},
		{"credential", "revoke", "cred-000001"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := execute(t, dbDir, args...)
			require.Error(t, err)
			require.Equal(t, clienterr.NotAuthenticated, clienterr.CodeOf(err))
			require.Contains(t, FormatError(err), fmt.Sprintf("Error [%s]", clienterr.NotAuthenticated))
		})
	}
}

func newGateway(t *testing.T, status int) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)

			return
		}

		_, _ = w.Write([]byte(`{"status":"replied"}`))
	}))

	t.Cleanup(srv.Close)

	return srv
}

func TestHealthCommand(t *testing.T) {
	canisters := []string{
		"--" + credentialCanisterFlagName, credentialCanisterID,
		"--" + userCanisterFlagName, userCanisterID,
		"--" + documentCanisterFlagName, documentCanisterID,
	}

	t.Run("healthy", func(t *testing.T) {
		srv := newGateway(t, http.StatusOK)

		out, err := execute(t, t.TempDir(), append([]string{"health", "--" + hostFlagName, srv.URL}, canisters...)...)
		require.NoError(t, err)

		require.True(t, gjson.Get(out, "services.credential").Bool())
		require.True(t, gjson.Get(out, "services.user").Bool())
		require.True(t, gjson.Get(out, "services.document").Bool())
	})

	t.Run("missing canister", func(t *testing.T) {
		srv := newGateway(t, http.StatusOK)

		out, err := execute(t, t.TempDir(), "health", "--"+hostFlagName, srv.URL,
			"--"+credentialCanisterFlagName, credentialCanisterID)
		require.True(t, errors.Is(err, errUnhealthy))

		require.True(t, gjson.Get(out, "services.credential").Bool())
		require.False(t, gjson.Get(out, "services.document").Bool())
		require.NotEmpty(t, gjson.Get(out, "errors").Array())
	})

	t.Run("gateway down with wait", func(t *testing.T) {
		srv := newGateway(t, http.StatusServiceUnavailable)

		_, err := execute(t, t.TempDir(), append([]string{"health", "--" + hostFlagName, srv.URL,
			"--" + waitFlagName, "300ms"}, canisters...)...)
		require.True(t, errors.Is(err, errUnhealthy))
		require.ErrorContains(t, err, "wait for services")
	})
}

func TestNewDiagnosticsRouter(t *testing.T) {
	srv := newGateway(t, http.StatusOK)

	cmd := newTestCommand(t, map[string]string{
		hostFlagName:               srv.URL,
		credentialCanisterFlagName: credentialCanisterID,
		userCanisterFlagName:       userCanisterID,
		documentCanisterFlagName:   documentCanisterID,
		metricsProviderFlagName:    metricsProviderPrometheus,
		common.DatabaseURLFlagName: "leveldb://" + t.TempDir(),
	})

	params, err := getParameters(cmd)
	require.NoError(t, err)

	svc, err := initServices(context.Background(), params, io.Discard)
	require.NoError(t, err)
	defer svc.Close()

	e, err := newDiagnosticsRouter(svc, "v1.2.3")
	require.NoError(t, err)

	t.Run("version", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", http.NoBody))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "v1.2.3", gjson.Get(rec.Body.String(), "version").String())
	})

	t.Run("healthcheck", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", http.NoBody))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "up", gjson.Get(rec.Body.String(), "status").String())
	})

	t.Run("metrics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestFormatError(t *testing.T) {
	require.Equal(t, "Error: boom", FormatError(errors.New("boom")))

	err := clienterr.NewNotAuthenticatedError(clienterr.CredentialService, "GetMyNFTs")

	formatted := FormatError(err)
	require.True(t, strings.HasPrefix(formatted, "Error [not-authenticated]"))
	require.Contains(t, formatted, "\nHint: ")
}
