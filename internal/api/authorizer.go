package api

import (
	"net/http"
	"strings"

	"github.com/ludexhq/ludex/internal/log"
)

// TokenSource supplies the current bearer token, or "" when anonymous
type TokenSource interface {
	Token() string
}

// Invalidator clears the local session after an authorization failure.
// Implementations must be idempotent: several in-flight requests carrying the
// same stale token will each trigger it.
type Invalidator interface {
	Invalidate()
}

// Navigator requests navigation to the login route after a forced logout
type Navigator interface {
	NavigateToLogin()
}

// authEndpoints are credential-establishing paths that must never carry a
// bearer token and must not trigger the invalidation path.
var authEndpoints = []string{
	"/api/auth/login",
	"/api/auth/login-json",
	"/api/auth/register",
	"/api/auth/refresh-token",
}

// Authorizer is an http.RoundTripper that attaches the session's bearer token
// to outgoing requests and escalates 401/403 responses: it clears the session
// and requests a login redirect before the response reaches the caller, so any
// follow-up request from the caller's error handling already sees an
// anonymous state. The original response is still returned.
type Authorizer struct {
	Base     http.RoundTripper
	Tokens   TokenSource
	Sessions Invalidator
	Navigate Navigator
	logger   *log.Logger
}

// NewAuthorizer creates an Authorizer over base. A nil base falls back to
// http.DefaultTransport.
func NewAuthorizer(base http.RoundTripper, tokens TokenSource, sessions Invalidator, navigate Navigator) *Authorizer {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Authorizer{
		Base:     base,
		Tokens:   tokens,
		Sessions: sessions,
		Navigate: navigate,
		logger:   log.DefaultLogger(),
	}
}

// RoundTrip implements http.RoundTripper
func (a *Authorizer) RoundTrip(req *http.Request) (*http.Response, error) {
	if isAuthEndpoint(req.URL.Path) {
		return a.Base.RoundTrip(req)
	}

	token := ""
	if a.Tokens != nil {
		token = a.Tokens.Token()
	}

	if token != "" {
		// RoundTrippers must not mutate the caller's request.
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.Base.RoundTrip(req)
	if err != nil {
		return resp, err
	}

	if token != "" && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
		a.logger.Debug("authorization failure, clearing session",
			"status", resp.StatusCode, "path", req.URL.Path)
		if a.Sessions != nil {
			a.Sessions.Invalidate()
		}
		if a.Navigate != nil {
			a.Navigate.NavigateToLogin()
		}
	}

	return resp, nil
}

// isAuthEndpoint reports whether path targets a credential-establishing
// endpoint from the allowlist.
func isAuthEndpoint(path string) bool {
	for _, p := range authEndpoints {
		if path == p || strings.HasSuffix(path, p) {
			return true
		}
	}
	return false
}

// TokenFunc adapts a function to the TokenSource interface
type TokenFunc func() string

// Token implements TokenSource
func (f TokenFunc) Token() string { return f() }

// InvalidateFunc adapts a function to the Invalidator interface
type InvalidateFunc func()

// Invalidate implements Invalidator
func (f InvalidateFunc) Invalidate() { f() }

// NavigateFunc adapts a function to the Navigator interface
type NavigateFunc func()

// NavigateToLogin implements Navigator
func (f NavigateFunc) NavigateToLogin() { f() }
