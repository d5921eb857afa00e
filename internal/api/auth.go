package api

import (
	"context"
	"net/http"

	"github.com/ludexhq/ludex/internal/errors"
)

// loginRequest is the credentialed-login payload
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registerRequest is the registration payload
type registerRequest struct {
	Nickname string  `json:"nickname"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	MaxPrice float64 `json:"max_price"`
}

// refreshRequest carries the token being exchanged
type refreshRequest struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a token and identity.
// A 401 maps to InvalidCredentials rather than the generic NotAuthenticated.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/login-json", nil, loginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		return nil, errors.NewInvalidCredentialsError()
	}

	var out AuthResponse
	if err := parseResponse(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and returns a session like Login does.
// Server validation detail is surfaced verbatim when present.
func (c *Client) Register(ctx context.Context, nickname, email, password string, maxPrice float64) (*AuthResponse, error) {
	var out AuthResponse
	err := c.post(ctx, "/api/auth/register", registerRequest{
		Nickname: nickname,
		Email:    email,
		Password: password,
		MaxPrice: maxPrice,
	}, &out)
	if err != nil {
		if errors.CodeOf(err) == errors.ErrCodeValidation {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeRegistrationFailed, "registration failed", err)
	}
	return &out, nil
}

// RefreshToken exchanges the current token for a fresh one
func (c *Client) RefreshToken(ctx context.Context, token string) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.post(ctx, "/api/auth/refresh-token", refreshRequest{Token: token}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyToken asks the server whether a token is still valid
func (c *Client) VerifyToken(ctx context.Context, token string) error {
	return c.post(ctx, "/api/auth/verify-token", refreshRequest{Token: token}, nil)
}

// LogoutRemote tells the server to discard the session. Best-effort: local
// logout does not depend on it succeeding.
func (c *Client) LogoutRemote(ctx context.Context) error {
	return c.post(ctx, "/api/auth/logout", nil, nil)
}
