// Package api implements the REST client for the Ludex platform.
//
// Every data operation in the application goes through Client. The hard parts
// of the product (catalog storage, recommendation scoring, token issuance)
// live server-side; this package is the contract with them.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/ludexhq/ludex/internal/errors"
	"github.com/ludexhq/ludex/internal/log"
)

// Client is the Ludex platform API client
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	logger     *log.Logger
}

// Option customizes a Client
type Option func(*Client)

// WithTransport sets the HTTP transport, normally the Authorizer
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.HTTPClient.Transport = rt
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.HTTPClient.Timeout = d
	}
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new platform API client
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: log.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doRequest performs an HTTP request against the API
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeDecode, "failed to marshal request body", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	target := c.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeTransport, "failed to create request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "method", method, "path", path, "error", err)
		return nil, errors.NewTransportError(err)
	}

	return resp, nil
}

// get issues a GET request and decodes the response into target
func (c *Client) get(ctx context.Context, path string, query url.Values, target interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return parseResponse(resp, target)
}

// post issues a POST request and decodes the response into target
func (c *Client) post(ctx context.Context, path string, body, target interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}
	return parseResponse(resp, target)
}

// patch issues a PATCH request and decodes the response into target
func (c *Client) patch(ctx context.Context, path string, body, target interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodPatch, path, nil, body)
	if err != nil {
		return err
	}
	return parseResponse(resp, target)
}

// delete issues a DELETE request and decodes the response into target
func (c *Client) delete(ctx context.Context, path string, target interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	return parseResponse(resp, target)
}

// errorBody is the error payload the API returns on failures
type errorBody struct {
	Detail  string `json:"detail"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// detailOf extracts the most specific server-reported message
func (e errorBody) detailOf() string {
	switch {
	case e.Detail != "":
		return e.Detail
	case e.Error != "":
		return e.Error
	default:
		return e.Message
	}
}

// parseResponse maps non-2xx statuses to typed errors and decodes the body
// into target otherwise.
func parseResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)

		var eb errorBody
		_ = json.Unmarshal(body, &eb)

		switch {
		case resp.StatusCode == http.StatusUnauthorized,
			resp.StatusCode == http.StatusForbidden:
			return errors.NewNotAuthenticatedError("this request")
		case resp.StatusCode == http.StatusNotFound:
			return errors.NewNotFoundError("resource")
		case resp.StatusCode == http.StatusBadRequest,
			resp.StatusCode == http.StatusUnprocessableEntity:
			return errors.NewValidationError(eb.detailOf())
		case resp.StatusCode >= 500:
			return errors.NewServerError(resp.StatusCode)
		default:
			return errors.New(errors.ErrCodeServer,
				fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, string(body)))
		}
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return errors.Wrap(errors.ErrCodeDecode, "failed to decode response", err)
		}
	}

	return nil
}
