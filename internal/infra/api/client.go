// Package api implements the domain gateways over the Linkuup REST API.
// Every non-2xx response is decoded into a gateway.APIError here, at the
// boundary, so callers never re-derive user-facing messages.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/cetler74/linkuupapp-sub002/config"
	"github.com/cetler74/linkuupapp-sub002/internal/domain/gateway"
	"github.com/cetler74/linkuupapp-sub002/internal/domain/service"
)

// Client is the shared HTTP plumbing behind the gateway implementations.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  service.TokenSource
	logger  *slog.Logger
}

// NewClient is the constructor for Client. A nil token source leaves
// requests unauthenticated, which the stub backend permits for reads.
func NewClient(cfg *config.Config, tokens service.TokenSource, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.API.Timeout},
		tokens:  tokens,
		logger:  logger,
	}
}

// doJSON issues a JSON request and decodes a 2xx response into out (when out
// is non-nil). Non-2xx responses come back as *gateway.APIError.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

// do sends a prepared request, attaching the bearer token first.
func (c *Client) do(req *http.Request, out any) error {
	if c.tokens != nil {
		token, err := c.tokens.Token(req.Context())
		if err != nil {
			return errors.Wrap(err, "resolve bearer token")
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("api request", "method", req.Method, "path", req.URL.Path)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "api request")
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response body")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := gateway.NewAPIError(resp.StatusCode, payload)
		c.logger.Debug("api error", "method", req.Method, "path", req.URL.Path,
			"status", resp.StatusCode, "message", apiErr.Msg)

		return apiErr
	}

	if out == nil || len(payload) == 0 {
		return nil
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return errors.Wrap(err, "decode response body")
	}

	return nil
}
