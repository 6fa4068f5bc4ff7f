// Package api holds the shared REST client every domain service sends its
// requests through. The client attaches credentials on the way out and
// normalizes failures on the way in; whether a failure is absorbed or
// surfaced is decided by each service, never here.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	errx "github.com/ReganLema/M-CONNECT-sub001/internal/core/error"
	logx "github.com/ReganLema/M-CONNECT-sub001/pkg/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Config struct {
	// BaseURL is the backend address, e.g. https://api.m-connect.example.
	BaseURL string `envconfig:"API_BASE_URL" required:"true"`
	// TimeoutSeconds bounds every request. The default is sized for
	// upload-carrying calls, not just small JSON reads.
	TimeoutSeconds int `envconfig:"API_TIMEOUT_SECONDS" default:"60"`
}

// TokenSource supplies the bearer token for outbound requests. false means
// no credential is available and the request goes out unauthenticated.
type TokenSource interface {
	Resolve(ctx context.Context) (string, bool)
}

// Client is the shared HTTP client for the marketplace backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        zerolog.Logger
}

func New(cfg Config, tokens TokenSource) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		log:        logx.With("api"),
	}
}

// Get issues a GET and returns the raw response body.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post issues a POST with a JSON body (nil for an empty body).
func (c *Client) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	reqURL := c.baseURL + path

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Credentials are re-read on every call so a rotated token takes
	// effect on the next request. Absence is not an error: the backend
	// decides what an anonymous caller may do.
	if c.tokens != nil {
		if token, ok := c.tokens.Resolve(ctx); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		wrapped := errx.WrapTransport(err)
		c.log.Error().Err(err).
			Str("method", method).
			Str("url", reqURL).
			Str("request_id", requestID).
			Str("kind", errx.KindOf(wrapped).String()).
			Msg("request failed")
		return nil, wrapped
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errx.WrapTransport(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := backendMessage(respBody)
		c.log.Error().
			Str("method", method).
			Str("url", reqURL).
			Str("request_id", requestID).
			Int("status", resp.StatusCode).
			Str("backend_message", message).
			Msg("backend returned error status")
		if message == "" {
			message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return nil, errx.NewHTTP(resp.StatusCode, message)
	}

	return respBody, nil
}

// backendMessage pulls the human-readable reason out of an error response.
// The backend wraps errors the same way it wraps data, but older endpoints
// use an "error" field instead of "message".
func backendMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if envelope.Message != "" {
		return envelope.Message
	}
	return envelope.Error
}
