// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// FallbackReply is the single user-visible failure text. Every failure mode
// of Generate collapses to this string in the thread; diagnostic detail goes
// to the log only.
const FallbackReply = "Sorry, there was an error processing your request. Please try again."

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the Gemini client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeConnection
	ErrTypeTimeout
	ErrTypeHTTPStatus
	ErrTypeInvalidResponse
	ErrTypeMissingKey
)

// Sentinel errors for easy checking.
var (
	ErrTimeout         = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
	ErrMissingKey      = &ClientError{Type: ErrTypeMissingKey, Message: "no API key configured"}
	ErrInvalidResponse = &ClientError{Type: ErrTypeInvalidResponse, Message: "response has no candidate text"}
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// DefaultBaseURL is the Gemini API endpoint prefix; the model name and
// ":generateContent" are appended per request.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// ClientConfig holds configuration options for the Gemini client.
type ClientConfig struct {
	// BaseURL is the endpoint prefix (default: DefaultBaseURL)
	BaseURL string

	// APIKey authenticates requests. Required.
	APIKey string

	// Timeout per request (default: 30s)
	Timeout time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: DefaultBaseURL,
		Timeout: 30 * time.Second,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the Gemini generateContent API.
// It is safe for concurrent use.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a Gemini client. Zero-value config fields get defaults.
func NewClient(config *ClientConfig, log zerolog.Logger) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		log: log.With().Str("component", "gemini").Logger(),
	}
}

// =============================================================================
// GENERATE
// =============================================================================

// Generate sends a single user utterance to the model and returns the reply
// text. The call carries no history; every request stands alone. Callers
// should render FallbackReply when an error is returned.
func (c *Client) Generate(ctx context.Context, model, utterance string) (string, error) {
	if c.config.APIKey == "" {
		return "", ErrMissingKey
	}

	body, err := json.Marshal(newGenerateRequest(utterance))
	if err != nil {
		return "", &ClientError{Type: ErrTypeUnknown, Message: "failed to encode request", Cause: err}
	}

	url := c.config.BaseURL + "/" + model + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &ClientError{Type: ErrTypeUnknown, Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.config.APIKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			c.log.Error().Str("model", model).Dur("elapsed", time.Since(start)).Msg("request timed out")
			return "", ErrTimeout
		}
		c.log.Error().Err(err).Str("model", model).Msg("connection failed")
		return "", &ClientError{Type: ErrTypeConnection, Message: "connection failed", Cause: err}
	}
	defer resp.Body.Close()

	// Cap the read; a well-formed response is far smaller.
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		c.log.Error().Err(err).Str("model", model).Msg("failed to read response")
		return "", &ClientError{Type: ErrTypeConnection, Message: "failed to read response", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error().
			Int("status", resp.StatusCode).
			Str("model", model).
			Str("body", truncateForLog(data)).
			Msg("non-2xx response")
		return "", &ClientError{
			Type:    ErrTypeHTTPStatus,
			Message: "unexpected status " + resp.Status,
		}
	}

	var parsed GenerateResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		c.log.Error().Err(err).Str("model", model).Msg("malformed response body")
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "malformed response body", Cause: err}
	}

	text, ok := parsed.reply()
	if !ok {
		c.log.Error().Str("model", model).Str("body", truncateForLog(data)).Msg("response has no candidate text")
		return "", ErrInvalidResponse
	}

	c.log.Debug().
		Str("model", model).
		Dur("elapsed", time.Since(start)).
		Int("reply_len", len(text)).
		Msg("generate ok")
	return text, nil
}

// truncateForLog keeps logged response bodies short.
func truncateForLog(data []byte) string {
	const max = 512
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}
