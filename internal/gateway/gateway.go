// Package gateway is the HTTP client for the wallet backend. Every call in
// here is a suspension point for the flows above it; the backend owns all
// lifecycle truth and this package never caches what it returns.
package gateway

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	domainErrors "sotrapay/internal/errors"
)

// TokenProvider supplies the bearer token for outgoing requests.
type TokenProvider interface {
	Token() string
}

// Config holds the gateway settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the wallet backend.
type Client struct {
	baseURL string
	timeout time.Duration
	session TokenProvider
	log     zerolog.Logger
}

// New creates a backend client.
func New(cfg Config, session TokenProvider, log zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		panic("gateway base URL is required")
	}
	if session == nil {
		panic("session is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		timeout: cfg.Timeout,
		session: session,
		log:     log.With().Str("component", "gateway").Logger(),
	}
}

// do issues one JSON request and decodes the response envelope into out.
// A *DomainError is returned for backend-reported failures, carrying the
// backend message verbatim.
func (c *Client) do(ctx context.Context, method, path string, body any, headers map[string]string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	agent := fiber.AcquireAgent()
	req := agent.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+c.session.Token())
	req.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if body != nil {
		agent.JSON(body)
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	agent.Timeout(timeout)

	if err := agent.Parse(); err != nil {
		return domainErrors.Backend("REQUEST_INVALID", "")
	}

	status, respBody, errs := agent.Bytes()
	if len(errs) > 0 {
		c.log.Warn().Str("path", path).Err(errs[0]).Msg("backend call failed")
		return domainErrors.Backend("NETWORK_ERROR", "")
	}

	return decode(status, respBody, out)
}

// errNotFound marks a 404; endpoint wrappers translate it into the taxonomy
// error that fits the lookup (counterparty vs token).
var errNotFound = &domainErrors.DomainError{
	Code:    "NOT_FOUND",
	Message: "not found",
}

// envelope is the backend's uniform response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Code    string          `json:"code,omitempty"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func decode(status int, body []byte, out any) error {
	// A 404 belongs to the lookup taxonomy whether or not the body carries a
	// decodable envelope.
	if status == fiber.StatusNotFound {
		return errNotFound
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if status >= 200 && status < 300 {
			return domainErrors.Backend("BAD_RESPONSE", "")
		}
		return domainErrors.Backend("BACKEND_ERROR", "")
	}

	if !env.Success && env.Code == "NOT_FOUND" {
		return errNotFound
	}
	if status < 200 || status >= 300 || !env.Success {
		return domainErrors.Backend(env.Code, env.Message)
	}
	if out == nil {
		return nil
	}
	if len(env.Data) == 0 {
		return domainErrors.Backend("BAD_RESPONSE", "")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return domainErrors.Backend("BAD_RESPONSE", "")
	}
	return nil
}
