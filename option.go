package sotrapay

import (
	"time"

	"github.com/rs/zerolog"

	"sotrapay/internal/config"
)

// Option customizes a Client at construction time.
type Option func(c *Client)

// WithConfig replaces the environment-derived configuration.
func WithConfig(cfg config.Config) Option {
	return func(c *Client) { c.cfg = cfg }
}

// WithLogger replaces the default logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithHTTPTimeout overrides the backend request timeout.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.cfg.RequestTimeout = timeout }
}

// WithBackend replaces the HTTP gateway. Used by tests and by embedders that
// already own a transport.
func WithBackend(backend Backend) Option {
	return func(c *Client) { c.backend = backend }
}

// WithHistoryPageSize sets how many history entries RefreshAll pulls.
func WithHistoryPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.historyPageSize = n
		}
	}
}
