package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	domainErrors "sotrapay/internal/errors"
	"sotrapay/internal/models"
)

func (c *Client) resolveUser(ctx context.Context, path string) (*models.CounterpartyIdentity, error) {
	var identity models.CounterpartyIdentity
	err := c.do(ctx, fiber.MethodGet, path, nil, nil, &identity)
	if errors.Is(err, errNotFound) {
		return nil, domainErrors.ErrCounterpartyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	return &identity, nil
}

// ResolveByUsername looks a user up by username.
func (c *Client) ResolveByUsername(ctx context.Context, username string) (*models.CounterpartyIdentity, error) {
	return c.resolveUser(ctx, "/users/by-username/"+url.PathEscape(username))
}

// ResolveByPhone looks a user up by phone number.
func (c *Client) ResolveByPhone(ctx context.Context, phone string) (*models.CounterpartyIdentity, error) {
	return c.resolveUser(ctx, "/users/by-phone/"+url.PathEscape(phone))
}

// ResolveByID looks a user up by id.
func (c *Client) ResolveByID(ctx context.Context, id string) (*models.CounterpartyIdentity, error) {
	return c.resolveUser(ctx, "/users/"+url.PathEscape(id))
}
