// Package auth resolves the caller's identity. The catalog has no login flow yet,
// so the only provider is a fixed placeholder identity.
package auth

import (
	"context"
	"errors"

	"toolverse/internal/middleware"
	"toolverse/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ErrUnauthenticated is returned by providers that cannot identify the caller.
var ErrUnauthenticated = errors.New("unauthenticated")

// Identity is the resolved caller.
type Identity struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
}

// IdentityProvider resolves the caller of a request.
type IdentityProvider interface {
	Identify(c *fiber.Ctx) (Identity, error)
}

// FixedIdentity identifies every request as the same user.
type FixedIdentity struct {
	Identity Identity
}

// NewFixedIdentity returns a provider that always answers userID.
func NewFixedIdentity(userID string) *FixedIdentity {
	return &FixedIdentity{Identity: Identity{UserID: userID, Username: "demo"}}
}

// Identify implements IdentityProvider.
func (f *FixedIdentity) Identify(*fiber.Ctx) (Identity, error) {
	return f.Identity, nil
}

// Required returns middleware that resolves the caller through p and stores the user
// ID in c.Locals("userID") and in the request context for logging.
func Required(p IdentityProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := p.Identify(c)
		if err != nil || id.UserID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
				Error: "Authorization required",
			})
		}

		c.Locals("userID", id.UserID)
		c.Locals("identity", id)
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, id.UserID)
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// UserID returns the identity stored by Required, or "" outside it.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals("userID").(string)
	return id
}

// Current returns the identity stored by Required.
func Current(c *fiber.Ctx) (Identity, bool) {
	id, ok := c.Locals("identity").(Identity)
	return id, ok
}
