package auth

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"toolverse/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingProvider struct{}

func (failingProvider) Identify(*fiber.Ctx) (Identity, error) {
	return Identity{}, ErrUnauthenticated
}

func TestRequired_FixedIdentity(t *testing.T) {
	app := fiber.New()
	app.Get("/me", Required(NewFixedIdentity("user-1")), func(c *fiber.Ctx) error {
		id, ok := Current(c)
		require.True(t, ok)
		assert.Equal(t, "user-1", id.UserID)
		assert.Equal(t, "user-1", c.UserContext().Value(middleware.UserIDKey))
		return c.SendString(UserID(c))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "user-1", string(body))
}

func TestRequired_RejectsUnknownCaller(t *testing.T) {
	app := fiber.New()
	app.Get("/me", Required(failingProvider{}), func(c *fiber.Ctx) error {
		return errors.New("handler must not run")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUserID_OutsideMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		assert.Empty(t, UserID(c))
		_, ok := Current(c)
		assert.False(t, ok)
		return nil
	})
	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
}
