package models

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Status(t *testing.T) {
	assert.Equal(t, fiber.StatusBadRequest, NewValidationError("bad").Status())
	assert.Equal(t, fiber.StatusNotFound, NewNotFoundError("Tool", "x").Status())
	assert.Equal(t, fiber.StatusConflict, NewConflictError("dup").Status())
	assert.Equal(t, fiber.StatusInternalServerError, NewInternalError(errors.New("boom")).Status())
}

func TestRespondWithAppError_DoesNotLeakInternalDetail(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return RespondWithAppError(c, errors.New("pq: connection refused on 10.0.0.3"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(raw), "10.0.0.3")

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "Internal server error", body.Error)
	assert.Equal(t, CodeInternal, body.Code)
}

func TestRespondWithAppError_ValidationFields(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return RespondWithAppError(c, NewValidationError("Invalid tool data",
			FieldError{Field: "name", Message: "name is required"}))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Fields, 1)
	assert.Equal(t, "name", body.Fields[0].Field)
}

func TestPricingTier_Valid(t *testing.T) {
	for _, p := range PricingTiers {
		assert.True(t, p.Valid(), p)
	}
	assert.False(t, PricingTier("enterprise").Valid())
	assert.False(t, PricingTier("").Valid())
}

func TestUserToolPatch_Apply(t *testing.T) {
	name := "Writing"
	ut := &UserTool{CollectionName: &name}

	fav := true
	empty := ""
	UserToolPatch{IsFavorite: &fav, CollectionName: &empty}.Apply(ut)
	assert.True(t, ut.IsFavorite)
	assert.Nil(t, ut.CollectionName)

	UserToolPatch{}.Apply(ut)
	assert.True(t, ut.IsFavorite)
	assert.True(t, UserToolPatch{}.Empty())
}
