package server

import (
	"errors"
	"strconv"
	"strings"

	"toolverse/internal/catalog"
	"toolverse/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseOptionalBool accepts "true" or "false" in any case. Anything else is absent.
func parseOptionalBool(raw string) *bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}

// parseOptionalInt returns nil for empty or unparseable input.
func parseOptionalInt(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// parseLimit treats limit=0 like an absent limit.
func parseLimit(raw string) *int {
	limit := parseOptionalInt(raw)
	if limit != nil && *limit == 0 {
		return nil
	}
	return limit
}

func parseToolFilter(c *fiber.Ctx) catalog.ToolFilter {
	return catalog.ToolFilter{
		Category: strings.TrimSpace(c.Query("category")),
		Pricing:  strings.TrimSpace(c.Query("pricing")),
		Search:   strings.TrimSpace(c.Query("search")),
		Featured: parseOptionalBool(c.Query("featured")),
		Limit:    parseLimit(c.Query("limit")),
		Offset:   parseOptionalInt(c.Query("offset")),
	}
}

func parseBlogFilter(c *fiber.Ctx) catalog.BlogFilter {
	return catalog.BlogFilter{
		Category: strings.TrimSpace(c.Query("category")),
		Featured: parseOptionalBool(c.Query("featured")),
		Limit:    parseLimit(c.Query("limit")),
		Offset:   parseOptionalInt(c.Query("offset")),
	}
}

// parseIDList splits a comma-separated id list, dropping blanks.
func parseIDList(raw string) []string {
	ids := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// parseBody decodes the JSON body into dst.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func parseBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
		return errResponseWritten
	}
	return nil
}
