package server

import (
	"toolverse/internal/auth"
	"toolverse/internal/models"
	"toolverse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetTools handles GET /api/tools
// @Summary List tools
// @Description Filter, sort (featured first, then rating) and paginate the catalog
// @Tags tools
// @Produce json
// @Param category query string false "Exact category"
// @Param pricing query string false "Pricing tier" Enums(free, freemium, paid, one-time)
// @Param search query string false "Case-insensitive substring of name or descriptions"
// @Param featured query bool false "Featured flag"
// @Param limit query int false "Page size, 0 for no cap"
// @Param offset query int false "Page start"
// @Success 200 {array} models.Tool
// @Failure 500 {object} models.ErrorResponse
// @Router /tools [get]
func (s *Server) GetTools(c *fiber.Ctx) error {
	tools, err := s.toolService.List(c.UserContext(), parseToolFilter(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(tools)
}

// CompareTools handles GET /api/tools/compare?ids=a,b
// @Summary Compare tools
// @Description Fetch several tools in request order. Unknown ids are skipped.
// @Tags tools
// @Produce json
// @Param ids query string true "Comma-separated tool ids"
// @Success 200 {array} models.Tool
// @Failure 400 {object} models.ErrorResponse
// @Router /tools/compare [get]
func (s *Server) CompareTools(c *fiber.Ctx) error {
	tools, err := s.toolService.Compare(c.UserContext(), parseIDList(c.Query("ids")))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(tools)
}

// GetTool handles GET /api/tools/:id
// @Summary Get tool
// @Tags tools
// @Produce json
// @Param id path string true "Tool ID"
// @Success 200 {object} models.Tool
// @Failure 404 {object} models.ErrorResponse
// @Router /tools/{id} [get]
func (s *Server) GetTool(c *fiber.Ctx) error {
	tool, err := s.toolService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(tool)
}

// CreateTool handles POST /api/tools
// @Summary Submit tool
// @Description Rating and featured are assigned by the server and ignored in the body
// @Tags tools
// @Accept json
// @Produce json
// @Param request body service.CreateToolInput true "Tool submission"
// @Success 201 {object} models.Tool
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /tools [post]
func (s *Server) CreateTool(c *fiber.Ctx) error {
	var in service.CreateToolInput
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	if in.SubmittedBy == nil || *in.SubmittedBy == "" {
		if id, ok := auth.Current(c); ok {
			name := id.Username
			in.SubmittedBy = &name
		}
	}

	tool, err := s.toolService.Create(c.UserContext(), in)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tool)
}
