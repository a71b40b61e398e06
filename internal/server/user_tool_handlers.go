package server

import (
	"toolverse/internal/auth"
	"toolverse/internal/models"
	"toolverse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetUserTools handles GET /api/user/tools
// @Summary List saved tools
// @Tags toolkit
// @Produce json
// @Success 200 {array} models.UserTool
// @Router /user/tools [get]
func (s *Server) GetUserTools(c *fiber.Ctx) error {
	links, err := s.userToolService.List(c.UserContext(), auth.UserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(links)
}

// AddUserTool handles POST /api/user/tools
// @Summary Save tool
// @Tags toolkit
// @Accept json
// @Produce json
// @Param request body service.AddUserToolInput true "Saved tool"
// @Success 201 {object} models.UserTool
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /user/tools [post]
func (s *Server) AddUserTool(c *fiber.Ctx) error {
	var in service.AddUserToolInput
	if err := parseBody(c, &in); err != nil {
		return nil
	}

	link, err := s.userToolService.Add(c.UserContext(), auth.UserID(c), in)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

// UpdateUserTool handles PATCH /api/user/tools/:toolId
// @Summary Update saved tool
// @Description Partial update. An empty collectionName clears the collection.
// @Tags toolkit
// @Accept json
// @Produce json
// @Param toolId path string true "Tool ID"
// @Param request body service.UpdateUserToolInput true "Fields to change"
// @Success 200 {object} models.UserTool
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /user/tools/{toolId} [patch]
func (s *Server) UpdateUserTool(c *fiber.Ctx) error {
	var in service.UpdateUserToolInput
	if err := parseBody(c, &in); err != nil {
		return nil
	}

	link, err := s.userToolService.Update(c.UserContext(), auth.UserID(c), c.Params("toolId"), in)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(link)
}

// RemoveUserTool handles DELETE /api/user/tools/:toolId
// @Summary Remove saved tool
// @Tags toolkit
// @Param toolId path string true "Tool ID"
// @Success 204
// @Router /user/tools/{toolId} [delete]
func (s *Server) RemoveUserTool(c *fiber.Ctx) error {
	if err := s.userToolService.Remove(c.UserContext(), auth.UserID(c), c.Params("toolId")); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
