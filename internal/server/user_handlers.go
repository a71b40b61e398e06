package server

import (
	"toolverse/internal/auth"
	"toolverse/internal/models"
	"toolverse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateUser handles POST /api/users
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param request body service.CreateUserInput true "New user"
// @Success 201 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /users [post]
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var in service.CreateUserInput
	if err := parseBody(c, &in); err != nil {
		return nil
	}

	user, err := s.userService.Create(c.UserContext(), in)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// GetCurrentUser handles GET /api/user
// @Summary Current user
// @Description Returns the stored account for the caller, or the bare identity when none is stored
// @Tags users
// @Produce json
// @Success 200 {object} models.User
// @Router /user [get]
func (s *Server) GetCurrentUser(c *fiber.Ctx) error {
	identity, _ := auth.Current(c)
	user, err := s.userService.GetUserByID(c.UserContext(), identity.UserID)
	if err != nil {
		return c.JSON(identity)
	}
	return c.JSON(user)
}
