package server

import (
	"toolverse/internal/auth"
	"toolverse/internal/featureflags"
	"toolverse/internal/models"
	"toolverse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetBlogPosts handles GET /api/blog
// @Summary List blog posts
// @Description Filter, sort (featured first, then newest) and paginate posts
// @Tags blog
// @Produce json
// @Param category query string false "Exact category"
// @Param featured query bool false "Featured flag"
// @Param limit query int false "Page size, 0 for no cap"
// @Param offset query int false "Page start"
// @Success 200 {array} models.BlogPost
// @Failure 500 {object} models.ErrorResponse
// @Router /blog [get]
func (s *Server) GetBlogPosts(c *fiber.Ctx) error {
	posts, err := s.blogService.List(c.UserContext(), parseBlogFilter(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(posts)
}

// GetBlogPost handles GET /api/blog/:id
// @Summary Get blog post
// @Tags blog
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} models.BlogPost
// @Failure 404 {object} models.ErrorResponse
// @Router /blog/{id} [get]
func (s *Server) GetBlogPost(c *fiber.Ctx) error {
	post, err := s.blogService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(post)
}

// CreateBlogPost handles POST /api/blog. Hidden unless the blog_submissions flag is on.
// @Summary Submit blog post
// @Tags blog
// @Accept json
// @Produce json
// @Param request body service.CreateBlogPostInput true "Blog post"
// @Success 201 {object} models.BlogPost
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /blog [post]
func (s *Server) CreateBlogPost(c *fiber.Ctx) error {
	userID := auth.UserID(c)
	if !s.featureFlags.Enabled(featureflags.BlogSubmissions, userID) {
		return models.RespondWithAppError(c, &models.AppError{
			Code:    models.CodeNotFound,
			Message: "Blog submissions are not enabled",
		})
	}

	var in service.CreateBlogPostInput
	if err := parseBody(c, &in); err != nil {
		return nil
	}

	post, err := s.blogService.Create(c.UserContext(), in, userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}
