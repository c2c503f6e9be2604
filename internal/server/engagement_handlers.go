package server

import (
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

type shareRequest struct {
	Platform string `json:"platform"`
}

// TrackBlogView handles POST /api/blogs/:id/view. Anonymous views count
// toward the total; authenticated viewers are also tracked for the unique
// count.
func (s *Server) TrackBlogView(c *fiber.Ctx) error {
	blogID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	userID, _ := s.optionalUserID(c)
	result, err := s.engagementService.RecordView(c.Context(), blogID, userID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(result)
}

// LikeBlog handles POST /api/blogs/:id/like. A second like from the same
// user removes the first.
func (s *Server) LikeBlog(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return respondAppError(c, models.NewUnauthorizedError("Authorization required"))
	}

	blogID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, err := s.engagementService.ToggleLike(c.Context(), blogID, userID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(result)
}

// TrackBlogShare handles POST /api/blogs/:id/share
func (s *Server) TrackBlogShare(c *fiber.Ctx) error {
	blogID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req shareRequest
	if err := c.BodyParser(&req); err != nil {
		return respondAppError(c, models.NewValidationError("Invalid request body"))
	}

	result, err := s.engagementService.RecordShare(c.Context(), blogID, req.Platform)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(result)
}

// LikeComment handles POST /api/comments/:id/like
func (s *Server) LikeComment(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return respondAppError(c, models.NewUnauthorizedError("Authorization required"))
	}

	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, err := s.engagementService.ToggleCommentLike(c.Context(), commentID, userID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(result)
}
