package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

type commentRequest struct {
	Content string `json:"content"`
}

// CreateComment handles POST /api/blogs/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return respondAppError(c, models.NewUnauthorizedError("Authorization required"))
	}

	blogID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondAppError(c, models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.AddComment(c.Context(), service.AddCommentInput{
		AuthorID: userID,
		BlogID:   blogID,
		Content:  req.Content,
	})
	if err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// CreateReply handles POST /api/comments/:id/replies
func (s *Server) CreateReply(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return respondAppError(c, models.NewUnauthorizedError("Authorization required"))
	}

	parentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondAppError(c, models.NewValidationError("Invalid request body"))
	}

	reply, err := s.commentService.AddReply(c.Context(), service.AddReplyInput{
		AuthorID:        userID,
		ParentCommentID: parentID,
		Content:         req.Content,
	})
	if err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(reply)
}

// GetComments handles GET /api/blogs/:id/comments — paginated top-level
// comments, newest first, each with a short reply preview.
func (s *Server) GetComments(c *fiber.Ctx) error {
	blogID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page, limit := parsePagination(c)
	comments, err := s.commentService.ListTopLevelComments(c.Context(), blogID, page, limit)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(comments)
}

// GetReplies handles GET /api/comments/:id/replies — the full reply list for
// one top-level comment, oldest first.
func (s *Server) GetReplies(c *fiber.Ctx) error {
	parentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page, limit := parsePagination(c)
	replies, err := s.commentService.ListReplies(c.Context(), parentID, page, limit)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(replies)
}

// UpdateComment handles PUT /api/comments/:id
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return respondAppError(c, models.NewUnauthorizedError("Authorization required"))
	}

	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondAppError(c, models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.EditComment(c.Context(), service.EditCommentInput{
		UserID:    userID,
		CommentID: commentID,
		Content:   req.Content,
	})
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(comment)
}

// DeleteComment handles DELETE /api/comments/:id. The comment is retained as
// a placeholder so its replies stay anchored.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return respondAppError(c, models.NewUnauthorizedError("Authorization required"))
	}

	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.DeleteComment(c.Context(), commentID, userID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(comment)
}
