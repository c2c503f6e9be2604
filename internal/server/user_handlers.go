package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

type updateProfileRequest struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`
}

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return respondAppError(c, models.NewUnauthorizedError("Authorization required"))
	}

	user, err := s.userService.GetUserByID(c.Context(), userID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return respondAppError(c, models.NewUnauthorizedError("Authorization required"))
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return respondAppError(c, models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:   userID,
		Username: req.Username,
		FullName: req.FullName,
		Bio:      req.Bio,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(user)
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, errGet := s.userService.GetUserByID(c.Context(), userID)
	if errGet != nil {
		return respondAppError(c, errGet)
	}

	return c.JSON(user)
}

// GetUserBlogs handles GET /api/users/:id/blogs. The author sees their own
// drafts; everyone else only sees published posts.
func (s *Server) GetUserBlogs(c *fiber.Ctx) error {
	authorID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page, limit := parsePagination(c)
	currentUser, _ := s.optionalUserID(c)

	list, errList := s.blogService.ListBlogsByUser(c.Context(), service.ListUserBlogsInput{
		AuthorID:      authorID,
		Status:        c.Query("status"),
		Page:          page,
		Limit:         limit,
		CurrentUserID: currentUser,
	})
	if errList != nil {
		return respondAppError(c, errList)
	}

	return c.JSON(list)
}
