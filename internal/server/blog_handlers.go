package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

type blogRequest struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Summary       string   `json:"summary"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	Status        string   `json:"status"`
	FeaturedImage string   `json:"featured_image"`
}

// CreateBlog handles POST /api/blogs
func (s *Server) CreateBlog(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return respondAppError(c, models.NewUnauthorizedError("Authorization required"))
	}

	var req blogRequest
	if err := c.BodyParser(&req); err != nil {
		return respondAppError(c, models.NewValidationError("Invalid request body"))
	}

	blog, err := s.blogService.CreateBlog(c.Context(), service.CreateBlogInput{
		AuthorID:      userID,
		Title:         req.Title,
		Content:       req.Content,
		Summary:       req.Summary,
		Category:      req.Category,
		Tags:          req.Tags,
		Status:        req.Status,
		FeaturedImage: req.FeaturedImage,
	})
	if err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(blog)
}

// GetBlog handles GET /api/blogs/:id — the full aggregated detail with the
// first page of comments and reply previews.
func (s *Server) GetBlog(c *fiber.Ctx) error {
	blogID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	currentUser, _ := s.optionalUserID(c)
	commentPage, commentLimit := parseCommentPagination(c)

	detail, err := s.blogService.GetBlogDetail(c.Context(), blogID, currentUser, commentPage, commentLimit)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(detail)
}

// GetBlogs handles GET /api/blogs with category/tag filters, sorting, and
// pagination.
func (s *Server) GetBlogs(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	currentUser, _ := s.optionalUserID(c)
	authorID := uint(c.QueryInt("author", 0))

	list, err := s.blogService.ListBlogs(c.Context(), service.ListBlogsInput{
		Category:      c.Query("category"),
		Tag:           c.Query("tag"),
		AuthorID:      authorID,
		Sort:          c.Query("sort"),
		Page:          page,
		Limit:         limit,
		CurrentUserID: currentUser,
	})
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(list)
}

// UpdateBlog handles PUT /api/blogs/:id
func (s *Server) UpdateBlog(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return respondAppError(c, models.NewUnauthorizedError("Authorization required"))
	}

	blogID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req blogRequest
	if err := c.BodyParser(&req); err != nil {
		return respondAppError(c, models.NewValidationError("Invalid request body"))
	}

	blog, err := s.blogService.UpdateBlog(c.Context(), service.UpdateBlogInput{
		UserID:        userID,
		BlogID:        blogID,
		Title:         req.Title,
		Content:       req.Content,
		Summary:       req.Summary,
		Category:      req.Category,
		Tags:          req.Tags,
		Status:        req.Status,
		FeaturedImage: req.FeaturedImage,
	})
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(blog)
}

// DeleteBlog handles DELETE /api/blogs/:id
func (s *Server) DeleteBlog(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return respondAppError(c, models.NewUnauthorizedError("Authorization required"))
	}

	blogID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.blogService.DeleteBlog(c.Context(), userID, blogID); err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Blog deleted"})
}
