// Package service provides application business logic (blogs, comments, engagement).
package service

import (
	"context"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
	"inkwell/internal/validation"

	"go.opentelemetry.io/otel/attribute"
)

// RepliesPreviewLimit is how many replies are inlined under each top-level
// comment in aggregated payloads. Full threads page through ListReplies.
const RepliesPreviewLimit = 5

// DefaultCommentPageSize is the first comment page size used by blog detail
// and listing payloads.
const DefaultCommentPageSize = 10

type BlogService struct {
	blogRepo    repository.BlogRepository
	commentRepo repository.CommentRepository
}

type CreateBlogInput struct {
	AuthorID      uint
	Title         string
	Content       string
	Summary       string
	Category      string
	Tags          []string
	Status        string
	FeaturedImage string
}

type UpdateBlogInput struct {
	UserID        uint
	BlogID        uint
	Title         string
	Content       string
	Summary       string
	Category      string
	Tags          []string
	Status        string
	FeaturedImage string
}

type ListBlogsInput struct {
	Category      string
	Tag           string
	AuthorID      uint
	Sort          string
	Page          int
	Limit         int
	CurrentUserID uint
}

// ListUserBlogsInput filters a single author's blogs. Unlike the public
// listing, the author may ask for drafts.
type ListUserBlogsInput struct {
	AuthorID      uint
	Status        string
	Page          int
	Limit         int
	CurrentUserID uint
}

// BlogList is one page of aggregated blogs.
type BlogList struct {
	Blogs      []*models.BlogWithComments `json:"blogs"`
	Pagination models.PageInfo            `json:"pagination"`
}

func NewBlogService(blogRepo repository.BlogRepository, commentRepo repository.CommentRepository) *BlogService {
	return &BlogService{
		blogRepo:    blogRepo,
		commentRepo: commentRepo,
	}
}

func (s *BlogService) CreateBlog(ctx context.Context, in CreateBlogInput) (*models.Blog, error) {
	if err := validation.ValidateBlogTitle(in.Title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateBlogContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateBlogSummary(in.Summary); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	tags := normalizeTags(in.Tags)
	if err := validation.ValidateTags(tags); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	status := in.Status
	if status == "" {
		status = models.BlogStatusPublished
	}
	if err := validation.ValidateBlogStatus(status); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	category := in.Category
	if category == "" {
		category = "general"
	}

	blog := &models.Blog{
		Title:         in.Title,
		Content:       in.Content,
		Summary:       in.Summary,
		Category:      category,
		Tags:          tags,
		Status:        status,
		FeaturedImage: in.FeaturedImage,
		AuthorID:      in.AuthorID,
	}
	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}

	return s.blogRepo.GetByID(ctx, blog.ID, in.AuthorID)
}

// normalizeTags lowercases and trims tags and drops empties and duplicates,
// so tag filters match regardless of how the author typed them.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

func (s *BlogService) UpdateBlog(ctx context.Context, in UpdateBlogInput) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, in.BlogID, in.UserID)
	if err != nil {
		return nil, err
	}
	if blog.AuthorID != in.UserID {
		return nil, models.NewForbiddenError("Only the author can edit this blog")
	}

	if in.Title != "" {
		if err := validation.ValidateBlogTitle(in.Title); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		blog.Title = in.Title
	}
	if in.Content != "" {
		blog.Content = in.Content
	}
	if in.Summary != "" {
		if err := validation.ValidateBlogSummary(in.Summary); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		blog.Summary = in.Summary
	}
	if in.Category != "" {
		blog.Category = in.Category
	}
	if in.Tags != nil {
		tags := normalizeTags(in.Tags)
		if err := validation.ValidateTags(tags); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		blog.Tags = tags
	}
	if in.Status != "" {
		if err := validation.ValidateBlogStatus(in.Status); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		blog.Status = in.Status
	}
	if in.FeaturedImage != "" {
		blog.FeaturedImage = in.FeaturedImage
	}

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

// DeleteBlog removes an author's blog along with its comments and engagement
// rows.
func (s *BlogService) DeleteBlog(ctx context.Context, userID, blogID uint) error {
	blog, err := s.blogRepo.GetByID(ctx, blogID, 0)
	if err != nil {
		return err
	}
	if blog.AuthorID != userID {
		return models.NewForbiddenError("Only the author can delete this blog")
	}
	return s.blogRepo.Delete(ctx, blogID)
}

// GetBlogDetail returns a published blog with the requested page of its
// comment tree. Unpublished blogs are not-found on this path, the author
// included; drafts are reachable only through the per-user listing.
func (s *BlogService) GetBlogDetail(ctx context.Context, blogID, currentUserID uint, commentPage, commentLimit int) (*models.BlogWithComments, error) {
	span, ctx := observability.NewSpan(ctx, "BlogService.GetBlogDetail")
	defer span.End()
	span.AddAttributes(attribute.Int("blog.id", int(blogID)), attribute.Int("comment.page", commentPage))

	blog, err := s.blogRepo.GetByID(ctx, blogID, currentUserID)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	if blog.Status != models.BlogStatusPublished {
		return nil, models.NewNotFoundError("Blog", blogID)
	}
	return s.attachComments(ctx, blog, commentPage, commentLimit)
}

// ListBlogs returns the public blog feed. Status is always forced to
// published regardless of filters.
func (s *BlogService) ListBlogs(ctx context.Context, in ListBlogsInput) (*BlogList, error) {
	filter := repository.BlogFilter{
		Category: in.Category,
		Tag:      in.Tag,
		AuthorID: in.AuthorID,
		Status:   models.BlogStatusPublished,
	}
	return s.listPage(ctx, filter, in.Sort, in.Page, in.Limit, in.CurrentUserID)
}

// ListBlogsByUser returns one author's blogs. The author sees drafts when
// asking for them; anyone else is pinned to published.
func (s *BlogService) ListBlogsByUser(ctx context.Context, in ListUserBlogsInput) (*BlogList, error) {
	status := models.BlogStatusPublished
	if in.CurrentUserID == in.AuthorID && in.Status != "" {
		if err := validation.ValidateBlogStatus(in.Status); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		status = in.Status
	}
	filter := repository.BlogFilter{
		AuthorID: in.AuthorID,
		Status:   status,
	}
	return s.listPage(ctx, filter, "date", in.Page, in.Limit, in.CurrentUserID)
}

func (s *BlogService) listPage(ctx context.Context, filter repository.BlogFilter, sort string, page, limit int, currentUserID uint) (*BlogList, error) {
	span, ctx := observability.NewSpan(ctx, "BlogService.listPage")
	defer span.End()
	span.AddAttributes(attribute.Int("page", page), attribute.String("sort", sort))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	total, err := s.blogRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	blogs, err := s.blogRepo.List(ctx, filter, sort, limit, offset, currentUserID)
	if err != nil {
		return nil, err
	}

	out := make([]*models.BlogWithComments, 0, len(blogs))
	for _, blog := range blogs {
		aggregated, err := s.attachComments(ctx, blog, 1, DefaultCommentPageSize)
		if err != nil {
			return nil, err
		}
		out = append(out, aggregated)
	}

	return &BlogList{
		Blogs:      out,
		Pagination: models.NewPageInfo(page, limit, total),
	}, nil
}

// attachComments inlines one page of top-level comments (newest first), each
// carrying a bounded preview of its replies.
func (s *BlogService) attachComments(ctx context.Context, blog *models.Blog, page, limit int) (*models.BlogWithComments, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultCommentPageSize
	}
	offset := (page - 1) * limit

	total, err := s.commentRepo.CountTopLevel(ctx, blog.ID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListTopLevel(ctx, blog.ID, limit, offset)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		// An empty page marshals as [] rather than null.
		comments = []*models.Comment{}
	}
	if err := s.commentRepo.LoadRepliesPreview(ctx, comments, RepliesPreviewLimit); err != nil {
		return nil, err
	}

	return &models.BlogWithComments{
		Blog:              blog,
		Comments:          comments,
		CommentPagination: models.NewPageInfo(page, limit, total),
	}, nil
}
