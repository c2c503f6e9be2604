package service

import (
	"context"
	"fmt"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// EngagementService fronts the atomic counter store. Validation happens here,
// before any store access; the repository only sees well-formed requests.
type EngagementService struct {
	engagementRepo repository.EngagementRepository
	commentRepo    repository.CommentRepository
}

func NewEngagementService(engagementRepo repository.EngagementRepository, commentRepo repository.CommentRepository) *EngagementService {
	return &EngagementService{
		engagementRepo: engagementRepo,
		commentRepo:    commentRepo,
	}
}

// RecordView bumps the blog's view counter. userID 0 means anonymous; any
// other value is also tracked in the unique-viewers set.
func (s *EngagementService) RecordView(ctx context.Context, blogID, userID uint) (*models.ViewResult, error) {
	observability.AddTraceAttributesToContext(ctx,
		attribute.Int("blog.id", int(blogID)),
		attribute.Bool("anonymous", userID == 0),
	)
	res, err := s.engagementRepo.RecordBlogView(ctx, blogID, userID)
	if err != nil {
		return nil, err
	}
	observability.EngagementOps.WithLabelValues("blog", "view").Inc()
	return res, nil
}

// ToggleLike flips the caller's like on a blog.
func (s *EngagementService) ToggleLike(ctx context.Context, blogID, userID uint) (*models.LikeResult, error) {
	res, err := s.engagementRepo.ToggleBlogLike(ctx, blogID, userID)
	if err != nil {
		return nil, err
	}
	op := "unlike"
	if res.Liked {
		op = "like"
	}
	observability.EngagementOps.WithLabelValues("blog", op).Inc()
	return res, nil
}

// RecordShare bumps the blog's share counters for a recognized platform.
func (s *EngagementService) RecordShare(ctx context.Context, blogID uint, platform string) (*models.ShareResult, error) {
	platform = strings.ToLower(strings.TrimSpace(platform))
	if !models.IsValidSharePlatform(platform) {
		return nil, models.NewValidationError(
			fmt.Sprintf("Unrecognized share platform %q (expected one of: %s)", platform, strings.Join(models.SharePlatforms, ", ")),
		)
	}

	res, err := s.engagementRepo.RecordBlogShare(ctx, blogID, platform)
	if err != nil {
		return nil, err
	}
	observability.EngagementOps.WithLabelValues("blog", "share").Inc()
	return res, nil
}

// ToggleCommentLike flips the caller's like on a comment. Soft-deleted
// comments keep their counters frozen.
func (s *EngagementService) ToggleCommentLike(ctx context.Context, commentID, userID uint) (*models.LikeResult, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.IsDeleted {
		return nil, models.NewForbiddenError("Cannot like a deleted comment")
	}

	res, err := s.engagementRepo.ToggleCommentLike(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}
	op := "unlike"
	if res.Liked {
		op = "like"
	}
	observability.EngagementOps.WithLabelValues("comment", op).Inc()
	return res, nil
}
