package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
	"inkwell/internal/validation"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	blogRepo    repository.BlogRepository
}

type AddCommentInput struct {
	AuthorID uint
	BlogID   uint
	Content  string
}

type AddReplyInput struct {
	AuthorID        uint
	ParentCommentID uint
	Content         string
}

type EditCommentInput struct {
	UserID    uint
	CommentID uint
	Content   string
}

func NewCommentService(commentRepo repository.CommentRepository, blogRepo repository.BlogRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		blogRepo:    blogRepo,
	}
}

// AddComment creates a top-level comment on a published blog.
func (s *CommentService) AddComment(ctx context.Context, in AddCommentInput) (*models.Comment, error) {
	if err := validation.ValidateCommentContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	blog, err := s.blogRepo.GetByID(ctx, in.BlogID, 0)
	if err != nil {
		return nil, err
	}
	if blog.Status != models.BlogStatusPublished {
		return nil, models.NewNotFoundError("Blog", in.BlogID)
	}

	comment := &models.Comment{
		BlogID:   in.BlogID,
		AuthorID: in.AuthorID,
		Content:  in.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	observability.CommentsCreated.WithLabelValues("comment").Inc()

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// AddReply creates a reply under a top-level comment. Replying to a reply is
// rejected, which caps thread depth at one level.
func (s *CommentService) AddReply(ctx context.Context, in AddReplyInput) (*models.Comment, error) {
	if err := validation.ValidateCommentContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	parent, err := s.commentRepo.GetByID(ctx, in.ParentCommentID)
	if err != nil {
		return nil, err
	}
	if parent.IsReply() {
		return nil, models.NewDepthExceededError()
	}
	if parent.IsDeleted {
		return nil, models.NewForbiddenError("Cannot reply to a deleted comment")
	}

	parentID := parent.ID
	reply := &models.Comment{
		BlogID:          parent.BlogID,
		AuthorID:        in.AuthorID,
		Content:         in.Content,
		ParentCommentID: &parentID,
	}
	if err := s.commentRepo.Create(ctx, reply); err != nil {
		return nil, err
	}
	observability.CommentsCreated.WithLabelValues("reply").Inc()

	return s.commentRepo.GetByID(ctx, reply.ID)
}

// EditComment replaces the text of the caller's own comment.
func (s *CommentService) EditComment(ctx context.Context, in EditCommentInput) (*models.Comment, error) {
	if err := validation.ValidateCommentContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != in.UserID {
		return nil, models.NewForbiddenError("Only the author can edit this comment")
	}
	if comment.IsDeleted {
		return nil, models.NewForbiddenError("Cannot edit a deleted comment")
	}

	comment.Content = in.Content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment soft-deletes the caller's own comment. The row stays so the
// thread keeps its shape; content becomes a placeholder. Deleting an already
// deleted comment is a no-op.
func (s *CommentService) DeleteComment(ctx context.Context, commentID, userID uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != userID {
		return nil, models.NewForbiddenError("Only the author can delete this comment")
	}
	if comment.IsDeleted {
		return comment, nil
	}

	if err := s.commentRepo.SoftDelete(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListTopLevelComments returns one page of a published blog's comment tree,
// newest first, each comment carrying a bounded reply preview. Drafts look
// not-found here, same as on the detail path.
func (s *CommentService) ListTopLevelComments(ctx context.Context, blogID uint, page, limit int) (*models.CommentPage, error) {
	blog, err := s.blogRepo.GetByID(ctx, blogID, 0)
	if err != nil {
		return nil, err
	}
	if blog.Status != models.BlogStatusPublished {
		return nil, models.NewNotFoundError("Blog", blogID)
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultCommentPageSize
	}
	offset := (page - 1) * limit

	total, err := s.commentRepo.CountTopLevel(ctx, blogID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListTopLevel(ctx, blogID, limit, offset)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	if err := s.commentRepo.LoadRepliesPreview(ctx, comments, RepliesPreviewLimit); err != nil {
		return nil, err
	}

	return &models.CommentPage{
		Comments:   comments,
		Pagination: models.NewPageInfo(page, limit, total),
	}, nil
}

// ListReplies pages through a comment's full reply thread, oldest first.
func (s *CommentService) ListReplies(ctx context.Context, parentID uint, page, limit int) (*models.CommentPage, error) {
	parent, err := s.commentRepo.GetByID(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if parent.IsReply() {
		return nil, models.NewValidationError("Replies do not have their own threads")
	}
	if parent.IsDeleted {
		return nil, models.NewForbiddenError("Cannot fetch replies for a deleted comment")
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultCommentPageSize
	}
	offset := (page - 1) * limit

	total, err := s.commentRepo.CountReplies(ctx, parentID)
	if err != nil {
		return nil, err
	}
	replies, err := s.commentRepo.ListReplies(ctx, parentID, limit, offset)
	if err != nil {
		return nil, err
	}
	if replies == nil {
		replies = []*models.Comment{}
	}

	return &models.CommentPage{
		Comments:   replies,
		Pagination: models.NewPageInfo(page, limit, total),
	}, nil
}
