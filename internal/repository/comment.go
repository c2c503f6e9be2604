// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines interface for comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListTopLevel(ctx context.Context, blogID uint, limit, offset int) ([]*models.Comment, error)
	CountTopLevel(ctx context.Context, blogID uint) (int64, error)
	ListReplies(ctx context.Context, parentID uint, limit, offset int) ([]*models.Comment, error)
	CountReplies(ctx context.Context, parentID uint) (int64, error)
	LoadRepliesPreview(ctx context.Context, comments []*models.Comment, perComment int) error
	Update(ctx context.Context, comment *models.Comment) error
	SoftDelete(ctx context.Context, comment *models.Comment) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateBlog(ctx, comment.BlogID)
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.applyCommentDetails(readDB(r.db).WithContext(ctx)).
		Preload("Author").
		First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

// ListTopLevel returns one page of a blog's top-level comments, newest first.
// Soft-deleted comments are excluded from listings; their tombstones are only
// visible on direct fetches.
func (r *commentRepository) ListTopLevel(ctx context.Context, blogID uint, limit, offset int) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.applyCommentDetails(readDB(r.db).WithContext(ctx)).
		Preload("Author").
		Where("blog_id = ? AND parent_comment_id IS NULL AND is_deleted = FALSE", blogID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

func (r *commentRepository) CountTopLevel(ctx context.Context, blogID uint) (int64, error) {
	var total int64
	err := readDB(r.db).WithContext(ctx).
		Model(&models.Comment{}).
		Where("blog_id = ? AND parent_comment_id IS NULL AND is_deleted = FALSE", blogID).
		Count(&total).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return total, nil
}

// ListReplies returns one page of a comment's replies, oldest first so a
// thread reads top to bottom.
func (r *commentRepository) ListReplies(ctx context.Context, parentID uint, limit, offset int) ([]*models.Comment, error) {
	var replies []*models.Comment
	err := r.applyCommentDetails(readDB(r.db).WithContext(ctx)).
		Preload("Author").
		Where("parent_comment_id = ? AND is_deleted = FALSE", parentID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&replies).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return replies, nil
}

func (r *commentRepository) CountReplies(ctx context.Context, parentID uint) (int64, error) {
	var total int64
	err := readDB(r.db).WithContext(ctx).
		Model(&models.Comment{}).
		Where("parent_comment_id = ? AND is_deleted = FALSE", parentID).
		Count(&total).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return total, nil
}

// LoadRepliesPreview attaches up to perComment replies (oldest first) to each
// comment in the slice. One query per parent; page sizes keep this bounded.
func (r *commentRepository) LoadRepliesPreview(ctx context.Context, comments []*models.Comment, perComment int) error {
	for _, c := range comments {
		if c.RepliesCount == 0 {
			continue
		}
		replies, err := r.ListReplies(ctx, c.ID, perComment, 0)
		if err != nil {
			return err
		}
		c.Replies = replies
	}
	return nil
}

// applyCommentDetails adds the replies_count subquery to comment reads.
// Deleted replies are not counted, matching what ListReplies returns.
func (r *commentRepository) applyCommentDetails(db *gorm.DB) *gorm.DB {
	return db.Select("comments.*, " +
		"(SELECT COUNT(*) FROM comments replies WHERE replies.parent_comment_id = comments.id AND replies.is_deleted = FALSE) as replies_count")
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", comment.ID).
		Update("content", comment.Content).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// SoftDelete replaces the comment content with a placeholder and flags the
// row. The original text is discarded; replies keep their parent.
func (r *commentRepository) SoftDelete(ctx context.Context, comment *models.Comment) error {
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", comment.ID).
		Updates(map[string]interface{}{
			"content":    models.DeletedCommentPlaceholder,
			"is_deleted": true,
		}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	comment.Content = models.DeletedCommentPlaceholder
	comment.IsDeleted = true
	cache.InvalidateBlog(ctx, comment.BlogID)
	return nil
}
