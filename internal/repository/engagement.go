// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

// EngagementRepository mutates view/like/share counters. Every operation is a
// single transaction built from conditional SQL, so concurrent calls can never
// lose updates or drive a counter negative.
type EngagementRepository interface {
	RecordBlogView(ctx context.Context, blogID, userID uint) (*models.ViewResult, error)
	ToggleBlogLike(ctx context.Context, blogID, userID uint) (*models.LikeResult, error)
	RecordBlogShare(ctx context.Context, blogID uint, platform string) (*models.ShareResult, error)
	ToggleCommentLike(ctx context.Context, commentID, userID uint) (*models.LikeResult, error)
}

type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository creates a new engagement repository
func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

// RecordBlogView bumps the raw view counter. Authenticated viewers are also
// recorded in blog_views, which only counts each (blog, user) pair once.
func (r *engagementRepository) RecordBlogView(ctx context.Context, blogID, userID uint) (*models.ViewResult, error) {
	defer dbMetrics.TrackQuery("update", "blogs")()
	var res models.ViewResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bump := tx.Raw(
			`UPDATE blogs SET view_count = view_count + 1, updated_at = NOW() WHERE id = ? RETURNING view_count`,
			blogID,
		).Scan(&res.ViewCount)
		if bump.Error != nil {
			return bump.Error
		}
		if bump.RowsAffected == 0 {
			return models.NewNotFoundError("Blog", blogID)
		}

		if userID != 0 {
			if err := tx.Exec(
				`INSERT INTO blog_views (blog_id, user_id, created_at)
				 VALUES (?, ?, NOW())
				 ON CONFLICT (blog_id, user_id) DO NOTHING`,
				blogID, userID,
			).Error; err != nil {
				return err
			}
		}

		return tx.Raw(
			`SELECT COUNT(*) FROM blog_views WHERE blog_id = ?`, blogID,
		).Scan(&res.UniqueViewCount).Error
	})
	if err != nil {
		return nil, asAppError(err)
	}
	cache.InvalidateBlog(ctx, blogID)
	return &res, nil
}

// ToggleBlogLike flips the (blog, user) like state. The insert-or-nothing
// probe decides the direction: a fresh row means "like", a conflict means
// "unlike". Counter and like-set always move together.
func (r *engagementRepository) ToggleBlogLike(ctx context.Context, blogID, userID uint) (*models.LikeResult, error) {
	defer dbMetrics.TrackQuery("toggle", "blog_likes")()
	var res models.LikeResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists bool
		if err := tx.Raw(`SELECT EXISTS(SELECT 1 FROM blogs WHERE id = ?)`, blogID).Scan(&exists).Error; err != nil {
			return err
		}
		if !exists {
			return models.NewNotFoundError("Blog", blogID)
		}

		probe := tx.Exec(
			`INSERT INTO blog_likes (blog_id, user_id, created_at)
			 VALUES (?, ?, NOW())
			 ON CONFLICT (blog_id, user_id) DO NOTHING`,
			blogID, userID,
		)
		if probe.Error != nil {
			return probe.Error
		}

		if probe.RowsAffected == 1 {
			res.Liked = true
			return tx.Raw(
				`UPDATE blogs SET like_count = like_count + 1, updated_at = NOW() WHERE id = ? RETURNING like_count`,
				blogID,
			).Scan(&res.LikeCount).Error
		}

		res.Liked = false
		if err := tx.Exec(
			`DELETE FROM blog_likes WHERE blog_id = ? AND user_id = ?`, blogID, userID,
		).Error; err != nil {
			return err
		}
		return tx.Raw(
			`UPDATE blogs SET like_count = GREATEST(like_count - 1, 0), updated_at = NOW() WHERE id = ? RETURNING like_count`,
			blogID,
		).Scan(&res.LikeCount).Error
	})
	if err != nil {
		return nil, asAppError(err)
	}
	cache.InvalidateBlog(ctx, blogID)
	return &res, nil
}

// RecordBlogShare bumps the total share counter and upserts the per-platform
// breakdown row. Platform validity is checked by the service before this runs.
func (r *engagementRepository) RecordBlogShare(ctx context.Context, blogID uint, platform string) (*models.ShareResult, error) {
	defer dbMetrics.TrackQuery("upsert", "blog_shares")()
	res := models.ShareResult{Platform: platform}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bump := tx.Raw(
			`UPDATE blogs SET share_count = share_count + 1, updated_at = NOW() WHERE id = ? RETURNING share_count`,
			blogID,
		).Scan(&res.ShareCount)
		if bump.Error != nil {
			return bump.Error
		}
		if bump.RowsAffected == 0 {
			return models.NewNotFoundError("Blog", blogID)
		}

		if err := tx.Raw(
			`INSERT INTO blog_shares (blog_id, platform, count, created_at, updated_at)
			 VALUES (?, ?, 1, NOW(), NOW())
			 ON CONFLICT (blog_id, platform)
			 DO UPDATE SET count = blog_shares.count + 1, updated_at = NOW()
			 RETURNING count`,
			blogID, platform,
		).Scan(&res.PlatformCount).Error; err != nil {
			return err
		}

		var rows []models.PlatformShare
		if err := tx.Raw(
			`SELECT platform, count FROM blog_shares WHERE blog_id = ? ORDER BY platform`,
			blogID,
		).Scan(&rows).Error; err != nil {
			return err
		}
		res.PlatformShares = models.FullShareBreakdown(rows)
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}
	cache.InvalidateBlog(ctx, blogID)
	return &res, nil
}

// ToggleCommentLike mirrors ToggleBlogLike for comments.
func (r *engagementRepository) ToggleCommentLike(ctx context.Context, commentID, userID uint) (*models.LikeResult, error) {
	defer dbMetrics.TrackQuery("toggle", "comment_likes")()
	var res models.LikeResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists bool
		if err := tx.Raw(`SELECT EXISTS(SELECT 1 FROM comments WHERE id = ?)`, commentID).Scan(&exists).Error; err != nil {
			return err
		}
		if !exists {
			return models.NewNotFoundError("Comment", commentID)
		}

		probe := tx.Exec(
			`INSERT INTO comment_likes (comment_id, user_id, created_at)
			 VALUES (?, ?, NOW())
			 ON CONFLICT (comment_id, user_id) DO NOTHING`,
			commentID, userID,
		)
		if probe.Error != nil {
			return probe.Error
		}

		if probe.RowsAffected == 1 {
			res.Liked = true
			return tx.Raw(
				`UPDATE comments SET like_count = like_count + 1, updated_at = NOW() WHERE id = ? RETURNING like_count`,
				commentID,
			).Scan(&res.LikeCount).Error
		}

		res.Liked = false
		if err := tx.Exec(
			`DELETE FROM comment_likes WHERE comment_id = ? AND user_id = ?`, commentID, userID,
		).Error; err != nil {
			return err
		}
		return tx.Raw(
			`UPDATE comments SET like_count = GREATEST(like_count - 1, 0), updated_at = NOW() WHERE id = ? RETURNING like_count`,
			commentID,
		).Scan(&res.LikeCount).Error
	})
	if err != nil {
		return nil, asAppError(err)
	}
	return &res, nil
}

// asAppError keeps AppErrors intact across the transaction boundary and wraps
// everything else as internal.
func asAppError(err error) error {
	if _, ok := err.(*models.AppError); ok {
		return err
	}
	return models.NewInternalError(err)
}
