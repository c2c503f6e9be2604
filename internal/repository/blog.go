// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

// BlogFilter narrows blog listings. Zero values mean "no constraint".
type BlogFilter struct {
	Category string
	Tag      string
	AuthorID uint
	Status   string
}

// BlogRepository defines the interface for blog data operations
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Blog, error)
	List(ctx context.Context, filter BlogFilter, sort string, limit, offset int, currentUserID uint) ([]*models.Blog, error)
	Count(ctx context.Context, filter BlogFilter) (int64, error)
	Update(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, id uint) error
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	if err := r.db.WithContext(ctx).Create(blog).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *blogRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Blog, error) {
	var blog models.Blog

	fetch := func() error {
		if err := r.applyBlogDetails(readDB(r.db).WithContext(ctx), currentUserID).
			Preload("Author").
			Preload("Shares").
			First(&blog, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Blog", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	}

	var err error
	if currentUserID == 0 {
		// Anonymous detail views are identical for everyone, so they can be
		// served from cache. Engagement writes invalidate the key.
		err = cache.Aside(ctx, cache.BlogKey(id), &blog, cache.BlogTTL, fetch)
	} else {
		err = fetch()
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) List(ctx context.Context, filter BlogFilter, sort string, limit, offset int, currentUserID uint) ([]*models.Blog, error) {
	var blogs []*models.Blog
	base := r.applyBlogDetails(readDB(r.db).WithContext(ctx), currentUserID).
		Preload("Author").
		Preload("Shares")
	base = applyBlogFilter(base, filter)
	if err := r.applySort(base, sort).
		Limit(limit).
		Offset(offset).
		Find(&blogs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return blogs, nil
}

func (r *blogRepository) Count(ctx context.Context, filter BlogFilter) (int64, error) {
	var total int64
	q := applyBlogFilter(readDB(r.db).WithContext(ctx).Model(&models.Blog{}), filter)
	if err := q.Count(&total).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return total, nil
}

func applyBlogFilter(db *gorm.DB, filter BlogFilter) *gorm.DB {
	if filter.Category != "" {
		db = db.Where("blogs.category = ?", filter.Category)
	}
	if filter.Tag != "" {
		// Tags are stored as a JSONB array; @> checks membership.
		needle, _ := json.Marshal([]string{filter.Tag})
		db = db.Where("blogs.tags @> ?", string(needle))
	}
	if filter.AuthorID != 0 {
		db = db.Where("blogs.author_id = ?", filter.AuthorID)
	}
	if filter.Status != "" {
		db = db.Where("blogs.status = ?", filter.Status)
	}
	return db
}

// applySort whitelists the sort key and direction; anything unrecognized
// falls back to newest first. An "_asc" suffix flips the direction.
func (r *blogRepository) applySort(db *gorm.DB, sort string) *gorm.DB {
	dir := "DESC"
	if key, found := strings.CutSuffix(sort, "_asc"); found {
		sort = key
		dir = "ASC"
	}
	switch sort {
	case "views":
		return db.Order("view_count " + dir + ", created_at DESC")
	case "likes":
		return db.Order("like_count " + dir + ", created_at DESC")
	default: // "date" and anything unrecognized
		return db.Order("created_at " + dir)
	}
}

// applyBlogDetails adds subqueries to fetch computed engagement fields in a
// single query.
func (r *blogRepository) applyBlogDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	// comments_count covers top-level comments only; deleted ones are excluded
	// to match the comment listing.
	selectQuery := "blogs.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.blog_id = blogs.id AND comments.parent_comment_id IS NULL AND comments.is_deleted = FALSE) as comments_count, " +
		"(SELECT COUNT(*) FROM blog_views WHERE blog_views.blog_id = blogs.id) as unique_view_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM blog_likes WHERE blog_likes.blog_id = blogs.id AND blog_likes.user_id = ?) as liked", currentUserID)
	}

	return db.Select(selectQuery + ", false as liked")
}

func (r *blogRepository) Update(ctx context.Context, blog *models.Blog) error {
	if err := r.db.WithContext(ctx).Save(blog).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateBlog(ctx, blog.ID)
	return nil
}

// Delete removes a blog together with its comments and engagement rows in one
// transaction.
func (r *blogRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			`DELETE FROM comment_likes WHERE comment_id IN (SELECT id FROM comments WHERE blog_id = ?)`, id,
		).Error; err != nil {
			return err
		}
		if err := tx.Where("blog_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("blog_id = ?", id).Delete(&models.BlogLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("blog_id = ?", id).Delete(&models.BlogView{}).Error; err != nil {
			return err
		}
		if err := tx.Where("blog_id = ?", id).Delete(&models.BlogShare{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Blog{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateBlog(ctx, id)
	return nil
}
