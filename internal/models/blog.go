// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Blog status values.
const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)

// SharePlatforms lists the recognized share targets. RecordShare rejects
// anything else before touching the store.
var SharePlatforms = []string{"facebook", "twitter", "linkedin", "whatsapp", "email"}

// IsValidSharePlatform reports whether platform is a recognized share target.
func IsValidSharePlatform(platform string) bool {
	for _, p := range SharePlatforms {
		if p == platform {
			return true
		}
	}
	return false
}

// Blog represents a blog post. The view/like/share counters are persisted
// columns mutated only through atomic store-level updates; the remaining
// engagement fields are computed per read.
type Blog struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	Title         string   `gorm:"size:200;not null" json:"title"`
	Content       string   `gorm:"type:text;not null" json:"content"`
	Summary       string   `gorm:"size:500" json:"summary,omitempty"`
	Category      string   `gorm:"default:general;index" json:"category"`
	Tags          []string `gorm:"type:jsonb;serializer:json" json:"tags"`
	Status        string   `gorm:"default:published;index" json:"status"`
	FeaturedImage string   `json:"featured_image,omitempty"`
	AuthorID      uint     `gorm:"not null;index" json:"author_id"`
	Author        User     `gorm:"foreignKey:AuthorID" json:"author"`

	ViewCount  int64 `gorm:"not null;default:0" json:"view_count"`
	LikeCount  int64 `gorm:"not null;default:0" json:"like_count"`
	ShareCount int64 `gorm:"not null;default:0" json:"share_count"`

	// UniqueViewCount is not persisted; computed at query time
	UniqueViewCount int64 `gorm:"->" json:"unique_view_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int64 `gorm:"->" json:"comments_count"`
	// Liked indicates whether the current requesting user liked this blog (computed)
	Liked bool `gorm:"->" json:"liked"`

	Shares []BlogShare `gorm:"foreignKey:BlogID" json:"shares,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BlogView records a unique (blog, user) view pair. Anonymous views bump the
// blog's view_count without creating a row here, so view_count may exceed the
// number of BlogView rows but never trails it.
type BlogView struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BlogID    uint      `gorm:"not null;uniqueIndex:idx_blog_viewer" json:"blog_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_blog_viewer" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// BlogLike records a user's like on a blog.
// The combination of BlogID and UserID must be unique.
type BlogLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BlogID    uint      `gorm:"not null;uniqueIndex:idx_blog_liker" json:"blog_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_blog_liker" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// BlogShare holds the per-platform share breakdown for a blog.
type BlogShare struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	BlogID    uint      `gorm:"not null;uniqueIndex:idx_blog_platform" json:"-"`
	Platform  string    `gorm:"size:32;not null;uniqueIndex:idx_blog_platform" json:"platform"`
	Count     int64     `gorm:"not null;default:0" json:"count"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// BlogWithComments is the aggregated payload for blog detail and listing
// endpoints: the blog plus a first page of its comment tree.
type BlogWithComments struct {
	*Blog
	Comments          []*Comment `json:"comments"`
	CommentPagination PageInfo   `json:"comment_pagination"`
}
