// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// DeletedCommentPlaceholder replaces the content of a soft-deleted comment.
// The original text is not preserved.
const DeletedCommentPlaceholder = "[Comment deleted]"

// MaxCommentLength caps comment and reply bodies.
const MaxCommentLength = 1000

// Comment represents a comment on a blog, or a reply when ParentCommentID is
// set. Depth is capped at one level: a comment with a parent can never be a
// parent itself (enforced at write time).
type Comment struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	BlogID          uint   `gorm:"not null;index:idx_comments_blog_created" json:"blog_id"`
	AuthorID        uint   `gorm:"not null;index" json:"author_id"`
	Author          User   `gorm:"foreignKey:AuthorID" json:"author"`
	Content         string `gorm:"size:1000;not null" json:"content"`
	ParentCommentID *uint  `gorm:"index" json:"parent_comment_id"`

	LikeCount int64 `gorm:"not null;default:0" json:"like_count"`
	IsDeleted bool  `gorm:"not null;default:false" json:"is_deleted"`

	// RepliesCount is not persisted; computed at query time
	RepliesCount int64 `gorm:"->" json:"replies_count"`
	// Replies holds a bounded preview of this comment's replies (oldest first).
	Replies []*Comment `gorm:"-" json:"replies,omitempty"`

	CreatedAt time.Time `gorm:"index:idx_comments_blog_created" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsReply reports whether the comment is a reply to another comment.
func (c *Comment) IsReply() bool {
	return c.ParentCommentID != nil
}

// CommentLike records a user's like on a comment.
// The combination of CommentID and UserID must be unique.
type CommentLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CommentID uint      `gorm:"not null;uniqueIndex:idx_comment_liker" json:"comment_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_comment_liker" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentPage is one page of top-level comments (with inlined reply previews)
// or of replies, plus pagination metadata.
type CommentPage struct {
	Comments   []*Comment `json:"comments"`
	Pagination PageInfo   `json:"pagination"`
}
