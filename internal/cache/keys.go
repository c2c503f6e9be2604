package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	// UserTTL is how long a cached user record stays valid.
	UserTTL = 5 * time.Minute
	// BlogTTL is how long a cached blog detail stays valid. Engagement
	// writes invalidate eagerly, so this only bounds staleness after
	// direct DB edits.
	BlogTTL = 30 * time.Minute
)

// UserKey returns the cache key for a user record.
func UserKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// BlogKey returns the cache key for a blog's anonymous detail view.
func BlogKey(id uint) string {
	return fmt.Sprintf("blog:%d", id)
}

// InvalidateUser drops the cached user record.
func InvalidateUser(ctx context.Context, id uint) {
	Invalidate(ctx, UserKey(id))
}

// InvalidateBlog drops the cached blog detail.
func InvalidateBlog(ctx context.Context, id uint) {
	Invalidate(ctx, BlogKey(id))
}
