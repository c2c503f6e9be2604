package service

import (
	"context"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngagementService_RecordShare_PlatformValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("unknown platform rejected before store access", func(t *testing.T) {
		t.Parallel()
		engRepo := noopEngagementRepo()
		storeCalled := false
		engRepo.recordBlogShareFn = func(_ context.Context, _ uint, _ string) (*models.ShareResult, error) {
			storeCalled = true
			return nil, nil
		}
		svc := NewEngagementService(engRepo, noopCommentRepo())
		_, err := svc.RecordShare(ctx, 1, "myspace")
		assertValidationError(t, err)
		assert.False(t, storeCalled)
	})

	t.Run("platform is normalized", func(t *testing.T) {
		t.Parallel()
		engRepo := noopEngagementRepo()
		var gotPlatform string
		engRepo.recordBlogShareFn = func(_ context.Context, _ uint, platform string) (*models.ShareResult, error) {
			gotPlatform = platform
			return &models.ShareResult{Platform: platform, ShareCount: 1, PlatformCount: 1}, nil
		}
		svc := NewEngagementService(engRepo, noopCommentRepo())
		res, err := svc.RecordShare(ctx, 1, "  Twitter ")
		require.NoError(t, err)
		assert.Equal(t, "twitter", gotPlatform)
		assert.Equal(t, "twitter", res.Platform)
	})

	t.Run("every known platform accepted", func(t *testing.T) {
		t.Parallel()
		svc := NewEngagementService(noopEngagementRepo(), noopCommentRepo())
		for _, platform := range models.SharePlatforms {
			_, err := svc.RecordShare(ctx, 1, platform)
			assert.NoError(t, err, "platform %s", platform)
		}
	})
}

func TestEngagementService_RecordView_PassesViewerThrough(t *testing.T) {
	t.Parallel()

	engRepo := noopEngagementRepo()
	var gotBlogID, gotUserID uint
	engRepo.recordBlogViewFn = func(_ context.Context, blogID, userID uint) (*models.ViewResult, error) {
		gotBlogID, gotUserID = blogID, userID
		return &models.ViewResult{ViewCount: 5, UniqueViewCount: 2}, nil
	}

	svc := NewEngagementService(engRepo, noopCommentRepo())
	res, err := svc.RecordView(context.Background(), 3, 7)
	require.NoError(t, err)
	assert.Equal(t, uint(3), gotBlogID)
	assert.Equal(t, uint(7), gotUserID)
	assert.Equal(t, int64(5), res.ViewCount)
	assert.Equal(t, int64(2), res.UniqueViewCount)
}

func TestEngagementService_ToggleLike_Passthrough(t *testing.T) {
	t.Parallel()

	engRepo := noopEngagementRepo()
	liked := false
	engRepo.toggleBlogLikeFn = func(_ context.Context, _, _ uint) (*models.LikeResult, error) {
		liked = !liked
		count := int64(0)
		if liked {
			count = 1
		}
		return &models.LikeResult{Liked: liked, LikeCount: count}, nil
	}

	svc := NewEngagementService(engRepo, noopCommentRepo())
	ctx := context.Background()

	first, err := svc.ToggleLike(ctx, 1, 7)
	require.NoError(t, err)
	assert.True(t, first.Liked)
	assert.Equal(t, int64(1), first.LikeCount)

	second, err := svc.ToggleLike(ctx, 1, 7)
	require.NoError(t, err)
	assert.False(t, second.Liked)
	assert.Equal(t, int64(0), second.LikeCount)
}

func TestEngagementService_ToggleCommentLike_DeletedCommentGated(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, IsDeleted: true, Content: models.DeletedCommentPlaceholder}, nil
	}
	engRepo := noopEngagementRepo()
	storeCalled := false
	engRepo.toggleCommentLikeFn = func(_ context.Context, _, _ uint) (*models.LikeResult, error) {
		storeCalled = true
		return nil, nil
	}

	svc := NewEngagementService(engRepo, commentRepo)
	_, err := svc.ToggleCommentLike(context.Background(), 5, 7)
	assertAppErrorCode(t, err, models.CodeForbidden)
	assert.False(t, storeCalled)
}

func TestEngagementService_ToggleCommentLike_Success(t *testing.T) {
	t.Parallel()

	svc := NewEngagementService(noopEngagementRepo(), noopCommentRepo())
	res, err := svc.ToggleCommentLike(context.Background(), 5, 7)
	require.NoError(t, err)
	assert.True(t, res.Liked)
}
