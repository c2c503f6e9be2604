package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_AddComment_Validation(t *testing.T) {
	t.Parallel()

	svc := NewCommentService(noopCommentRepo(), noopBlogRepo())
	ctx := context.Background()

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		_, err := svc.AddComment(ctx, AddCommentInput{AuthorID: 1, BlogID: 1})
		assertValidationError(t, err)
	})

	t.Run("content too long", func(t *testing.T) {
		t.Parallel()
		_, err := svc.AddComment(ctx, AddCommentInput{
			AuthorID: 1,
			BlogID:   1,
			Content:  strings.Repeat("x", 1001),
		})
		assertValidationError(t, err)
	})

	t.Run("blog not found propagates repo error", func(t *testing.T) {
		t.Parallel()
		blogRepo := noopBlogRepo()
		blogRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Blog, error) {
			return nil, models.NewNotFoundError("Blog", id)
		}
		svc2 := NewCommentService(noopCommentRepo(), blogRepo)
		_, err := svc2.AddComment(ctx, AddCommentInput{AuthorID: 1, BlogID: 99, Content: "hi"})
		assertAppErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("draft blog reads as not found", func(t *testing.T) {
		t.Parallel()
		blogRepo := noopBlogRepo()
		blogRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Blog, error) {
			return &models.Blog{ID: id, Status: models.BlogStatusDraft, AuthorID: 2}, nil
		}
		svc2 := NewCommentService(noopCommentRepo(), blogRepo)
		_, err := svc2.AddComment(ctx, AddCommentInput{AuthorID: 1, BlogID: 3, Content: "hi"})
		assertAppErrorCode(t, err, models.CodeNotFound)
	})
}

func TestCommentService_AddComment_Success(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	var created *models.Comment
	commentRepo.createFn = func(_ context.Context, c *models.Comment) error {
		c.ID = 42
		created = c
		return nil
	}
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return created, nil
	}

	svc := NewCommentService(commentRepo, noopBlogRepo())
	comment, err := svc.AddComment(context.Background(), AddCommentInput{AuthorID: 7, BlogID: 3, Content: "great read"})
	require.NoError(t, err)
	assert.Equal(t, uint(42), comment.ID)
	assert.Equal(t, uint(3), comment.BlogID)
	assert.Equal(t, uint(7), comment.AuthorID)
	assert.Nil(t, comment.ParentCommentID)
}

func TestCommentService_AddReply_DepthCap(t *testing.T) {
	t.Parallel()

	parentOfParent := uint(5)
	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		// The target is itself a reply.
		return &models.Comment{ID: id, BlogID: 1, AuthorID: 2, ParentCommentID: &parentOfParent}, nil
	}

	svc := NewCommentService(commentRepo, noopBlogRepo())
	_, err := svc.AddReply(context.Background(), AddReplyInput{AuthorID: 1, ParentCommentID: 6, Content: "nested"})
	assertAppErrorCode(t, err, models.CodeDepthExceeded)
}

func TestCommentService_AddReply_DeletedParentRejected(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, BlogID: 1, AuthorID: 2, IsDeleted: true, Content: models.DeletedCommentPlaceholder}, nil
	}

	svc := NewCommentService(commentRepo, noopBlogRepo())
	_, err := svc.AddReply(context.Background(), AddReplyInput{AuthorID: 1, ParentCommentID: 6, Content: "hello?"})
	assertAppErrorCode(t, err, models.CodeForbidden)
}

func TestCommentService_AddReply_Success(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	var created *models.Comment
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		if created != nil && id == created.ID {
			return created, nil
		}
		return &models.Comment{ID: id, BlogID: 9, AuthorID: 2, Content: "parent"}, nil
	}
	commentRepo.createFn = func(_ context.Context, c *models.Comment) error {
		c.ID = 100
		created = c
		return nil
	}

	svc := NewCommentService(commentRepo, noopBlogRepo())
	reply, err := svc.AddReply(context.Background(), AddReplyInput{AuthorID: 3, ParentCommentID: 6, Content: "agreed"})
	require.NoError(t, err)
	assert.Equal(t, uint(9), reply.BlogID, "reply inherits the parent's blog")
	require.NotNil(t, reply.ParentCommentID)
	assert.Equal(t, uint(6), *reply.ParentCommentID)
}

func TestCommentService_EditComment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("author can edit", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, AuthorID: 7, Content: "before"}, nil
		}
		svc := NewCommentService(commentRepo, noopBlogRepo())
		comment, err := svc.EditComment(ctx, EditCommentInput{UserID: 7, CommentID: 5, Content: "after"})
		require.NoError(t, err)
		assert.Equal(t, "after", comment.Content)
	})

	t.Run("non-author is forbidden", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, AuthorID: 7, Content: "before"}, nil
		}
		svc := NewCommentService(commentRepo, noopBlogRepo())
		_, err := svc.EditComment(ctx, EditCommentInput{UserID: 8, CommentID: 5, Content: "after"})
		assertAppErrorCode(t, err, models.CodeForbidden)
	})

	t.Run("deleted comment cannot be edited", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, AuthorID: 7, IsDeleted: true}, nil
		}
		svc := NewCommentService(commentRepo, noopBlogRepo())
		_, err := svc.EditComment(ctx, EditCommentInput{UserID: 7, CommentID: 5, Content: "after"})
		assertAppErrorCode(t, err, models.CodeForbidden)
	})
}

func TestCommentService_DeleteComment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("author delete replaces content with placeholder", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, AuthorID: 7, Content: "my hot take"}, nil
		}
		svc := NewCommentService(commentRepo, noopBlogRepo())
		comment, err := svc.DeleteComment(ctx, 5, 7)
		require.NoError(t, err)
		assert.True(t, comment.IsDeleted)
		assert.Equal(t, models.DeletedCommentPlaceholder, comment.Content)
	})

	t.Run("non-author is forbidden", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, AuthorID: 7, Content: "my hot take"}, nil
		}
		svc := NewCommentService(commentRepo, noopBlogRepo())
		_, err := svc.DeleteComment(ctx, 5, 9)
		assertAppErrorCode(t, err, models.CodeForbidden)
	})

	t.Run("already deleted is a no-op", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, AuthorID: 7, IsDeleted: true, Content: models.DeletedCommentPlaceholder}, nil
		}
		softDeleteCalled := false
		commentRepo.softDeleteFn = func(_ context.Context, _ *models.Comment) error {
			softDeleteCalled = true
			return nil
		}
		svc := NewCommentService(commentRepo, noopBlogRepo())
		comment, err := svc.DeleteComment(ctx, 5, 7)
		require.NoError(t, err)
		assert.True(t, comment.IsDeleted)
		assert.False(t, softDeleteCalled)
	})
}

func TestCommentService_ListTopLevelComments_DraftBlogHidden(t *testing.T) {
	t.Parallel()

	blogRepo := noopBlogRepo()
	blogRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Blog, error) {
		return &models.Blog{ID: id, AuthorID: 7, Status: models.BlogStatusDraft}, nil
	}
	commentRepo := noopCommentRepo()
	listCalled := false
	commentRepo.listTopLevelFn = func(_ context.Context, _ uint, _, _ int) ([]*models.Comment, error) {
		listCalled = true
		return nil, nil
	}

	svc := NewCommentService(commentRepo, blogRepo)
	_, err := svc.ListTopLevelComments(context.Background(), 1, 1, 10)
	assertAppErrorCode(t, err, models.CodeNotFound)
	assert.False(t, listCalled)
}

func TestCommentService_ListTopLevelComments_Pagination(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.countTopLevelFn = func(_ context.Context, _ uint) (int64, error) { return 23, nil }
	var gotLimit, gotOffset int
	commentRepo.listTopLevelFn = func(_ context.Context, _ uint, limit, offset int) ([]*models.Comment, error) {
		gotLimit, gotOffset = limit, offset
		return []*models.Comment{{ID: 1, RepliesCount: 2}}, nil
	}
	previewRequested := 0
	commentRepo.loadRepliesPreviewFn = func(_ context.Context, comments []*models.Comment, perComment int) error {
		previewRequested = perComment
		for _, c := range comments {
			c.Replies = []*models.Comment{{ID: 2}, {ID: 3}}
		}
		return nil
	}

	svc := NewCommentService(commentRepo, noopBlogRepo())
	page, err := svc.ListTopLevelComments(context.Background(), 1, 3, 10)
	require.NoError(t, err)

	assert.Equal(t, 10, gotLimit)
	assert.Equal(t, 20, gotOffset)
	assert.Equal(t, RepliesPreviewLimit, previewRequested)
	assert.Len(t, page.Comments[0].Replies, 2)

	assert.Equal(t, 3, page.Pagination.CurrentPage)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.Equal(t, int64(23), page.Pagination.TotalCount)
	assert.False(t, page.Pagination.HasNext)
	assert.True(t, page.Pagination.HasPrev)
}

func TestCommentService_ListReplies_RejectsReplyParent(t *testing.T) {
	t.Parallel()

	parentID := uint(1)
	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, ParentCommentID: &parentID}, nil
	}

	svc := NewCommentService(commentRepo, noopBlogRepo())
	_, err := svc.ListReplies(context.Background(), 2, 1, 10)
	assertValidationError(t, err)
}

func TestCommentService_ListReplies_DeletedParentRejected(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, IsDeleted: true, Content: models.DeletedCommentPlaceholder}, nil
	}

	svc := NewCommentService(commentRepo, noopBlogRepo())
	_, err := svc.ListReplies(context.Background(), 2, 1, 10)
	assertAppErrorCode(t, err, models.CodeForbidden)
}

func TestCommentService_ListReplies_OrderPassedThrough(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.countRepliesFn = func(_ context.Context, _ uint) (int64, error) { return 2, nil }
	commentRepo.listRepliesFn = func(_ context.Context, parentID uint, limit, offset int) ([]*models.Comment, error) {
		require.Equal(t, uint(5), parentID)
		return []*models.Comment{{ID: 10}, {ID: 11}}, nil
	}

	svc := NewCommentService(commentRepo, noopBlogRepo())
	page, err := svc.ListReplies(context.Background(), 5, 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Comments, 2)
	assert.Equal(t, int64(2), page.Pagination.TotalCount)
	assert.Equal(t, 1, page.Pagination.TotalPages)
}

func TestCommentService_AddComment_CreateErrorPropagates(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("connection reset")
	commentRepo := noopCommentRepo()
	commentRepo.createFn = func(_ context.Context, _ *models.Comment) error {
		return models.NewInternalError(storeErr)
	}

	svc := NewCommentService(commentRepo, noopBlogRepo())
	_, err := svc.AddComment(context.Background(), AddCommentInput{AuthorID: 1, BlogID: 1, Content: "hi"})
	assertAppErrorCode(t, err, models.CodeInternal)
	assert.ErrorIs(t, err, storeErr)
}
