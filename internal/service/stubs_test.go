package service

import (
	"context"
	"errors"
	"testing"

	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/stretchr/testify/require"
)

// blogRepoStub is a stub for repository.BlogRepository.
type blogRepoStub struct {
	createFn  func(context.Context, *models.Blog) error
	getByIDFn func(context.Context, uint, uint) (*models.Blog, error)
	listFn    func(context.Context, repository.BlogFilter, string, int, int, uint) ([]*models.Blog, error)
	countFn   func(context.Context, repository.BlogFilter) (int64, error)
	updateFn  func(context.Context, *models.Blog) error
	deleteFn  func(context.Context, uint) error
}

func (s *blogRepoStub) Create(ctx context.Context, blog *models.Blog) error {
	return s.createFn(ctx, blog)
}
func (s *blogRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Blog, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *blogRepoStub) List(ctx context.Context, filter repository.BlogFilter, sort string, limit, offset int, currentUserID uint) ([]*models.Blog, error) {
	return s.listFn(ctx, filter, sort, limit, offset, currentUserID)
}
func (s *blogRepoStub) Count(ctx context.Context, filter repository.BlogFilter) (int64, error) {
	return s.countFn(ctx, filter)
}
func (s *blogRepoStub) Update(ctx context.Context, blog *models.Blog) error {
	return s.updateFn(ctx, blog)
}
func (s *blogRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopBlogRepo() *blogRepoStub {
	return &blogRepoStub{
		createFn: func(_ context.Context, b *models.Blog) error {
			b.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Blog, error) {
			return &models.Blog{ID: id, Status: models.BlogStatusPublished, AuthorID: 1}, nil
		},
		listFn: func(_ context.Context, _ repository.BlogFilter, _ string, _, _ int, _ uint) ([]*models.Blog, error) {
			return nil, nil
		},
		countFn: func(_ context.Context, _ repository.BlogFilter) (int64, error) { return 0, nil },
		updateFn: func(_ context.Context, _ *models.Blog) error { return nil },
		deleteFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn             func(context.Context, *models.Comment) error
	getByIDFn            func(context.Context, uint) (*models.Comment, error)
	listTopLevelFn       func(context.Context, uint, int, int) ([]*models.Comment, error)
	countTopLevelFn      func(context.Context, uint) (int64, error)
	listRepliesFn        func(context.Context, uint, int, int) ([]*models.Comment, error)
	countRepliesFn       func(context.Context, uint) (int64, error)
	loadRepliesPreviewFn func(context.Context, []*models.Comment, int) error
	updateFn             func(context.Context, *models.Comment) error
	softDeleteFn         func(context.Context, *models.Comment) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListTopLevel(ctx context.Context, blogID uint, limit, offset int) ([]*models.Comment, error) {
	return s.listTopLevelFn(ctx, blogID, limit, offset)
}
func (s *commentRepoStub) CountTopLevel(ctx context.Context, blogID uint) (int64, error) {
	return s.countTopLevelFn(ctx, blogID)
}
func (s *commentRepoStub) ListReplies(ctx context.Context, parentID uint, limit, offset int) ([]*models.Comment, error) {
	return s.listRepliesFn(ctx, parentID, limit, offset)
}
func (s *commentRepoStub) CountReplies(ctx context.Context, parentID uint) (int64, error) {
	return s.countRepliesFn(ctx, parentID)
}
func (s *commentRepoStub) LoadRepliesPreview(ctx context.Context, comments []*models.Comment, perComment int) error {
	return s.loadRepliesPreviewFn(ctx, comments, perComment)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) SoftDelete(ctx context.Context, comment *models.Comment) error {
	return s.softDeleteFn(ctx, comment)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, c *models.Comment) error {
			c.ID = 42
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, BlogID: 1, AuthorID: 1, Content: "stub"}, nil
		},
		listTopLevelFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Comment, error) {
			return nil, nil
		},
		countTopLevelFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		listRepliesFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Comment, error) {
			return nil, nil
		},
		countRepliesFn:       func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		loadRepliesPreviewFn: func(_ context.Context, _ []*models.Comment, _ int) error { return nil },
		updateFn:             func(_ context.Context, _ *models.Comment) error { return nil },
		softDeleteFn: func(_ context.Context, c *models.Comment) error {
			c.Content = models.DeletedCommentPlaceholder
			c.IsDeleted = true
			return nil
		},
	}
}

// engagementRepoStub is a stub for repository.EngagementRepository.
type engagementRepoStub struct {
	recordBlogViewFn    func(context.Context, uint, uint) (*models.ViewResult, error)
	toggleBlogLikeFn    func(context.Context, uint, uint) (*models.LikeResult, error)
	recordBlogShareFn   func(context.Context, uint, string) (*models.ShareResult, error)
	toggleCommentLikeFn func(context.Context, uint, uint) (*models.LikeResult, error)
}

func (s *engagementRepoStub) RecordBlogView(ctx context.Context, blogID, userID uint) (*models.ViewResult, error) {
	return s.recordBlogViewFn(ctx, blogID, userID)
}
func (s *engagementRepoStub) ToggleBlogLike(ctx context.Context, blogID, userID uint) (*models.LikeResult, error) {
	return s.toggleBlogLikeFn(ctx, blogID, userID)
}
func (s *engagementRepoStub) RecordBlogShare(ctx context.Context, blogID uint, platform string) (*models.ShareResult, error) {
	return s.recordBlogShareFn(ctx, blogID, platform)
}
func (s *engagementRepoStub) ToggleCommentLike(ctx context.Context, commentID, userID uint) (*models.LikeResult, error) {
	return s.toggleCommentLikeFn(ctx, commentID, userID)
}

func noopEngagementRepo() *engagementRepoStub {
	return &engagementRepoStub{
		recordBlogViewFn: func(_ context.Context, _, _ uint) (*models.ViewResult, error) {
			return &models.ViewResult{ViewCount: 1}, nil
		},
		toggleBlogLikeFn: func(_ context.Context, _, _ uint) (*models.LikeResult, error) {
			return &models.LikeResult{Liked: true, LikeCount: 1}, nil
		},
		recordBlogShareFn: func(_ context.Context, _ uint, platform string) (*models.ShareResult, error) {
			return &models.ShareResult{Platform: platform, ShareCount: 1, PlatformCount: 1}, nil
		},
		toggleCommentLikeFn: func(_ context.Context, _, _ uint) (*models.LikeResult, error) {
			return &models.LikeResult{Liked: true, LikeCount: 1}, nil
		},
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, uint) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "stub"}, nil
		},
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:        func(_ context.Context, _ uint) error { return nil },
	}
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected *models.AppError, got %T", err)
	require.Equal(t, code, appErr.Code)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeValidation)
}
