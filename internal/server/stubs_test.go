package server

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// Function-field stubs so each test overrides only what it needs.

type blogRepoStub struct {
	createFn  func(ctx context.Context, blog *models.Blog) error
	getByIDFn func(ctx context.Context, id uint, currentUserID uint) (*models.Blog, error)
	listFn    func(ctx context.Context, filter repository.BlogFilter, sort string, limit, offset int, currentUserID uint) ([]*models.Blog, error)
	countFn   func(ctx context.Context, filter repository.BlogFilter) (int64, error)
	updateFn  func(ctx context.Context, blog *models.Blog) error
	deleteFn  func(ctx context.Context, id uint) error
}

func (s *blogRepoStub) Create(ctx context.Context, blog *models.Blog) error {
	return s.createFn(ctx, blog)
}
func (s *blogRepoStub) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Blog, error) {
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

func newBlogRepoStub() *blogRepoStub {
	return &blogRepoStub{
		createFn: func(_ context.Context, blog *models.Blog) error {
			blog.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint, _ uint) (*models.Blog, error) {
			return &models.Blog{
				ID:       id,
				Title:    "Concurrency Patterns",
				Content:  "body",
				AuthorID: 1,
				Status:   models.BlogStatusPublished,
			}, nil
		},
		listFn: func(_ context.Context, _ repository.BlogFilter, _ string, _, _ int, _ uint) ([]*models.Blog, error) {
			return nil, nil
		},
		countFn: func(_ context.Context, _ repository.BlogFilter) (int64, error) {
			return 0, nil
		},
		updateFn: func(_ context.Context, _ *models.Blog) error { return nil },
		deleteFn: func(_ context.Context, _ uint) error { return nil },
	}
}

type commentRepoStub struct {
	createFn             func(ctx context.Context, comment *models.Comment) error
	getByIDFn            func(ctx context.Context, id uint) (*models.Comment, error)
	listTopLevelFn       func(ctx context.Context, blogID uint, limit, offset int) ([]*models.Comment, error)
	countTopLevelFn      func(ctx context.Context, blogID uint) (int64, error)
	listRepliesFn        func(ctx context.Context, parentID uint, limit, offset int) ([]*models.Comment, error)
	countRepliesFn       func(ctx context.Context, parentID uint) (int64, error)
	loadRepliesPreviewFn func(ctx context.Context, comments []*models.Comment, perComment int) error
	updateFn             func(ctx context.Context, comment *models.Comment) error
	softDeleteFn         func(ctx context.Context, comment *models.Comment) error
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

func newCommentRepoStub() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, comment *models.Comment) error {
			comment.ID = 10
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, BlogID: 1, AuthorID: 1, Content: "first"}, nil
		},
		listTopLevelFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Comment, error) {
			return nil, nil
		},
		countTopLevelFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		listRepliesFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Comment, error) {
			return nil, nil
		},
		countRepliesFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		loadRepliesPreviewFn: func(_ context.Context, _ []*models.Comment, _ int) error {
			return nil
		},
		updateFn: func(_ context.Context, _ *models.Comment) error { return nil },
		softDeleteFn: func(_ context.Context, comment *models.Comment) error {
			comment.Content = models.DeletedCommentPlaceholder
			comment.IsDeleted = true
			return nil
		},
	}
}

type engagementRepoStub struct {
	recordViewFn        func(ctx context.Context, blogID, userID uint) (*models.ViewResult, error)
	toggleLikeFn        func(ctx context.Context, blogID, userID uint) (*models.LikeResult, error)
	recordShareFn       func(ctx context.Context, blogID uint, platform string) (*models.ShareResult, error)
	toggleCommentLikeFn func(ctx context.Context, commentID, userID uint) (*models.LikeResult, error)
}

func (s *engagementRepoStub) RecordBlogView(ctx context.Context, blogID, userID uint) (*models.ViewResult, error) {
	return s.recordViewFn(ctx, blogID, userID)
}
func (s *engagementRepoStub) ToggleBlogLike(ctx context.Context, blogID, userID uint) (*models.LikeResult, error) {
	return s.toggleLikeFn(ctx, blogID, userID)
}
func (s *engagementRepoStub) RecordBlogShare(ctx context.Context, blogID uint, platform string) (*models.ShareResult, error) {
	return s.recordShareFn(ctx, blogID, platform)
}
func (s *engagementRepoStub) ToggleCommentLike(ctx context.Context, commentID, userID uint) (*models.LikeResult, error) {
	return s.toggleCommentLikeFn(ctx, commentID, userID)
}

func newEngagementRepoStub() *engagementRepoStub {
	return &engagementRepoStub{
		recordViewFn: func(_ context.Context, _ uint, _ uint) (*models.ViewResult, error) {
			return &models.ViewResult{ViewCount: 1}, nil
		},
		toggleLikeFn: func(_ context.Context, _ uint, _ uint) (*models.LikeResult, error) {
			return &models.LikeResult{Liked: true, LikeCount: 1}, nil
		},
		recordShareFn: func(_ context.Context, _ uint, platform string) (*models.ShareResult, error) {
			return &models.ShareResult{
				Platform:       platform,
				ShareCount:     1,
				PlatformCount:  1,
				PlatformShares: models.FullShareBreakdown([]models.PlatformShare{{Platform: platform, Count: 1}}),
			}, nil
		},
		toggleCommentLikeFn: func(_ context.Context, _ uint, _ uint) (*models.LikeResult, error) {
			return &models.LikeResult{Liked: true, LikeCount: 1}, nil
		},
	}
}

type userRepoStub struct {
	getByIDFn       func(ctx context.Context, id uint) (*models.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*models.User, error)
	getByUsernameFn func(ctx context.Context, username string) (*models.User, error)
	createFn        func(ctx context.Context, user *models.User) error
	updateFn        func(ctx context.Context, user *models.User) error
	deleteFn        func(ctx context.Context, id uint) error
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

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "alice", Email: "alice@example.com"}, nil
		},
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn: func(_ context.Context, user *models.User) error {
			user.ID = 1
			return nil
		},
		updateFn: func(_ context.Context, _ *models.User) error { return nil },
		deleteFn: func(_ context.Context, _ uint) error { return nil },
	}
}
