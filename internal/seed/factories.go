// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedPassword is the plaintext password every seeded account shares.
const SeedPassword = "Password123!demo"

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	// synthetic ID counter when running in DryRun mode
	nextID uint
	// hashed once; bcrypt per-user is needlessly slow for bulk seeds
	passwordHash string
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) (*Factory, error) {
	gofakeit.Seed(time.Now().UnixNano())

	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}
	return &Factory{db: db, opts: opts, nextID: 1000, passwordHash: string(hash)}, nil
}

func (f *Factory) syntheticID() uint {
	f.nextID++
	return f.nextID
}

// CreateUser persists a user with generated profile data.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(10, 9999)),
		Email:    gofakeit.Email(),
		Password: f.passwordHash,
		FullName: gofakeit.Name(),
		Bio:      gofakeit.Sentence(10),
	}
	for _, o := range overrides {
		o(user)
	}

	if f.opts.DryRun {
		user.ID = f.syntheticID()
		return user, nil
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildBlog constructs a blog struct without persisting it. Useful for
// batching inserts.
func (f *Factory) BuildBlog(author *models.User, overrides ...func(*models.Blog)) *models.Blog {
	category := blogCategories[rand.Intn(len(blogCategories))]
	blog := &models.Blog{
		Title:    gofakeit.Sentence(gofakeit.Number(3, 8)),
		Content:  gofakeit.Paragraph(3, 5, 12, "\n\n"),
		Summary:  gofakeit.Sentence(15),
		Category: category,
		Tags:     pickTags(category),
		Status:   models.BlogStatusPublished,
		AuthorID: author.ID,
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	blog.CreatedAt = time.Now().AddDate(0, 0, -gofakeit.Number(0, maxDays))
	blog.UpdatedAt = blog.CreatedAt

	for _, o := range overrides {
		o(blog)
	}
	return blog
}

// CreateBlog persists a generated blog for the author.
func (f *Factory) CreateBlog(author *models.User, overrides ...func(*models.Blog)) (*models.Blog, error) {
	blog := f.BuildBlog(author, overrides...)
	if f.opts.DryRun {
		blog.ID = f.syntheticID()
		return blog, nil
	}
	if err := f.db.Create(blog).Error; err != nil {
		return nil, err
	}
	return blog, nil
}

// CreateComment persists a top-level comment by user on blog.
func (f *Factory) CreateComment(user *models.User, blog *models.Blog, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		BlogID:   blog.ID,
		AuthorID: user.ID,
		Content:  gofakeit.Sentence(gofakeit.Number(5, 20)),
	}
	for _, o := range overrides {
		o(comment)
	}

	if f.opts.DryRun {
		comment.ID = f.syntheticID()
		return comment, nil
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateReply persists a reply under the given top-level comment.
func (f *Factory) CreateReply(user *models.User, parent *models.Comment, overrides ...func(*models.Comment)) (*models.Comment, error) {
	if parent.ParentCommentID != nil {
		return nil, fmt.Errorf("cannot seed a reply under reply %d", parent.ID)
	}
	return f.CreateComment(user, &models.Blog{ID: parent.BlogID}, append(overrides, func(c *models.Comment) {
		parentID := parent.ID
		c.ParentCommentID = &parentID
	})...)
}

// CreateBlogLike records a like and keeps the denormalized counter in step.
func (f *Factory) CreateBlogLike(user *models.User, blog *models.Blog) error {
	if f.opts.DryRun {
		blog.LikeCount++
		return nil
	}
	return f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.BlogLike{BlogID: blog.ID, UserID: user.ID}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Blog{}).Where("id = ?", blog.ID).
			UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error
	})
}

// CreateBlogView records a unique view and bumps the view counter.
func (f *Factory) CreateBlogView(user *models.User, blog *models.Blog) error {
	if f.opts.DryRun {
		blog.ViewCount++
		return nil
	}
	return f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.BlogView{BlogID: blog.ID, UserID: user.ID}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Blog{}).Where("id = ?", blog.ID).
			UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
	})
}

// CreateBlogShares records `count` shares on one platform and keeps the
// blog's total in step.
func (f *Factory) CreateBlogShares(blog *models.Blog, platform string, count int64) error {
	if !models.IsValidSharePlatform(platform) {
		return fmt.Errorf("unknown share platform %q", platform)
	}
	if f.opts.DryRun {
		blog.ShareCount += count
		return nil
	}
	return f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.BlogShare{BlogID: blog.ID, Platform: platform, Count: count}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Blog{}).Where("id = ?", blog.ID).
			UpdateColumn("share_count", gorm.Expr("share_count + ?", count)).Error
	})
}

var blogCategories = []string{
	"general", "technology", "programming", "travel", "food",
	"science", "finance", "health", "books",
}

var tagPool = map[string][]string{
	"technology":  {"golang", "cloud", "devops", "databases", "linux", "security"},
	"programming": {"golang", "testing", "architecture", "performance", "tutorials"},
	"travel":      {"europe", "asia", "budget", "photography"},
	"food":        {"recipes", "baking", "vegan", "coffee"},
	"science":     {"space", "biology", "physics"},
	"finance":     {"investing", "budgeting", "crypto"},
	"health":      {"fitness", "nutrition", "sleep"},
	"books":       {"fiction", "nonfiction", "reviews"},
}

func pickTags(category string) []string {
	pool, ok := tagPool[category]
	if !ok {
		pool = []string{"misc", "thoughts", "life"}
	}
	n := gofakeit.Number(1, 3)
	if n > len(pool) {
		n = len(pool)
	}
	idx := rand.Perm(len(pool))[:n]
	tags := make([]string, 0, n)
	for _, i := range idx {
		tags = append(tags, pool[i])
	}
	return tags
}
