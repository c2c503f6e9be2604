package seed

import (
	"fmt"
	"log"
	"math/rand"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumBlogs    int
	ShouldClean bool
	// DryRun builds entities without touching the database.
	DryRun bool
	// MaxDays bounds how far in the past generated content is dated.
	MaxDays int
}

// Seed populates the database with demo users, blogs, comment threads, and
// engagement data. Every denormalized counter it writes is consistent with
// the underlying rows.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d blogs...", opts.NumUsers, opts.NumBlogs)

	if opts.ShouldClean && !opts.DryRun {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	factory, err := NewFactory(db, opts)
	if err != nil {
		return err
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create users: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("✓ %d users created (password %q)", len(users), SeedPassword)

	blogs := make([]*models.Blog, 0, opts.NumBlogs)
	for i := 0; i < opts.NumBlogs; i++ {
		author := users[rand.Intn(len(users))]
		blog, err := factory.CreateBlog(author, func(b *models.Blog) {
			// a handful of drafts so author-only visibility is exercised
			if rand.Intn(10) == 0 {
				b.Status = models.BlogStatusDraft
			}
		})
		if err != nil {
			return fmt.Errorf("failed to create blogs: %w", err)
		}
		blogs = append(blogs, blog)
	}
	log.Printf("✓ %d blogs created", len(blogs))

	commentCount, err := seedComments(factory, users, blogs)
	if err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("✓ %d comments created", commentCount)

	if err := seedEngagement(factory, users, blogs); err != nil {
		return fmt.Errorf("failed to create engagement data: %w", err)
	}
	log.Println("✓ views, likes, and shares recorded")

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func seedComments(factory *Factory, users []*models.User, blogs []*models.Blog) (int, error) {
	total := 0
	for _, blog := range blogs {
		if blog.Status != models.BlogStatusPublished {
			continue
		}
		for i := 0; i < rand.Intn(6); i++ {
			commenter := users[rand.Intn(len(users))]
			comment, err := factory.CreateComment(commenter, blog)
			if err != nil {
				return total, err
			}
			total++

			for j := 0; j < rand.Intn(4); j++ {
				replier := users[rand.Intn(len(users))]
				if _, err := factory.CreateReply(replier, comment); err != nil {
					return total, err
				}
				total++
			}
		}
	}
	return total, nil
}

func seedEngagement(factory *Factory, users []*models.User, blogs []*models.Blog) error {
	for _, blog := range blogs {
		if blog.Status != models.BlogStatusPublished {
			continue
		}

		// distinct readers; the likes are a subset of the viewers
		viewers := rand.Perm(len(users))[:rand.Intn(len(users)+1)]
		for i, idx := range viewers {
			if err := factory.CreateBlogView(users[idx], blog); err != nil {
				return err
			}
			if i%3 == 0 {
				if err := factory.CreateBlogLike(users[idx], blog); err != nil {
					return err
				}
			}
		}

		for _, platform := range models.SharePlatforms {
			if rand.Intn(3) != 0 {
				continue
			}
			if err := factory.CreateBlogShares(blog, platform, int64(rand.Intn(20)+1)); err != nil {
				return err
			}
		}
	}
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE comment_likes, comments, blog_shares, blog_likes, blog_views, blogs, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}
