package seed

import (
	"fmt"
	"log"
	"time"

	"github.com/0xvictorb/slide-alpha-sub000/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumContent  int
	VideoRatio  float64
	ShouldClean bool
}

// Seed populates the database with demo users, content, follows,
// reactions, views, and comments.
func Seed(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 20
	}
	if opts.NumContent <= 0 {
		opts.NumContent = 100
	}
	if opts.VideoRatio <= 0 || opts.VideoRatio > 1 {
		opts.VideoRatio = 0.7
	}

	log.Printf("🌱 Starting database seeding with %d users and %d content items...", opts.NumUsers, opts.NumContent)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	f := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("Created %d users", len(users))

	// Content split roughly follows the feed's video ratio so mixed pages
	// look realistic out of the box.
	numVideos := int(float64(opts.NumContent) * opts.VideoRatio)
	contents := make([]*models.Content, 0, opts.NumContent)
	for i := 0; i < opts.NumContent; i++ {
		contentType := models.ContentTypeImages
		if i < numVideos {
			contentType = models.ContentTypeVideo
		}
		author := users[f.rng.Intn(len(users))]
		content, err := f.CreateContent(author, contentType)
		if err != nil {
			return fmt.Errorf("create content: %w", err)
		}
		contents = append(contents, content)
	}
	log.Printf("Created %d content items (%d videos)", len(contents), numVideos)

	if err := seedFollows(db, f, users); err != nil {
		return fmt.Errorf("seed follows: %w", err)
	}
	if err := seedEngagement(db, f, users, contents); err != nil {
		return fmt.Errorf("seed engagement: %w", err)
	}
	if err := seedComments(f, users, contents); err != nil {
		return fmt.Errorf("seed comments: %w", err)
	}

	log.Println("✅ Seeding complete")
	return nil
}

// seedFollows creates a sparse follow mesh and keeps the denormalized
// counters consistent with the edges.
func seedFollows(db *gorm.DB, f *Factory, users []*models.User) error {
	edges := 0
	for _, follower := range users {
		count := f.rng.Intn(len(users) / 2)
		for i := 0; i < count; i++ {
			target := users[f.rng.Intn(len(users))]
			if target.ID == follower.ID {
				continue
			}
			edge := &models.Follow{FollowerID: follower.ID, FollowingID: target.ID}
			result := db.Where("follower_id = ? AND following_id = ?", follower.ID, target.ID).
				FirstOrCreate(edge)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				continue
			}
			edges++
			if err := db.Model(&models.User{}).Where("id = ?", follower.ID).
				Update("following_count", gorm.Expr("following_count + 1")).Error; err != nil {
				return err
			}
			if err := db.Model(&models.User{}).Where("id = ?", target.ID).
				Update("follower_count", gorm.Expr("follower_count + 1")).Error; err != nil {
				return err
			}
		}
	}
	log.Printf("Created %d follow edges", edges)
	return nil
}

// seedEngagement creates like votes and a backdated view history, and
// sets each content's denormalized view counter to match.
func seedEngagement(db *gorm.DB, f *Factory, users []*models.User, contents []*models.Content) error {
	for _, content := range contents {
		likers := f.rng.Intn(len(users))
		for i := 0; i < likers; i++ {
			user := users[f.rng.Intn(len(users))]
			kind := models.LikeKindLike
			if f.rng.Intn(10) == 0 {
				kind = models.LikeKindDislike
			}
			like := &models.ContentLike{ContentID: content.ID, UserID: user.ID, Kind: kind}
			if err := db.Where("content_id = ? AND user_id = ?", content.ID, user.ID).
				FirstOrCreate(like).Error; err != nil {
				return err
			}
		}

		views := f.rng.Intn(200)
		var lastViewed *time.Time
		for i := 0; i < views; i++ {
			viewedAt := content.CreatedAt.Add(time.Duration(f.rng.Intn(90*24)) * time.Hour)
			viewerKey := "anonymous"
			if f.rng.Intn(2) == 0 {
				viewerKey = users[f.rng.Intn(len(users))].WalletAddress
			}
			view := &models.ContentView{ContentID: content.ID, ViewerKey: viewerKey, ViewedAt: viewedAt}
			if err := db.Create(view).Error; err != nil {
				return err
			}
			if lastViewed == nil || viewedAt.After(*lastViewed) {
				t := viewedAt
				lastViewed = &t
			}
		}
		if views > 0 {
			if err := db.Model(&models.Content{}).Where("id = ?", content.ID).
				Updates(map[string]interface{}{
					"view_count":     views,
					"last_viewed_at": lastViewed,
				}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func seedComments(f *Factory, users []*models.User, contents []*models.Content) error {
	total := 0
	for _, content := range contents {
		count := f.rng.Intn(8)
		for i := 0; i < count; i++ {
			author := users[f.rng.Intn(len(users))]
			if _, err := f.CreateComment(content, author); err != nil {
				return err
			}
			total++
		}
	}
	log.Printf("Created %d comments", total)
	return nil
}

// clearData removes seedable rows. Order respects foreign keys.
func clearData(db *gorm.DB) error {
	tables := []interface{}{
		&models.Comment{},
		&models.ContentLike{},
		&models.ContentView{},
		&models.Follow{},
		&models.ContentImage{},
		&models.Video{},
		&models.Content{},
		&models.User{},
	}
	for _, table := range tables {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}
