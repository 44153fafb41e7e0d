// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	mrand "math/rand"
	"strings"
	"time"

	"github.com/0xvictorb/slide-alpha-sub000/internal/models"
	"github.com/0xvictorb/slide-alpha-sub000/internal/validation"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

var hashtagPool = []string{
	"crypto", "defi", "nft", "memes", "art", "music", "dance", "gaming",
	"food", "travel", "fitness", "fashion", "tech", "web3", "onchain",
	"daily", "tutorial", "behindthescenes", "vlog", "shorts",
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db  *gorm.DB
	rng *mrand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rng: mrand.New(mrand.NewSource(time.Now().UnixNano())),
	}
}

// RandomWallet returns a checksummed wallet address with random bytes.
func RandomWallet() string {
	buf := make([]byte, 20)
	_, _ = rand.Read(buf)
	wallet, err := validation.NormalizeWalletAddress("0x" + hex.EncodeToString(buf))
	if err != nil {
		// hex of 20 random bytes always normalizes
		panic(err)
	}
	return wallet
}

// CreateUser persists a user with a random wallet and profile.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		WalletAddress: RandomWallet(),
		Name:          gofakeit.Username(),
		Bio:           gofakeit.Sentence(8),
		AvatarURL:     fmt.Sprintf("https://picsum.photos/seed/avatar-%s/200/200", gofakeit.UUID()),
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildContent constructs a content row with realistic media for the
// given type but does not persist it.
func (f *Factory) BuildContent(author *models.User, contentType models.ContentType, overrides ...func(*models.Content)) *models.Content {
	content := &models.Content{
		AuthorID:    author.ID,
		ContentType: contentType,
		Title:       strings.TrimSuffix(gofakeit.Sentence(4), "."),
		Description: gofakeit.Paragraph(1, 2, 8, " "),
		Hashtags:    f.randomHashtags(),
		IsActive:    true,
	}

	// realistic created_at spread over the last 90 days
	daysBack := f.rng.Intn(90)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	content.CreatedAt = time.Now().
		Add(-time.Duration(daysBack)*24*time.Hour -
			time.Duration(hoursBack)*time.Hour -
			time.Duration(minsBack)*time.Minute)

	switch contentType {
	case models.ContentTypeVideo:
		content.Video = &models.Video{
			URL:          fmt.Sprintf("https://cdn.slide.dev/videos/%s.mp4", gofakeit.UUID()),
			ThumbnailURL: fmt.Sprintf("https://picsum.photos/seed/%s/720/1280", gofakeit.UUID()),
			Duration:     5 + f.rng.Float64()*55,
		}
	case models.ContentTypeImages:
		count := 1 + f.rng.Intn(4)
		for i := 0; i < count; i++ {
			content.Images = append(content.Images, models.ContentImage{
				URL:   fmt.Sprintf("https://picsum.photos/seed/%s/1080/1350", gofakeit.UUID()),
				Order: i,
			})
		}
	}

	for _, override := range overrides {
		override(content)
	}
	return content
}

// CreateContent persists a content row built by BuildContent.
func (f *Factory) CreateContent(author *models.User, contentType models.ContentType, overrides ...func(*models.Content)) (*models.Content, error) {
	content := f.BuildContent(author, contentType, overrides...)
	if err := f.db.Create(content).Error; err != nil {
		return nil, err
	}
	return content, nil
}

// CreateComment persists a comment by the given author.
func (f *Factory) CreateComment(content *models.Content, author *models.User) (*models.Comment, error) {
	comment := &models.Comment{
		ContentID: content.ID,
		AuthorID:  author.ID,
		Text:      gofakeit.Sentence(6 + f.rng.Intn(10)),
		CreatedAt: content.CreatedAt.Add(time.Duration(1+f.rng.Intn(72)) * time.Hour),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (f *Factory) randomHashtags() models.HashtagList {
	count := 1 + f.rng.Intn(4)
	tags := make(models.HashtagList, 0, count)
	seen := map[string]bool{}
	for len(tags) < count {
		tag := hashtagPool[f.rng.Intn(len(hashtagPool))]
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}
