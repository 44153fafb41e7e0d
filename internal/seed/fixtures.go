package seed

import (
	"fmt"
	"os"

	"github.com/0xvictorb/slide-alpha-sub000/internal/models"
	"github.com/0xvictorb/slide-alpha-sub000/internal/validation"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Fixtures is the shape of a YAML fixture file. Fixtures define
// deterministic demo accounts and posts on top of the random seed data.
type Fixtures struct {
	Users []FixtureUser `yaml:"users"`
}

// FixtureUser is one pinned demo account and its content.
type FixtureUser struct {
	Wallet  string           `yaml:"wallet"`
	Name    string           `yaml:"name"`
	Bio     string           `yaml:"bio"`
	Content []FixtureContent `yaml:"content"`
}

// FixtureContent is one pinned post.
type FixtureContent struct {
	Type        string   `yaml:"type"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Hashtags    []string `yaml:"hashtags"`
	VideoURL    string   `yaml:"video_url"`
	ImageURLs   []string `yaml:"image_urls"`
}

// LoadFixtures parses a YAML fixture file.
func LoadFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	var fx Fixtures
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &fx, nil
}

// Apply persists the fixture accounts and their content. Existing wallets
// are reused so fixtures are idempotent.
func (fx *Fixtures) Apply(db *gorm.DB) error {
	for _, fu := range fx.Users {
		wallet, err := validation.NormalizeWalletAddress(fu.Wallet)
		if err != nil {
			return fmt.Errorf("fixture user %q: %w", fu.Name, err)
		}

		user := &models.User{WalletAddress: wallet, Name: fu.Name, Bio: fu.Bio}
		if err := db.Where("wallet_address = ?", wallet).FirstOrCreate(user).Error; err != nil {
			return err
		}

		for _, fc := range fu.Content {
			contentType := models.ContentType(fc.Type)
			if !contentType.Valid() {
				return fmt.Errorf("fixture content %q: unknown type %q", fc.Title, fc.Type)
			}
			content := &models.Content{
				AuthorID:    user.ID,
				ContentType: contentType,
				Title:       fc.Title,
				Description: fc.Description,
				Hashtags:    fc.Hashtags,
				IsActive:    true,
			}
			switch contentType {
			case models.ContentTypeVideo:
				content.Video = &models.Video{URL: fc.VideoURL}
			case models.ContentTypeImages:
				for i, url := range fc.ImageURLs {
					content.Images = append(content.Images, models.ContentImage{URL: url, Order: i})
				}
			}
			if err := db.Create(content).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
