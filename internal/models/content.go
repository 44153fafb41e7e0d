// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// ContentType discriminates the media shape of a piece of content.
// Exactly one of Content.Video / Content.Images is populated, matching this tag.
type ContentType string

const (
	ContentTypeVideo  ContentType = "video"
	ContentTypeImages ContentType = "images"
)

// Valid reports whether t is one of the known content types.
func (t ContentType) Valid() bool {
	return t == ContentTypeVideo || t == ContentTypeImages
}

// Content represents a post in the Slide application. Media is a tagged
// union keyed by ContentType: video posts carry a single Video row, image
// posts carry one or more ContentImage rows.
type Content struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	AuthorID        uint           `gorm:"not null;index" json:"author_id"`
	Author          User           `gorm:"foreignKey:AuthorID" json:"author"`
	ContentType     ContentType    `gorm:"not null;index" json:"content_type"`
	Video           *Video         `gorm:"foreignKey:ContentID" json:"video,omitempty"`
	Images          []ContentImage `gorm:"foreignKey:ContentID" json:"images,omitempty"`
	Title           string         `gorm:"not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description,omitempty"`
	Hashtags        HashtagList    `gorm:"type:text" json:"hashtags"`
	IsPremium       bool           `gorm:"not null;default:false" json:"is_premium"`
	PremiumPrice    float64        `json:"premium_price,omitempty"`
	IsActive        bool           `gorm:"not null;default:true;index" json:"is_active"`
	ViewCount       int64          `gorm:"not null;default:0" json:"view_count"`
	LastViewedAt    *time.Time     `json:"last_viewed_at,omitempty"`
	PromotedTokenID string         `json:"promoted_token_id,omitempty"`
	IsOnChain       bool           `gorm:"not null;default:false" json:"is_on_chain"`
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// Video holds the media fields of a video post.
type Video struct {
	ID           uint    `gorm:"primaryKey" json:"-"`
	ContentID    uint    `gorm:"not null;uniqueIndex" json:"-"`
	URL          string  `gorm:"not null" json:"url"`
	ThumbnailURL string  `json:"thumbnail_url,omitempty"`
	Duration     float64 `json:"duration"`
}

// ContentImage holds one image of an image post, ordered by Order.
type ContentImage struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	ContentID  uint   `gorm:"not null;index" json:"-"`
	URL        string `gorm:"not null" json:"url"`
	Order      int    `gorm:"column:sort_order;not null" json:"order"`
	StorageRef string `json:"storage_ref,omitempty"`
}

// ContentSummary is the feed-page projection of a Content row, enriched
// with denormalized author fields. Author fields stay empty when the
// author cannot be resolved.
type ContentSummary struct {
	ID              uint           `json:"id"`
	AuthorID        uint           `json:"author_id"`
	AuthorWallet    string         `json:"author_wallet,omitempty"`
	AuthorName      string         `json:"author_name,omitempty"`
	AuthorAvatarURL string         `json:"author_avatar_url,omitempty"`
	ContentType     ContentType    `json:"content_type"`
	Video           *Video         `json:"video,omitempty"`
	Images          []ContentImage `json:"images,omitempty"`
	Title           string         `json:"title"`
	Description     string         `json:"description,omitempty"`
	Hashtags        []string       `json:"hashtags"`
	IsPremium       bool           `json:"is_premium"`
	ViewCount       int64          `json:"view_count"`
	CreatedAt       time.Time      `json:"created_at"`
}

// ContentDetail is the single-item projection returned by feed lookups.
type ContentDetail struct {
	Content
	AuthorWallet string `json:"author_wallet,omitempty"`
}
