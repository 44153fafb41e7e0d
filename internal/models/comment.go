package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment is a user comment on a piece of content.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ContentID uint           `gorm:"not null;index" json:"content_id"`
	AuthorID  uint           `gorm:"not null;index" json:"author_id"`
	Text      string         `gorm:"type:text;not null" json:"text"`
	LikeCount int64          `gorm:"not null;default:0" json:"like_count"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// CommentWithAuthor is the list projection with resolved author fields.
// Unlike feed enrichment, a comment whose author cannot be resolved is a
// data-integrity failure, so the author fields here are always populated.
type CommentWithAuthor struct {
	Comment
	AuthorWallet    string `json:"author_wallet"`
	AuthorName      string `json:"author_name"`
	AuthorAvatarURL string `json:"author_avatar_url,omitempty"`
}
