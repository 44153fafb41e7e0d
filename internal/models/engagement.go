package models

import "time"

// LikeKind is the vote direction on a piece of content.
type LikeKind string

const (
	LikeKindLike    LikeKind = "like"
	LikeKindDislike LikeKind = "dislike"
)

// Valid reports whether k is a known like kind.
func (k LikeKind) Valid() bool {
	return k == LikeKindLike || k == LikeKindDislike
}

// ContentLike is the single vote row per (content, user) pair. Re-voting
// with the same kind deletes the row; voting the opposite kind mutates
// Kind in place.
type ContentLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ContentID uint      `gorm:"not null;uniqueIndex:idx_content_like" json:"content_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_content_like" json:"user_id"`
	Kind      LikeKind  `gorm:"not null" json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// ContentView is an append-only log row used only to enforce the view
// cooldown. The authoritative view counter is denormalized on Content.
// ViewerKey is either an authenticated wallet subject or "anonymous".
type ContentView struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ContentID uint      `gorm:"not null;index:idx_content_viewer" json:"content_id"`
	ViewerKey string    `gorm:"not null;index:idx_content_viewer" json:"viewer_key"`
	ViewedAt  time.Time `gorm:"not null" json:"viewed_at"`
}

// ContentStats is the read model returned by the engagement stats lookup.
// ViewCount and LastViewedAt come from the denormalized Content fields;
// Likes and Dislikes are counted from ContentLike rows at read time.
type ContentStats struct {
	ContentID    uint       `json:"content_id"`
	ViewCount    int64      `json:"view_count"`
	LastViewedAt *time.Time `json:"last_viewed_at,omitempty"`
	Likes        int64      `json:"likes"`
	Dislikes     int64      `json:"dislikes"`
}
