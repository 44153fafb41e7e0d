package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account identified by its wallet address.
// FollowerCount and FollowingCount are denormalized and maintained by the
// follow toggle; they never go below zero.
type User struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	WalletAddress  string         `gorm:"unique;not null" json:"wallet_address"`
	Name           string         `gorm:"not null" json:"name"`
	Bio            string         `json:"bio,omitempty"`
	AvatarURL      string         `json:"avatar_url,omitempty"`
	FollowerCount  int64          `gorm:"not null;default:0" json:"follower_count"`
	FollowingCount int64          `gorm:"not null;default:0" json:"following_count"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// Follow is the (follower, following) edge toggled by the social service.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_follow_edge" json:"follower_id"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_follow_edge;index" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}
