package models

import "time"

// Rating is unique per (UserID, StoreID). CreatedAt is written once on first
// insert; resubmissions only touch Value and UpdatedAt.
type Rating struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	UserID  uint    `gorm:"not null;uniqueIndex:idx_ratings_user_store,priority:1" json:"user_id"`
	User    Account `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	StoreID uint    `gorm:"not null;uniqueIndex:idx_ratings_user_store,priority:2;index:idx_ratings_store_id" json:"store_id"`
	Store   Store   `gorm:"foreignKey:StoreID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Value   int     `gorm:"column:rating;not null;check:chk_ratings_rating,rating >= 1 AND rating <= 5" json:"rating"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
