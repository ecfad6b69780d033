package models

import "time"

type Store struct {
	ID      uint     `gorm:"primaryKey" json:"id"`
	Name    string   `gorm:"size:60;not null;index" json:"name"`
	Email   string   `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Address string   `gorm:"size:400" json:"address"`
	OwnerID *uint    `gorm:"index" json:"owner_id"`
	Owner   *Account `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
