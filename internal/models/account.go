package models

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleOwner:
		return true
	}
	return false
}

type Account struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:60;not null" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Address      string `gorm:"size:400" json:"address"`
	Role         Role   `gorm:"size:10;not null;check:chk_accounts_role,role IN ('admin','user','owner')" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
