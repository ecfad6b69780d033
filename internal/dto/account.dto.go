package dto

import "github.com/BruksfildServices01/store-ratings/internal/models"

type AccountSummary struct {
	ID    uint        `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

func NewAccountSummary(a *models.Account) AccountSummary {
	return AccountSummary{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
		Role:  a.Role,
	}
}

// AccountRow is the admin directory projection. It never carries the
// password hash.
type AccountRow struct {
	ID      uint        `json:"id"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Address string      `json:"address"`
	Role    models.Role `json:"role"`
}

type AccountDetail struct {
	AccountRow
	// AvgRating is set for owners only.
	AvgRating *float64 `json:"avg_rating,omitempty"`
}

type LoginResult struct {
	Token string         `json:"token"`
	User  AccountSummary `json:"user"`
}
