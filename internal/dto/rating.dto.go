package dto

import "time"

type RaterDTO struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

type OwnerDashboard struct {
	AvgRating float64    `json:"avg_rating"`
	Raters    []RaterDTO `json:"raters"`
}
