package rating

import "github.com/BruksfildServices01/store-ratings/internal/httperr"

const (
	MinValue = 1
	MaxValue = 5
)

var (
	ErrNotFound      = httperr.ErrNotFound("rating_not_found", "Rating not found")
	ErrStoreNotFound = httperr.ErrNotFound("store_not_found", "Store not found")
	ErrInvalidValue  = httperr.ErrValidation("invalid_rating", "Rating must be an integer between 1 and 5")
)

func ValidValue(v int) bool {
	return v >= MinValue && v <= MaxValue
}
