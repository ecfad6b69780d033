package rating

import (
	"context"

	"github.com/BruksfildServices01/store-ratings/internal/dto"
	"github.com/BruksfildServices01/store-ratings/internal/models"
)

type Repository interface {
	// Upsert inserts r or, when a rating for (UserID, StoreID) exists,
	// replaces its value in the same statement. CreatedAt of an existing
	// rating is left untouched.
	Upsert(
		ctx context.Context,
		r *models.Rating,
	) error

	// Update changes the value of an existing rating and returns ErrNotFound
	// when there is none. It never inserts.
	Update(
		ctx context.Context,
		userID uint,
		storeID uint,
		value int,
	) error

	// AverageForStore returns nil when the store has no ratings.
	AverageForStore(
		ctx context.Context,
		storeID uint,
	) (*float64, error)

	// RatersForStores lists ratings for the given stores, newest first.
	RatersForStores(
		ctx context.Context,
		storeIDs []uint,
	) ([]dto.RaterDTO, error)

	StoreIDsByOwner(
		ctx context.Context,
		ownerID uint,
	) ([]uint, error)

	// OwnerAverage is the mean over every rating of every store owned by
	// ownerID taken together, or nil when there are none.
	OwnerAverage(
		ctx context.Context,
		ownerID uint,
	) (*float64, error)
}
