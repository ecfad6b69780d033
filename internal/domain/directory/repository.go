package directory

import (
	"context"

	"github.com/BruksfildServices01/store-ratings/internal/dto"
	"github.com/BruksfildServices01/store-ratings/internal/models"
)

type Repository interface {
	// ListStores returns every store matching f with its live average
	// rating; stores without ratings have a nil average.
	ListStores(
		ctx context.Context,
		f StoreFilter,
	) ([]dto.StoreRow, error)

	// ListStoresForUser is ListStores plus userID's own rating per store.
	ListStoresForUser(
		ctx context.Context,
		userID uint,
		f UserStoreFilter,
	) ([]dto.UserStoreRow, error)

	ListAccounts(
		ctx context.Context,
		f AccountFilter,
	) ([]dto.AccountRow, error)

	// CreateStore inserts s. A duplicate email is reported as a conflict.
	CreateStore(
		ctx context.Context,
		s *models.Store,
	) error

	Counts(ctx context.Context) (dto.AdminDashboard, error)
}
