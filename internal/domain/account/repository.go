package account

import (
	"context"

	"github.com/BruksfildServices01/store-ratings/internal/models"
)

type Repository interface {
	// Create inserts a and fills in its ID. A duplicate email is reported as
	// a conflict and nothing is written.
	Create(
		ctx context.Context,
		a *models.Account,
	) error

	// CreateIfAbsent inserts a unless its email is already taken and reports
	// whether a row was written.
	CreateIfAbsent(
		ctx context.Context,
		a *models.Account,
	) (bool, error)

	FindByEmail(
		ctx context.Context,
		email string,
	) (*models.Account, error)

	FindByID(
		ctx context.Context,
		id uint,
	) (*models.Account, error)

	UpdatePasswordHash(
		ctx context.Context,
		id uint,
		hash string,
	) error
}
