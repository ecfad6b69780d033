package directory

import "github.com/BruksfildServices01/store-ratings/internal/httperr"

var (
	ErrStoreEmailTaken = httperr.ErrConflict("store_email_exists", "Email already exists")
	ErrInvalidOwner    = httperr.ErrValidation("invalid_owner", "Owner must be an existing account with the owner role")
)
