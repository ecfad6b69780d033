package account

import "github.com/BruksfildServices01/store-ratings/internal/httperr"

var (
	ErrEmailTaken         = httperr.ErrConflict("email_already_exists", "Email already exists")
	ErrNotFound           = httperr.ErrNotFound("account_not_found", "User not found")
	ErrInvalidCredentials = httperr.ErrInvalidCredentials("invalid_credentials", "Invalid credentials")
	ErrInvalidOldPassword = httperr.ErrInvalidCredentials("invalid_old_password", "Invalid old password")
	ErrInvalidRole        = httperr.ErrValidation("invalid_role", "Role must be admin, user or owner")
)
