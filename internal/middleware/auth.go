package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/store-ratings/internal/access"
	"github.com/BruksfildServices01/store-ratings/internal/httperr"
	"github.com/BruksfildServices01/store-ratings/internal/token"
)

const (
	ContextIdentity  = "identity"
	ContextRequestID = httperr.RequestIDKey
)

type Verifier interface {
	Verify(raw string) (access.Identity, error)
}

// AuthMiddleware verifies the bearer token and stores the caller's identity
// in the context. Requests without a valid token never reach the handler.
func AuthMiddleware(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, token.ErrMissing)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abort(c, token.ErrMalformed)
			return
		}

		id, err := v.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			abort(c, err)
			return
		}

		c.Set(ContextIdentity, id)
		c.Next()
	}
}

// RequireRoles rejects callers whose role is not in allowed. It must run
// after AuthMiddleware.
func RequireRoles(allowed access.RoleSet) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := access.Authorize(IdentityFrom(c), allowed); err != nil {
			abort(c, err)
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the verified caller, or the zero Identity when the
// request was not authenticated.
func IdentityFrom(c *gin.Context) access.Identity {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return access.Identity{}
	}
	id, _ := v.(access.Identity)
	return id
}

func abort(c *gin.Context, err error) {
	httperr.AbortWithError(c, err)
}
