package access

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/store-ratings/internal/httperr"
	"github.com/BruksfildServices01/store-ratings/internal/models"
)

func TestAuthorize_Allowed(t *testing.T) {
	id := Identity{AccountID: 7, Role: models.RoleOwner}

	got, err := Authorize(id, OwnerOnly)
	require.NoError(t, err)
	require.Equal(t, id, got)

	got, err = Authorize(id, AnyRole)
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func TestAuthorize_UserAgainstAdminOnlyIsForbidden(t *testing.T) {
	_, err := Authorize(Identity{AccountID: 3, Role: models.RoleUser}, AdminOnly)
	require.True(t, httperr.IsKind(err, httperr.KindForbidden))
}

func TestAuthorize_EveryRoleOutsideItsSet(t *testing.T) {
	sets := map[models.Role]RoleSet{
		models.RoleAdmin: UserOnly,
		models.RoleUser:  OwnerOnly,
		models.RoleOwner: AdminOnly,
	}
	for role, set := range sets {
		_, err := Authorize(Identity{AccountID: 1, Role: role}, set)
		require.Truef(t, httperr.IsKind(err, httperr.KindForbidden), "role %s", role)
	}
}

func TestAuthorize_ZeroIdentityIsAuthError(t *testing.T) {
	_, err := Authorize(Identity{}, AnyRole)
	require.True(t, httperr.IsKind(err, httperr.KindAuth))
	require.False(t, httperr.IsKind(err, httperr.KindForbidden))
}

func TestAuthorize_UnknownRole(t *testing.T) {
	_, err := Authorize(Identity{AccountID: 1, Role: models.Role("root")}, AnyRole)
	require.True(t, httperr.IsKind(err, httperr.KindForbidden))
}
