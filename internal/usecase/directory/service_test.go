package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/store-ratings/internal/access"
	accountdomain "github.com/BruksfildServices01/store-ratings/internal/domain/account"
	domain "github.com/BruksfildServices01/store-ratings/internal/domain/directory"
	"github.com/BruksfildServices01/store-ratings/internal/dto"
	"github.com/BruksfildServices01/store-ratings/internal/models"
)

type fakeDirectory struct {
	stores     []models.Store
	lastUser   uint
	lastStores domain.StoreFilter
	lastAccts  domain.AccountFilter
	calls      int
}

func (f *fakeDirectory) ListStores(_ context.Context, filter domain.StoreFilter) ([]dto.StoreRow, error) {
	f.calls++
	f.lastStores = filter
	return []dto.StoreRow{{ID: 1, Name: "Corner Shop"}}, nil
}

func (f *fakeDirectory) ListStoresForUser(_ context.Context, userID uint, _ domain.UserStoreFilter) ([]dto.UserStoreRow, error) {
	f.calls++
	f.lastUser = userID
	return []dto.UserStoreRow{}, nil
}

func (f *fakeDirectory) ListAccounts(_ context.Context, filter domain.AccountFilter) ([]dto.AccountRow, error) {
	f.calls++
	f.lastAccts = filter
	return []dto.AccountRow{}, nil
}

func (f *fakeDirectory) CreateStore(_ context.Context, s *models.Store) error {
	f.calls++
	for _, existing := range f.stores {
		if existing.Email == s.Email {
			return domain.ErrStoreEmailTaken
		}
	}
	s.ID = uint(len(f.stores) + 1)
	f.stores = append(f.stores, *s)
	return nil
}

func (f *fakeDirectory) Counts(context.Context) (dto.AdminDashboard, error) {
	f.calls++
	return dto.AdminDashboard{Users: 3, Stores: int64(len(f.stores)), Ratings: 7}, nil
}


type fakeAccounts struct {
	accountdomain.Repository
	byID map[uint]*models.Account
}

func (f fakeAccounts) FindByID(_ context.Context, id uint) (*models.Account, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, accountdomain.ErrNotFound
	}
	return a, nil
}

var (
	ctx   = context.Background()
	admin = access.Identity{AccountID: 1, Role: models.RoleAdmin}
	user  = access.Identity{AccountID: 2, Role: models.RoleUser}
)

func newService() (*Service, *fakeDirectory) {
	repo := &fakeDirectory{}
	accounts := fakeAccounts{byID: map[uint]*models.Account{
		2: {ID: 2, Role: models.RoleUser},
		3: {ID: 3, Role: models.RoleOwner},
	}}
	return NewService(repo, accounts), repo
}

func ptr(v uint) *uint { return &v }

func TestAdminOperationsRejectNonAdmins(t *testing.T) {
	s, repo := newService()

	_, err := s.ListStores(ctx, user, domain.StoreFilter{})
	require.ErrorIs(t, err, access.ErrForbidden)
	_, err = s.ListAccounts(ctx, user, domain.AccountFilter{})
	require.ErrorIs(t, err, access.ErrForbidden)
	_, err = s.CreateStore(ctx, user, CreateStoreInput{Email: "s@x.io"})
	require.ErrorIs(t, err, access.ErrForbidden)
	_, err = s.Dashboard(ctx, access.Identity{})
	require.ErrorIs(t, err, access.ErrMissingIdentity)

	require.Zero(t, repo.calls)
}

func TestListStoresForUser_ScopesToCaller(t *testing.T) {
	s, repo := newService()

	_, err := s.ListStoresForUser(ctx, user, domain.UserStoreFilter{Name: "corner"})
	require.NoError(t, err)
	require.Equal(t, user.AccountID, repo.lastUser)

	_, err = s.ListStoresForUser(ctx, admin, domain.UserStoreFilter{})
	require.ErrorIs(t, err, access.ErrForbidden)
}

func TestListStores_PassesFilter(t *testing.T) {
	s, repo := newService()
	f := domain.StoreFilter{Name: "corner", Sort: domain.StoreSorts.Parse("avg_rating:desc")}

	rows, err := s.ListStores(ctx, admin, f)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, f, repo.lastStores)
}

func TestListAccounts_RejectsUnknownRoleFilter(t *testing.T) {
	s, repo := newService()

	_, err := s.ListAccounts(ctx, admin, domain.AccountFilter{Role: "root"})
	require.ErrorIs(t, err, accountdomain.ErrInvalidRole)

	_, err = s.ListAccounts(ctx, admin, domain.AccountFilter{Role: models.RoleOwner})
	require.NoError(t, err)
	require.Equal(t, models.RoleOwner, repo.lastAccts.Role)
}

func TestCreateStore(t *testing.T) {
	s, repo := newService()

	st, err := s.CreateStore(ctx, admin, CreateStoreInput{
		Name: "Corner Shop Downtown", Email: "shop@x.io", Address: "5 High St", OwnerID: ptr(3),
	})
	require.NoError(t, err)
	require.NotZero(t, st.ID)
	require.Equal(t, uint(3), *st.OwnerID)

	_, err = s.CreateStore(ctx, admin, CreateStoreInput{Email: "shop@x.io"})
	require.ErrorIs(t, err, domain.ErrStoreEmailTaken)
	require.Len(t, repo.stores, 1)
}

func TestCreateStore_OwnerMustBeOwnerRole(t *testing.T) {
	s, repo := newService()

	_, err := s.CreateStore(ctx, admin, CreateStoreInput{Email: "a@x.io", OwnerID: ptr(2)})
	require.ErrorIs(t, err, domain.ErrInvalidOwner)

	_, err = s.CreateStore(ctx, admin, CreateStoreInput{Email: "b@x.io", OwnerID: ptr(404)})
	require.ErrorIs(t, err, domain.ErrInvalidOwner)

	require.Empty(t, repo.stores)
}

func TestDashboard(t *testing.T) {
	s, _ := newService()

	d, err := s.Dashboard(ctx, admin)
	require.NoError(t, err)
	require.Equal(t, dto.AdminDashboard{Users: 3, Stores: 0, Ratings: 7}, d)
}
