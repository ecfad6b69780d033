package directory

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/store-ratings/internal/access"
	accountdomain "github.com/BruksfildServices01/store-ratings/internal/domain/account"
	domain "github.com/BruksfildServices01/store-ratings/internal/domain/directory"
	"github.com/BruksfildServices01/store-ratings/internal/dto"
	"github.com/BruksfildServices01/store-ratings/internal/httperr"
	"github.com/BruksfildServices01/store-ratings/internal/models"
)

type CreateStoreInput struct {
	Name    string
	Email   string
	Address string
	OwnerID *uint
}

type Service struct {
	repo     domain.Repository
	accounts accountdomain.Repository
}

func NewService(repo domain.Repository, accounts accountdomain.Repository) *Service {
	return &Service{repo: repo, accounts: accounts}
}

func (s *Service) ListStores(
	ctx context.Context,
	caller access.Identity,
	f domain.StoreFilter,
) ([]dto.StoreRow, error) {

	if _, err := access.Authorize(caller, access.AdminOnly); err != nil {
		return nil, err
	}
	return s.repo.ListStores(ctx, f)
}

// ListStoresForUser lists stores annotated with the caller's own rating.
func (s *Service) ListStoresForUser(
	ctx context.Context,
	caller access.Identity,
	f domain.UserStoreFilter,
) ([]dto.UserStoreRow, error) {

	id, err := access.Authorize(caller, access.UserOnly)
	if err != nil {
		return nil, err
	}
	return s.repo.ListStoresForUser(ctx, id.AccountID, f)
}

func (s *Service) ListAccounts(
	ctx context.Context,
	caller access.Identity,
	f domain.AccountFilter,
) ([]dto.AccountRow, error) {

	if _, err := access.Authorize(caller, access.AdminOnly); err != nil {
		return nil, err
	}
	if f.Role != "" && !f.Role.Valid() {
		return nil, accountdomain.ErrInvalidRole
	}
	return s.repo.ListAccounts(ctx, f)
}

func (s *Service) CreateStore(
	ctx context.Context,
	caller access.Identity,
	in CreateStoreInput,
) (*models.Store, error) {

	if _, err := access.Authorize(caller, access.AdminOnly); err != nil {
		return nil, err
	}

	if in.OwnerID != nil {
		owner, err := s.accounts.FindByID(ctx, *in.OwnerID)
		if err != nil {
			if httperr.IsKind(err, httperr.KindNotFound) {
				return nil, domain.ErrInvalidOwner
			}
			return nil, err
		}
		if owner.Role != models.RoleOwner {
			return nil, domain.ErrInvalidOwner
		}
	}

	st := models.Store{
		Name:    in.Name,
		Email:   in.Email,
		Address: in.Address,
		OwnerID: in.OwnerID,
	}
	if err := s.repo.CreateStore(ctx, &st); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "store created", "store_id", st.ID, "created_by", caller.AccountID)
	return &st, nil
}

func (s *Service) Dashboard(ctx context.Context, caller access.Identity) (dto.AdminDashboard, error) {
	if _, err := access.Authorize(caller, access.AdminOnly); err != nil {
		return dto.AdminDashboard{}, err
	}
	return s.repo.Counts(ctx)
}
