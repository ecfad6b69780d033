package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/store-ratings/internal/domain/directory"
	"github.com/BruksfildServices01/store-ratings/internal/dto"
	"github.com/BruksfildServices01/store-ratings/internal/models"
)

type DirectoryGormRepository struct {
	db *gorm.DB
}

func NewDirectoryGormRepository(db *gorm.DB) *DirectoryGormRepository {
	return &DirectoryGormRepository{db: db}
}

// applySort adds ORDER BY only for a sort the whitelist knows. The column
// name always comes from the whitelist table.
func applySort(q *gorm.DB, w domain.Whitelist, s domain.Sort) *gorm.DB {
	col, ok := w.Column(s)
	if !ok {
		return q
	}
	return q.Order(clause.OrderByColumn{
		Column: clause.Column{Name: col},
		Desc:   s.Desc(),
	})
}

// --------------------------------------------------
// Stores (admin)
// --------------------------------------------------

func (r *DirectoryGormRepository) storesQuery(
	ctx context.Context,
	f domain.StoreFilter,
) *gorm.DB {

	q := r.db.WithContext(ctx).
		Table("stores").
		Select("stores.id, stores.name, stores.email, stores.address, stores.owner_id, AVG(ratings.rating)::float8 AS avg_rating").
		Joins("LEFT JOIN ratings ON ratings.store_id = stores.id").
		Group("stores.id")

	if f.Name != "" {
		q = q.Where("stores.name ILIKE ?", domain.ContainsPattern(f.Name))
	}
	if f.Email != "" {
		q = q.Where("stores.email = ?", f.Email)
	}

	return applySort(q, domain.StoreSorts, f.Sort)
}

func (r *DirectoryGormRepository) ListStores(
	ctx context.Context,
	f domain.StoreFilter,
) ([]dto.StoreRow, error) {

	out := make([]dto.StoreRow, 0)
	if err := r.storesQuery(ctx, f).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return out, nil
}

// --------------------------------------------------
// Stores (rating user)
// --------------------------------------------------

func (r *DirectoryGormRepository) userStoresQuery(
	ctx context.Context,
	userID uint,
	f domain.UserStoreFilter,
) *gorm.DB {

	q := r.db.WithContext(ctx).
		Table("stores").
		Select("stores.id, stores.name, stores.address, AVG(r.rating)::float8 AS avg_rating, ur.rating AS user_rating").
		Joins("LEFT JOIN ratings r ON r.store_id = stores.id").
		Joins("LEFT JOIN ratings ur ON ur.store_id = stores.id AND ur.user_id = ?", userID).
		Group("stores.id, ur.rating")

	if f.Name != "" {
		q = q.Where("stores.name ILIKE ?", domain.ContainsPattern(f.Name))
	}
	if f.Address != "" {
		q = q.Where("stores.address ILIKE ?", domain.ContainsPattern(f.Address))
	}

	return applySort(q, domain.UserStoreSorts, f.Sort)
}

func (r *DirectoryGormRepository) ListStoresForUser(
	ctx context.Context,
	userID uint,
	f domain.UserStoreFilter,
) ([]dto.UserStoreRow, error) {

	out := make([]dto.UserStoreRow, 0)
	if err := r.userStoresQuery(ctx, userID, f).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list stores for user %d: %w", userID, err)
	}
	return out, nil
}

// --------------------------------------------------
// Accounts (admin)
// --------------------------------------------------

func (r *DirectoryGormRepository) accountsQuery(
	ctx context.Context,
	f domain.AccountFilter,
) *gorm.DB {

	q := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Select("accounts.id, accounts.name, accounts.email, accounts.address, accounts.role")

	if f.Name != "" {
		q = q.Where("accounts.name ILIKE ?", domain.ContainsPattern(f.Name))
	}
	if f.Email != "" {
		q = q.Where("accounts.email = ?", f.Email)
	}
	if f.Role != "" {
		q = q.Where("accounts.role = ?", f.Role)
	}

	return applySort(q, domain.AccountSorts, f.Sort)
}

func (r *DirectoryGormRepository) ListAccounts(
	ctx context.Context,
	f domain.AccountFilter,
) ([]dto.AccountRow, error) {

	out := make([]dto.AccountRow, 0)
	if err := r.accountsQuery(ctx, f).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return out, nil
}

// --------------------------------------------------
// Store creation and counters
// --------------------------------------------------

func (r *DirectoryGormRepository) CreateStore(
	ctx context.Context,
	s *models.Store,
) error {

	if err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(s).Error; err != nil {

		if isUniqueViolation(err) {
			return domain.ErrStoreEmailTaken
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidOwner
		}
		return fmt.Errorf("create store: %w", err)
	}
	return nil
}

func (r *DirectoryGormRepository) Counts(ctx context.Context) (dto.AdminDashboard, error) {
	var out dto.AdminDashboard
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.Account{}).Count(&out.Users).Error; err != nil {
		return out, fmt.Errorf("count accounts: %w", err)
	}
	if err := db.Model(&models.Store{}).Count(&out.Stores).Error; err != nil {
		return out, fmt.Errorf("count stores: %w", err)
	}
	if err := db.Model(&models.Rating{}).Count(&out.Ratings).Error; err != nil {
		return out, fmt.Errorf("count ratings: %w", err)
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*DirectoryGormRepository)(nil)
