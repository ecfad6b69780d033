package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/store-ratings/internal/domain/account"
	"github.com/BruksfildServices01/store-ratings/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

func (r *AccountGormRepository) Create(
	ctx context.Context,
	a *models.Account,
) error {

	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

func (r *AccountGormRepository) CreateIfAbsent(
	ctx context.Context,
	a *models.Account,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(a)
	if res.Error != nil {
		return false, fmt.Errorf("create account: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *AccountGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.Account, error) {

	var a models.Account
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&a).Error; err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find account by email: %w", err)
	}
	return &a, nil
}

func (r *AccountGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Account, error) {

	var a models.Account
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find account %d: %w", id, err)
	}
	return &a, nil
}

func (r *AccountGormRepository) UpdatePasswordHash(
	ctx context.Context,
	id uint,
	hash string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", id).
		Update("password_hash", hash)
	if res.Error != nil {
		return fmt.Errorf("update password: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*AccountGormRepository)(nil)
