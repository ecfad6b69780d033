package repository

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/store-ratings/internal/domain/rating"
	"github.com/BruksfildServices01/store-ratings/internal/dto"
	"github.com/BruksfildServices01/store-ratings/internal/models"
)

// ratingUpsert resolves concurrent submissions for the same (user, store)
// inside PostgreSQL: the later statement wins and created_at is kept.
var ratingUpsert = clause.OnConflict{
	Columns:   []clause.Column{{Name: "user_id"}, {Name: "store_id"}},
	DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
}

type RatingGormRepository struct {
	db *gorm.DB
}

func NewRatingGormRepository(db *gorm.DB) *RatingGormRepository {
	return &RatingGormRepository{db: db}
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *RatingGormRepository) upsertQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(ratingUpsert)
}

func (r *RatingGormRepository) Upsert(
	ctx context.Context,
	rt *models.Rating,
) error {

	if err := r.upsertQuery(ctx).Create(rt).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrStoreNotFound
		}
		return fmt.Errorf("upsert rating: %w", err)
	}
	return nil
}

func (r *RatingGormRepository) updateQuery(
	ctx context.Context,
	userID uint,
	storeID uint,
) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Where("user_id = ? AND store_id = ?", userID, storeID)
}

func (r *RatingGormRepository) Update(
	ctx context.Context,
	userID uint,
	storeID uint,
	value int,
) error {

	res := r.updateQuery(ctx, userID, storeID).Update("rating", value)
	if res.Error != nil {
		return fmt.Errorf("update rating: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Aggregates
// --------------------------------------------------

func (r *RatingGormRepository) AverageForStore(
	ctx context.Context,
	storeID uint,
) (*float64, error) {

	var avg sql.NullFloat64
	if err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("AVG(rating)::float8").
		Where("store_id = ?", storeID).
		Row().
		Scan(&avg); err != nil {
		return nil, fmt.Errorf("average for store %d: %w", storeID, err)
	}
	return nullableFloat(avg), nil
}

func (r *RatingGormRepository) ratersQuery(
	ctx context.Context,
	storeIDs []uint,
) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("ratings").
		Select("accounts.name, accounts.email, ratings.rating, ratings.created_at").
		Joins("JOIN accounts ON accounts.id = ratings.user_id").
		Where("ratings.store_id IN ?", storeIDs).
		Order("ratings.created_at DESC, ratings.id DESC")
}

func (r *RatingGormRepository) RatersForStores(
	ctx context.Context,
	storeIDs []uint,
) ([]dto.RaterDTO, error) {

	out := make([]dto.RaterDTO, 0)
	if len(storeIDs) == 0 {
		return out, nil
	}
	if err := r.ratersQuery(ctx, storeIDs).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("raters for stores: %w", err)
	}
	return out, nil
}

func (r *RatingGormRepository) StoreIDsByOwner(
	ctx context.Context,
	ownerID uint,
) ([]uint, error) {

	ids := make([]uint, 0)
	if err := r.db.WithContext(ctx).
		Model(&models.Store{}).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("stores of owner %d: %w", ownerID, err)
	}
	return ids, nil
}

func (r *RatingGormRepository) OwnerAverage(
	ctx context.Context,
	ownerID uint,
) (*float64, error) {

	var avg sql.NullFloat64
	if err := r.db.WithContext(ctx).
		Table("ratings").
		Select("AVG(ratings.rating)::float8").
		Joins("JOIN stores ON stores.id = ratings.store_id").
		Where("stores.owner_id = ?", ownerID).
		Row().
		Scan(&avg); err != nil {
		return nil, fmt.Errorf("average for owner %d: %w", ownerID, err)
	}
	return nullableFloat(avg), nil
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// Compile-time check
var _ domain.Repository = (*RatingGormRepository)(nil)
