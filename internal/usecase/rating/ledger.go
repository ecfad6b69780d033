package rating

import (
	"context"

	"github.com/BruksfildServices01/store-ratings/internal/access"
	domain "github.com/BruksfildServices01/store-ratings/internal/domain/rating"
	"github.com/BruksfildServices01/store-ratings/internal/dto"
	"github.com/BruksfildServices01/store-ratings/internal/models"
)

const (
	OpUpsert = "upsert"
	OpUpdate = "update"
)

type WriteRecorder interface {
	RatingWritten(op string)
}

// Ledger owns every rating write. A (user, store) pair has at most one rating.
type Ledger struct {
	repo     domain.Repository
	recorder WriteRecorder
}

func NewLedger(repo domain.Repository, recorder WriteRecorder) *Ledger {
	return &Ledger{repo: repo, recorder: recorder}
}

func (l *Ledger) record(op string) {
	if l.recorder != nil {
		l.recorder.RatingWritten(op)
	}
}

// UpsertRating creates the caller's rating for storeID or replaces its value.
func (l *Ledger) UpsertRating(
	ctx context.Context,
	caller access.Identity,
	storeID uint,
	value int,
) error {

	id, err := access.Authorize(caller, access.UserOnly)
	if err != nil {
		return err
	}
	if !domain.ValidValue(value) {
		return domain.ErrInvalidValue
	}

	if err := l.repo.Upsert(ctx, &models.Rating{
		UserID:  id.AccountID,
		StoreID: storeID,
		Value:   value,
	}); err != nil {
		return err
	}

	l.record(OpUpsert)
	return nil
}

// UpdateRating changes an existing rating and never creates one.
func (l *Ledger) UpdateRating(
	ctx context.Context,
	caller access.Identity,
	storeID uint,
	value int,
) error {

	id, err := access.Authorize(caller, access.UserOnly)
	if err != nil {
		return err
	}
	if !domain.ValidValue(value) {
		return domain.ErrInvalidValue
	}

	if err := l.repo.Update(ctx, id.AccountID, storeID, value); err != nil {
		return err
	}

	l.record(OpUpdate)
	return nil
}

func (l *Ledger) AverageForStore(ctx context.Context, storeID uint) (*float64, error) {
	return l.repo.AverageForStore(ctx, storeID)
}

func (l *Ledger) RatersForStores(ctx context.Context, storeIDs []uint) ([]dto.RaterDTO, error) {
	return l.repo.RatersForStores(ctx, storeIDs)
}

// OwnerAverageAcrossStores is the mean of all ratings over all of ownerID's
// stores, rounded to one decimal. It is 0 when there are none.
func (l *Ledger) OwnerAverageAcrossStores(ctx context.Context, ownerID uint) (float64, error) {
	avg, err := l.repo.OwnerAverage(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return domain.RoundOneDecimal(*avg), nil
}

func (l *Ledger) OwnerDashboard(ctx context.Context, caller access.Identity) (dto.OwnerDashboard, error) {
	id, err := access.Authorize(caller, access.OwnerOnly)
	if err != nil {
		return dto.OwnerDashboard{}, err
	}

	storeIDs, err := l.repo.StoreIDsByOwner(ctx, id.AccountID)
	if err != nil {
		return dto.OwnerDashboard{}, err
	}

	raters, err := l.repo.RatersForStores(ctx, storeIDs)
	if err != nil {
		return dto.OwnerDashboard{}, err
	}

	return dto.OwnerDashboard{
		AvgRating: domain.RatersMean(raters),
		Raters:    raters,
	}, nil
}
