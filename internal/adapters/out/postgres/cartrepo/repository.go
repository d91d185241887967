package cartrepo

import (
	"context"
	"errors"

	"laundry/internal/adapters/out/postgres/pgerrs"
	"laundry/internal/core/domain/model/cart"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCartRepository implements ports.CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves the cart of a user.
func (r *GormCartRepository) Get(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save inserts a version zero cart or updates the row still holding the
// loaded version. Either way the stored version becomes Version()+1.
func (r *GormCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	if aggregate.Version() == 0 {
		if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			if pgerrs.IsUniqueViolation(err, "") {
				return errs.NewVersionIsInvalidErrorWithCause("cart", err)
			}
			return err
		}
	} else {
		result := r.db.WithContext(ctx).
			Model(&CartDTO{}).
			Where("user_id = ? AND version = ?", dto.UserID, aggregate.Version()).
			Select("items", "version", "updated_at").
			Updates(&dto)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewVersionIsInvalidError("cart")
		}
	}

	r.tracker.TrackAggregate(aggregate.UserID(), aggregate)
	return nil
}
