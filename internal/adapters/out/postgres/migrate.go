package postgres

import (
	"context"

	"laundry/internal/adapters/out/postgres/cartrepo"
	"laundry/internal/adapters/out/postgres/notificationrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"

	"github.com/go-faster/errors"
	"gorm.io/gorm"
)

// Migrate creates or updates the carts, orders and notifications tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&cartrepo.CartDTO{},
		&orderrepo.OrderDTO{},
		&notificationrepo.NotificationDTO{},
	); err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	return nil
}
