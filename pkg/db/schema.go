package db

import (
	"context"

	"github.com/MRevitt/BobsUsedBooks/pkg/db/models"
	apperrors "github.com/MRevitt/BobsUsedBooks/pkg/errors"
)

// AllModels lists every mapped entity, parents before dependents so foreign
// keys can be created in one pass.
func AllModels() []any {
	return []any{
		&models.ReferenceDataItem{},
		&models.Customer{},
		&models.Address{},
		&models.Book{},
		&models.Order{},
		&models.OrderItem{},
		&models.ShoppingCart{},
		&models.ShoppingCartItem{},
		&models.Offer{},
	}
}

// AutoMigrate creates any missing tables, columns and constraints from the
// model mapping. Used for the embedded engine and dev auto-migrate; Postgres
// deployments run the SQL migrations instead. Idempotent.
func (c *Client) AutoMigrate(ctx context.Context) error {
	if err := c.conn.WithContext(ctx).AutoMigrate(AllModels()...); err != nil {
		return apperrors.Wrap(apperrors.CodeSchemaCreation, err, "creating schema from model mapping")
	}
	return nil
}
