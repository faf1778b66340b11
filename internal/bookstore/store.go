package bookstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/MRevitt/BobsUsedBooks/internal/carts"
	"github.com/MRevitt/BobsUsedBooks/internal/catalog"
	"github.com/MRevitt/BobsUsedBooks/internal/customers"
	"github.com/MRevitt/BobsUsedBooks/internal/offers"
	"github.com/MRevitt/BobsUsedBooks/internal/orders"
	"github.com/MRevitt/BobsUsedBooks/internal/refdata"
	"github.com/MRevitt/BobsUsedBooks/pkg/db"
)

// Store is the single data-access handle published by bootstrap. Nothing
// else reaches the storage layer directly.
type Store struct {
	client *db.Client

	Catalog       *catalog.Repository
	Customers     *customers.Repository
	Orders        *orders.Repository
	Carts         *carts.Repository
	Offers        *offers.Repository
	ReferenceData *refdata.Repository
}

// NewStore wires the repositories onto the shared connection.
func NewStore(client *db.Client) *Store {
	conn := client.DB()
	return &Store{
		client:        client,
		Catalog:       catalog.NewRepository(conn),
		Customers:     customers.NewRepository(conn),
		Orders:        orders.NewRepository(conn),
		Carts:         carts.NewRepository(conn),
		Offers:        offers.NewRepository(conn),
		ReferenceData: refdata.NewRepository(conn),
	}
}

// WithTx runs fn with every repository scoped to one transaction.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Store) error) error {
	return s.client.WithTx(ctx, func(tx *gorm.DB) error {
		scoped := &Store{
			client:        s.client,
			Catalog:       s.Catalog.WithTx(tx),
			Customers:     s.Customers.WithTx(tx),
			Orders:        s.Orders.WithTx(tx),
			Carts:         s.Carts.WithTx(tx),
			Offers:        s.Offers.WithTx(tx),
			ReferenceData: s.ReferenceData.WithTx(tx),
		}
		return fn(scoped)
	})
}

// Ping verifies the datasource is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

// Close shuts down the underlying connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}
