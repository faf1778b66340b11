package bookstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MRevitt/BobsUsedBooks/pkg/config"
	"github.com/MRevitt/BobsUsedBooks/pkg/db"
	"github.com/MRevitt/BobsUsedBooks/pkg/db/models"
	"github.com/MRevitt/BobsUsedBooks/pkg/logger"
)

var testDBSeq atomic.Int64

func openTestStore(t *testing.T) *Store {
	t.Helper()

	logg := logger.New(logger.Options{Level: zerolog.Disabled, Output: io.Discard})
	path := fmt.Sprintf("file:storetest%d?mode=memory&cache=shared", testDBSeq.Add(1))

	client, err := db.New(context.Background(), config.DBConfig{MaxOpenConns: 1, MaxIdleConns: 1},
		db.Options{UseSQLite: true, SQLitePath: path}, logg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.AutoMigrate(context.Background()))
	require.NoError(t, client.SeedReferenceData(context.Background(), logg))
	return NewStore(client)
}

func TestPing(t *testing.T) {
	store := openTestStore(t)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestWithTxCommits(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	err := store.WithTx(ctx, func(tx *Store) error {
		customer, err := tx.Customers.Create(ctx, &models.Customer{
			Sub: "tx-sub-1", Username: "frank", CreatedBy: "test",
		})
		if err != nil {
			return err
		}
		_, err = tx.Offers.Create(ctx, &models.Offer{
			BookName: "Committed Offer", Author: "Someone",
			PublisherID: 23, BookTypeID: 7, GenreID: 16, ConditionID: 5,
			CustomerID: customer.ID,
			BookPrice:  decimal.RequireFromString("3.00"),
			CreatedBy:  "test",
		})
		return err
	})
	require.NoError(t, err)

	customer, err := store.Customers.GetBySub(ctx, "tx-sub-1")
	require.NoError(t, err)

	offers, err := store.Offers.ListByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Len(t, offers, 1)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	boom := errors.New("abort")
	err := store.WithTx(ctx, func(tx *Store) error {
		if _, err := tx.Customers.Create(ctx, &models.Customer{
			Sub: "tx-sub-2", Username: "grace", CreatedBy: "test",
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = store.Customers.GetBySub(ctx, "tx-sub-2")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
