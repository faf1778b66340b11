package orders

import (
	"context"
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
	"github.com/MRevitt/BobsUsedBooks/pkg/enums"
	apperrors "github.com/MRevitt/BobsUsedBooks/pkg/errors"
	"github.com/MRevitt/BobsUsedBooks/pkg/logger"
)

var testDBSeq atomic.Int64

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	logg := logger.New(logger.Options{Level: zerolog.Disabled, Output: io.Discard})
	path := fmt.Sprintf("file:orderstest%d?mode=memory&cache=shared", testDBSeq.Add(1))

	client, err := db.New(context.Background(), config.DBConfig{MaxOpenConns: 1, MaxIdleConns: 1},
		db.Options{UseSQLite: true, SQLitePath: path}, logg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.AutoMigrate(context.Background()))
	require.NoError(t, client.SeedReferenceData(context.Background(), logg))
	return client.DB()
}

type fixture struct {
	customer models.Customer
	address  models.Address
	book     models.Book
}

func seedFixture(t *testing.T, conn *gorm.DB, sub string) fixture {
	t.Helper()

	f := fixture{
		customer: models.Customer{Sub: sub, Username: "buyer", CreatedBy: "test"},
	}
	require.NoError(t, conn.Create(&f.customer).Error)

	f.address = models.Address{
		AddressLine1: "1 Main St", City: "Seattle", State: "WA", Country: "USA", ZipCode: "98101",
		CustomerID: f.customer.ID, IsActive: true, CreatedBy: "test",
	}
	require.NoError(t, conn.Create(&f.address).Error)

	f.book = models.Book{
		Name: "The Pragmatic Programmer", Author: "Hunt & Thomas",
		PublisherID: 20, BookTypeID: 8, GenreID: 13, ConditionID: 1,
		Price: decimal.RequireFromString("25.25"), Quantity: 10, CreatedBy: "test",
	}
	require.NoError(t, conn.Create(&f.book).Error)
	return f
}

func TestCreateOrderWithItems(t *testing.T) {
	conn := openTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()
	f := seedFixture(t, conn, "order-sub-1")

	created, err := repo.Create(ctx, &models.Order{
		CustomerID: f.customer.ID,
		AddressID:  f.address.ID,
		CreatedBy:  "test",
		Items: []models.OrderItem{
			{BookID: f.book.ID, Quantity: 1, CreatedBy: "test"},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, enums.OrderStatusPending, created.OrderStatus)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.NotNil(t, got.Items[0].Book)

	assert.Equal(t, "25.25", got.Subtotal().StringFixed(2))
	assert.Equal(t, "2.53", got.Tax().StringFixed(2))
	assert.Equal(t, "27.78", got.Total().StringFixed(2))
}

func TestAddItem(t *testing.T) {
	conn := openTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()
	f := seedFixture(t, conn, "order-sub-2")

	order, err := repo.Create(ctx, &models.Order{
		CustomerID: f.customer.ID, AddressID: f.address.ID, CreatedBy: "test",
	})
	require.NoError(t, err)

	_, err = repo.AddItem(ctx, &models.OrderItem{
		OrderID: order.ID, BookID: f.book.ID, Quantity: 2, CreatedBy: "test",
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "50.50", got.Subtotal().StringFixed(2))
}

func TestAddItemRejectsUnknownBook(t *testing.T) {
	conn := openTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()
	f := seedFixture(t, conn, "order-sub-3")

	order, err := repo.Create(ctx, &models.Order{
		CustomerID: f.customer.ID, AddressID: f.address.ID, CreatedBy: "test",
	})
	require.NoError(t, err)

	_, err = repo.AddItem(ctx, &models.OrderItem{
		OrderID: order.ID, BookID: 404404, Quantity: 1, CreatedBy: "test",
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeConstraintViolation))
}

func TestUpdateStatus(t *testing.T) {
	conn := openTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()
	f := seedFixture(t, conn, "order-sub-4")

	order, err := repo.Create(ctx, &models.Order{
		CustomerID: f.customer.ID, AddressID: f.address.ID, CreatedBy: "test",
	})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(ctx, order.ID, enums.OrderStatusPaid))

	got, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusPaid, got.OrderStatus)
}

func TestUpdateStatusMissingOrder(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	err := repo.UpdateStatus(context.Background(), 404404, enums.OrderStatusShipped)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListByCustomer(t *testing.T) {
	conn := openTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()
	f := seedFixture(t, conn, "order-sub-5")

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, &models.Order{
			CustomerID: f.customer.ID, AddressID: f.address.ID, CreatedBy: "test",
		})
		require.NoError(t, err)
	}

	list, err := repo.ListByCustomer(ctx, f.customer.ID)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	empty, err := repo.ListByCustomer(ctx, 404404)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
