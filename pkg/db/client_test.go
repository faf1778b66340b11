package db

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MRevitt/BobsUsedBooks/pkg/config"
	"github.com/MRevitt/BobsUsedBooks/pkg/db/models"
	"github.com/MRevitt/BobsUsedBooks/pkg/enums"
)

var testDBSeq atomic.Int64

// openTestClient boots an isolated in-memory database with the full schema
// applied. The single-connection pool keeps the shared-cache database alive
// for the duration of the test.
func openTestClient(t *testing.T) *Client {
	t.Helper()

	path := fmt.Sprintf("file:dbtest%d?mode=memory&cache=shared", testDBSeq.Add(1))
	cfg := config.DBConfig{MaxOpenConns: 1, MaxIdleConns: 1}

	client, err := New(context.Background(), cfg, Options{UseSQLite: true, SQLitePath: path}, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.AutoMigrate(context.Background()))
	return client
}

func TestNewRequiresDSN(t *testing.T) {
	_, err := New(context.Background(), config.DBConfig{}, Options{}, testLogger())
	require.Error(t, err)
}

func TestAutoMigrateIsIdempotent(t *testing.T) {
	client := openTestClient(t)
	require.NoError(t, client.AutoMigrate(context.Background()))
}

func TestSeedReferenceDataIsIdempotent(t *testing.T) {
	client := openTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.SeedReferenceData(ctx, testLogger()))

	var first int64
	require.NoError(t, client.DB().Model(&models.ReferenceDataItem{}).Count(&first).Error)
	assert.Equal(t, int64(len(referenceDataSeed)), first)

	require.NoError(t, client.SeedReferenceData(ctx, testLogger()))

	var second int64
	require.NoError(t, client.DB().Model(&models.ReferenceDataItem{}).Count(&second).Error)
	assert.Equal(t, first, second, "re-applying the seed must not duplicate rows")
}

func TestCustomerSubUniqueness(t *testing.T) {
	client := openTestClient(t)

	first := models.Customer{Sub: "sub-123", Username: "bob", CreatedBy: "test"}
	require.NoError(t, client.DB().Create(&first).Error)

	dup := models.Customer{Sub: "sub-123", Username: "robert", CreatedBy: "test"}
	err := client.DB().Create(&dup).Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err, ""))
}

func TestRestrictDeleteOnReferencedLookup(t *testing.T) {
	client := openTestClient(t)
	ctx := context.Background()
	require.NoError(t, client.SeedReferenceData(ctx, testLogger()))

	book := models.Book{
		Name:        "The Go Programming Language",
		Author:      "Donovan & Kernighan",
		PublisherID: 18,
		BookTypeID:  7,
		GenreID:     11,
		ConditionID: 3,
		Price:       decimal.RequireFromString("29.99"),
		Quantity:    2,
		CreatedBy:   "test",
	}
	require.NoError(t, client.DB().Create(&book).Error)

	err := client.DB().Delete(&models.ReferenceDataItem{}, 18).Error
	require.Error(t, err, "publisher referenced by a book must not be deletable")
	assert.True(t, IsRestrictViolation(err))

	// a lookup with no references deletes cleanly
	unreferenced := models.ReferenceDataItem{ID: 99, DataType: enums.ReferenceDataTypeGenre, Text: "Poetry", CreatedBy: "test"}
	require.NoError(t, client.DB().Create(&unreferenced).Error)
	require.NoError(t, client.DB().Delete(&models.ReferenceDataItem{}, 99).Error)
}

func TestRestrictDeleteOnCustomerWithOrder(t *testing.T) {
	client := openTestClient(t)
	ctx := context.Background()
	require.NoError(t, client.SeedReferenceData(ctx, testLogger()))

	customer := models.Customer{Sub: "sub-789", Username: "alice", CreatedBy: "test"}
	require.NoError(t, client.DB().Create(&customer).Error)

	address := models.Address{
		AddressLine1: "1 Main St", City: "Seattle", State: "WA", Country: "USA", ZipCode: "98101",
		CustomerID: customer.ID, IsActive: true, CreatedBy: "test",
	}
	require.NoError(t, client.DB().Create(&address).Error)

	order := models.Order{
		CustomerID:  customer.ID,
		AddressID:   address.ID,
		OrderStatus: enums.OrderStatusPending,
		CreatedBy:   "test",
	}
	require.NoError(t, client.DB().Create(&order).Error)

	err := client.DB().Delete(&models.Customer{}, customer.ID).Error
	require.Error(t, err, "customer referenced by an order must not be deletable")
	assert.True(t, IsRestrictViolation(err))
}
