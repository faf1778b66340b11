package refdata

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
	"github.com/MRevitt/BobsUsedBooks/pkg/enums"
	apperrors "github.com/MRevitt/BobsUsedBooks/pkg/errors"
	"github.com/MRevitt/BobsUsedBooks/pkg/logger"
)

var testDBSeq atomic.Int64

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	logg := logger.New(logger.Options{Level: zerolog.Disabled, Output: io.Discard})
	path := fmt.Sprintf("file:refdatatest%d?mode=memory&cache=shared", testDBSeq.Add(1))

	client, err := db.New(context.Background(), config.DBConfig{MaxOpenConns: 1, MaxIdleConns: 1},
		db.Options{UseSQLite: true, SQLitePath: path}, logg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.AutoMigrate(context.Background()))
	require.NoError(t, client.SeedReferenceData(context.Background(), logg))
	return client.DB()
}

func TestListByType(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()

	conditions, err := repo.ListByType(ctx, enums.ReferenceDataTypeCondition)
	require.NoError(t, err)
	require.Len(t, conditions, 5)
	for _, c := range conditions {
		assert.Equal(t, enums.ReferenceDataTypeCondition, c.DataType)
	}

	// ordered by text
	for i := 1; i < len(conditions); i++ {
		assert.LessOrEqual(t, conditions[i-1].Text, conditions[i].Text)
	}
}

func TestCreateAndGet(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.ReferenceDataItem{
		DataType:  enums.ReferenceDataTypeGenre,
		Text:      "Graphic Novel",
		CreatedBy: "test",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Graphic Novel", got.Text)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := NewRepository(openTestDB(t))

	_, err := repo.GetByID(context.Background(), 404404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteRestrictedWhileReferenced(t *testing.T) {
	conn := openTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	book := models.Book{
		Name: "Dune", Author: "Frank Herbert",
		PublisherID: 18, BookTypeID: 6, GenreID: 10, ConditionID: 1,
		Price: decimal.RequireFromString("12.50"), Quantity: 1, CreatedBy: "test",
	}
	require.NoError(t, conn.Create(&book).Error)

	err := repo.Delete(ctx, 18)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeConstraintViolation))

	// still present
	_, getErr := repo.GetByID(ctx, 18)
	assert.NoError(t, getErr)
}

func TestDeleteUnreferenced(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.ReferenceDataItem{
		DataType:  enums.ReferenceDataTypePublisher,
		Text:      "Defunct House",
		CreatedBy: "test",
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDeleteMissingRow(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	assert.ErrorIs(t, repo.Delete(context.Background(), 404404), gorm.ErrRecordNotFound)
}
