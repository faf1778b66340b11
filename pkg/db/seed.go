package db

import (
	"context"

	"go.uber.org/multierr"
	"gorm.io/gorm/clause"

	"github.com/MRevitt/BobsUsedBooks/pkg/db/models"
	"github.com/MRevitt/BobsUsedBooks/pkg/enums"
	"github.com/MRevitt/BobsUsedBooks/pkg/logger"
)

const seedCreatedBy = "system"

// referenceDataSeed is the fixed lookup set backing the publisher, book type,
// genre and condition references. Ids are stable so existing rows keep their
// foreign keys across re-seeds.
var referenceDataSeed = []models.ReferenceDataItem{
	{ID: 1, DataType: enums.ReferenceDataTypeCondition, Text: "New"},
	{ID: 2, DataType: enums.ReferenceDataTypeCondition, Text: "Like New"},
	{ID: 3, DataType: enums.ReferenceDataTypeCondition, Text: "Good"},
	{ID: 4, DataType: enums.ReferenceDataTypeCondition, Text: "Fair"},
	{ID: 5, DataType: enums.ReferenceDataTypeCondition, Text: "Poor"},

	{ID: 6, DataType: enums.ReferenceDataTypeBookType, Text: "Hardcover"},
	{ID: 7, DataType: enums.ReferenceDataTypeBookType, Text: "Paperback"},
	{ID: 8, DataType: enums.ReferenceDataTypeBookType, Text: "Trade Paperback"},
	{ID: 9, DataType: enums.ReferenceDataTypeBookType, Text: "Audiobook"},

	{ID: 10, DataType: enums.ReferenceDataTypeGenre, Text: "Fiction"},
	{ID: 11, DataType: enums.ReferenceDataTypeGenre, Text: "Non-Fiction"},
	{ID: 12, DataType: enums.ReferenceDataTypeGenre, Text: "Mystery"},
	{ID: 13, DataType: enums.ReferenceDataTypeGenre, Text: "Science Fiction"},
	{ID: 14, DataType: enums.ReferenceDataTypeGenre, Text: "Fantasy"},
	{ID: 15, DataType: enums.ReferenceDataTypeGenre, Text: "Biography"},
	{ID: 16, DataType: enums.ReferenceDataTypeGenre, Text: "History"},
	{ID: 17, DataType: enums.ReferenceDataTypeGenre, Text: "Children's"},

	{ID: 18, DataType: enums.ReferenceDataTypePublisher, Text: "Penguin Random House"},
	{ID: 19, DataType: enums.ReferenceDataTypePublisher, Text: "HarperCollins"},
	{ID: 20, DataType: enums.ReferenceDataTypePublisher, Text: "Simon & Schuster"},
	{ID: 21, DataType: enums.ReferenceDataTypePublisher, Text: "Hachette"},
	{ID: 22, DataType: enums.ReferenceDataTypePublisher, Text: "Macmillan"},
	{ID: 23, DataType: enums.ReferenceDataTypePublisher, Text: "Scholastic"},
}

// SeedReferenceData inserts the fixed lookup rows, skipping any id already
// present. Re-applying the seed is a no-op.
func (c *Client) SeedReferenceData(ctx context.Context, logg *logger.Logger) error {
	var errs error
	inserted := 0

	for _, row := range referenceDataSeed {
		row.CreatedBy = seedCreatedBy
		result := c.conn.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
			Create(&row)
		if result.Error != nil {
			errs = multierr.Append(errs, result.Error)
			continue
		}
		inserted += int(result.RowsAffected)
	}

	if errs != nil {
		logg.Error(ctx, "reference data seed failed", errs)
		return errs
	}

	logg.Info(logg.WithField(ctx, "rows_inserted", inserted), "reference data seed applied")
	return nil
}
