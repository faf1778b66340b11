package refdata

import (
	"context"

	"gorm.io/gorm"

	"github.com/MRevitt/BobsUsedBooks/pkg/db"
	"github.com/MRevitt/BobsUsedBooks/pkg/db/models"
	"github.com/MRevitt/BobsUsedBooks/pkg/enums"
)

// Repository encapsulates reference-data lookup persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds the repository to the provided GORM handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx scopes the repository to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// ListByType returns all lookup rows of the given kind, ordered by text.
func (r *Repository) ListByType(ctx context.Context, dataType enums.ReferenceDataType) ([]models.ReferenceDataItem, error) {
	var items []models.ReferenceDataItem
	err := r.db.WithContext(ctx).
		Where("data_type = ?", dataType).
		Order("text ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns the lookup row with the given id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*models.ReferenceDataItem, error) {
	var item models.ReferenceDataItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts a lookup row.
func (r *Repository) Create(ctx context.Context, item *models.ReferenceDataItem) (*models.ReferenceDataItem, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, db.ClassifyConstraint(err)
	}
	return item, nil
}

// Delete removes a lookup row. The engine rejects the delete while any book
// or offer still references the row; that rejection surfaces as a
// constraint-violation error, unchanged otherwise.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.ReferenceDataItem{}, id)
	if result.Error != nil {
		return db.ClassifyConstraint(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
