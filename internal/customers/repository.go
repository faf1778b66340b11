package customers

import (
	"context"

	"gorm.io/gorm"

	"github.com/MRevitt/BobsUsedBooks/pkg/db"
	"github.com/MRevitt/BobsUsedBooks/pkg/db/models"
)

// Repository encapsulates customer account and address persistence.
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

// GetBySub returns the account matching the identity token.
func (r *Repository) GetBySub(ctx context.Context, sub string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).Where("sub = ?", sub).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetByID returns the account with the given surface id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// Create inserts the account. A duplicate identity token comes back as a
// constraint-violation error.
func (r *Repository) Create(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		return nil, db.ClassifyConstraint(err)
	}
	return customer, nil
}

// Update saves the account.
func (r *Repository) Update(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if err := r.db.WithContext(ctx).Save(customer).Error; err != nil {
		return nil, db.ClassifyConstraint(err)
	}
	return customer, nil
}

// Delete removes an account. Orders, addresses or offers referencing it keep
// the delete restricted at the engine.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Customer{}, id)
	if result.Error != nil {
		return db.ClassifyConstraint(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListActiveAddresses returns the customer's active addresses.
func (r *Repository) ListActiveAddresses(ctx context.Context, customerID int64) ([]models.Address, error) {
	var addresses []models.Address
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND is_active = ?", customerID, 1).
		Order("id ASC").
		Find(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

// CreateAddress inserts a shipping address for the customer.
func (r *Repository) CreateAddress(ctx context.Context, address *models.Address) (*models.Address, error) {
	if err := r.db.WithContext(ctx).Create(address).Error; err != nil {
		return nil, db.ClassifyConstraint(err)
	}
	return address, nil
}

// DeactivateAddress soft-deletes the address by flipping its active code.
// Addresses are never hard-deleted; orders keep referencing them.
func (r *Repository) DeactivateAddress(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Model(&models.Address{}).
		Where("id = ?", id).
		UpdateColumn("is_active", 0)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
