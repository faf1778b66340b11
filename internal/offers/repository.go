package offers

import (
	"context"

	"gorm.io/gorm"

	"github.com/MRevitt/BobsUsedBooks/pkg/db"
	"github.com/MRevitt/BobsUsedBooks/pkg/db/models"
	"github.com/MRevitt/BobsUsedBooks/pkg/enums"
)

// Repository encapsulates reseller offer persistence.
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

// Create inserts the offer in its initial workflow state.
func (r *Repository) Create(ctx context.Context, offer *models.Offer) (*models.Offer, error) {
	if offer.OfferStatus == "" {
		offer.OfferStatus = enums.OfferStatusPendingApproval
	}
	if err := r.db.WithContext(ctx).Create(offer).Error; err != nil {
		return nil, db.ClassifyConstraint(err)
	}
	return offer, nil
}

// GetByID returns the offer with its lookups and customer loaded.
func (r *Repository) GetByID(ctx context.Context, id int64) (*models.Offer, error) {
	var offer models.Offer
	err := r.db.WithContext(ctx).
		Preload("Publisher").
		Preload("BookType").
		Preload("Genre").
		Preload("Condition").
		Preload("Customer").
		First(&offer, id).Error
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

// ListByCustomer returns the customer's offers, newest first.
func (r *Repository) ListByCustomer(ctx context.Context, customerID int64) ([]models.Offer, error) {
	var offers []models.Offer
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&offers).Error
	if err != nil {
		return nil, err
	}
	return offers, nil
}

// ListByStatus returns offers in the given workflow state, oldest first so
// reviewers work the backlog in order.
func (r *Repository) ListByStatus(ctx context.Context, status enums.OfferStatus) ([]models.Offer, error) {
	var offers []models.Offer
	err := r.db.WithContext(ctx).
		Where("offer_status = ?", status).
		Order("created_at ASC").
		Find(&offers).Error
	if err != nil {
		return nil, err
	}
	return offers, nil
}

// UpdateStatus moves the offer through its workflow, optionally attaching a
// reviewer comment.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status enums.OfferStatus, comment *string) error {
	updates := map[string]any{"offer_status": status}
	if comment != nil {
		updates["comment"] = *comment
	}
	result := r.db.WithContext(ctx).
		Model(&models.Offer{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
