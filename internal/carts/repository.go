package carts

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MRevitt/BobsUsedBooks/pkg/db"
	"github.com/MRevitt/BobsUsedBooks/pkg/db/models"
)

// Repository encapsulates shopping cart persistence. Carts are keyed by a
// correlation identifier so anonymous sessions can be joined to an account
// after sign-in.
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

// GetByCorrelationID returns the cart for the browsing session, items loaded.
func (r *Repository) GetByCorrelationID(ctx context.Context, correlationID uuid.UUID) (*models.ShoppingCart, error) {
	var cart models.ShoppingCart
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Book").
		Where("correlation_id = ?", correlationID).
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetOrCreateByCorrelationID returns the session's cart, creating an empty
// one when none exists yet.
func (r *Repository) GetOrCreateByCorrelationID(ctx context.Context, correlationID uuid.UUID, createdBy string) (*models.ShoppingCart, error) {
	cart, err := r.GetByCorrelationID(ctx, correlationID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := models.ShoppingCart{CorrelationID: correlationID, CreatedBy: createdBy}
	if err := r.db.WithContext(ctx).Create(&fresh).Error; err != nil {
		return nil, db.ClassifyConstraint(err)
	}
	return &fresh, nil
}

// AddItem puts a book into the cart. An existing line for the same book has
// its quantity bumped instead of creating a second line.
func (r *Repository) AddItem(ctx context.Context, cartID, bookID int64, quantity int, createdBy string) (*models.ShoppingCartItem, error) {
	var existing models.ShoppingCartItem
	err := r.db.WithContext(ctx).
		Where("shopping_cart_id = ? AND book_id = ?", cartID, bookID).
		First(&existing).Error

	switch {
	case err == nil:
		existing.Quantity += quantity
		if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return nil, db.ClassifyConstraint(err)
		}
		return &existing, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		item := models.ShoppingCartItem{
			ShoppingCartID: cartID,
			BookID:         bookID,
			Quantity:       quantity,
			WantToBuy:      true,
			CreatedBy:      createdBy,
		}
		if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
			return nil, db.ClassifyConstraint(err)
		}
		return &item, nil

	default:
		return nil, err
	}
}

// SetWantToBuy flips a line between purchase and wishlist.
func (r *Repository) SetWantToBuy(ctx context.Context, itemID int64, wantToBuy bool) error {
	code := 0
	if wantToBuy {
		code = 1
	}
	result := r.db.WithContext(ctx).
		Model(&models.ShoppingCartItem{}).
		Where("id = ?", itemID).
		UpdateColumn("want_to_buy", code)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateItemQuantity sets the quantity on a cart line.
func (r *Repository) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error {
	result := r.db.WithContext(ctx).
		Model(&models.ShoppingCartItem{}).
		Where("id = ?", itemID).
		UpdateColumn("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RemoveItem deletes a cart line.
func (r *Repository) RemoveItem(ctx context.Context, itemID int64) error {
	result := r.db.WithContext(ctx).Delete(&models.ShoppingCartItem{}, itemID)
	if result.Error != nil {
		return db.ClassifyConstraint(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
