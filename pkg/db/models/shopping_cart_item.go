package models

import (
	"time"

	"github.com/MRevitt/BobsUsedBooks/pkg/db/types"
)

// ShoppingCartItem is a single title in a cart. want_to_buy distinguishes
// purchase lines from wishlist lines and uses the same integer encoding as
// Address.is_active.
type ShoppingCartItem struct {
	ID             int64         `gorm:"column:id;primaryKey;autoIncrement"`
	ShoppingCartID int64         `gorm:"column:shopping_cart_id;not null"`
	BookID         int64         `gorm:"column:book_id;not null"`
	Book           *Book         `gorm:"foreignKey:BookID;references:ID;constraint:OnDelete:RESTRICT"`
	Quantity       int           `gorm:"column:quantity;not null;default:1"`
	WantToBuy      types.BoolInt `gorm:"column:want_to_buy;type:integer;not null;default:1"`
	CreatedBy      string        `gorm:"column:created_by;not null"`
	CreatedAt      time.Time     `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time     `gorm:"column:updated_at;autoUpdateTime"`
}

func (ShoppingCartItem) TableName() string { return "shopping_cart_item" }
