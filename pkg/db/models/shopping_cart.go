package models

import (
	"time"

	"github.com/google/uuid"
)

// ShoppingCart holds a customer's in-progress selections. The correlation id
// keys anonymous carts to a browsing session before sign-in.
type ShoppingCart struct {
	ID            int64              `gorm:"column:id;primaryKey;autoIncrement"`
	CorrelationID uuid.UUID          `gorm:"column:correlation_id;type:uuid;not null"`
	Items         []ShoppingCartItem `gorm:"foreignKey:ShoppingCartID;constraint:OnDelete:RESTRICT"`
	CreatedBy     string             `gorm:"column:created_by;not null"`
	CreatedAt     time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (ShoppingCart) TableName() string { return "shopping_cart" }
