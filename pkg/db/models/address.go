package models

import (
	"time"

	"github.com/MRevitt/BobsUsedBooks/pkg/db/types"
)

// Address is a customer shipping address. Addresses are never hard-deleted by
// the storefront; is_active carries the soft-delete flag as an integer code.
type Address struct {
	ID           int64         `gorm:"column:id;primaryKey;autoIncrement"`
	AddressLine1 string        `gorm:"column:address_line1;not null"`
	AddressLine2 *string       `gorm:"column:address_line2"`
	City         string        `gorm:"column:city;not null"`
	State        string        `gorm:"column:state;not null"`
	Country      string        `gorm:"column:country;not null"`
	ZipCode      string        `gorm:"column:zip_code;not null"`
	CustomerID   int64         `gorm:"column:customer_id;not null"`
	Customer     *Customer     `gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:RESTRICT"`
	IsActive     types.BoolInt `gorm:"column:is_active;type:integer;not null;default:1"`
	CreatedBy    string        `gorm:"column:created_by;not null"`
	CreatedAt    time.Time     `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time     `gorm:"column:updated_at;autoUpdateTime"`
}

func (Address) TableName() string { return "address" }
