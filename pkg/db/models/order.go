package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MRevitt/BobsUsedBooks/pkg/enums"
)

// taxRate applied to order subtotals when deriving totals.
var taxRate = decimal.NewFromFloat(0.1)

// Order is a placed purchase. Monetary figures are derived from the line
// items at read time; none of them are persisted.
type Order struct {
	ID           int64             `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID   int64             `gorm:"column:customer_id;not null"`
	Customer     *Customer         `gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:RESTRICT"`
	AddressID    int64             `gorm:"column:address_id;not null"`
	Address      *Address          `gorm:"foreignKey:AddressID;references:ID;constraint:OnDelete:RESTRICT"`
	DeliveryDate *time.Time        `gorm:"column:delivery_date"`
	OrderStatus  enums.OrderStatus `gorm:"column:order_status;not null;default:'pending'"`
	Items        []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:RESTRICT"`
	CreatedBy    string            `gorm:"column:created_by;not null"`
	CreatedAt    time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

func (Order) TableName() string { return "orders" }

// Subtotal sums book price times quantity across loaded line items.
func (o Order) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		if item.Book == nil {
			continue
		}
		total = total.Add(item.Book.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// Tax is derived from the subtotal, rounded to cents.
func (o Order) Tax() decimal.Decimal {
	return o.Subtotal().Mul(taxRate).Round(2)
}

// Total is subtotal plus tax.
func (o Order) Total() decimal.Decimal {
	return o.Subtotal().Add(o.Tax())
}
