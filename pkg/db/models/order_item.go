package models

import "time"

// OrderItem is a purchased line within an order.
type OrderItem struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID   int64     `gorm:"column:order_id;not null"`
	BookID    int64     `gorm:"column:book_id;not null"`
	Book      *Book     `gorm:"foreignKey:BookID;references:ID;constraint:OnDelete:RESTRICT"`
	Quantity  int       `gorm:"column:quantity;not null;check:chk_order_item_quantity,quantity > 0"`
	CreatedBy string    `gorm:"column:created_by;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (OrderItem) TableName() string { return "order_item" }
