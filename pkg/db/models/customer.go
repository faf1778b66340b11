package models

import (
	"strings"
	"time"
)

// Customer is a storefront account. Sub is the identity token issued by the
// external identity provider and is globally unique.
type Customer struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Sub         string     `gorm:"column:sub;not null;uniqueIndex:ux_customer_sub"`
	Username    string     `gorm:"column:username;not null"`
	FirstName   string     `gorm:"column:first_name"`
	LastName    string     `gorm:"column:last_name"`
	Email       string     `gorm:"column:email"`
	DateOfBirth *time.Time `gorm:"column:date_of_birth"`
	Phone       string     `gorm:"column:phone"`
	CreatedBy   string     `gorm:"column:created_by;not null"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Customer) TableName() string { return "customer" }

// FullName is derived from the name parts and never persisted.
func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
