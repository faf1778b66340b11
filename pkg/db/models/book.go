package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// lowStockThreshold is the quantity at or below which a title is flagged for
// restocking.
const lowStockThreshold = 5

// Book is a catalog listing. Publisher, book type, genre and condition are
// reference-data lookups; all four are required and delete-restricted.
type Book struct {
	ID            int64              `gorm:"column:id;primaryKey;autoIncrement"`
	Name          string             `gorm:"column:name;not null"`
	Author        string             `gorm:"column:author;not null"`
	Year          int                `gorm:"column:year"`
	ISBN          string             `gorm:"column:isbn"`
	PublisherID   int64              `gorm:"column:publisher_id;not null"`
	Publisher     *ReferenceDataItem `gorm:"foreignKey:PublisherID;references:ID;constraint:OnDelete:RESTRICT"`
	BookTypeID    int64              `gorm:"column:book_type_id;not null"`
	BookType      *ReferenceDataItem `gorm:"foreignKey:BookTypeID;references:ID;constraint:OnDelete:RESTRICT"`
	GenreID       int64              `gorm:"column:genre_id;not null"`
	Genre         *ReferenceDataItem `gorm:"foreignKey:GenreID;references:ID;constraint:OnDelete:RESTRICT"`
	ConditionID   int64              `gorm:"column:condition_id;not null"`
	Condition     *ReferenceDataItem `gorm:"foreignKey:ConditionID;references:ID;constraint:OnDelete:RESTRICT"`
	CoverImageURL *string            `gorm:"column:cover_image_url"`
	Summary       *string            `gorm:"column:summary"`
	Price         decimal.Decimal    `gorm:"column:price;type:numeric(18,2);not null"`
	Quantity      int                `gorm:"column:quantity;not null;default:0"`
	CreatedBy     string             `gorm:"column:created_by;not null"`
	CreatedAt     time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (Book) TableName() string { return "book" }

// IsInStock is derived from quantity and never persisted.
func (b Book) IsInStock() bool {
	return b.Quantity > 0
}

// IsLowInStock is derived from quantity and never persisted.
func (b Book) IsLowInStock() bool {
	return b.Quantity > 0 && b.Quantity <= lowStockThreshold
}
