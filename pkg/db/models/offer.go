package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MRevitt/BobsUsedBooks/pkg/enums"
)

// Offer is a reseller submission: a customer offering a used book to the
// store. It carries its own copy of the descriptive fields rather than
// referencing a catalog row, because the book does not exist in the catalog
// until the offer is accepted.
type Offer struct {
	ID          int64              `gorm:"column:id;primaryKey;autoIncrement"`
	BookName    string             `gorm:"column:book_name;not null"`
	Author      string             `gorm:"column:author;not null"`
	ISBN        string             `gorm:"column:isbn"`
	Summary     *string            `gorm:"column:summary"`
	FrontURL    *string            `gorm:"column:front_url"`
	PublisherID int64              `gorm:"column:publisher_id;not null"`
	Publisher   *ReferenceDataItem `gorm:"foreignKey:PublisherID;references:ID;constraint:OnDelete:RESTRICT"`
	BookTypeID  int64              `gorm:"column:book_type_id;not null"`
	BookType    *ReferenceDataItem `gorm:"foreignKey:BookTypeID;references:ID;constraint:OnDelete:RESTRICT"`
	GenreID     int64              `gorm:"column:genre_id;not null"`
	Genre       *ReferenceDataItem `gorm:"foreignKey:GenreID;references:ID;constraint:OnDelete:RESTRICT"`
	ConditionID int64              `gorm:"column:condition_id;not null"`
	Condition   *ReferenceDataItem `gorm:"foreignKey:ConditionID;references:ID;constraint:OnDelete:RESTRICT"`
	CustomerID  int64              `gorm:"column:customer_id;not null"`
	Customer    *Customer          `gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:RESTRICT"`
	BookPrice   decimal.Decimal    `gorm:"column:book_price;type:numeric(18,2);not null"`
	OfferStatus enums.OfferStatus  `gorm:"column:offer_status;not null;default:'pending_approval'"`
	Comment     *string            `gorm:"column:comment"`
	CreatedBy   string             `gorm:"column:created_by;not null"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (Offer) TableName() string { return "offer" }
