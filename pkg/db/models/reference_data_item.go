package models

import (
	"time"

	"github.com/MRevitt/BobsUsedBooks/pkg/enums"
)

// ReferenceDataItem is one lookup row. Publishers, book types, genres and
// conditions all live here, told apart by the data_type discriminator.
type ReferenceDataItem struct {
	ID        int64                   `gorm:"column:id;primaryKey;autoIncrement"`
	DataType  enums.ReferenceDataType `gorm:"column:data_type;not null"`
	Text      string                  `gorm:"column:text;not null"`
	CreatedBy string                  `gorm:"column:created_by;not null"`
	CreatedAt time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}

func (ReferenceDataItem) TableName() string { return "reference_data" }
