package enums

import "fmt"

// ReferenceDataType discriminates lookup rows in the reference_data table.
// Publisher, book type, genre and condition lookups all live in one table and
// are told apart by this column.
type ReferenceDataType string

const (
	ReferenceDataTypePublisher ReferenceDataType = "publisher"
	ReferenceDataTypeBookType  ReferenceDataType = "book_type"
	ReferenceDataTypeGenre     ReferenceDataType = "genre"
	ReferenceDataTypeCondition ReferenceDataType = "condition"
)

var validReferenceDataTypes = []ReferenceDataType{
	ReferenceDataTypePublisher,
	ReferenceDataTypeBookType,
	ReferenceDataTypeGenre,
	ReferenceDataTypeCondition,
}

// IsValid reports whether the value matches the canonical reference data type enum.
func (r ReferenceDataType) IsValid() bool {
	for _, candidate := range validReferenceDataTypes {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseReferenceDataType converts the raw string to ReferenceDataType.
func ParseReferenceDataType(value string) (ReferenceDataType, error) {
	for _, candidate := range validReferenceDataTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid reference data type %q", value)
}
