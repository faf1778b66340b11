package types

import (
	"database/sql/driver"
	"fmt"
)

// BoolInt is a boolean persisted as an integer code (0/1). The storage schema
// keeps the historical integer encoding; domain code always sees a Go bool.
type BoolInt bool

// Value implements driver.Valuer.
func (b BoolInt) Value() (driver.Value, error) {
	if b {
		return int64(1), nil
	}
	return int64(0), nil
}

// Scan implements sql.Scanner. Any non-zero integer decodes as true, matching
// how the legacy rows were written.
func (b *BoolInt) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*b = false
	case int64:
		*b = v != 0
	case int:
		*b = v != 0
	case bool:
		*b = BoolInt(v)
	case []byte:
		*b = len(v) > 0 && v[0] != '0'
	case string:
		*b = len(v) > 0 && v[0] != '0'
	default:
		return fmt.Errorf("cannot scan %T into BoolInt", src)
	}
	return nil
}

// Bool returns the plain boolean value.
func (b BoolInt) Bool() bool {
	return bool(b)
}
