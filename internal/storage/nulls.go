package storage

import "database/sql"

// NullableInt converts an optional metric into a bind argument
func NullableInt(p *int) any {
	if p == nil {
		return nil
	}
	return int64(*p)
}

// NullableFloat converts an optional metric into a bind argument
func NullableFloat(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

// IntPtr converts a scanned nullable integer into an optional metric
func IntPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

// FloatPtr converts a scanned nullable real into an optional metric
func FloatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}
