package db

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Cell coercion helpers. pgx materializes values as driver-native Go types
// (int64 for bigint, pgtype.Numeric for numeric, ...); these normalize them
// for the reporting layer. The boolean is false for NULLs and for cells of
// an incompatible type.

func AsInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case int16:
		return int64(n), true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	case pgtype.Numeric:
		d, ok := AsDecimal(v)
		if !ok {
			return 0, false
		}
		return d.IntPart(), true
	}
	return 0, false
}

func AsFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case int:
		return float64(n), true
	case pgtype.Numeric:
		d, ok := AsDecimal(v)
		if !ok {
			return 0, false
		}
		f, _ := d.Float64()
		return f, true
	}
	return 0, false
}

func AsDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, true
	case pgtype.Numeric:
		if !n.Valid || n.NaN || n.Int == nil {
			return decimal.Zero, false
		}
		return decimal.NewFromBigInt(n.Int, n.Exp), true
	case int64:
		return decimal.NewFromInt(n), true
	case int32:
		return decimal.NewFromInt(int64(n)), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case float64:
		return decimal.NewFromFloat(n), true
	case string:
		d, err := decimal.NewFromString(n)
		return d, err == nil
	}
	return decimal.Zero, false
}

func AsString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	}
	return "", false
}

func AsTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case pgtype.Date:
		if !t.Valid {
			return time.Time{}, false
		}
		return t.Time, true
	}
	return time.Time{}, false
}

func AsBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}
