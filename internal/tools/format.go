package tools

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// recordSeparator ends each rendered record.
var recordSeparator = strings.Repeat("-", 50) + "\n"

// headerSeparator ends a summary header.
var headerSeparator = strings.Repeat("=", 50) + "\n"

// NumericValue coerces a scanned column value to float64. pgx hands back
// numeric columns as pgtype.Numeric and integer columns as int64, and test
// fixtures use plain Go numbers, so all of those are accepted.
func NumericValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case pgtype.Numeric:
		f, err := n.Float64Value()
		if err != nil || !f.Valid {
			return 0, false
		}
		return f.Float64, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	case []byte:
		f, err := strconv.ParseFloat(string(n), 64)
		return f, err == nil
	}
	return 0, false
}

// CountValue coerces an aggregate count column to int64.
func CountValue(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

// FormatAmount renders a monetary value with two decimal places. Absent
// values render as "0" per the paid-amount fallback convention.
func FormatAmount(v interface{}) string {
	if v == nil {
		return "0"
	}
	if f, ok := NumericValue(v); ok {
		return fmt.Sprintf("%.2f", f)
	}
	return fmt.Sprintf("%v", v)
}

// FormatDate renders a date column as YYYY-MM-DD.
func FormatDate(v interface{}) string {
	switch d := v.(type) {
	case nil:
		return "N/A"
	case time.Time:
		return d.Format("2006-01-02")
	case pgtype.Date:
		if !d.Valid {
			return "N/A"
		}
		return d.Time.Format("2006-01-02")
	}
	return fmt.Sprintf("%v", v)
}

// FormatField renders a plain column value, with "N/A" for NULL.
func FormatField(v interface{}) string {
	if v == nil {
		return "N/A"
	}
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return fmt.Sprintf("%v", v)
}
