package tools

import (
	"math/big"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestNumericValue(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  float64
		ok    bool
	}{
		{"float64", 12.5, 12.5, true},
		{"int", 7, 7, true},
		{"int64", int64(9), 9, true},
		{"string", "3.14", 3.14, true},
		{"bytes", []byte("2.5"), 2.5, true},
		{"numeric", pgtype.Numeric{Int: big.NewInt(1025), Exp: -2, Valid: true}, 10.25, true},
		{"invalid numeric", pgtype.Numeric{}, 0, false},
		{"nil", nil, 0, false},
		{"garbage string", "abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NumericValue(tt.value)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 0.0001)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", FormatAmount(nil))
	assert.Equal(t, "108.25", FormatAmount(108.25))
	assert.Equal(t, "100.00", FormatAmount(int64(100)))
	assert.Equal(t, "10.25", FormatAmount(pgtype.Numeric{Int: big.NewInt(1025), Exp: -2, Valid: true}))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "N/A", FormatDate(nil))
	assert.Equal(t, "2024-03-15", FormatDate(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-15", FormatDate(pgtype.Date{Time: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), Valid: true}))
	assert.Equal(t, "N/A", FormatDate(pgtype.Date{}))
}

func TestFormatField(t *testing.T) {
	assert.Equal(t, "N/A", FormatField(nil))
	assert.Equal(t, "hello", FormatField("hello"))
	assert.Equal(t, "hello", FormatField([]byte("hello")))
	assert.Equal(t, "42", FormatField(int64(42)))
}

func TestCountValue(t *testing.T) {
	assert.Equal(t, int64(3), CountValue(int64(3)))
	assert.Equal(t, int64(3), CountValue(3))
	assert.Equal(t, int64(3), CountValue(3.0))
	assert.Equal(t, int64(0), CountValue(nil))
}
