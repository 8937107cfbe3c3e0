package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInClause(t *testing.T) {
	base := "SELECT * FROM invoices WHERE invoice_number IN ({placeholders})"

	t.Run("three values", func(t *testing.T) {
		query, params, err := BuildInClause(base, []string{"A", "B", "C"})
		require.NoError(t, err)
		assert.Equal(t, "SELECT * FROM invoices WHERE invoice_number IN ($1,$2,$3)", query)
		assert.Equal(t, []interface{}{"A", "B", "C"}, params)
	})

	t.Run("single value", func(t *testing.T) {
		query, params, err := BuildInClause(base, []string{"INV-001"})
		require.NoError(t, err)
		assert.Equal(t, "SELECT * FROM invoices WHERE invoice_number IN ($1)", query)
		assert.Equal(t, []interface{}{"INV-001"}, params)
	})

	t.Run("empty values rejected", func(t *testing.T) {
		_, _, err := BuildInClause(base, nil)
		assert.Error(t, err)
	})

	t.Run("missing marker rejected", func(t *testing.T) {
		_, _, err := BuildInClause("SELECT 1", []string{"A"})
		assert.Error(t, err)
	})
}

func TestConditionSet(t *testing.T) {
	t.Run("empty set is always true", func(t *testing.T) {
		cond := NewConditionSet()
		assert.Equal(t, "1=1", cond.WhereClause())
		assert.Empty(t, cond.Params())
	})

	t.Run("predicates join in insertion order", func(t *testing.T) {
		cond := NewConditionSet()
		cond.Add("i.supplier_id = $%d", 7)
		cond.Add("i.total_amount >= $%d", 100.0)
		cond.Add("i.total_amount <= $%d", 500.0)
		cond.Add("i.status = $%d", "PAID")

		assert.Equal(t,
			"i.supplier_id = $1 AND i.total_amount >= $2 AND i.total_amount <= $3 AND i.status = $4",
			cond.WhereClause())
		assert.Equal(t, []interface{}{7, 100.0, 500.0, "PAID"}, cond.Params())
	})

	t.Run("single predicate", func(t *testing.T) {
		cond := NewConditionSet()
		cond.Add("i.status = $%d", "DRAFT")
		assert.Equal(t, "i.status = $1", cond.WhereClause())
		assert.Equal(t, []interface{}{"DRAFT"}, cond.Params())
	})
}
