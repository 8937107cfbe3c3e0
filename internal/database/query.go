package database

import (
	"fmt"
	"strings"
)

// PlaceholderMarker is the substitution point for IN-clause expansion in
// base statements.
const PlaceholderMarker = "{placeholders}"

// BuildInClause expands a base statement containing a single
// PlaceholderMarker into one positional placeholder per value, returning the
// statement and the bound parameters in matching order. Values never enter
// the SQL text.
func BuildInClause(baseQuery string, values []string) (string, []interface{}, error) {
	if len(values) == 0 {
		return "", nil, fmt.Errorf("IN clause requires at least one value")
	}
	if !strings.Contains(baseQuery, PlaceholderMarker) {
		return "", nil, fmt.Errorf("base query is missing %s marker", PlaceholderMarker)
	}

	placeholders := make([]string, len(values))
	params := make([]interface{}, len(values))
	for i, v := range values {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		params[i] = v
	}

	query := strings.Replace(baseQuery, PlaceholderMarker, strings.Join(placeholders, ","), 1)
	return query, params, nil
}

// ConditionSet accumulates optional AND-joined predicates with positional
// placeholders. An empty set renders as an always-true condition.
type ConditionSet struct {
	clauses []string
	params  []interface{}
}

// NewConditionSet creates an empty condition set.
func NewConditionSet() *ConditionSet {
	return &ConditionSet{}
}

// Add appends a predicate. The expression must contain a single %d verb,
// which receives the next placeholder ordinal.
func (c *ConditionSet) Add(expr string, value interface{}) {
	c.params = append(c.params, value)
	c.clauses = append(c.clauses, fmt.Sprintf(expr, len(c.params)))
}

// WhereClause renders the accumulated predicates joined by AND, or "1=1"
// when none were added.
func (c *ConditionSet) WhereClause() string {
	if len(c.clauses) == 0 {
		return "1=1"
	}
	return strings.Join(c.clauses, " AND ")
}

// Params returns the bound parameters in the order the predicates were added.
func (c *ConditionSet) Params() []interface{} {
	return c.params
}
