package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntArg(t *testing.T) {
	params := map[string]interface{}{
		"json_number": float64(5),
		"go_int":      5,
		"go_int64":    int64(5),
		"text":        "5",
	}

	for _, key := range []string{"json_number", "go_int", "go_int64"} {
		v, ok := IntArg(params, key)
		assert.True(t, ok, key)
		assert.Equal(t, 5, v, key)
	}

	_, ok := IntArg(params, "text")
	assert.False(t, ok)
	_, ok = IntArg(params, "missing")
	assert.False(t, ok)
}

func TestFloatArg(t *testing.T) {
	v, ok := FloatArg(map[string]interface{}{"amount": float64(12.5)}, "amount")
	assert.True(t, ok)
	assert.Equal(t, 12.5, v)

	v, ok = FloatArg(map[string]interface{}{"amount": 12}, "amount")
	assert.True(t, ok)
	assert.Equal(t, 12.0, v)

	_, ok = FloatArg(map[string]interface{}{}, "amount")
	assert.False(t, ok)
}

func TestStringArg(t *testing.T) {
	v, ok := StringArg(map[string]interface{}{"status": "PAID"}, "status")
	assert.True(t, ok)
	assert.Equal(t, "PAID", v)

	_, ok = StringArg(map[string]interface{}{"status": 5}, "status")
	assert.False(t, ok)
}

func TestStringSliceArg(t *testing.T) {
	v, ok := StringSliceArg(map[string]interface{}{
		"numbers": []interface{}{"A", "B"},
	}, "numbers")
	assert.True(t, ok)
	assert.Equal(t, []string{"A", "B"}, v)

	v, ok = StringSliceArg(map[string]interface{}{
		"numbers": []string{"C"},
	}, "numbers")
	assert.True(t, ok)
	assert.Equal(t, []string{"C"}, v)

	_, ok = StringSliceArg(map[string]interface{}{
		"numbers": []interface{}{"A", 2},
	}, "numbers")
	assert.False(t, ok)

	_, ok = StringSliceArg(map[string]interface{}{}, "numbers")
	assert.False(t, ok)
}

func TestRegistryListsDefinitionsSorted(t *testing.T) {
	logger := testLogger()
	registry := NewRegistry(logger)
	RegisterAll(registry, nil, logger)

	assert.Equal(t, 5, registry.GetCount())
	assert.True(t, registry.HasTool("lookup_vendor"))
	assert.Nil(t, registry.GetTool("nope"))

	defs := registry.GetAllDefinitions()
	names := make([]string, len(defs))
	for i, def := range defs {
		names[i] = def.Name
	}
	assert.Equal(t, []string{
		"get_vendor_summary",
		"lookup_invoice",
		"lookup_purchase_order",
		"lookup_vendor",
		"query_amounts",
	}, names)
}
