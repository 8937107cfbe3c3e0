package tools

// Argument extraction helpers. MCP arguments arrive as a loosely typed
// map decoded from JSON, so numbers show up as float64 and arrays as
// []interface{}. Each helper reports whether the key was present and
// coercible.

// IntArg extracts an integer argument
func IntArg(params map[string]interface{}, key string) (int, bool) {
	v, exists := params[key]
	if !exists {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	}
	return 0, false
}

// FloatArg extracts a numeric argument
func FloatArg(params map[string]interface{}, key string) (float64, bool) {
	v, exists := params[key]
	if !exists {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// StringArg extracts a string argument
func StringArg(params map[string]interface{}, key string) (string, bool) {
	v, exists := params[key]
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// StringSliceArg extracts an array-of-string argument
func StringSliceArg(params map[string]interface{}, key string) ([]string, bool) {
	v, exists := params[key]
	if !exists {
		return nil, false
	}

	switch items := v.(type) {
	case []string:
		return items, true
	case []interface{}:
		out := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
