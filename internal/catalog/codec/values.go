package codec

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// Value plumbing between the canonical specifics map and the typed columns of
// the specialized tables.

func str(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func num(m map[string]interface{}, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func intVal(m map[string]interface{}, key string) (int, bool) {
	switch v := m[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}

func numPtr(m map[string]interface{}, key string) *float64 {
	if _, ok := m[key]; !ok {
		return nil
	}
	v := num(m, key)
	return &v
}

func intPtr(m map[string]interface{}, key string) *int {
	v, ok := intVal(m, key)
	if !ok {
		return nil
	}
	return &v
}

func putStr(m map[string]interface{}, key, value string) {
	if value != "" {
		m[key] = value
	}
}

func putNumPtr(m map[string]interface{}, key string, value *float64) {
	if value != nil {
		m[key] = *value
	}
}

func putIntPtr(m map[string]interface{}, key string, value *int) {
	if value != nil {
		m[key] = float64(*value)
	}
}

// remainderJSON serializes every key not captured by a typed column.
func remainderJSON(specifics map[string]interface{}, hotKeys ...string) (datatypes.JSON, error) {
	hot := make(map[string]struct{}, len(hotKeys))
	for _, key := range hotKeys {
		hot[key] = struct{}{}
	}
	rest := make(map[string]interface{})
	for key, value := range specifics {
		if _, ok := hot[key]; !ok {
			rest[key] = value
		}
	}
	if len(rest) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(rest)
	if err != nil {
		return nil, fmt.Errorf("marshal attributes: %w", err)
	}
	return datatypes.JSON(raw), nil
}

// mergeAttrs overlays typed column values on top of the stored attribute
// remainder.
func mergeAttrs(attrs datatypes.JSON, hot map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{})
	if len(attrs) > 0 {
		// A corrupt remainder loses the long tail but never the hot columns.
		_ = json.Unmarshal(attrs, &out)
	}
	for key, value := range hot {
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		out[key] = value
	}
	return out
}
