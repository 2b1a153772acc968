package validator

import (
	"strconv"
	"strings"
)

// Record is the candidate specifics during validation: canonical field keys
// mapped to cleaned values. The typed accessors below tolerate the loose
// shapes JSON decoding produces (float64 numbers, stringly booleans) so
// invariants stay short.
type Record map[string]interface{}

// Has reports whether the field is present.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Str returns the trimmed string value of a field.
func (r Record) Str(key string) (string, bool) {
	v, ok := r[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// Num returns the numeric value of a field. Numeric strings are accepted
// because form-encoded submissions carry numbers as text.
func (r Record) Num(key string) (float64, bool) {
	v, ok := r[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// Int returns the field as a whole number.
func (r Record) Int(key string) (int, bool) {
	f, ok := r.Num(key)
	if !ok || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

// Bool returns the boolean value of a field, accepting "true"/"false" strings.
func (r Record) Bool(key string) (bool, bool) {
	v, ok := r[key]
	if !ok {
		return false, false
	}
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch strings.TrimSpace(b) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// Strs returns the field as a string slice (multiselect values).
func (r Record) Strs(key string) ([]string, bool) {
	v, ok := r[key]
	if !ok {
		return nil, false
	}
	switch list := v.(type) {
	case []string:
		return list, true
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, strings.TrimSpace(s))
		}
		return out, true
	}
	return nil, false
}

// cleanValue trims strings and reports whether the value counts as present.
// Empty strings, empty slices and nil are absent.
func cleanValue(v interface{}) (interface{}, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil, false
		}
		return s, true
	case []interface{}:
		if len(t) == 0 {
			return nil, false
		}
		out := make([]interface{}, 0, len(t))
		for _, item := range t {
			if cleaned, ok := cleanValue(item); ok {
				out = append(out, cleaned)
			}
		}
		if len(out) == 0 {
			return nil, false
		}
		return out, true
	case []string:
		if len(t) == 0 {
			return nil, false
		}
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s := strings.TrimSpace(item); s != "" {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil, false
		}
		return out, true
	}
	return v, true
}
