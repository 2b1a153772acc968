package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordNumCoercions(t *testing.T) {
	rec := Record{"a": float64(3), "b": 4, "c": "5.5", "d": "not a number"}

	v, ok := rec.Num("a")
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)

	v, ok = rec.Num("b")
	assert.True(t, ok)
	assert.Equal(t, 4.0, v)

	v, ok = rec.Num("c")
	assert.True(t, ok)
	assert.Equal(t, 5.5, v)

	_, ok = rec.Num("d")
	assert.False(t, ok)
	_, ok = rec.Num("missing")
	assert.False(t, ok)
}

func TestRecordBoolCoercions(t *testing.T) {
	rec := Record{"a": true, "b": "true", "c": "false", "d": "yes"}

	v, ok := rec.Bool("a")
	assert.True(t, ok)
	assert.True(t, v)

	v, ok = rec.Bool("b")
	assert.True(t, ok)
	assert.True(t, v)

	v, ok = rec.Bool("c")
	assert.True(t, ok)
	assert.False(t, v)

	_, ok = rec.Bool("d")
	assert.False(t, ok)
}

func TestRecordStrs(t *testing.T) {
	rec := Record{
		"mixed":   []interface{}{"a", "b"},
		"typed":   []string{"x"},
		"not":     "scalar",
		"badItem": []interface{}{"a", 7},
	}

	v, ok := rec.Strs("mixed")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, v)

	v, ok = rec.Strs("typed")
	assert.True(t, ok)
	assert.Equal(t, []string{"x"}, v)

	_, ok = rec.Strs("not")
	assert.False(t, ok)
	_, ok = rec.Strs("badItem")
	assert.False(t, ok)
}

func TestCleanValue(t *testing.T) {
	_, present := cleanValue("   ")
	assert.False(t, present)

	_, present = cleanValue(nil)
	assert.False(t, present)

	_, present = cleanValue([]interface{}{})
	assert.False(t, present)

	v, present := cleanValue("  Toyota  ")
	assert.True(t, present)
	assert.Equal(t, "Toyota", v)

	v, present = cleanValue(float64(0))
	assert.True(t, present, "zero is a value, not an absence")
	assert.Equal(t, float64(0), v)
}
