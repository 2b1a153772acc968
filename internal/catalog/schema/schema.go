package schema

// CategorySchema is the declarative multi-step form composition for one
// category. Schemas are configuration: loaded read-only, versioned, edited
// out-of-band by catalog administrators.
type CategorySchema struct {
	Version int    `json:"version" yaml:"version" validate:"min=1"`
	Steps   []Step `json:"steps"   yaml:"steps"   validate:"min=1,dive"`
}

type Step struct {
	Key            string  `json:"key"                      yaml:"key" validate:"required"`
	TitleKey       string  `json:"title_i18n_key,omitempty" yaml:"title_i18n_key,omitempty"`
	DescriptionKey string  `json:"description_i18n_key,omitempty" yaml:"description_i18n_key,omitempty"`
	Groups         []Group `json:"groups"                   yaml:"groups" validate:"min=1,dive"`
}

type Group struct {
	Key            string     `json:"key"                      yaml:"key" validate:"required"`
	TitleKey       string     `json:"title_i18n_key,omitempty" yaml:"title_i18n_key,omitempty"`
	DescriptionKey string     `json:"description_i18n_key,omitempty" yaml:"description_i18n_key,omitempty"`
	Layout         Layout     `json:"layout,omitempty"         yaml:"layout,omitempty" validate:"omitempty,oneof=single double grid"`
	Fields         []FieldRef `json:"fields"                   yaml:"fields" validate:"min=1,dive"`
}

type Layout string

const (
	LayoutSingle Layout = "single"
	LayoutDouble Layout = "double"
	LayoutGrid   Layout = "grid"
)

// FieldRef places a registry field into a schema, optionally overriding its
// requiredness, labels, and numeric bounds for this category only.
type FieldRef struct {
	FieldKey       string     `json:"field_key"                 yaml:"field_key" validate:"required"`
	Optional       *bool      `json:"optional,omitempty"        yaml:"optional,omitempty"`
	LabelKey       string     `json:"label_i18n_key,omitempty"  yaml:"label_i18n_key,omitempty"`
	DescriptionKey string     `json:"description_i18n_key,omitempty" yaml:"description_i18n_key,omitempty"`
	PlaceholderKey string     `json:"placeholder_i18n_key,omitempty" yaml:"placeholder_i18n_key,omitempty"`
	Min            *float64   `json:"min_value,omitempty"       yaml:"min_value,omitempty"`
	Max            *float64   `json:"max_value,omitempty"       yaml:"max_value,omitempty"`
	Step           *float64   `json:"step,omitempty"            yaml:"step,omitempty"`
	Conditional    *Condition `json:"conditional,omitempty"     yaml:"conditional,omitempty"`
}

// Condition is a data-only visibility predicate: the referenced field's
// current value must equal Value, or be a member of Values. Keeping this
// declarative (no code) lets non-engineers author schemas safely.
type Condition struct {
	FieldKey string        `json:"field_key"        yaml:"field_key" validate:"required"`
	Value    interface{}   `json:"value,omitempty"  yaml:"value,omitempty"`
	Values   []interface{} `json:"values,omitempty" yaml:"values,omitempty"`
}

// Met evaluates the predicate against the current form values.
func (c *Condition) Met(values map[string]interface{}) bool {
	if c == nil {
		return true
	}
	current, ok := values[c.FieldKey]
	if !ok {
		return false
	}
	if len(c.Values) > 0 {
		for _, want := range c.Values {
			if looseEqual(current, want) {
				return true
			}
		}
		return false
	}
	return looseEqual(current, c.Value)
}

// looseEqual compares a submitted value with a schema-declared one. Submitted
// values arrive from JSON, so numbers are float64 and booleans may be the
// strings "true"/"false" when they come from form encodings.
func looseEqual(got, want interface{}) bool {
	if got == want {
		return true
	}
	switch w := want.(type) {
	case bool:
		if s, ok := got.(string); ok {
			return (s == "true") == w
		}
	case int:
		if f, ok := got.(float64); ok {
			return f == float64(w)
		}
	case float64:
		if f, ok := got.(float64); ok {
			return f == w
		}
	case string:
		if s, ok := got.(string); ok {
			return s == w
		}
	}
	return false
}

// FieldKeys returns every field key referenced by the schema, in document order.
func (s *CategorySchema) FieldKeys() []string {
	var keys []string
	seen := make(map[string]struct{})
	for _, step := range s.Steps {
		for _, group := range step.Groups {
			for _, ref := range group.Fields {
				if _, dup := seen[ref.FieldKey]; dup {
					continue
				}
				seen[ref.FieldKey] = struct{}{}
				keys = append(keys, ref.FieldKey)
			}
		}
	}
	return keys
}

// FindRef returns the first reference to fieldKey, if any.
func (s *CategorySchema) FindRef(fieldKey string) (*FieldRef, bool) {
	for si := range s.Steps {
		for gi := range s.Steps[si].Groups {
			for fi := range s.Steps[si].Groups[gi].Fields {
				ref := &s.Steps[si].Groups[gi].Fields[fi]
				if ref.FieldKey == fieldKey {
					return ref, true
				}
			}
		}
	}
	return nil, false
}
