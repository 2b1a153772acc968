package registry

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// FieldType determines the runtime shape a submitted value must have.
type FieldType string

const (
	FieldText        FieldType = "text"
	FieldTextarea    FieldType = "textarea"
	FieldNumber      FieldType = "number"
	FieldSelect      FieldType = "select"
	FieldMultiSelect FieldType = "multiselect"
	FieldBoolean     FieldType = "boolean"
	FieldDate        FieldType = "date"
	FieldRange       FieldType = "range"
)

// FieldOption is one enumerable value of a select/multiselect field.
type FieldOption struct {
	Code     string                 `json:"code"          yaml:"code"          validate:"required"`
	NameKey  string                 `json:"name_i18n_key" yaml:"name_i18n_key"`
	Sort     int                    `json:"sort"          yaml:"sort"`
	Metadata map[string]interface{} `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// FieldDefinition is a reusable attribute field descriptor. The registry is the
// single source of truth for enumerable domains: validator and renderer both
// resolve option codes here and never carry their own option lists.
type FieldDefinition struct {
	FieldKey       string        `json:"field_key"               yaml:"field_key"       validate:"required,fieldKeyFormat"`
	FieldType      FieldType     `json:"field_type"              yaml:"field_type"      validate:"required,oneof=text textarea number select multiselect boolean date range"`
	LabelKey       string        `json:"label_i18n_key"          yaml:"label_i18n_key"`
	DescriptionKey string        `json:"description_i18n_key"    yaml:"description_i18n_key"`
	Domain         string        `json:"domain,omitempty"        yaml:"domain,omitempty"`
	IsRequired     bool          `json:"is_required"             yaml:"is_required"`
	Unit           string        `json:"unit,omitempty"          yaml:"unit,omitempty"`
	MinValue       *float64      `json:"min_value,omitempty"     yaml:"min_value,omitempty"`
	MaxValue       *float64      `json:"max_value,omitempty"     yaml:"max_value,omitempty"`
	Pattern        string        `json:"pattern,omitempty"       yaml:"pattern,omitempty"`
	Integer        bool          `json:"integer,omitempty"       yaml:"integer,omitempty"`
	GroupKey       string        `json:"group_key,omitempty"     yaml:"group_key,omitempty"`
	Sort           int           `json:"sort"                    yaml:"sort"`
	Options        []FieldOption `json:"options,omitempty"       yaml:"options,omitempty" validate:"dive"`

	pattern *regexp.Regexp
}

// IsEnum reports whether values of this field must match an option code.
func (d *FieldDefinition) IsEnum() bool {
	return d.FieldType == FieldSelect || d.FieldType == FieldMultiSelect
}

// HasOption reports whether code is a declared option of this field.
func (d *FieldDefinition) HasOption(code string) bool {
	for _, opt := range d.Options {
		if opt.Code == code {
			return true
		}
	}
	return false
}

// OptionCodes returns the declared option codes in sort order.
func (d *FieldDefinition) OptionCodes() []string {
	codes := make([]string, len(d.Options))
	for i, opt := range d.Options {
		codes[i] = opt.Code
	}
	return codes
}

// MatchesPattern reports whether value satisfies the field's regex pattern.
// Fields without a pattern accept everything.
func (d *FieldDefinition) MatchesPattern(value string) bool {
	if d.pattern == nil {
		return true
	}
	return d.pattern.MatchString(value)
}

var fieldKeyRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func fieldKeyFormat(fl validator.FieldLevel) bool {
	return fieldKeyRe.MatchString(fl.Field().String())
}

var structValidator = func() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("fieldKeyFormat", fieldKeyFormat)
	return v
}()

// Registry is an immutable catalog of field definitions, safe for concurrent use.
type Registry struct {
	fields map[string]*FieldDefinition
}

// New builds a registry from definitions, validating configuration integrity.
// Violations here are operator errors and fail startup; they are never shown to
// end users as validation failures.
func New(defs []FieldDefinition) (*Registry, error) {
	fields := make(map[string]*FieldDefinition, len(defs))
	for i := range defs {
		def := defs[i]
		if err := structValidator.Struct(&def); err != nil {
			return nil, fmt.Errorf("field %q: %w", def.FieldKey, err)
		}
		if _, dup := fields[def.FieldKey]; dup {
			return nil, fmt.Errorf("duplicate field key %q", def.FieldKey)
		}
		if def.IsEnum() && len(def.Options) == 0 {
			return nil, fmt.Errorf("field %q: %s fields must declare options", def.FieldKey, def.FieldType)
		}
		if !def.IsEnum() && len(def.Options) > 0 {
			return nil, fmt.Errorf("field %q: options are only allowed on select/multiselect fields", def.FieldKey)
		}
		if def.MinValue != nil && def.MaxValue != nil && *def.MaxValue < *def.MinValue {
			return nil, fmt.Errorf("field %q: max_value is below min_value", def.FieldKey)
		}
		if def.Pattern != "" {
			re, err := regexp.Compile(def.Pattern)
			if err != nil {
				return nil, fmt.Errorf("field %q: invalid pattern: %w", def.FieldKey, err)
			}
			def.pattern = re
		}
		sort.SliceStable(def.Options, func(a, b int) bool { return def.Options[a].Sort < def.Options[b].Sort })
		fields[def.FieldKey] = &def
	}
	return &Registry{fields: fields}, nil
}

// Default builds the registry from the built-in seed catalog.
func Default() (*Registry, error) {
	return New(seedFields())
}

// LoadFile builds the registry from the seed catalog plus a YAML overlay of
// additional or replacement field definitions.
func LoadFile(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read field catalog: %w", err)
	}
	var overlay []FieldDefinition
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return nil, fmt.Errorf("parse field catalog: %w", err)
	}
	merged := seedFields()
	byKey := make(map[string]int, len(merged))
	for i, def := range merged {
		byKey[def.FieldKey] = i
	}
	for _, def := range overlay {
		if i, ok := byKey[def.FieldKey]; ok {
			merged[i] = def
			continue
		}
		merged = append(merged, def)
	}
	return New(merged)
}

// Lookup resolves a field definition by key.
func (r *Registry) Lookup(fieldKey string) (*FieldDefinition, bool) {
	def, ok := r.fields[fieldKey]
	return def, ok
}

// Has reports whether a field key exists.
func (r *Registry) Has(fieldKey string) bool {
	_, ok := r.fields[fieldKey]
	return ok
}

// ForDomain returns all definitions scoped to a domain plus shared ones,
// ordered by sort then key.
func (r *Registry) ForDomain(domain string) []*FieldDefinition {
	var defs []*FieldDefinition
	for _, def := range r.fields {
		if def.Domain == "" || def.Domain == domain {
			defs = append(defs, def)
		}
	}
	sort.Slice(defs, func(a, b int) bool {
		if defs[a].Sort != defs[b].Sort {
			return defs[a].Sort < defs[b].Sort
		}
		return defs[a].FieldKey < defs[b].FieldKey
	})
	return defs
}

// InDomain reports whether a field key is usable in the given domain: the key
// exists and is either shared or scoped to that domain.
func (r *Registry) InDomain(fieldKey, domain string) bool {
	def, ok := r.fields[fieldKey]
	if !ok {
		return false
	}
	return def.Domain == "" || def.Domain == domain
}

// Len returns the number of registered fields.
func (r *Registry) Len() int { return len(r.fields) }
