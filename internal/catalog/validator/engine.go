package validator

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/okazmarkt/core/internal/catalog/registry"
	"github.com/okazmarkt/core/internal/catalog/schema"
	"github.com/okazmarkt/core/internal/catalog/vehicleref"
)

// Invariant is one cross-field business rule. Check receives the cleaned
// candidate record and reports whether the rule holds; on violation the error
// attaches to Path.
type Invariant struct {
	Path  string
	Code  string
	Check func(rec Record) (ok bool, detail string)
}

// Ruleset is one category type's validation contract: the structural shape
// (which registry fields are required or accepted) plus its cross-field
// invariants. Rulesets are data plus pure predicates; they never touch
// storage.
type Ruleset struct {
	Type     schema.CategoryType
	Required []string
	Optional []string

	// Aliases maps accepted submission keys to canonical field keys, so the
	// posting form's bare names (make, model, ...) and the canonical
	// normalized names validate identically.
	Aliases map[string]string

	Invariants []Invariant

	// Finalize runs after the invariant pass for rules that need the engine's
	// injected collaborators (reference catalogs, clock) or that derive
	// server-computed fields.
	Finalize func(env *Env, rec Record, errs *FieldErrors, path func(string) string)
}

// Env carries the injected read-only collaborators a Finalize hook may use.
type Env struct {
	Vehicles *vehicleref.Snapshot
	Now      func() time.Time
}

// Result is the outcome of one validation run.
type Result struct {
	CategoryType schema.CategoryType `json:"category_type"`
	Specifics    Record              `json:"specifics,omitempty"`
	Errors       []FieldError        `json:"errors,omitempty"`
}

// Ok reports whether the submission passed both passes.
func (r *Result) Ok() bool { return len(r.Errors) == 0 }

// Engine validates submitted attribute maps against per-category rulesets.
// It holds only read-only snapshots and is safe for concurrent use.
type Engine struct {
	reg      *registry.Registry
	env      Env
	rulesets map[schema.CategoryType]*Ruleset
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.env.Now = now }
}

// New builds the engine and verifies ruleset integrity: every specialized
// category type must have a ruleset, and every field key a ruleset names must
// exist in the registry within that type's domain. Failing here is an operator
// error and aborts startup.
func New(reg *registry.Registry, vehicles *vehicleref.Snapshot, opts ...Option) (*Engine, error) {
	e := &Engine{
		reg:      reg,
		env:      Env{Vehicles: vehicles, Now: time.Now},
		rulesets: defaultRulesets(),
	}
	for _, opt := range opts {
		opt(e)
	}
	for _, ctype := range schema.AllCategoryTypes() {
		rs, ok := e.rulesets[ctype]
		if !ok {
			return nil, fmt.Errorf("category type %s has no validator ruleset", ctype)
		}
		for _, key := range append(append([]string{}, rs.Required...), rs.Optional...) {
			if !reg.InDomain(key, ctype.Domain()) {
				return nil, fmt.Errorf("ruleset %s: field %q is not in the registry for domain %s", ctype, key, ctype.Domain())
			}
		}
		for alias, canonical := range rs.Aliases {
			if !reg.InDomain(canonical, ctype.Domain()) {
				return nil, fmt.Errorf("ruleset %s: alias %q targets unknown field %q", ctype, alias, canonical)
			}
		}
	}
	return e, nil
}

// Ruleset exposes a category type's ruleset, mainly for the schema lint job.
func (e *Engine) Ruleset(t schema.CategoryType) (*Ruleset, bool) {
	rs, ok := e.rulesets[t]
	return rs, ok
}

// Validate runs the two-phase evaluation for a category slug. Generic
// categories validate trivially to an empty specifics record. The returned
// error is reserved for programmer/configuration faults; user-input problems
// are always reported through Result.Errors.
func (e *Engine) Validate(categorySlug string, input map[string]interface{}) (*Result, error) {
	ctype := schema.GetCategoryType(categorySlug)
	if !ctype.Specialized() {
		return &Result{CategoryType: ctype, Specifics: Record{}}, nil
	}
	rs, ok := e.rulesets[ctype]
	if !ok {
		return nil, fmt.Errorf("category type %s has no validator ruleset", ctype)
	}

	rec, submittedAs := rs.normalize(input)
	path := func(canonical string) string {
		if p, ok := submittedAs[canonical]; ok {
			return p
		}
		return canonical
	}

	var errs FieldErrors
	for _, key := range rs.Required {
		if !rec.Has(key) {
			errs.Add(path(key), CodeRequired, "this field is required")
			continue
		}
		e.checkShape(key, rec, &errs, path)
	}
	for _, key := range rs.Optional {
		if rec.Has(key) {
			e.checkShape(key, rec, &errs, path)
		}
	}

	for _, inv := range rs.Invariants {
		ok, detail := inv.Check(rec)
		if ok {
			continue
		}
		code := inv.Code
		if code == "" {
			code = CodeInvariant
		}
		errs.Add(path(inv.Path), code, detail)
	}
	if rs.Finalize != nil {
		rs.Finalize(&e.env, rec, &errs, path)
	}

	if !errs.Empty() {
		return &Result{CategoryType: ctype, Errors: errs.All()}, nil
	}
	return &Result{CategoryType: ctype, Specifics: rec}, nil
}

// normalize maps submission keys to canonical keys, trims strings, and drops
// absent values and keys outside the ruleset. It returns the cleaned record
// and the canonical-to-submitted key mapping used for error paths.
func (rs *Ruleset) normalize(input map[string]interface{}) (Record, map[string]string) {
	accepted := make(map[string]struct{}, len(rs.Required)+len(rs.Optional))
	for _, key := range rs.Required {
		accepted[key] = struct{}{}
	}
	for _, key := range rs.Optional {
		accepted[key] = struct{}{}
	}

	rec := make(Record, len(input))
	submittedAs := make(map[string]string, len(input))
	for key, value := range input {
		if _, ok := accepted[key]; !ok {
			continue
		}
		if cleaned, present := cleanValue(value); present {
			rec[key] = cleaned
			submittedAs[key] = key
		}
	}
	// Aliases fill in second; a canonical submission wins when both appear.
	for key, value := range input {
		canonical, ok := rs.Aliases[key]
		if !ok || rec.Has(canonical) {
			continue
		}
		if _, ok := accepted[canonical]; !ok {
			continue
		}
		if cleaned, present := cleanValue(value); present {
			rec[canonical] = cleaned
			submittedAs[canonical] = key
		}
	}
	return rec, submittedAs
}

// checkShape verifies one present value against its registry definition and
// rewrites the record entry to its normalized form.
func (e *Engine) checkShape(key string, rec Record, errs *FieldErrors, path func(string) string) {
	def, ok := e.reg.Lookup(key)
	if !ok {
		return
	}
	p := path(key)
	switch def.FieldType {
	case registry.FieldText, registry.FieldTextarea:
		s, ok := rec.Str(key)
		if !ok {
			errs.Add(p, CodeInvalidType, "expected text")
			return
		}
		if def.MinValue != nil && float64(len(s)) < *def.MinValue {
			errs.Add(p, CodeOutOfRange, fmt.Sprintf("must be at least %d characters", int(*def.MinValue)))
			return
		}
		if def.MaxValue != nil && float64(len(s)) > *def.MaxValue {
			errs.Add(p, CodeOutOfRange, fmt.Sprintf("must be at most %d characters", int(*def.MaxValue)))
			return
		}
		if !def.MatchesPattern(s) {
			errs.Add(p, CodePatternMismatch, "invalid format")
			return
		}
		rec[key] = s

	case registry.FieldNumber, registry.FieldRange:
		f, ok := rec.Num(key)
		if !ok {
			errs.Add(p, CodeInvalidType, "expected a number")
			return
		}
		if def.Integer && f != float64(int64(f)) {
			errs.Add(p, CodeNotInteger, "expected a whole number")
			return
		}
		if def.MinValue != nil && f < *def.MinValue {
			errs.Add(p, CodeOutOfRange, fmt.Sprintf("must be at least %s", formatNum(*def.MinValue)))
			return
		}
		if def.MaxValue != nil && f > *def.MaxValue {
			errs.Add(p, CodeOutOfRange, fmt.Sprintf("must be at most %s", formatNum(*def.MaxValue)))
			return
		}
		rec[key] = f

	case registry.FieldSelect:
		s, ok := rec.Str(key)
		if !ok {
			errs.Add(p, CodeInvalidType, "expected an option code")
			return
		}
		if !def.HasOption(s) {
			errs.Add(p, CodeUnknownOption, "allowed: "+strings.Join(def.OptionCodes(), ", "))
			return
		}
		rec[key] = s

	case registry.FieldMultiSelect:
		values, ok := rec.Strs(key)
		if !ok {
			errs.Add(p, CodeInvalidType, "expected a list of option codes")
			return
		}
		for _, v := range values {
			if !def.HasOption(v) {
				errs.Add(p, CodeUnknownOption, fmt.Sprintf("%q is not allowed; allowed: %s", v, strings.Join(def.OptionCodes(), ", ")))
				return
			}
		}
		rec[key] = values

	case registry.FieldBoolean:
		b, ok := rec.Bool(key)
		if !ok {
			errs.Add(p, CodeInvalidType, "expected true or false")
			return
		}
		rec[key] = b

	case registry.FieldDate:
		s, ok := rec.Str(key)
		if !ok {
			errs.Add(p, CodeInvalidType, "expected a date")
			return
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			errs.Add(p, CodeInvalidDate, "expected an ISO date (YYYY-MM-DD)")
			return
		}
		rec[key] = t.Format("2006-01-02")
	}
}

func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
