package validator

// Error codes attached to field errors. Structural codes come out of the
// primitive-shape pass, the rest out of cross-field invariants and reference
// lookups.
const (
	CodeRequired        = "required"
	CodeForbidden       = "forbidden"
	CodeInvalidType     = "invalid_type"
	CodeOutOfRange      = "out_of_range"
	CodeNotInteger      = "not_integer"
	CodePatternMismatch = "pattern_mismatch"
	CodeUnknownOption   = "unknown_option"
	CodeInvalidDate     = "invalid_date"
	CodeUnknown         = "unknown"
	CodeInvariant       = "invariant_violation"
)

// FieldError is one user-facing validation failure, suitable for display next
// to the offending form field.
type FieldError struct {
	FieldPath string `json:"field_path"`
	ErrorCode string `json:"error_code"`
	Detail    string `json:"detail"`
}

// FieldErrors is an ordered error collection, deduplicated by field path with
// first-detected-wins semantics.
type FieldErrors struct {
	list []FieldError
	seen map[string]struct{}
}

// Add records an error unless the path already carries one.
func (e *FieldErrors) Add(path, code, detail string) {
	if e.seen == nil {
		e.seen = make(map[string]struct{})
	}
	if _, dup := e.seen[path]; dup {
		return
	}
	e.seen[path] = struct{}{}
	e.list = append(e.list, FieldError{FieldPath: path, ErrorCode: code, Detail: detail})
}

// Has reports whether the path already carries an error.
func (e *FieldErrors) Has(path string) bool {
	_, ok := e.seen[path]
	return ok
}

// Empty reports whether no errors were collected.
func (e *FieldErrors) Empty() bool { return len(e.list) == 0 }

// Len returns the number of collected errors.
func (e *FieldErrors) Len() int { return len(e.list) }

// All returns the collected errors in detection order.
func (e *FieldErrors) All() []FieldError {
	out := make([]FieldError, len(e.list))
	copy(out, e.list)
	return out
}
