package domain

import "strings"

// FieldError is one invariant violation found during validation, naming the
// offending path and a human-readable message (spec §6).
type FieldError struct {
	Path    string
	Message string
}

// ValidationError collects every invariant violation found in a PlanInput,
// rather than failing on the first one, per spec §6 ("a composite error
// listing every failure").
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Path+": "+fe.Message)
	}
	return "plan input validation failed:\n  " + strings.Join(parts, "\n  ")
}

// Add appends a violation. No-op on a nil receiver's slice growth path is
// avoided by callers always constructing the collector first.
func (e *ValidationError) Add(path, message string) {
	e.Errors = append(e.Errors, FieldError{Path: path, Message: message})
}

// HasErrors reports whether any violation was recorded.
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Errors) > 0
}

// OrNil returns e as an error if it has any recorded violations, else nil.
// This is the standard way validators hand back a *ValidationError collector.
func (e *ValidationError) OrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

// HorizonError is raised when a plan has no years left to simulate (spec §7):
// age already at or beyond life expectancy.
type HorizonError struct {
	Message string
}

func (e *HorizonError) Error() string { return e.Message }
