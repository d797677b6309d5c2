package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLoad     Phase = "load"     // bulk entry-point resolution
	PhaseDispatch Phase = "dispatch" // per-call slot access
)

// Kind categorizes the error
type Kind string

const (
	KindNoContext     Kind = "no_context"     // no active rendering context
	KindNotLoaded     Kind = "not_loaded"     // binding set never populated
	KindUnsupported   Kind = "unsupported"    // entry point absent from context
	KindOutOfRange    Kind = "out_of_range"   // slot index past table length
	KindTableMismatch Kind = "table_mismatch" // set bound to a different table
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Entry  string // entry-point name, when one is implicated
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Entry != "" {
		b.WriteString(": ")
		b.WriteString(e.Entry)
	}

	if e.Detail != "" {
		if e.Entry != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// IsConfiguration reports whether the error is a configuration fault
// (missing context or never-loaded set) rather than a runtime condition.
func IsConfiguration(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Kind == KindNoContext || e.Kind == KindNotLoaded
	}
	return false
}

// Convenience constructors for the error classes the core raises

// NoContext creates the configuration error for loading without an
// active rendering context.
func NoContext(detail string) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindNoContext,
		Detail: detail,
	}
}

// NotLoaded creates the configuration error for dispatching through a
// binding set that was never populated.
func NotLoaded(entry string) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindNotLoaded,
		Entry:  entry,
		Detail: "binding set has not been loaded",
	}
}

// Unsupported creates the capability-absence error for an entry point
// the active context does not provide.
func Unsupported(entry string) *Error {
	return &Error{
		Phase: PhaseDispatch,
		Kind:  KindUnsupported,
		Entry: entry,
	}
}

// TableMismatch creates the programming error for a binding set used
// against a table it was not built from.
func TableMismatch(wantLen, gotLen int) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindTableMismatch,
		Detail: fmt.Sprintf("cache holds %d slots, table has %d entries", gotLen, wantLen),
	}
}

// OutOfRangeMessage formats the panic message for a slot index past the
// table length. Out-of-range access is a construction bug and panics
// rather than returning an error; this keeps the wording in one place.
func OutOfRangeMessage(index, length int) string {
	return fmt.Sprintf("[%s] %s: slot %d out of range (table length %d)",
		PhaseDispatch, KindOutOfRange, index, length)
}

// Wrap wraps an existing error with phase and kind context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
