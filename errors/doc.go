// Package errors provides structured error types for the gl-dispatch library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The taxonomy separates three failure classes that
// callers handle very differently:
//
//   - configuration errors (KindNoContext, KindNotLoaded): the process
//     tried to resolve or dispatch without the preconditions in place;
//     surfaced immediately, never retried internally.
//   - capability absence (KindUnsupported): a specific entry point is
//     not provided by the active context; reported lazily when that
//     entry point is dispatched, so feature detection stays cheap.
//   - programming errors (KindOutOfRange, KindTableMismatch): construction
//     bugs such as a slot index past the table length; these fail fast
//     via panic and only appear here as message formatting.
//
// All errors implement the standard error interface and support
// errors.Is/As. Two *Error values match under errors.Is when their
// Phase and Kind agree:
//
//	if errors.Is(err, errors.Unsupported("")) {
//	    // fall back to the non-extension path
//	}
package errors
