// Package errors provides structured error types for the fuzz-bridge library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the offending value, a field path and a
// cause chain, which the host error bridge later maps onto the host's error
// taxonomy.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConvert, errors.KindTypeMismatch).
//		GoType("int64").
//		Detail("value is not text").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseConvert, "int64", "value is not text")
//	err := errors.InvalidWidth(errors.PhaseDispatch, 7)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
