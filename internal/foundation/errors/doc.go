// Package errors provides foundational, type-safe error primitives used across docnav.
//
// This package contains classified error types and helpers for error handling,
// including a fluent builder API for constructing ClassifiedError values with context.
//
// Key features:
//   - ErrorCategory: Broad error classification (config, validation, filesystem, etc.)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - RetryStrategy: Whether a failure can be fixed by retrying or needs the author
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLI adapter for exit codes and error presentation
//
// Example usage:
//
//	err := errors.WrapError(navErr, errors.CategoryValidation, "sidebar validation failed").
//		Fatal().
//		WithContext("section", "sidebars").
//		Build()
package errors
