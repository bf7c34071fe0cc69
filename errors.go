package xorerrors

import "fmt"

// Error is the unified error returned by every fallible operation of the XOR
// pipeline.
//
// The set of implementations is closed: every Error is one of the variant
// types declared in this package. All variants are comparable value types,
// so two errors built from equal inputs are == and can be used as map keys.
// Use [Compare] for a total order across variants.
type Error interface {
	error

	// Kind returns the variant tag.
	Kind() Kind

	// Code returns the error code identifying the variant.
	Code() ErrorCode

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Fields returns the variant payload as a fresh map keyed by field name.
	// Returns nil for variants without payload.
	Fields() map[string]any

	// comparePayload orders two errors of the same variant by payload.
	// ok is false if other is not that exact variant type.
	comparePayload(other Error) (c int, ok bool)
}

// format renders the "[CODE] message" form shared by every variant.
func format(code ErrorCode, message string) string {
	return fmt.Sprintf("[%s] %s", code, message)
}

// formatf is format with a printf-style message.
func formatf(code ErrorCode, f string, args ...any) string {
	return format(code, fmt.Sprintf(f, args...))
}
