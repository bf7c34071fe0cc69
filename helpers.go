package xorerrors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
//
// Example:
//
//	if xorerrors.Is(err, xorerrors.NewIO(xorerrors.IONotFound)) {
//	    // Handle missing input
//	}
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var hexErr xorerrors.HexFailure
//	if xorerrors.As(err, &hexErr) {
//	    index := hexErr.Err.Index
//	}
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// unwrap returns the outermost Error in err's chain.
func unwrap(err error) (Error, bool) {
	if err == nil {
		return nil, false
	}
	var unified Error
	if stderrors.As(err, &unified) {
		return unified, true
	}
	return nil, false
}

// GetCode extracts the ErrorCode from an error.
// Returns CodeUnknown if the error is nil or carries no Error.
//
// Example:
//
//	if xorerrors.GetCode(err) == xorerrors.CodeSizeLimitExceeded {
//	    // Reject the upload
//	}
func GetCode(err error) ErrorCode {
	if e, ok := unwrap(err); ok {
		return e.Code()
	}
	return CodeUnknown
}

// GetKind extracts the variant Kind from an error.
// The second return value is false if the error is nil or carries no Error.
func GetKind(err error) (Kind, bool) {
	if e, ok := unwrap(err); ok {
		return e.Kind(), true
	}
	return 0, false
}

// GetClassification extracts the ErrorClassification from an error.
// Returns ClassificationPermanent if the error is nil or carries no Error.
// This is a safe default that prevents inappropriate retry attempts.
func GetClassification(err error) ErrorClassification {
	if e, ok := unwrap(err); ok {
		return e.Classification()
	}
	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
// Returns false if the error is nil or carries no Error (safe default).
//
// Example:
//
//	if xorerrors.IsRetryable(err) {
//	    time.Sleep(backoff)
//	    return retry(operation)
//	}
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}

// GetFields returns the payload fields of the Error in err's chain.
// Returns nil if the error is nil, carries no Error, or the variant has no
// payload.
func GetFields(err error) map[string]any {
	if e, ok := unwrap(err); ok {
		return e.Fields()
	}
	return nil
}
