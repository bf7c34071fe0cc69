package xorerrors

// ErrorClassification indicates whether an error should trigger a retry.
// Callers use it to decide whether an operation should be retried or
// represents a permanent failure; this package never retries on its own.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	// Examples: timeouts, interrupted calls, connection resets.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	// Examples: corrupt encodings, invalid paths, oversized input.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
// IOFailure refines CodeIOFailure by kind, see retryableIOKinds.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeIOFailure: ClassificationPermanent,

	// Validation errors (the same input fails the same way)
	CodeInvalidPath:          ClassificationPermanent,
	CodeInvalidPathExtension: ClassificationPermanent,
	CodeSizeLimitExceeded:    ClassificationPermanent,

	// Format errors (build or request configuration)
	CodeUnsupportedImageFormat:    ClassificationPermanent,
	CodeUnsupportedFormat:         ClassificationPermanent,
	CodeUnsupportedStringEncoding: ClassificationPermanent,
	CodeUnsupportedBinaryEncoding: ClassificationPermanent,
	CodeUnsupportedDecodeString:   ClassificationPermanent,
	CodeUnsupportedDecodeBinary:   ClassificationPermanent,

	// Codec errors (corrupt input)
	CodeBase64Failed: ClassificationPermanent,
	CodeHexFailed:    ClassificationPermanent,
	CodeZ85Failed:    ClassificationPermanent,
	CodeLZ4Failed:    ClassificationPermanent,

	CodeUnknown: ClassificationPermanent,
}

// retryableIOKinds lists the I/O kinds that describe transient conditions.
var retryableIOKinds = map[IOKind]bool{
	IOTimedOut:          true,
	IOInterrupted:       true,
	IOWouldBlock:        true,
	IOConnectionReset:   true,
	IOConnectionAborted: true,
	IOConnectionRefused: true,
}

// getDefaultClassification returns the default classification for an error code.
// Returns ClassificationPermanent if the code is not in the map (safe default).
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent // Safe default
}
