package xorerrors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// I/O errors.

	// CodeIOFailure indicates an underlying I/O operation failed.
	CodeIOFailure ErrorCode = "IO_FAILURE"

	// Validation errors.

	// CodeInvalidPath indicates a file path failed validation.
	CodeInvalidPath ErrorCode = "INVALID_PATH"

	// CodeInvalidPathExtension indicates a file extension check failed.
	CodeInvalidPathExtension ErrorCode = "INVALID_PATH_EXTENSION"

	// CodeSizeLimitExceeded indicates the input exceeded the configured maximum size.
	CodeSizeLimitExceeded ErrorCode = "SIZE_LIMIT_EXCEEDED"

	// Format errors.

	// CodeUnsupportedImageFormat indicates an image format was not recognized.
	CodeUnsupportedImageFormat ErrorCode = "UNSUPPORTED_IMAGE_FORMAT"

	// CodeUnsupportedFormat indicates a codec or format is not built in or not recognized.
	CodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"

	// CodeUnsupportedStringEncoding indicates text output was requested from
	// a format that encodes to bytes.
	CodeUnsupportedStringEncoding ErrorCode = "UNSUPPORTED_STRING_ENCODING"

	// CodeUnsupportedBinaryEncoding indicates byte output was requested from
	// a format that encodes to text.
	CodeUnsupportedBinaryEncoding ErrorCode = "UNSUPPORTED_BINARY_ENCODING"

	// CodeUnsupportedDecodeString indicates text output was requested from
	// a format that decodes to bytes.
	CodeUnsupportedDecodeString ErrorCode = "UNSUPPORTED_DECODE_STRING"

	// CodeUnsupportedDecodeBinary indicates byte output was requested from
	// a format that decodes to text.
	CodeUnsupportedDecodeBinary ErrorCode = "UNSUPPORTED_DECODE_BINARY"

	// Codec errors.

	// CodeBase64Failed indicates base64 decoding failed.
	CodeBase64Failed ErrorCode = "BASE64_DECODE_FAILED"

	// CodeHexFailed indicates hex decoding failed.
	CodeHexFailed ErrorCode = "HEX_DECODE_FAILED"

	// CodeZ85Failed indicates Z85 decoding failed.
	CodeZ85Failed ErrorCode = "Z85_DECODE_FAILED"

	// CodeLZ4Failed indicates LZ4 compression or decompression failed.
	CodeLZ4Failed ErrorCode = "LZ4_FAILED"

	// Generic errors.

	// CodeUnknown indicates an error that is not part of the unified taxonomy.
	CodeUnknown ErrorCode = "UNKNOWN"
)
