// Package xorerrors provides the unified error type of the XOR file pipeline.
//
// Every fallible operation in the pipeline (path validation, image handling,
// size checks, binary-to-text encodings, compression and I/O) returns an
// [Error]. Error is a closed set of value types, one per failure variant, so
// callers can switch on the concrete type, compare errors with ==, use them as
// map keys, and sort them with [Compare].
//
// # Variants
//
// The base variants are always present:
//
//   - [IOFailure]: an I/O operation failed; carries only the [IOKind]
//   - [InvalidPath], [InvalidPathExtension]: a path failed validation
//   - [UnsupportedImageFormat]: an image format was not recognized
//   - [SizeLimitExceeded]: input exceeded the configured maximum size
//   - [UnsupportedFormat]: a codec is not built in or not recognized
//   - [UnsupportedStringEncoding], [UnsupportedBinaryEncoding],
//     [UnsupportedDecodeString], [UnsupportedDecodeBinary]: the requested
//     direction produces the wrong output shape for the named format
//
// Codec variants ([Base64Failure], [HexFailure], [Z85Failure], [LZ4Failure])
// carry a nested error mirroring the codec's own failure taxonomy. They are
// compiled in by default and removed with build tags:
//
//	go build -tags xorerrors_nobase64,xorerrors_nolz4 ./...
//
// The available tags are xorerrors_nobase64, xorerrors_nohex, xorerrors_noz85,
// xorerrors_nolz4, xorerrors_nobilly and xorerrors_nominio. [Features] reports
// the set a binary was built with.
//
// # Conversions
//
// Foreign errors are converted at the point a lower-level call fails:
//
//	n, err := base64.StdEncoding.Decode(dst, src)
//	if err != nil {
//	    return xorerrors.From(err, src)
//	}
//
// [From] dispatches to the per-facility converters ([AsBase64], [AsHex],
// [AsZ85], [AsLZ4]) and falls back to [FromIO], which extracts the error kind
// from stdlib, go-billy and MinIO errors and discards the message.
//
// The LZ4 conversion is the single lossy point: lz4 errors outside the known
// shapes map to [LZ4Unsupported] so the converter keeps working when the
// codec grows new failure modes.
//
// # Standard Library Compatibility
//
// IOFailure answers errors.Is for the matching io/fs sentinels:
//
//	if errors.Is(err, fs.ErrNotExist) {
//	    // err may be xorerrors.IOFailure{IOKind: xorerrors.IONotFound}
//	}
//
// Codec failures unwrap to their nested error, so errors.As can reach a
// [Base64Error] directly.
//
// # Codes and Classification
//
// Each variant maps to a stable [ErrorCode] and an [ErrorClassification].
// Only transient I/O kinds such as timeouts and connection resets are
// retryable; all other variants are permanent. Use [IsRetryable] for retry
// decisions.
package xorerrors
