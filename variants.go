package xorerrors

import (
	"cmp"
	"log/slog"
)

// InvalidPath reports a file path that failed validation.
type InvalidPath struct {
	Path string
}

func (e InvalidPath) Error() string {
	return formatf(e.Code(), "invalid path %q", e.Path)
}

func (e InvalidPath) Kind() Kind { return KindInvalidPath }
func (e InvalidPath) Code() ErrorCode { return e.Kind().Code() }
func (e InvalidPath) Classification() ErrorClassification { return getDefaultClassification(e.Code()) }
func (e InvalidPath) Fields() map[string]any { return map[string]any{"path": e.Path} }
func (e InvalidPath) LogValue() slog.Value { return logValue(e) }
func (e InvalidPath) comparePayload(other Error) (int, bool) {
	o, ok := other.(InvalidPath)
	return cmp.Compare(e.Path, o.Path), ok
}

// InvalidPathExtension reports a file extension check that failed.
// Cause is a human-readable description of the check.
type InvalidPathExtension struct {
	Cause string
	Path  string
}

func (e InvalidPathExtension) Error() string {
	return formatf(e.Code(), "invalid extension for %q: %s", e.Path, e.Cause)
}

func (e InvalidPathExtension) Kind() Kind { return KindInvalidPathExtension }
func (e InvalidPathExtension) Code() ErrorCode { return e.Kind().Code() }
func (e InvalidPathExtension) Classification() ErrorClassification { return getDefaultClassification(e.Code()) }
func (e InvalidPathExtension) LogValue() slog.Value { return logValue(e) }

func (e InvalidPathExtension) Fields() map[string]any {
	return map[string]any{"cause": e.Cause, "path": e.Path}
}

func (e InvalidPathExtension) comparePayload(other Error) (int, bool) {
	o, ok := other.(InvalidPathExtension)
	return cmp.Or(cmp.Compare(e.Cause, o.Cause), cmp.Compare(e.Path, o.Path)), ok
}

// UnsupportedImageFormat reports an image format that is not recognized.
type UnsupportedImageFormat struct{}

func (e UnsupportedImageFormat) Error() string {
	return format(e.Code(), "unsupported image format")
}

func (e UnsupportedImageFormat) Kind() Kind { return KindUnsupportedImageFormat }
func (e UnsupportedImageFormat) Code() ErrorCode { return e.Kind().Code() }
func (e UnsupportedImageFormat) Classification() ErrorClassification { return getDefaultClassification(e.Code()) }
func (e UnsupportedImageFormat) Fields() map[string]any { return nil }
func (e UnsupportedImageFormat) LogValue() slog.Value { return logValue(e) }
func (e UnsupportedImageFormat) comparePayload(other Error) (int, bool) {
	_, ok := other.(UnsupportedImageFormat)
	return 0, ok
}

// SizeLimitExceeded reports input larger than the configured maximum.
type SizeLimitExceeded struct {
	Allowed     uint64
	Encountered uint64
}

func (e SizeLimitExceeded) Error() string {
	return formatf(e.Code(), "size limit exceeded: %d bytes encountered, %d allowed", e.Encountered, e.Allowed)
}

func (e SizeLimitExceeded) Kind() Kind { return KindSizeLimitExceeded }
func (e SizeLimitExceeded) Code() ErrorCode { return e.Kind().Code() }
func (e SizeLimitExceeded) Classification() ErrorClassification { return getDefaultClassification(e.Code()) }
func (e SizeLimitExceeded) LogValue() slog.Value { return logValue(e) }

func (e SizeLimitExceeded) Fields() map[string]any {
	return map[string]any{"allowed": e.Allowed, "encountered": e.Encountered}
}

func (e SizeLimitExceeded) comparePayload(other Error) (int, bool) {
	o, ok := other.(SizeLimitExceeded)
	return cmp.Or(cmp.Compare(e.Allowed, o.Allowed), cmp.Compare(e.Encountered, o.Encountered)), ok
}

// UnsupportedFormat reports a codec or format that is not built in or not recognized.
type UnsupportedFormat struct {
	Format string
}

func (e UnsupportedFormat) Error() string {
	return formatf(e.Code(), "unsupported format %q", e.Format)
}

func (e UnsupportedFormat) Kind() Kind { return KindUnsupportedFormat }
func (e UnsupportedFormat) Code() ErrorCode { return e.Kind().Code() }
func (e UnsupportedFormat) Classification() ErrorClassification { return getDefaultClassification(e.Code()) }
func (e UnsupportedFormat) Fields() map[string]any { return map[string]any{"format": e.Format} }
func (e UnsupportedFormat) LogValue() slog.Value { return logValue(e) }
func (e UnsupportedFormat) comparePayload(other Error) (int, bool) {
	o, ok := other.(UnsupportedFormat)
	return cmp.Compare(e.Format, o.Format), ok
}

// UnsupportedStringEncoding reports a request for text output from a format
// whose encoder produces bytes, such as lz4.
type UnsupportedStringEncoding struct {
	Format string
}

func (e UnsupportedStringEncoding) Error() string {
	return formatf(e.Code(), "%s does not encode to a string", e.Format)
}

func (e UnsupportedStringEncoding) Kind() Kind { return KindUnsupportedStringEncoding }
func (e UnsupportedStringEncoding) Code() ErrorCode { return e.Kind().Code() }
func (e UnsupportedStringEncoding) Classification() ErrorClassification { return getDefaultClassification(e.Code()) }
func (e UnsupportedStringEncoding) Fields() map[string]any { return map[string]any{"format": e.Format} }
func (e UnsupportedStringEncoding) LogValue() slog.Value { return logValue(e) }
func (e UnsupportedStringEncoding) comparePayload(other Error) (int, bool) {
	o, ok := other.(UnsupportedStringEncoding)
	return cmp.Compare(e.Format, o.Format), ok
}

// UnsupportedBinaryEncoding reports a request for byte output from a format
// whose encoder produces text, such as base64.
type UnsupportedBinaryEncoding struct {
	Format string
}

func (e UnsupportedBinaryEncoding) Error() string {
	return formatf(e.Code(), "%s does not encode to bytes", e.Format)
}

func (e UnsupportedBinaryEncoding) Kind() Kind { return KindUnsupportedBinaryEncoding }
func (e UnsupportedBinaryEncoding) Code() ErrorCode { return e.Kind().Code() }
func (e UnsupportedBinaryEncoding) Classification() ErrorClassification { return getDefaultClassification(e.Code()) }
func (e UnsupportedBinaryEncoding) Fields() map[string]any { return map[string]any{"format": e.Format} }
func (e UnsupportedBinaryEncoding) LogValue() slog.Value { return logValue(e) }
func (e UnsupportedBinaryEncoding) comparePayload(other Error) (int, bool) {
	o, ok := other.(UnsupportedBinaryEncoding)
	return cmp.Compare(e.Format, o.Format), ok
}

// UnsupportedDecodeString reports a request for text output from a format
// whose decoder produces bytes.
type UnsupportedDecodeString struct {
	Format string
}

func (e UnsupportedDecodeString) Error() string {
	return formatf(e.Code(), "%s does not decode to a string", e.Format)
}

func (e UnsupportedDecodeString) Kind() Kind { return KindUnsupportedDecodeString }
func (e UnsupportedDecodeString) Code() ErrorCode { return e.Kind().Code() }
func (e UnsupportedDecodeString) Classification() ErrorClassification { return getDefaultClassification(e.Code()) }
func (e UnsupportedDecodeString) Fields() map[string]any { return map[string]any{"format": e.Format} }
func (e UnsupportedDecodeString) LogValue() slog.Value { return logValue(e) }
func (e UnsupportedDecodeString) comparePayload(other Error) (int, bool) {
	o, ok := other.(UnsupportedDecodeString)
	return cmp.Compare(e.Format, o.Format), ok
}

// UnsupportedDecodeBinary reports a request for byte output from a format
// whose decoder produces text.
type UnsupportedDecodeBinary struct {
	Format string
}

func (e UnsupportedDecodeBinary) Error() string {
	return formatf(e.Code(), "%s does not decode to bytes", e.Format)
}

func (e UnsupportedDecodeBinary) Kind() Kind { return KindUnsupportedDecodeBinary }
func (e UnsupportedDecodeBinary) Code() ErrorCode { return e.Kind().Code() }
func (e UnsupportedDecodeBinary) Classification() ErrorClassification { return getDefaultClassification(e.Code()) }
func (e UnsupportedDecodeBinary) Fields() map[string]any { return map[string]any{"format": e.Format} }
func (e UnsupportedDecodeBinary) LogValue() slog.Value { return logValue(e) }
func (e UnsupportedDecodeBinary) comparePayload(other Error) (int, bool) {
	o, ok := other.(UnsupportedDecodeBinary)
	return cmp.Compare(e.Format, o.Format), ok
}
