//go:build !xorerrors_nolz4

package xorerrors

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"

	"github.com/pierrec/lz4/v4"
)

const lz4Enabled = true

// LZ4ErrorKind is the variant tag of an LZ4Error.
type LZ4ErrorKind uint8

const (
	// LZ4OutputTooSmall reports a destination buffer of Actual bytes where
	// Expected bytes were needed.
	LZ4OutputTooSmall LZ4ErrorKind = iota

	// LZ4UncompressedSizeDiffers reports a block that decompressed to Actual
	// bytes where the header announced Expected.
	LZ4UncompressedSizeDiffers

	// LZ4LiteralOutOfBounds reports a literal run reaching past the input.
	LZ4LiteralOutOfBounds

	// LZ4ExpectedAnotherByte reports input that ended mid-sequence.
	LZ4ExpectedAnotherByte

	// LZ4OffsetOutOfBounds reports a block that references data outside the
	// valid window.
	LZ4OffsetOutOfBounds

	// LZ4Unsupported is the catch-all for lz4 errors outside the known
	// shapes. The lz4 error set is open; new failure modes land here instead
	// of breaking the conversion.
	LZ4Unsupported
)

var lz4KindNames = [...]string{
	LZ4OutputTooSmall:          "output_too_small",
	LZ4UncompressedSizeDiffers: "uncompressed_size_differs",
	LZ4LiteralOutOfBounds:      "literal_out_of_bounds",
	LZ4ExpectedAnotherByte:     "expected_another_byte",
	LZ4OffsetOutOfBounds:       "offset_out_of_bounds",
	LZ4Unsupported:             "unsupported",
}

func (k LZ4ErrorKind) String() string {
	if int(k) < len(lz4KindNames) {
		return lz4KindNames[k]
	}
	return fmt.Sprintf("lz4 kind(%d)", uint8(k))
}

// LZ4Error mirrors the failure taxonomy of an LZ4 block codec.
// Expected and Actual are only meaningful for LZ4OutputTooSmall and
// LZ4UncompressedSizeDiffers.
type LZ4Error struct {
	Kind     LZ4ErrorKind
	Expected int
	Actual   int
}

func (e LZ4Error) Error() string {
	switch e.Kind {
	case LZ4OutputTooSmall:
		return fmt.Sprintf("lz4: output buffer too small: need %d bytes, have %d", e.Expected, e.Actual)
	case LZ4UncompressedSizeDiffers:
		return fmt.Sprintf("lz4: uncompressed size differs: expected %d bytes, got %d", e.Expected, e.Actual)
	case LZ4LiteralOutOfBounds:
		return "lz4: literal out of bounds"
	case LZ4ExpectedAnotherByte:
		return "lz4: expected another byte, found end of input"
	case LZ4OffsetOutOfBounds:
		return "lz4: offset out of bounds"
	case LZ4Unsupported:
		return "lz4: unsupported error"
	}
	return fmt.Sprintf("lz4: %s", e.Kind)
}

// Compare orders by Kind, then Expected, then Actual.
func (e LZ4Error) Compare(other LZ4Error) int {
	return cmp.Or(
		cmp.Compare(e.Kind, other.Kind),
		cmp.Compare(e.Expected, other.Expected),
		cmp.Compare(e.Actual, other.Actual),
	)
}

// LZ4Failure carries an LZ4 compression or decompression failure.
type LZ4Failure struct {
	Err LZ4Error
}

func (e LZ4Failure) Error() string { return format(e.Code(), e.Err.Error()) }
func (e LZ4Failure) Unwrap() error { return e.Err }
func (e LZ4Failure) Kind() Kind { return KindLZ4 }
func (e LZ4Failure) Code() ErrorCode { return e.Kind().Code() }
func (e LZ4Failure) Classification() ErrorClassification { return getDefaultClassification(e.Code()) }
func (e LZ4Failure) LogValue() slog.Value { return logValue(e) }

func (e LZ4Failure) Fields() map[string]any {
	fields := map[string]any{"reason": e.Err.Kind.String()}
	if e.Err.Kind == LZ4OutputTooSmall || e.Err.Kind == LZ4UncompressedSizeDiffers {
		fields["expected"] = e.Err.Expected
		fields["actual"] = e.Err.Actual
	}
	return fields
}

func (e LZ4Failure) comparePayload(other Error) (int, bool) {
	o, ok := other.(LZ4Failure)
	return e.Err.Compare(o.Err), ok
}

// NewLZ4OutputTooSmall creates an LZ4Failure for a destination of actual
// bytes where expected were needed.
func NewLZ4OutputTooSmall(expected, actual int) LZ4Failure {
	return LZ4Failure{Err: LZ4Error{Kind: LZ4OutputTooSmall, Expected: expected, Actual: actual}}
}

// NewLZ4SizeDiffers creates an LZ4Failure for a block that decompressed to
// actual bytes where expected were announced.
func NewLZ4SizeDiffers(expected, actual int) LZ4Failure {
	return LZ4Failure{Err: LZ4Error{Kind: LZ4UncompressedSizeDiffers, Expected: expected, Actual: actual}}
}

// NewLZ4LiteralOutOfBounds creates an LZ4Failure for a literal run past the input.
func NewLZ4LiteralOutOfBounds() LZ4Failure {
	return LZ4Failure{Err: LZ4Error{Kind: LZ4LiteralOutOfBounds}}
}

// NewLZ4ExpectedAnotherByte creates an LZ4Failure for truncated input.
func NewLZ4ExpectedAnotherByte() LZ4Failure {
	return LZ4Failure{Err: LZ4Error{Kind: LZ4ExpectedAnotherByte}}
}

// NewLZ4OffsetOutOfBounds creates an LZ4Failure for an out-of-window reference.
func NewLZ4OffsetOutOfBounds() LZ4Failure {
	return LZ4Failure{Err: LZ4Error{Kind: LZ4OffsetOutOfBounds}}
}

// NewLZ4Unsupported creates the catch-all LZ4Failure.
func NewLZ4Unsupported() LZ4Failure {
	return LZ4Failure{Err: LZ4Error{Kind: LZ4Unsupported}}
}

// lz4ErrorType is the concrete type of every error value the lz4 package
// defines, including sentinels added after this package was written.
var lz4ErrorType = reflect.TypeOf(lz4.ErrInvalidFrame)

// AsLZ4 converts an error from github.com/pierrec/lz4/v4 into an LZ4Failure.
//
// lz4.ErrInvalidSourceShortBuffer, which the block decoder returns for every
// corrupt block whatever the cause, becomes LZ4OffsetOutOfBounds. Every other
// lz4 error becomes LZ4Unsupported.
// Sizes are not part of lz4's errors; callers that check buffer sizes
// themselves construct LZ4OutputTooSmall and LZ4UncompressedSizeDiffers
// directly.
//
// Returns false if err does not come from the lz4 package.
func AsLZ4(err error) (LZ4Failure, bool) {
	var failure LZ4Failure
	if errors.As(err, &failure) {
		return failure, true
	}

	switch {
	case errors.Is(err, lz4.ErrInvalidSourceShortBuffer):
		return NewLZ4OffsetOutOfBounds(), true
	case isLZ4Error(err):
		return NewLZ4Unsupported(), true
	}
	return LZ4Failure{}, false
}

// AsLZ4Stream is AsLZ4 for errors from lz4.Reader, which reports a
// truncated frame as io.ErrUnexpectedEOF.
func AsLZ4Stream(err error) (LZ4Failure, bool) {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return NewLZ4ExpectedAnotherByte(), true
	}
	return AsLZ4(err)
}

// isLZ4Error reports whether any error in err's tree has the lz4 error type.
func isLZ4Error(err error) bool {
	if err == nil {
		return false
	}
	target := reflect.New(lz4ErrorType).Interface()
	return errors.As(err, target)
}

func matchLZ4(err error) (Error, bool) {
	if failure, ok := AsLZ4(err); ok {
		return failure, true
	}
	return nil, false
}
