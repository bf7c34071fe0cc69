//go:build !xorerrors_nobase64

package xorerrors

import (
	"bytes"
	"cmp"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

const base64Enabled = true

// Base64ErrorKind is the variant tag of a Base64Error.
type Base64ErrorKind uint8

const (
	// Base64InvalidByte reports a byte outside the alphabet at Offset.
	Base64InvalidByte Base64ErrorKind = iota

	// Base64InvalidLength reports input whose length cannot be decoded,
	// typically a lone trailing symbol.
	Base64InvalidLength

	// Base64InvalidLastSymbol reports an alphabet symbol at Offset whose
	// encoded bits cannot be part of a canonical encoding.
	Base64InvalidLastSymbol

	// Base64InvalidPadding reports missing, misplaced or excess padding.
	Base64InvalidPadding
)

var base64KindNames = [...]string{
	Base64InvalidByte:       "invalid_byte",
	Base64InvalidLength:     "invalid_length",
	Base64InvalidLastSymbol: "invalid_last_symbol",
	Base64InvalidPadding:    "invalid_padding",
}

func (k Base64ErrorKind) String() string {
	if int(k) < len(base64KindNames) {
		return base64KindNames[k]
	}
	return fmt.Sprintf("base64 kind(%d)", uint8(k))
}

// Base64Error mirrors the failure taxonomy of a base64 decoder.
// Offset and Byte are only meaningful for Base64InvalidByte and
// Base64InvalidLastSymbol and are zero otherwise.
type Base64Error struct {
	Kind   Base64ErrorKind
	Offset int
	Byte   byte
}

func (e Base64Error) Error() string {
	switch e.Kind {
	case Base64InvalidByte:
		return fmt.Sprintf("base64: invalid byte %#02x at offset %d", e.Byte, e.Offset)
	case Base64InvalidLength:
		return "base64: invalid input length"
	case Base64InvalidLastSymbol:
		return fmt.Sprintf("base64: invalid last symbol %#02x at offset %d", e.Byte, e.Offset)
	case Base64InvalidPadding:
		return "base64: invalid padding"
	}
	return fmt.Sprintf("base64: %s", e.Kind)
}

// Compare orders by Kind, then Offset, then Byte.
func (e Base64Error) Compare(other Base64Error) int {
	return cmp.Or(
		cmp.Compare(e.Kind, other.Kind),
		cmp.Compare(e.Offset, other.Offset),
		cmp.Compare(e.Byte, other.Byte),
	)
}

// Base64Failure carries a base64 decoding failure.
type Base64Failure struct {
	Err Base64Error
}

func (e Base64Failure) Error() string { return format(e.Code(), e.Err.Error()) }
func (e Base64Failure) Unwrap() error { return e.Err }
func (e Base64Failure) Kind() Kind { return KindBase64 }
func (e Base64Failure) Code() ErrorCode { return e.Kind().Code() }
func (e Base64Failure) Classification() ErrorClassification { return getDefaultClassification(e.Code()) }
func (e Base64Failure) LogValue() slog.Value { return logValue(e) }

func (e Base64Failure) Fields() map[string]any {
	fields := map[string]any{"reason": e.Err.Kind.String()}
	if e.Err.Kind == Base64InvalidByte || e.Err.Kind == Base64InvalidLastSymbol {
		fields["offset"] = e.Err.Offset
		fields["byte"] = e.Err.Byte
	}
	return fields
}

func (e Base64Failure) comparePayload(other Error) (int, bool) {
	o, ok := other.(Base64Failure)
	return e.Err.Compare(o.Err), ok
}

// NewBase64InvalidByte creates a Base64Failure for byte b at offset.
func NewBase64InvalidByte(offset int, b byte) Base64Failure {
	return Base64Failure{Err: Base64Error{Kind: Base64InvalidByte, Offset: offset, Byte: b}}
}

// NewBase64InvalidLength creates a Base64Failure for an undecodable length.
func NewBase64InvalidLength() Base64Failure {
	return Base64Failure{Err: Base64Error{Kind: Base64InvalidLength}}
}

// NewBase64InvalidLastSymbol creates a Base64Failure for a non-canonical
// trailing symbol b at offset.
func NewBase64InvalidLastSymbol(offset int, b byte) Base64Failure {
	return Base64Failure{Err: Base64Error{Kind: Base64InvalidLastSymbol, Offset: offset, Byte: b}}
}

// NewBase64InvalidPadding creates a Base64Failure for bad padding.
func NewBase64InvalidPadding() Base64Failure {
	return Base64Failure{Err: Base64Error{Kind: Base64InvalidPadding}}
}

// AsBase64 converts a decoding error from base64.StdEncoding into a
// Base64Failure. It is AsBase64With for the standard encoding.
func AsBase64(err error, input []byte) (Base64Failure, bool) {
	return AsBase64With(base64.StdEncoding, err, input)
}

// AsBase64With converts a decoding error from enc into a Base64Failure.
// input must be the slice that was being decoded; the standard library only
// reports an offset, so the offending byte and the failure shape are
// recovered from input using enc's alphabet and padding:
//
//   - input that is well formed for enc but still failed to decode:
//     Base64InvalidLastSymbol at the last symbol, whose trailing bits a
//     strict encoding rejected
//   - a byte outside enc's alphabet, or any symbol after padding:
//     Base64InvalidByte
//   - padding at the offset, or padding that is missing or short:
//     Base64InvalidPadding
//   - a single symbol in the final quantum: Base64InvalidLength
//
// Returns false if err carries neither a base64.CorruptInputError nor a
// Base64Failure.
func AsBase64With(enc *base64.Encoding, err error, input []byte) (Base64Failure, bool) {
	var failure Base64Failure
	if errors.As(err, &failure) {
		return failure, true
	}

	var corrupt base64.CorruptInputError
	if !errors.As(err, &corrupt) {
		return Base64Failure{}, false
	}
	return Base64Failure{Err: classifyBase64(newBase64Layout(enc), int(corrupt), input)}, true
}

// base64Layout holds the properties of an encoding that shape its errors.
type base64Layout struct {
	alphabet string
	pad      byte
	padded   bool
}

// newBase64Layout recovers the alphabet and padding of enc by encoding
// known input; base64.Encoding does not export them.
func newBase64Layout(enc *base64.Encoding) base64Layout {
	// 48 bytes whose 6-bit groups are 0, 1, ..., 63.
	var indices [48]byte
	for q := 0; q < 16; q++ {
		v := uint32(4*q)<<18 | uint32(4*q+1)<<12 | uint32(4*q+2)<<6 | uint32(4*q+3)
		indices[3*q], indices[3*q+1], indices[3*q+2] = byte(v>>16), byte(v>>8), byte(v)
	}

	layout := base64Layout{alphabet: enc.EncodeToString(indices[:])}
	if tail := enc.EncodeToString([]byte{0}); len(tail) == 4 {
		layout.pad, layout.padded = tail[3], true
	}
	return layout
}

func (l base64Layout) isSymbol(b byte) bool {
	return strings.IndexByte(l.alphabet, b) >= 0
}

func (l base64Layout) isPad(b byte) bool {
	return l.padded && b == l.pad
}

// lastSymbol returns the index of the last alphabet symbol in input if input
// is well formed for the layout, or -1.
func (l base64Layout) lastSymbol(input []byte) int {
	last, symbols, pads := -1, 0, 0
	for i, b := range input {
		switch {
		case b == '\r', b == '\n':
		case l.isPad(b):
			pads++
		case l.isSymbol(b) && pads == 0:
			last = i
			symbols++
		default:
			return -1
		}
	}

	switch symbols % 4 {
	case 0:
		if pads != 0 {
			return -1
		}
	case 1:
		return -1
	case 2, 3:
		if l.padded && pads != 4-symbols%4 {
			return -1
		}
	}
	return last
}

func classifyBase64(l base64Layout, offset int, input []byte) Base64Error {
	if last := l.lastSymbol(input); last >= 0 {
		return Base64Error{Kind: Base64InvalidLastSymbol, Offset: last, Byte: input[last]}
	}

	if offset < 0 || offset >= len(input) {
		if l.padded && l.followsPadding(input) {
			return Base64Error{Kind: Base64InvalidPadding}
		}
		return Base64Error{Kind: Base64InvalidLength}
	}

	b := input[offset]
	switch {
	case l.isPad(b), b == '\r', b == '\n':
		return Base64Error{Kind: Base64InvalidPadding}
	case !l.isSymbol(b), l.followsPadding(input[:offset]):
		return Base64Error{Kind: Base64InvalidByte, Offset: offset, Byte: b}
	}

	if symbols := significantLen(input[offset:]); symbols == 1 || !l.padded {
		return Base64Error{Kind: Base64InvalidLength}
	}
	return Base64Error{Kind: Base64InvalidPadding}
}

// followsPadding reports whether the last significant byte of p is padding,
// meaning a symbol after it is trailing data.
func (l base64Layout) followsPadding(p []byte) bool {
	p = bytes.TrimRight(p, "\r\n")
	return len(p) > 0 && l.isPad(p[len(p)-1])
}

// significantLen counts the bytes of p that are not line breaks, which the
// decoder skips.
func significantLen(p []byte) int {
	n := 0
	for _, b := range p {
		if b != '\r' && b != '\n' {
			n++
		}
	}
	return n
}

func matchBase64(err error, input []byte) (Error, bool) {
	if failure, ok := AsBase64(err, input); ok {
		return failure, true
	}
	return nil, false
}
