//go:build !xorerrors_nohex

package xorerrors

import (
	"bytes"
	"cmp"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

const hexEnabled = true

// HexErrorKind is the variant tag of a HexError.
type HexErrorKind uint8

const (
	// HexInvalidCharacter reports a character outside 0-9, a-f and A-F.
	HexInvalidCharacter HexErrorKind = iota

	// HexOddLength reports input with an odd number of digits.
	HexOddLength

	// HexInvalidStringLength reports input whose decoded length does not
	// match a fixed-size destination.
	HexInvalidStringLength
)

var hexKindNames = [...]string{
	HexInvalidCharacter:    "invalid_character",
	HexOddLength:           "odd_length",
	HexInvalidStringLength: "invalid_string_length",
}

func (k HexErrorKind) String() string {
	if int(k) < len(hexKindNames) {
		return hexKindNames[k]
	}
	return fmt.Sprintf("hex kind(%d)", uint8(k))
}

// HexError mirrors the failure taxonomy of a hex decoder.
// Char and Index are only meaningful for HexInvalidCharacter.
type HexError struct {
	Kind  HexErrorKind
	Char  rune
	Index int
}

func (e HexError) Error() string {
	switch e.Kind {
	case HexInvalidCharacter:
		return fmt.Sprintf("hex: invalid character %q at position %d", e.Char, e.Index)
	case HexOddLength:
		return "hex: odd number of digits"
	case HexInvalidStringLength:
		return "hex: invalid string length"
	}
	return fmt.Sprintf("hex: %s", e.Kind)
}

// Compare orders by Kind, then Char, then Index.
func (e HexError) Compare(other HexError) int {
	return cmp.Or(
		cmp.Compare(e.Kind, other.Kind),
		cmp.Compare(e.Char, other.Char),
		cmp.Compare(e.Index, other.Index),
	)
}

// HexFailure carries a hex decoding failure.
type HexFailure struct {
	Err HexError
}

func (e HexFailure) Error() string { return format(e.Code(), e.Err.Error()) }
func (e HexFailure) Unwrap() error { return e.Err }
func (e HexFailure) Kind() Kind { return KindHex }
func (e HexFailure) Code() ErrorCode { return e.Kind().Code() }
func (e HexFailure) Classification() ErrorClassification { return getDefaultClassification(e.Code()) }
func (e HexFailure) LogValue() slog.Value { return logValue(e) }

func (e HexFailure) Fields() map[string]any {
	fields := map[string]any{"reason": e.Err.Kind.String()}
	if e.Err.Kind == HexInvalidCharacter {
		fields["char"] = string(e.Err.Char)
		fields["index"] = e.Err.Index
	}
	return fields
}

func (e HexFailure) comparePayload(other Error) (int, bool) {
	o, ok := other.(HexFailure)
	return e.Err.Compare(o.Err), ok
}

// NewHexInvalidCharacter creates a HexFailure for character c at index.
func NewHexInvalidCharacter(c rune, index int) HexFailure {
	return HexFailure{Err: HexError{Kind: HexInvalidCharacter, Char: c, Index: index}}
}

// NewHexOddLength creates a HexFailure for odd-length input.
func NewHexOddLength() HexFailure {
	return HexFailure{Err: HexError{Kind: HexOddLength}}
}

// NewHexStringLength creates a HexFailure for input that does not fit a
// fixed-size destination. encoding/hex has no such error; callers decoding
// into arrays construct it after checking hex.DecodedLen.
func NewHexStringLength() HexFailure {
	return HexFailure{Err: HexError{Kind: HexInvalidStringLength}}
}

// AsHex converts an error from hex.Decode or hex.DecodeString into a
// HexFailure. input must be the slice that was being decoded; the standard
// library reports only the offending byte, so its index is recovered from
// input. Char is that byte as a rune, never a decoded UTF-8 character, so a
// multibyte character reports its first byte. Index is -1 if the byte does
// not occur in input.
//
// Returns false if err is not a hex decoding error.
func AsHex(err error, input []byte) (HexFailure, bool) {
	var failure HexFailure
	if errors.As(err, &failure) {
		return failure, true
	}

	var invalid hex.InvalidByteError
	switch {
	case errors.As(err, &invalid):
		b := byte(invalid)
		return NewHexInvalidCharacter(rune(b), bytes.IndexByte(input, b)), true
	case errors.Is(err, hex.ErrLength):
		return NewHexOddLength(), true
	}
	return HexFailure{}, false
}

// AsHexStream is AsHex for errors from hex.NewDecoder, which reports odd
// length input as io.ErrUnexpectedEOF.
func AsHexStream(err error, input []byte) (HexFailure, bool) {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return NewHexOddLength(), true
	}
	return AsHex(err, input)
}

func matchHex(err error, input []byte) (Error, bool) {
	if failure, ok := AsHex(err, input); ok {
		return failure, true
	}
	return nil, false
}
