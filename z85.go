//go:build !xorerrors_noz85

package xorerrors

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/tilinna/z85"
)

const z85Enabled = true

// z85Alphabet is the ZeroMQ Base-85 alphabet (RFC 32/Z85), in digit order.
const z85Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ.-:+=^!/*?&<>()[]{}@%$#"

// Z85ErrorKind is the variant tag of a Z85Error.
type Z85ErrorKind uint8

const (
	// Z85InvalidByte reports a byte outside the Z85 alphabet at Offset.
	Z85InvalidByte Z85ErrorKind = iota

	// Z85InvalidChunk reports a 5-symbol chunk, at index Chunk, whose value
	// does not fit in 32 bits.
	Z85InvalidChunk

	// Z85InvalidLength reports input of Length bytes that is not a whole
	// number of chunks.
	Z85InvalidLength

	// Z85InvalidTail reports a trailing partial chunk of a single symbol,
	// which cannot encode any byte.
	Z85InvalidTail
)

var z85KindNames = [...]string{
	Z85InvalidByte:   "invalid_byte",
	Z85InvalidChunk:  "invalid_chunk",
	Z85InvalidLength: "invalid_length",
	Z85InvalidTail:   "invalid_tail",
}

func (k Z85ErrorKind) String() string {
	if int(k) < len(z85KindNames) {
		return z85KindNames[k]
	}
	return fmt.Sprintf("z85 kind(%d)", uint8(k))
}

// Z85Error mirrors the failure taxonomy of a Z85 decoder.
type Z85Error struct {
	Kind   Z85ErrorKind
	Offset int
	Byte   byte
	Chunk  int
	Length int
}

func (e Z85Error) Error() string {
	switch e.Kind {
	case Z85InvalidByte:
		return fmt.Sprintf("z85: invalid byte %#02x at offset %d", e.Byte, e.Offset)
	case Z85InvalidChunk:
		return fmt.Sprintf("z85: chunk %d overflows 32 bits", e.Chunk)
	case Z85InvalidLength:
		return fmt.Sprintf("z85: invalid input length %d", e.Length)
	case Z85InvalidTail:
		return "z85: invalid tail"
	}
	return fmt.Sprintf("z85: %s", e.Kind)
}

// Compare orders by Kind, then by the payload fields in declaration order.
func (e Z85Error) Compare(other Z85Error) int {
	return cmp.Or(
		cmp.Compare(e.Kind, other.Kind),
		cmp.Compare(e.Offset, other.Offset),
		cmp.Compare(e.Byte, other.Byte),
		cmp.Compare(e.Chunk, other.Chunk),
		cmp.Compare(e.Length, other.Length),
	)
}

// Z85Failure carries a Z85 decoding failure.
type Z85Failure struct {
	Err Z85Error
}

func (e Z85Failure) Error() string { return format(e.Code(), e.Err.Error()) }
func (e Z85Failure) Unwrap() error { return e.Err }
func (e Z85Failure) Kind() Kind { return KindZ85 }
func (e Z85Failure) Code() ErrorCode { return e.Kind().Code() }
func (e Z85Failure) Classification() ErrorClassification { return getDefaultClassification(e.Code()) }
func (e Z85Failure) LogValue() slog.Value { return logValue(e) }

func (e Z85Failure) Fields() map[string]any {
	fields := map[string]any{"reason": e.Err.Kind.String()}
	switch e.Err.Kind {
	case Z85InvalidByte:
		fields["offset"] = e.Err.Offset
		fields["byte"] = e.Err.Byte
	case Z85InvalidChunk:
		fields["chunk"] = e.Err.Chunk
	case Z85InvalidLength:
		fields["length"] = e.Err.Length
	}
	return fields
}

func (e Z85Failure) comparePayload(other Error) (int, bool) {
	o, ok := other.(Z85Failure)
	return e.Err.Compare(o.Err), ok
}

// NewZ85InvalidByte creates a Z85Failure for byte b at offset.
func NewZ85InvalidByte(offset int, b byte) Z85Failure {
	return Z85Failure{Err: Z85Error{Kind: Z85InvalidByte, Offset: offset, Byte: b}}
}

// NewZ85InvalidChunk creates a Z85Failure for the overflowing chunk at index.
func NewZ85InvalidChunk(chunk int) Z85Failure {
	return Z85Failure{Err: Z85Error{Kind: Z85InvalidChunk, Chunk: chunk}}
}

// NewZ85InvalidLength creates a Z85Failure for input of length n.
func NewZ85InvalidLength(n int) Z85Failure {
	return Z85Failure{Err: Z85Error{Kind: Z85InvalidLength, Length: n}}
}

// NewZ85InvalidTail creates a Z85Failure for a single-symbol tail.
func NewZ85InvalidTail() Z85Failure {
	return Z85Failure{Err: Z85Error{Kind: Z85InvalidTail}}
}

// AsZ85 converts an error from z85.Decode into a Z85Failure.
// input must be the slice that was being decoded.
//
// z85.InvalidByteError becomes Z85InvalidByte at the first occurrence of the
// byte in input (-1 if absent). z85.ErrLength becomes Z85InvalidTail for a
// single-symbol tail and Z85InvalidLength otherwise.
//
// The decoder never reports an overflowing chunk; use [CheckZ85Chunks] for
// Z85InvalidChunk.
//
// Returns false if err is not a Z85 decoding error.
func AsZ85(err error, input []byte) (Z85Failure, bool) {
	var failure Z85Failure
	if errors.As(err, &failure) {
		return failure, true
	}

	var invalid z85.InvalidByteError
	switch {
	case errors.As(err, &invalid):
		b := byte(invalid)
		return NewZ85InvalidByte(bytes.IndexByte(input, b), b), true
	case errors.Is(err, z85.ErrLength):
		if len(input)%5 == 1 {
			return NewZ85InvalidTail(), true
		}
		return NewZ85InvalidLength(len(input)), true
	}
	return Z85Failure{}, false
}

// CheckZ85Chunks returns a Z85InvalidChunk failure for the first whole chunk
// of input whose value exceeds 32 bits, or nil.
//
// z85.Decode wraps such a chunk modulo 2^32 without an error, so run this on
// untrusted input before decoding. Chunks holding bytes outside the alphabet
// are skipped; z85.Decode reports those itself.
func CheckZ85Chunks(input []byte) Error {
	if chunk := overflowingChunk(input); chunk >= 0 {
		return NewZ85InvalidChunk(chunk)
	}
	return nil
}

// overflowingChunk returns the index of the first whole chunk whose value
// exceeds 32 bits, or -1.
func overflowingChunk(input []byte) int {
	for chunk := 0; (chunk+1)*5 <= len(input); chunk++ {
		if value, ok := z85ChunkValue(input[chunk*5 : chunk*5+5]); ok && value > math.MaxUint32 {
			return chunk
		}
	}
	return -1
}

func z85ChunkValue(chunk []byte) (uint64, bool) {
	var value uint64
	for _, b := range chunk {
		digit := strings.IndexByte(z85Alphabet, b)
		if digit < 0 {
			return 0, false
		}
		value = value*85 + uint64(digit)
	}
	return value, true
}

func matchZ85(err error, input []byte) (Error, bool) {
	if failure, ok := AsZ85(err, input); ok {
		return failure, true
	}
	return nil, false
}
