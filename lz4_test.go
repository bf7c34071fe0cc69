//go:build !xorerrors_nolz4

package xorerrors

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsLZ4(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want LZ4Failure
	}{
		{
			name: "short source buffer",
			err:  lz4.ErrInvalidSourceShortBuffer,
			want: NewLZ4OffsetOutOfBounds(),
		},
		{
			name: "invalid frame",
			err:  lz4.ErrInvalidFrame,
			want: NewLZ4Unsupported(),
		},
		{
			name: "block checksum",
			err:  lz4.ErrInvalidBlockChecksum,
			want: NewLZ4Unsupported(),
		},
		{
			name: "option error",
			err:  lz4.ErrOptionInvalidCompressionLevel,
			want: NewLZ4Unsupported(),
		},
		{
			name: "wrapped",
			err:  fmt.Errorf("reading frame: %w", lz4.ErrInvalidHeaderChecksum),
			want: NewLZ4Unsupported(),
		},
		{
			name: "existing failure",
			err:  fmt.Errorf("ctx: %w", NewLZ4OutputTooSmall(64, 32)),
			want: NewLZ4OutputTooSmall(64, 32),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsLZ4(tt.err)
			require.True(t, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestAsLZ4_CorruptBlock(t *testing.T) {
	// Truncated literal run. The block decoder reports this, like every
	// other corrupt block, as ErrInvalidSourceShortBuffer.
	src := []byte{0xF0}
	dst := make([]byte, 64)

	_, err := lz4.UncompressBlock(src, dst)
	require.Error(t, err)

	got, ok := AsLZ4(err)
	require.True(t, ok)
	assert.Equal(t, NewLZ4OffsetOutOfBounds(), got)
}

func TestAsLZ4_Rejects(t *testing.T) {
	_, ok := AsLZ4(errors.New("not lz4"))
	assert.False(t, ok)

	_, ok = AsLZ4(nil)
	assert.False(t, ok)

	_, ok = AsLZ4(io.ErrUnexpectedEOF)
	assert.False(t, ok, "only the stream variant claims unexpected EOF")
}

func TestAsLZ4Stream(t *testing.T) {
	got, ok := AsLZ4Stream(fmt.Errorf("read: %w", io.ErrUnexpectedEOF))
	require.True(t, ok)
	assert.Equal(t, NewLZ4ExpectedAnotherByte(), got)

	got, ok = AsLZ4Stream(lz4.ErrInvalidFrame)
	require.True(t, ok)
	assert.Equal(t, NewLZ4Unsupported(), got)
}

func TestLZ4Failure(t *testing.T) {
	err := NewLZ4SizeDiffers(100, 90)

	assert.Equal(t, KindLZ4, err.Kind())
	assert.Equal(t, CodeLZ4Failed, err.Code())
	assert.Equal(t, "[LZ4_FAILED] lz4: uncompressed size differs: expected 100 bytes, got 90", err.Error())
	assert.Equal(t, map[string]any{"reason": "uncompressed_size_differs", "expected": 100, "actual": 90}, err.Fields())
	assert.Equal(t, map[string]any{"reason": "literal_out_of_bounds"}, NewLZ4LiteralOutOfBounds().Fields())

	var nested LZ4Error
	require.ErrorAs(t, err, &nested)
	assert.Equal(t, LZ4UncompressedSizeDiffers, nested.Kind)
}

func TestLZ4Error_Compare(t *testing.T) {
	assert.Equal(t, 0, Compare(NewLZ4Unsupported(), NewLZ4Unsupported()))
	assert.Equal(t, -1, Compare(NewLZ4OutputTooSmall(10, 5), NewLZ4OutputTooSmall(10, 6)))
	assert.Equal(t, -1, Compare(NewLZ4OutputTooSmall(99, 99), NewLZ4SizeDiffers(1, 1)))
	assert.Equal(t, 1, Compare(NewLZ4Unsupported(), NewLZ4OffsetOutOfBounds()))
}
