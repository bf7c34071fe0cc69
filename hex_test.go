//go:build !xorerrors_nohex

package xorerrors

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsHex_Decode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  HexFailure
	}{
		{
			name:  "invalid character",
			input: "0g",
			want:  NewHexInvalidCharacter('g', 1),
		},
		{
			name:  "invalid character later in input",
			input: "00ff0z",
			want:  NewHexInvalidCharacter('z', 5),
		},
		{
			name:  "leading multibyte character",
			input: "é0",
			want:  NewHexInvalidCharacter(rune(0xC3), 0),
		},
		{
			name:  "multibyte character after a digit",
			input: "0é",
			want:  NewHexInvalidCharacter('\u00c3', 1),
		},
		{
			name:  "odd length",
			input: "abc",
			want:  NewHexOddLength(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := hex.DecodeString(tt.input)
			require.Error(t, err)

			got, ok := AsHex(err, []byte(tt.input))
			require.True(t, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestAsHex_ByteNotInInput(t *testing.T) {
	got, ok := AsHex(hex.InvalidByteError('x'), nil)

	require.True(t, ok)
	assert.Equal(t, NewHexInvalidCharacter('x', -1), got)
}

func TestAsHexStream(t *testing.T) {
	input := "abc"

	_, err := io.ReadAll(hex.NewDecoder(strings.NewReader(input)))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	got, ok := AsHexStream(err, []byte(input))
	require.True(t, ok)
	assert.Equal(t, NewHexOddLength(), got)

	input = "0g"
	_, err = io.ReadAll(hex.NewDecoder(strings.NewReader(input)))
	require.Error(t, err)

	got, ok = AsHexStream(err, []byte(input))
	require.True(t, ok)
	assert.Equal(t, NewHexInvalidCharacter('g', 1), got)
}

func TestAsHex_Rejects(t *testing.T) {
	_, ok := AsHex(errors.New("not hex"), []byte("00"))
	assert.False(t, ok)

	_, ok = AsHex(io.ErrUnexpectedEOF, nil)
	assert.False(t, ok, "only the stream variant claims unexpected EOF")
}

func TestHexFailure(t *testing.T) {
	err := NewHexInvalidCharacter('g', 1)

	assert.Equal(t, KindHex, err.Kind())
	assert.Equal(t, CodeHexFailed, err.Code())
	assert.Equal(t, `[HEX_DECODE_FAILED] hex: invalid character 'g' at position 1`, err.Error())
	assert.Equal(t, map[string]any{"reason": "invalid_character", "char": "g", "index": 1}, err.Fields())
	assert.Equal(t, map[string]any{"reason": "invalid_string_length"}, NewHexStringLength().Fields())

	wrapped := fmt.Errorf("parse digest: %w", err)
	var nested HexError
	require.ErrorAs(t, wrapped, &nested)
	assert.Equal(t, 1, nested.Index)
}

func TestHexError_Compare(t *testing.T) {
	assert.Equal(t, 0, Compare(NewHexOddLength(), NewHexOddLength()))
	assert.Equal(t, -1, Compare(NewHexInvalidCharacter('g', 5), NewHexInvalidCharacter('h', 0)))
	assert.Equal(t, -1, Compare(NewHexInvalidCharacter('g', 1), NewHexInvalidCharacter('g', 2)))
	assert.Equal(t, 1, Compare(NewHexStringLength(), NewHexOddLength()))
}
