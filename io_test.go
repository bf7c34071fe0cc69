package xorerrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromIO_Standard(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want IOKind
	}{
		{name: "nil", err: nil, want: IOOther},
		{name: "not exist", err: fs.ErrNotExist, want: IONotFound},
		{name: "permission", err: fs.ErrPermission, want: IOPermissionDenied},
		{name: "exist", err: fs.ErrExist, want: IOAlreadyExists},
		{name: "closed", err: fs.ErrClosed, want: IOClosed},
		{name: "invalid", err: fs.ErrInvalid, want: IOInvalidInput},
		{name: "unexpected eof", err: io.ErrUnexpectedEOF, want: IOUnexpectedEOF},
		{name: "short write", err: io.ErrShortWrite, want: IOWriteZero},
		{name: "closed pipe", err: io.ErrClosedPipe, want: IOBrokenPipe},
		{name: "deadline", err: os.ErrDeadlineExceeded, want: IOTimedOut},
		{name: "context deadline", err: context.DeadlineExceeded, want: IOTimedOut},
		{name: "context canceled", err: context.Canceled, want: IOInterrupted},
		{name: "unsupported", err: errors.ErrUnsupported, want: IOUnsupported},
		{name: "unknown", err: errors.New("boom"), want: IOOther},
		{
			name: "path error",
			err:  &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrNotExist},
			want: IONotFound,
		},
		{
			name: "wrapped",
			err:  fmt.Errorf("reading config: %w", fs.ErrPermission),
			want: IOPermissionDenied,
		},
		{
			name: "already converted",
			err:  fmt.Errorf("retry: %w", NewIO(IOTimedOut)),
			want: IOTimedOut,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, NewIO(tt.want), FromIO(tt.err))
		})
	}
}

func TestFromIO_OS(t *testing.T) {
	_, err := os.Open(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	assert.Equal(t, NewIO(IONotFound), FromIO(err))
}

func TestFromIO_DropsMessage(t *testing.T) {
	a := FromIO(&fs.PathError{Op: "open", Path: "/a", Err: fs.ErrNotExist})
	b := FromIO(&fs.PathError{Op: "stat", Path: "/b", Err: fs.ErrNotExist})

	assert.Equal(t, a, b)
}

func TestIOFailure_Is(t *testing.T) {
	tests := []struct {
		kind   IOKind
		target error
	}{
		{kind: IONotFound, target: fs.ErrNotExist},
		{kind: IOPermissionDenied, target: fs.ErrPermission},
		{kind: IOAlreadyExists, target: fs.ErrExist},
		{kind: IOClosed, target: fs.ErrClosed},
		{kind: IOInvalidInput, target: fs.ErrInvalid},
		{kind: IOUnexpectedEOF, target: io.ErrUnexpectedEOF},
		{kind: IOTimedOut, target: os.ErrDeadlineExceeded},
		{kind: IOUnsupported, target: errors.ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := fmt.Errorf("op: %w", NewIO(tt.kind))
			assert.ErrorIs(t, err, tt.target)
			assert.NotErrorIs(t, NewIO(IOOther), tt.target)
		})
	}
}

func TestIOKind_String(t *testing.T) {
	assert.Equal(t, "entity not found", IONotFound.String())
	assert.Equal(t, "read-only filesystem", IOReadOnlyFilesystem.String())
	assert.Equal(t, "other error", IOOther.String())
	assert.Equal(t, "io kind(99)", IOKind(99).String())
}
