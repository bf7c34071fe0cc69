package xorerrors

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
)

// IOKind classifies an I/O failure independently of the facility that
// produced it. Kinds are ordered by declaration.
type IOKind uint8

const (
	IONotFound IOKind = iota
	IOPermissionDenied
	IOConnectionRefused
	IOConnectionReset
	IOConnectionAborted
	IONotConnected
	IOAddrInUse
	IOAddrNotAvailable
	IOBrokenPipe
	IOAlreadyExists
	IOWouldBlock
	IOInvalidInput
	IOInvalidData
	IOTimedOut
	IOWriteZero
	IOInterrupted
	IOUnsupported
	IOUnexpectedEOF
	IOOutOfMemory
	IOReadOnlyFilesystem
	IOClosed
	IOOther
)

var ioKindNames = [...]string{
	IONotFound:           "entity not found",
	IOPermissionDenied:   "permission denied",
	IOConnectionRefused:  "connection refused",
	IOConnectionReset:    "connection reset",
	IOConnectionAborted:  "connection aborted",
	IONotConnected:       "not connected",
	IOAddrInUse:          "address in use",
	IOAddrNotAvailable:   "address not available",
	IOBrokenPipe:         "broken pipe",
	IOAlreadyExists:      "entity already exists",
	IOWouldBlock:         "operation would block",
	IOInvalidInput:       "invalid input parameter",
	IOInvalidData:        "invalid data",
	IOTimedOut:           "timed out",
	IOWriteZero:          "write zero",
	IOInterrupted:        "operation interrupted",
	IOUnsupported:        "unsupported",
	IOUnexpectedEOF:      "unexpected end of file",
	IOOutOfMemory:        "out of memory",
	IOReadOnlyFilesystem: "read-only filesystem",
	IOClosed:             "file already closed",
	IOOther:              "other error",
}

func (k IOKind) String() string {
	if int(k) < len(ioKindNames) {
		return ioKindNames[k]
	}
	return fmt.Sprintf("io kind(%d)", uint8(k))
}

// IOFailure reports a failed I/O operation.
// Only the kind of the underlying error is kept; its message is discarded.
type IOFailure struct {
	IOKind IOKind
}

func (e IOFailure) Error() string {
	return formatf(e.Code(), "i/o failure: %s", e.IOKind)
}

func (e IOFailure) Kind() Kind { return KindIO }
func (e IOFailure) Code() ErrorCode { return e.Kind().Code() }
func (e IOFailure) Fields() map[string]any { return map[string]any{"io_kind": e.IOKind.String()} }
func (e IOFailure) LogValue() slog.Value { return logValue(e) }

// Classification returns ClassificationRetryable for transient kinds such as
// timeouts and connection resets, ClassificationPermanent otherwise.
func (e IOFailure) Classification() ErrorClassification {
	if retryableIOKinds[e.IOKind] {
		return ClassificationRetryable
	}
	return getDefaultClassification(e.Code())
}

func (e IOFailure) comparePayload(other Error) (int, bool) {
	o, ok := other.(IOFailure)
	return cmp.Compare(e.IOKind, o.IOKind), ok
}

// Is reports whether target is the io/fs (or io) sentinel matching the kind,
// so errors.Is(err, fs.ErrNotExist) keeps working after conversion.
func (e IOFailure) Is(target error) bool {
	switch target {
	case fs.ErrNotExist:
		return e.IOKind == IONotFound
	case fs.ErrPermission:
		return e.IOKind == IOPermissionDenied
	case fs.ErrExist:
		return e.IOKind == IOAlreadyExists
	case fs.ErrClosed:
		return e.IOKind == IOClosed
	case fs.ErrInvalid:
		return e.IOKind == IOInvalidInput
	case io.ErrUnexpectedEOF:
		return e.IOKind == IOUnexpectedEOF
	case os.ErrDeadlineExceeded:
		return e.IOKind == IOTimedOut
	case errors.ErrUnsupported:
		return e.IOKind == IOUnsupported
	}
	return false
}

// FromIO converts an error from any enabled I/O facility into an IOFailure.
//
// Facility-specific classifiers run first (MinIO object storage, then
// go-billy filesystems, each unless disabled by build tag), followed by the
// standard library sentinels and platform errno values. The conversion is
// total: errors no classifier recognizes, including nil, map to IOOther.
//
// Example:
//
//	f, err := fsys.Open(name)
//	if err != nil {
//	    return xorerrors.FromIO(err)
//	}
func FromIO(err error) IOFailure {
	var existing IOFailure
	if errors.As(err, &existing) {
		return existing
	}
	if kind, ok := classifyMinio(err); ok {
		return IOFailure{IOKind: kind}
	}
	if kind, ok := classifyBilly(err); ok {
		return IOFailure{IOKind: kind}
	}
	return IOFailure{IOKind: classifyStd(err)}
}

// classifyStd maps standard library sentinels and errno values to a kind.
func classifyStd(err error) IOKind {
	switch {
	case err == nil:
		return IOOther
	case errors.Is(err, fs.ErrNotExist):
		return IONotFound
	case errors.Is(err, fs.ErrPermission):
		return IOPermissionDenied
	case errors.Is(err, fs.ErrExist):
		return IOAlreadyExists
	case errors.Is(err, fs.ErrClosed):
		return IOClosed
	case errors.Is(err, fs.ErrInvalid):
		return IOInvalidInput
	case errors.Is(err, io.ErrUnexpectedEOF):
		return IOUnexpectedEOF
	case errors.Is(err, io.ErrShortWrite):
		return IOWriteZero
	case errors.Is(err, io.ErrClosedPipe):
		return IOBrokenPipe
	case errors.Is(err, os.ErrDeadlineExceeded), errors.Is(err, context.DeadlineExceeded):
		return IOTimedOut
	case errors.Is(err, context.Canceled):
		return IOInterrupted
	case errors.Is(err, errors.ErrUnsupported):
		return IOUnsupported
	}
	if kind, ok := classifyErrno(err); ok {
		return kind
	}
	return IOOther
}
