//go:build unix || windows

package xorerrors

import (
	"errors"
	"syscall"
)

// classifyErrno maps raw platform errno values that have no io/fs sentinel.
func classifyErrno(err error) (IOKind, bool) {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return 0, false
	}

	switch errno {
	case syscall.ECONNREFUSED:
		return IOConnectionRefused, true
	case syscall.ECONNRESET:
		return IOConnectionReset, true
	case syscall.ECONNABORTED:
		return IOConnectionAborted, true
	case syscall.ENOTCONN:
		return IONotConnected, true
	case syscall.EADDRINUSE:
		return IOAddrInUse, true
	case syscall.EADDRNOTAVAIL:
		return IOAddrNotAvailable, true
	case syscall.EPIPE:
		return IOBrokenPipe, true
	case syscall.EAGAIN:
		return IOWouldBlock, true
	case syscall.EINTR:
		return IOInterrupted, true
	case syscall.ETIMEDOUT:
		return IOTimedOut, true
	case syscall.ENOMEM:
		return IOOutOfMemory, true
	case syscall.EROFS:
		return IOReadOnlyFilesystem, true
	case syscall.EINVAL:
		return IOInvalidInput, true
	}
	return IOOther, true
}
