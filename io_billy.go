//go:build !xorerrors_nobilly

package xorerrors

import (
	"errors"

	"github.com/go-git/go-billy/v5"
)

const billyEnabled = true

// classifyBilly maps the go-billy filesystem sentinels. Errors that billy
// passes through from the operating system fall back to classifyStd.
func classifyBilly(err error) (IOKind, bool) {
	switch {
	case errors.Is(err, billy.ErrReadOnly):
		return IOReadOnlyFilesystem, true
	case errors.Is(err, billy.ErrNotSupported):
		return IOUnsupported, true
	case errors.Is(err, billy.ErrCrossedBoundary):
		return IOPermissionDenied, true
	}
	return 0, false
}
