//go:build !unix && !windows

package xorerrors

func classifyErrno(error) (IOKind, bool) { return 0, false }
