//go:build xorerrors_nobilly

package xorerrors

const billyEnabled = false

func classifyBilly(error) (IOKind, bool) { return 0, false }
