//go:build xorerrors_nolz4

package xorerrors

const lz4Enabled = false

func matchLZ4(error) (Error, bool) { return nil, false }
