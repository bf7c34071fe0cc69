//go:build xorerrors_noz85

package xorerrors

const z85Enabled = false

func matchZ85(error, []byte) (Error, bool) { return nil, false }
