//go:build xorerrors_nohex

package xorerrors

const hexEnabled = false

func matchHex(error, []byte) (Error, bool) { return nil, false }
