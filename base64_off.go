//go:build xorerrors_nobase64

package xorerrors

const base64Enabled = false

func matchBase64(error, []byte) (Error, bool) { return nil, false }
