//go:build xorerrors_nominio

package xorerrors

const minioEnabled = false

func classifyMinio(error) (IOKind, bool) { return 0, false }
