package xorerrors

import (
	"log/slog"
	"maps"
	"slices"
)

// logValue renders an Error as a slog group: code and classification first,
// then the payload fields in key order so output is stable.
func logValue(e Error) slog.Value {
	fields := e.Fields()
	attrs := make([]slog.Attr, 0, len(fields)+2)
	attrs = append(attrs,
		slog.String("code", string(e.Code())),
		slog.String("classification", string(e.Classification())),
	)
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		attrs = append(attrs, slog.Any(key, fields[key]))
	}
	return slog.GroupValue(attrs...)
}

// LogAttr returns an "error" attribute for err.
//
// Errors carrying an Error are logged as a group of code, classification and
// payload fields. Other errors are logged by message.
//
// Example:
//
//	logger.Error("decode failed", xorerrors.LogAttr(err))
func LogAttr(err error) slog.Attr {
	if err == nil {
		return slog.Any("error", nil)
	}

	var unified Error
	if As(err, &unified) {
		return slog.Attr{Key: "error", Value: logValue(unified)}
	}
	return slog.String("error", err.Error())
}
