package xorerrors

import "errors"

// From converts any error into the unified Error.
//
// Errors that already carry an Error are returned unchanged. Otherwise the
// enabled codec facilities are tried in order (base64, hex, z85, lz4) and
// everything else is treated as an I/O failure via FromIO. input is the data
// that was being decoded when err occurred; it is only consulted by the codec
// conversions and may be nil for I/O errors.
//
// Returns nil if err is nil.
//
// Example:
//
//	if _, err := hex.Decode(dst, src); err != nil {
//	    return xorerrors.From(err, src)
//	}
func From(err error, input []byte) Error {
	if err == nil {
		return nil
	}

	var unified Error
	if errors.As(err, &unified) {
		return unified
	}
	if e, ok := matchBase64(err, input); ok {
		return e
	}
	if e, ok := matchHex(err, input); ok {
		return e
	}
	if e, ok := matchZ85(err, input); ok {
		return e
	}
	if e, ok := matchLZ4(err); ok {
		return e
	}
	return FromIO(err)
}
