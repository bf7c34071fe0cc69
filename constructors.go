package xorerrors

// NewIO creates an IOFailure of the given kind.
func NewIO(kind IOKind) IOFailure {
	return IOFailure{IOKind: kind}
}

// NewInvalidPath creates an InvalidPath error for path.
//
// Example:
//
//	if !filepath.IsAbs(path) {
//	    return xorerrors.NewInvalidPath(path)
//	}
func NewInvalidPath(path string) InvalidPath {
	return InvalidPath{Path: path}
}

// NewInvalidPathExtension creates an InvalidPathExtension error.
// cause is a human-readable description of the failed check.
//
// Example:
//
//	if filepath.Ext(path) != ".xor" {
//	    return xorerrors.NewInvalidPathExtension("expected .xor extension", path)
//	}
func NewInvalidPathExtension(cause, path string) InvalidPathExtension {
	return InvalidPathExtension{Cause: cause, Path: path}
}

// NewUnsupportedImageFormat creates an UnsupportedImageFormat error.
func NewUnsupportedImageFormat() UnsupportedImageFormat {
	return UnsupportedImageFormat{}
}

// NewSizeLimitExceeded creates a SizeLimitExceeded error.
func NewSizeLimitExceeded(allowed, encountered uint64) SizeLimitExceeded {
	return SizeLimitExceeded{Allowed: allowed, Encountered: encountered}
}

// CheckSize returns a SizeLimitExceeded error if encountered is larger than
// allowed, nil otherwise.
//
// Example:
//
//	info, _ := f.Stat()
//	if err := xorerrors.CheckSize(cfg.MaxFileSize, uint64(info.Size())); err != nil {
//	    return err
//	}
func CheckSize(allowed, encountered uint64) Error {
	if encountered > allowed {
		return NewSizeLimitExceeded(allowed, encountered)
	}
	return nil
}

// NewUnsupportedFormat creates an UnsupportedFormat error for the named format.
func NewUnsupportedFormat(format string) UnsupportedFormat {
	return UnsupportedFormat{Format: format}
}

// NewUnsupportedStringEncoding creates an UnsupportedStringEncoding error.
func NewUnsupportedStringEncoding(format string) UnsupportedStringEncoding {
	return UnsupportedStringEncoding{Format: format}
}

// NewUnsupportedBinaryEncoding creates an UnsupportedBinaryEncoding error.
func NewUnsupportedBinaryEncoding(format string) UnsupportedBinaryEncoding {
	return UnsupportedBinaryEncoding{Format: format}
}

// NewUnsupportedDecodeString creates an UnsupportedDecodeString error.
func NewUnsupportedDecodeString(format string) UnsupportedDecodeString {
	return UnsupportedDecodeString{Format: format}
}

// NewUnsupportedDecodeBinary creates an UnsupportedDecodeBinary error.
func NewUnsupportedDecodeBinary(format string) UnsupportedDecodeBinary {
	return UnsupportedDecodeBinary{Format: format}
}
