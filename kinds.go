package xorerrors

import "fmt"

// Kind is the variant tag of an [Error].
// Kinds are ordered by declaration; [Compare] orders errors of different
// variants by their Kind.
type Kind uint8

const (
	KindIO Kind = iota
	KindInvalidPath
	KindInvalidPathExtension
	KindUnsupportedImageFormat
	KindSizeLimitExceeded
	KindUnsupportedFormat
	KindUnsupportedStringEncoding
	KindUnsupportedBinaryEncoding
	KindUnsupportedDecodeString
	KindUnsupportedDecodeBinary

	// Codec kinds exist in every build so ordering does not depend on the
	// enabled features. The matching variant types are build-tag gated.

	KindBase64
	KindHex
	KindZ85
	KindLZ4
)

var kindInfo = [...]struct {
	name string
	code ErrorCode
}{
	KindIO:                        {"io", CodeIOFailure},
	KindInvalidPath:               {"invalid_path", CodeInvalidPath},
	KindInvalidPathExtension:      {"invalid_path_extension", CodeInvalidPathExtension},
	KindUnsupportedImageFormat:    {"unsupported_image_format", CodeUnsupportedImageFormat},
	KindSizeLimitExceeded:         {"size_limit_exceeded", CodeSizeLimitExceeded},
	KindUnsupportedFormat:         {"unsupported_format", CodeUnsupportedFormat},
	KindUnsupportedStringEncoding: {"unsupported_string_encoding", CodeUnsupportedStringEncoding},
	KindUnsupportedBinaryEncoding: {"unsupported_binary_encoding", CodeUnsupportedBinaryEncoding},
	KindUnsupportedDecodeString:   {"unsupported_decode_string", CodeUnsupportedDecodeString},
	KindUnsupportedDecodeBinary:   {"unsupported_decode_binary", CodeUnsupportedDecodeBinary},
	KindBase64:                    {"base64", CodeBase64Failed},
	KindHex:                       {"hex", CodeHexFailed},
	KindZ85:                       {"z85", CodeZ85Failed},
	KindLZ4:                       {"lz4", CodeLZ4Failed},
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindInfo) {
		return kindInfo[k].name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Code returns the ErrorCode for the kind.
// Returns CodeUnknown for values outside the declared set.
func (k Kind) Code() ErrorCode {
	if int(k) < len(kindInfo) {
		return kindInfo[k].code
	}
	return CodeUnknown
}
