package xorerrors

import (
	"slices"
	"strings"
)

// Feature names an optional facility integration selected at build time.
type Feature string

const (
	FeatureBase64 Feature = "base64"
	FeatureHex    Feature = "hex"
	FeatureZ85    Feature = "z85"
	FeatureLZ4    Feature = "lz4"
	FeatureBilly  Feature = "billy"
	FeatureMinio  Feature = "minio"
)

// features lists every feature in reporting order with its build state.
// The enabled flags are constants from the build-tag gated files.
var features = []struct {
	feature Feature
	enabled bool
}{
	{FeatureBase64, base64Enabled},
	{FeatureHex, hexEnabled},
	{FeatureZ85, z85Enabled},
	{FeatureLZ4, lz4Enabled},
	{FeatureBilly, billyEnabled},
	{FeatureMinio, minioEnabled},
}

// Features returns the features compiled into this build.
func Features() []Feature {
	enabled := make([]Feature, 0, len(features))
	for _, f := range features {
		if f.enabled {
			enabled = append(enabled, f.feature)
		}
	}
	return enabled
}

// Enabled reports whether feature f is compiled into this build.
func Enabled(f Feature) bool {
	return slices.Contains(Features(), f)
}

// Shape is the kind of output a codec direction produces.
type Shape uint8

const (
	// ShapeText is string output.
	ShapeText Shape = iota

	// ShapeBinary is byte slice output.
	ShapeBinary
)

func (s Shape) String() string {
	if s == ShapeText {
		return "text"
	}
	return "binary"
}

// Format describes a codec facility and the output shape of each direction.
type Format struct {
	Name   string
	Encode Shape
	Decode Shape
}

// formats is the codec catalog; entries are filtered by their feature.
var formats = []struct {
	format  Format
	feature Feature
}{
	{Format{Name: "base64", Encode: ShapeText, Decode: ShapeBinary}, FeatureBase64},
	{Format{Name: "hex", Encode: ShapeText, Decode: ShapeBinary}, FeatureHex},
	{Format{Name: "z85", Encode: ShapeText, Decode: ShapeBinary}, FeatureZ85},
	{Format{Name: "lz4", Encode: ShapeBinary, Decode: ShapeBinary}, FeatureLZ4},
}

// Formats returns the codec formats compiled into this build.
func Formats() []Format {
	var out []Format
	for _, f := range formats {
		if Enabled(f.feature) {
			out = append(out, f.format)
		}
	}
	return out
}

// LookupFormat finds a compiled-in format by case-insensitive name.
// Returns an UnsupportedFormat error carrying name as given if the format is
// unknown or its feature was disabled at build time.
func LookupFormat(name string) (Format, error) {
	for _, f := range Formats() {
		if strings.EqualFold(f.Name, name) {
			return f, nil
		}
	}
	return Format{}, NewUnsupportedFormat(name)
}

// CheckEncode verifies that format name can encode to the wanted shape.
//
// Returns UnsupportedFormat for unknown formats, UnsupportedStringEncoding
// when text was wanted from a binary encoder, and UnsupportedBinaryEncoding
// when bytes were wanted from a text encoder.
func CheckEncode(name string, want Shape) error {
	f, err := LookupFormat(name)
	if err != nil {
		return err
	}
	switch {
	case f.Encode == want:
		return nil
	case want == ShapeText:
		return NewUnsupportedStringEncoding(f.Name)
	default:
		return NewUnsupportedBinaryEncoding(f.Name)
	}
}

// CheckDecode verifies that format name can decode to the wanted shape.
//
// Returns UnsupportedFormat for unknown formats, UnsupportedDecodeString
// when text was wanted from a binary decoder, and UnsupportedDecodeBinary
// when bytes were wanted from a text decoder.
func CheckDecode(name string, want Shape) error {
	f, err := LookupFormat(name)
	if err != nil {
		return err
	}
	switch {
	case f.Decode == want:
		return nil
	case want == ShapeText:
		return NewUnsupportedDecodeString(f.Name)
	default:
		return NewUnsupportedDecodeBinary(f.Name)
	}
}
