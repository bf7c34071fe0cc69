//go:build xorerrors_nobase64

package xorerrors

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatures_WithoutBase64(t *testing.T) {
	assert.False(t, Enabled(FeatureBase64))
	assert.NotContains(t, Features(), FeatureBase64)

	_, err := LookupFormat("base64")
	require.Equal(t, NewUnsupportedFormat("base64"), err)

	require.Equal(t, NewUnsupportedFormat("base64"), CheckEncode("base64", ShapeText))
	require.Equal(t, NewUnsupportedFormat("base64"), CheckDecode("base64", ShapeBinary))
}

func TestFrom_WithoutBase64FallsBackToIO(t *testing.T) {
	err := From(base64.CorruptInputError(0), []byte("Q"))

	assert.Equal(t, NewIO(IOOther), err)
}
