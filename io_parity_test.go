//go:build !xorerrors_nobilly && !xorerrors_nominio

package xorerrors

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromIO_NotFoundParity(t *testing.T) {
	_, fsErr := memfs.New().Open("input.xor")
	require.Error(t, fsErr)

	s3Err := minio.ErrorResponse{Code: "NoSuchKey", Key: "input.xor"}

	local := FromIO(fsErr)
	remote := FromIO(s3Err)

	assert.Equal(t, local, remote)
	assert.Equal(t, 0, Compare(local, remote))
	assert.Equal(t, IONotFound, local.IOKind)
}
