//go:build !xorerrors_nominio

package xorerrors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromIO_Minio(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want IOKind
	}{
		{
			name: "no such key",
			err:  minio.ErrorResponse{Code: "NoSuchKey", StatusCode: http.StatusNotFound},
			want: IONotFound,
		},
		{
			name: "no such bucket",
			err:  minio.ErrorResponse{Code: "NoSuchBucket"},
			want: IONotFound,
		},
		{
			name: "access denied",
			err:  minio.ErrorResponse{Code: "AccessDenied", StatusCode: http.StatusForbidden},
			want: IOPermissionDenied,
		},
		{
			name: "bucket exists",
			err:  minio.ErrorResponse{Code: "BucketAlreadyOwnedByYou"},
			want: IOAlreadyExists,
		},
		{
			name: "request timeout",
			err:  minio.ErrorResponse{Code: "RequestTimeout"},
			want: IOTimedOut,
		},
		{
			name: "slow down",
			err:  minio.ErrorResponse{Code: "SlowDown", StatusCode: http.StatusServiceUnavailable},
			want: IOWouldBlock,
		},
		{
			name: "incomplete body",
			err:  minio.ErrorResponse{Code: "IncompleteBody"},
			want: IOUnexpectedEOF,
		},
		{
			name: "unknown code falls back to status",
			err:  minio.ErrorResponse{Code: "SomethingNew", StatusCode: http.StatusNotFound},
			want: IONotFound,
		},
		{
			name: "unknown code and status",
			err:  minio.ErrorResponse{Code: "SomethingNew", StatusCode: http.StatusTeapot},
			want: IOOther,
		},
		{
			name: "wrapped",
			err:  fmt.Errorf("get object: %w", minio.ErrorResponse{Code: "NoSuchKey"}),
			want: IONotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, NewIO(tt.want), FromIO(tt.err))
		})
	}
}

func TestFromIO_MinioRetryable(t *testing.T) {
	err := FromIO(minio.ErrorResponse{Code: "SlowDown"})
	assert.True(t, err.Classification().IsRetryable())
}
