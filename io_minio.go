//go:build !xorerrors_nominio

package xorerrors

import (
	"errors"
	"net/http"

	"github.com/minio/minio-go/v7"
)

const minioEnabled = true

// minioCodeKinds maps S3 error response codes to kinds.
var minioCodeKinds = map[string]IOKind{
	"NoSuchKey":                     IONotFound,
	"NoSuchBucket":                  IONotFound,
	"NoSuchUpload":                  IONotFound,
	"NoSuchVersion":                 IONotFound,
	"NoSuchObjectLockConfiguration": IONotFound,
	"AccessDenied":                  IOPermissionDenied,
	"AllAccessDisabled":             IOPermissionDenied,
	"InvalidAccessKeyId":            IOPermissionDenied,
	"SignatureDoesNotMatch":         IOPermissionDenied,
	"BucketAlreadyExists":           IOAlreadyExists,
	"BucketAlreadyOwnedByYou":       IOAlreadyExists,
	"InvalidArgument":               IOInvalidInput,
	"InvalidBucketName":             IOInvalidInput,
	"InvalidObjectName":             IOInvalidInput,
	"KeyTooLongError":               IOInvalidInput,
	"InvalidRange":                  IOInvalidInput,
	"BadDigest":                     IOInvalidData,
	"InvalidDigest":                 IOInvalidData,
	"XAmzContentSHA256Mismatch":     IOInvalidData,
	"IncompleteBody":                IOUnexpectedEOF,
	"RequestTimeout":                IOTimedOut,
	"SlowDown":                      IOWouldBlock,
	"SlowDownRead":                  IOWouldBlock,
	"SlowDownWrite":                 IOWouldBlock,
	"ServiceUnavailable":            IOWouldBlock,
	"NotImplemented":                IOUnsupported,
}

// minioStatusKinds is consulted when the response code is not recognized.
var minioStatusKinds = map[int]IOKind{
	http.StatusNotFound:           IONotFound,
	http.StatusForbidden:          IOPermissionDenied,
	http.StatusConflict:           IOAlreadyExists,
	http.StatusBadRequest:         IOInvalidInput,
	http.StatusRequestTimeout:     IOTimedOut,
	http.StatusTooManyRequests:    IOWouldBlock,
	http.StatusServiceUnavailable: IOWouldBlock,
	http.StatusNotImplemented:     IOUnsupported,
}

// classifyMinio maps MinIO error responses. Any ErrorResponse in the chain is
// claimed by this facility, falling back to IOOther.
func classifyMinio(err error) (IOKind, bool) {
	var resp minio.ErrorResponse
	if !errors.As(err, &resp) {
		return 0, false
	}
	if kind, ok := minioCodeKinds[resp.Code]; ok {
		return kind, true
	}
	if kind, ok := minioStatusKinds[resp.StatusCode]; ok {
		return kind, true
	}
	return IOOther, true
}
