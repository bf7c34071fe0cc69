package xorerrors

import (
	"encoding/json"
	"strings"
)

// ErrorResponse represents the JSON structure of an error.
// It provides a flat, serializable representation without exposing wrapped
// error chains.
type ErrorResponse struct {
	// Code is the error code identifying the variant.
	Code string `json:"code"`

	// Message is the human-readable error message without the code prefix.
	Message string `json:"message"`

	// Classification indicates whether the error is retryable or permanent.
	Classification string `json:"classification"`

	// Fields contains the variant payload.
	// Omitted from JSON if empty.
	Fields map[string]any `json:"fields,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// For errors carrying an Error, extracts code, message, classification and
// payload fields. For other errors, uses CodeUnknown, ClassificationPermanent
// and the error message.
//
// Example:
//
//	if resp := xorerrors.ToJSON(err); resp != nil {
//	    w.Header().Set("Content-Type", "application/json")
//	    json.NewEncoder(w).Encode(resp)
//	}
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	message := err.Error()
	var fields map[string]any
	if e, ok := unwrap(err); ok {
		message = strings.TrimPrefix(e.Error(), "["+string(e.Code())+"] ")
		fields = e.Fields()
	}

	return &ErrorResponse{
		Code:           string(GetCode(err)),
		Message:        message,
		Classification: string(GetClassification(err)),
		Fields:         fields,
	}
}

// MarshalJSON encodes err through ToJSON.
// Returns "null" if err is nil.
//
// Example:
//
//	data, _ := xorerrors.MarshalJSON(xorerrors.NewInvalidPath("/tmp/x"))
//	// {"code":"INVALID_PATH","message":"invalid path \"/tmp/x\"","classification":"PERMANENT","fields":{"path":"/tmp/x"}}
func MarshalJSON(err error) ([]byte, error) {
	return json.Marshal(ToJSON(err))
}
