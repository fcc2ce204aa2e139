package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Hypermedia errors
const (
	// ErrCodeLinkNotFound indicates the requested relation is absent from a resource's links.
	ErrCodeLinkNotFound ErrorCode = "LINK_NOT_FOUND"
	// ErrCodeInvalidResource indicates a resource carries no link collection at all.
	ErrCodeInvalidResource ErrorCode = "INVALID_RESOURCE"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidConfig indicates the client configuration is invalid.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Decoding errors
const (
	// ErrCodeDecode indicates a response body could not be decoded.
	ErrCodeDecode ErrorCode = "DECODE_ERROR"
)
