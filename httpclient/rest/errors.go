package rest

import "github.com/kbukum/baasic/httpclient"

// Re-exports of httpclient's error classification, so service callers need
// not import httpclient for error checks.

// IsNotFound checks if the error is a 404 Not Found.
func IsNotFound(err error) bool { return httpclient.IsNotFound(err) }

// IsAuth checks if the error is a 401/403 authentication error.
func IsAuth(err error) bool { return httpclient.IsAuth(err) }

// IsConflict checks if the error is a 409 Conflict.
func IsConflict(err error) bool { return httpclient.IsConflict(err) }

// IsValidation checks if the request was rejected as invalid.
func IsValidation(err error) bool { return httpclient.IsValidation(err) }

// IsServerError checks if the error is a 5xx server error.
func IsServerError(err error) bool { return httpclient.IsServerError(err) }

// IsTimeout checks if the error is a timeout.
func IsTimeout(err error) bool { return httpclient.IsTimeout(err) }
