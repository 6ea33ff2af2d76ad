// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package shiftai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIError represents a non-2xx response from the ShiftAI backend. It is
// both the catch-all variant for unmapped status codes and the common core
// embedded in the specific variants ([BadRequestError], [UnauthorizedError],
// [NotFoundError], [ServerError]). Every variant unwraps to *APIError, so
// callers that only care about "the server said no" can match it directly:
//
//	var apiErr *shiftai.APIError
//	if errors.As(err, &apiErr) {
//	    log.Printf("backend returned %d: %s", apiErr.StatusCode, apiErr.Message)
//	}
type APIError struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Message is the human-readable description extracted from the
	// response body's "message" or "error" field, or "HTTP <code>" when
	// the body carries neither.
	Message string

	// Body is the raw response body, kept for diagnostics.
	Body string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("shiftai: HTTP %d: %s", e.StatusCode, e.Message)
}

// BadRequestError is returned for 400 responses.
type BadRequestError struct{ APIError }

func (e *BadRequestError) Unwrap() error { return &e.APIError }

// UnauthorizedError is returned for 401 and 403 responses: the API key is
// missing, invalid, or lacks access to the requested tenant resource.
type UnauthorizedError struct{ APIError }

func (e *UnauthorizedError) Unwrap() error { return &e.APIError }

// NotFoundError is returned for 404 responses.
type NotFoundError struct{ APIError }

func (e *NotFoundError) Unwrap() error { return &e.APIError }

// ServerError is returned for all 5xx responses.
type ServerError struct{ APIError }

func (e *ServerError) Unwrap() error { return &e.APIError }

// ValidationError is a caller-side usage error: a required argument is
// missing or blank, a limit is out of range, or the client has been closed.
// It is raised before any network call is made and never wraps an APIError.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "shiftai: " + e.Message
}

// DecodeError signals a contract mismatch with the backend: a 2xx response
// body that is not valid JSON, or that is missing a field the wire contract
// requires. It is distinct from both ValidationError (caller bug) and
// APIError (server-reported failure).
type DecodeError struct {
	// What names the payload being decoded (e.g. "message submission response").
	What string
	// Err is the underlying JSON or required-field error.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("shiftai: decoding %s: %v", e.What, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsBadRequest reports whether err is a backend 400 response.
func IsBadRequest(err error) bool {
	var target *BadRequestError
	return errors.As(err, &target)
}

// IsUnauthorized reports whether err is a backend 401 or 403 response.
func IsUnauthorized(err error) bool {
	var target *UnauthorizedError
	return errors.As(err, &target)
}

// IsNotFound reports whether err is a backend 404 response.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsServerError reports whether err is a backend 5xx response.
func IsServerError(err error) bool {
	var target *ServerError
	return errors.As(err, &target)
}

// IsValidation reports whether err is a caller-side validation error.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsDecode reports whether err is a response-decoding error.
func IsDecode(err error) bool {
	var target *DecodeError
	return errors.As(err, &target)
}

// validationf formats a caller-side validation error.
func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// mapStatusError maps a non-2xx status code and response body to exactly one
// error variant. The mapping is total: every non-2xx status produces a typed
// error, with *APIError itself as the catch-all for unlisted codes.
//
//	400        → *BadRequestError
//	401, 403   → *UnauthorizedError
//	404        → *NotFoundError
//	500–599    → *ServerError
//	other      → *APIError
func mapStatusError(statusCode int, body string) error {
	base := APIError{
		StatusCode: statusCode,
		Message:    errorMessage(statusCode, body),
		Body:       body,
	}

	switch {
	case statusCode == 400:
		return &BadRequestError{base}
	case statusCode == 401 || statusCode == 403:
		return &UnauthorizedError{base}
	case statusCode == 404:
		return &NotFoundError{base}
	case statusCode >= 500 && statusCode < 600:
		return &ServerError{base}
	default:
		return &base
	}
}

// errorMessage extracts the human-readable message from an error response
// body. The backend conventionally reports either a "message" or an "error"
// field; when neither is present (or the body is not JSON), the status code
// alone has to serve.
func errorMessage(statusCode int, body string) string {
	var wireError struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal([]byte(body), &wireError) == nil {
		if message := strings.TrimSpace(wireError.Message); message != "" {
			return message
		}
		if message := strings.TrimSpace(wireError.Error); message != "" {
			return message
		}
	}
	return fmt.Sprintf("HTTP %d", statusCode)
}
