// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package shiftai

import (
	"errors"
	"testing"
)

func TestMapStatusError_Taxonomy(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		predicate  func(error) bool
	}{
		{"bad request", 400, IsBadRequest},
		{"unauthorized", 401, IsUnauthorized},
		{"forbidden", 403, IsUnauthorized},
		{"not found", 404, IsNotFound},
		{"internal", 500, IsServerError},
		{"bad gateway", 502, IsServerError},
		{"unavailable", 503, IsServerError},
		{"upper bound of 5xx", 599, IsServerError},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := mapStatusError(test.statusCode, `{"message":"nope"}`)
			if !test.predicate(err) {
				t.Fatalf("status %d: predicate did not match %T", test.statusCode, err)
			}

			// Every variant must also match the base type.
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("status %d: does not unwrap to *APIError", test.statusCode)
			}
			if apiErr.StatusCode != test.statusCode {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, test.statusCode)
			}
			if apiErr.Message != "nope" {
				t.Errorf("Message = %q, want %q", apiErr.Message, "nope")
			}
		})
	}
}

func TestMapStatusError_CatchAll(t *testing.T) {
	for _, statusCode := range []int{302, 409, 418, 429} {
		err := mapStatusError(statusCode, "")
		if IsBadRequest(err) || IsUnauthorized(err) || IsNotFound(err) || IsServerError(err) {
			t.Errorf("status %d: matched a specific variant, want catch-all", statusCode)
		}
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("status %d: not an *APIError", statusCode)
		}
		if apiErr.StatusCode != statusCode {
			t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, statusCode)
		}
	}
}

func TestMapStatusError_VariantsAreDisjoint(t *testing.T) {
	err := mapStatusError(404, `{"message":"no such message"}`)
	if IsBadRequest(err) || IsUnauthorized(err) || IsServerError(err) {
		t.Error("404 matched a variant other than NotFound")
	}
	if IsValidation(err) || IsDecode(err) {
		t.Error("APIError variant matched a non-API predicate")
	}
}

func TestErrorMessage_Extraction(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message field", `{"message":"Invalid API key"}`, "Invalid API key"},
		{"error field", `{"error":"user not found"}`, "user not found"},
		{"message wins over error", `{"message":"primary","error":"secondary"}`, "primary"},
		{"blank message falls through", `{"message":"  ","error":"fallback"}`, "fallback"},
		{"neither field", `{"detail":"something"}`, "HTTP 400"},
		{"not JSON", `<html>oops</html>`, "HTTP 400"},
		{"empty body", ``, "HTTP 400"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := errorMessage(400, test.body); got != test.want {
				t.Errorf("got %q, want %q", got, test.want)
			}
		})
	}
}

func TestAPIError_ErrorString(t *testing.T) {
	err := mapStatusError(401, `{"message":"Invalid API key"}`)
	want := "shiftai: HTTP 401: Invalid API key"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestValidationError_NeverWrapsAPIError(t *testing.T) {
	err := validationf("Username is required")
	if !IsValidation(err) {
		t.Fatal("validationf did not produce a ValidationError")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Error("ValidationError must not unwrap to *APIError")
	}
}

func TestDecodeError_Unwrap(t *testing.T) {
	inner := errors.New("unexpected end of JSON input")
	err := &DecodeError{What: "message list", Err: inner}
	if !IsDecode(err) {
		t.Fatal("IsDecode did not match")
	}
	if !errors.Is(err, inner) {
		t.Error("DecodeError must unwrap to its cause")
	}
}
