// Copyright 2026 The ShiftAI Authors
// SPDX-License-Identifier: MIT

package shiftai

import (
	"encoding/json"
	"net/http"
)

// deref returns the value behind p, or the zero value when p is nil. Keeps
// assertions over optional wire fields readable.
func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// decodeJSONBody decodes a test server's received request body into v.
func decodeJSONBody(request *http.Request, v any) error {
	return json.NewDecoder(request.Body).Decode(v)
}
