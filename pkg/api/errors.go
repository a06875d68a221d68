package api

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors callers match with errors.Is.
var (
	// ErrNetwork covers transport-level failures: connection refused,
	// DNS, request timeout. Always retryable by user action.
	ErrNetwork = errors.New("network unavailable")
	// ErrUnauthorized means the token was rejected (401/403). The engine
	// treats it as a forced re-login on every authenticated call.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is returned for a missing entry id. The backend scopes
	// queries per user, so another user's entry also reads as not found.
	ErrNotFound = errors.New("entry not found")
	// ErrInvalidCredentials is a rejected login.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrMalformedResponse means the body did not match the expected
	// shape. The engine degrades a malformed list to an empty one.
	ErrMalformedResponse = errors.New("malformed response")
)

// RegistrationError is a rejected register call. Reason carries the
// backend's error body verbatim (duplicate username, weak password, ...).
type RegistrationError struct {
	Reason string
}

func (e *RegistrationError) Error() string {
	if e.Reason == "" {
		return "registration rejected"
	}
	return "registration rejected: " + e.Reason
}

// ValidationError is a 400 on create or update. Fields maps field name
// to the backend's messages; Raw holds the body when it was not the
// usual DRF field-error shape.
type ValidationError struct {
	Fields map[string][]string
	Raw    string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		if e.Raw != "" {
			return "validation rejected: " + e.Raw
		}
		return "validation rejected"
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(e.Fields[name], "; ")))
	}
	return "validation rejected: " + strings.Join(parts, ", ")
}

// DeleteError is any delete status other than 204 No Content.
type DeleteError struct {
	StatusCode int
	Body       string
}

func (e *DeleteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("delete rejected: status %d", e.StatusCode)
	}
	return fmt.Sprintf("delete rejected: status %d: %s", e.StatusCode, e.Body)
}
