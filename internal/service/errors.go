package service

import (
	"errors"
	"fmt"
)

// ValidationError marks bad caller input; controllers map it to HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// UpstreamError is a non-2xx status or an error payload from the model API.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return "upstream error: " + e.Message
	}
	return fmt.Sprintf("upstream request failed with status %d", e.StatusCode)
}

// ErrEmptyResponse means the model returned no usable text.
var ErrEmptyResponse = errors.New("upstream returned an empty response")

// MalformedResponseError means the model's text, after fence stripping and a
// repair attempt, still did not parse into the expected profile shape.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return "malformed profile response: " + e.Reason
}

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
