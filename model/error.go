// Package model - ErrorResult is the uniform failure payload returned in place of any success body.
package model

import (
	"net/http"
	"strings"
)

// Stage labels attached to an ErrorResult
const (
	StageSearchRepositories = "Get repositories by language"
	StageListCommits        = "Get commits by repo name"
	StageValidation         = "Validate query parameters"
	StageInternal           = "Internal"
)

// ErrorResult is the failure shape used for validation and upstream errors.
// It satisfies the error interface so it can travel through normal Go error returns.
type ErrorResult struct {
	Status  int    `json:"status"`
	Stage   string `json:"stage"`
	Message string `json:"error"`
}

// Error implements the error interface
func (e *ErrorResult) Error() string {
	return e.Stage + ": " + e.Message
}

// NewUpstreamError builds an ErrorResult for a failed upstream call. The message is
// the local hint joined with the upstream status text by a comma.
func NewUpstreamError(status int, stage, hint, statusText string) *ErrorResult {
	return &ErrorResult{
		Status:  status,
		Stage:   stage,
		Message: strings.Join([]string{hint, statusText}, ","),
	}
}

// NewValidationError builds an ErrorResult for rejected query parameters.
// Validation failures carry status 500 to stay compatible with existing clients.
func NewValidationError(msg string) *ErrorResult {
	return &ErrorResult{
		Status:  http.StatusInternalServerError,
		Stage:   StageValidation,
		Message: msg,
	}
}

// NewInternalError wraps an unexpected server-side failure
func NewInternalError(err error) *ErrorResult {
	return &ErrorResult{
		Status:  http.StatusInternalServerError,
		Stage:   StageInternal,
		Message: err.Error(),
	}
}
