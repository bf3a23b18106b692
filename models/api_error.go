// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// APIErrorCode classifies a failed login call. The set is closed: the
// adapter maps every transport and HTTP failure onto one of these values
// before the error reaches the state machine, so no unclassified error
// shape can cross that boundary.
type APIErrorCode string

const (
	// CodeInvalidCredentials - the server rejected the login/password pair.
	CodeInvalidCredentials APIErrorCode = "invalid_credentials"
	// CodeInvalidRequest - the server could not parse the request.
	CodeInvalidRequest APIErrorCode = "invalid_request"
	// CodeServerUnavailable - the server could not be reached or timed out.
	CodeServerUnavailable APIErrorCode = "server_unavailable"
	// CodeServerError - the server answered with an unexpected status.
	CodeServerError APIErrorCode = "server_error"
)

// APIError is the failure outcome of a login call. It is a comparable value
// so it can live inside the state machine's phase and participate in
// snapshot deduplication.
type APIError struct {
	// Code classifies the failure for programmatic handling.
	Code APIErrorCode `json:"code"`

	// Message is a human-readable description suitable for display.
	Message string `json:"message"`

	// HTTPStatus is the status code of the server response, or zero when
	// the failure happened before any response was received.
	HTTPStatus int `json:"-"`
}

// Error implements the error interface.
func (e APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
