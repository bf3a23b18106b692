package server

import "errors"

var (
	// ErrEmptyAuthorizationHeader - the Authorization header is absent.
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")
)
