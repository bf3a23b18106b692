package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidFlowConfigs indicates invalid feedback-loop settings
	// (for example, a negative result delay).
	ErrInvalidFlowConfigs = errors.New("invalid flow configuration")
	// ErrInvalidServerConfigs indicates invalid dev server settings
	// (for example, missing listen address or token sign key).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
