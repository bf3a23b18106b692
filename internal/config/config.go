// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-login-flow application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters.
	App App `envPrefix:"APP_"`

	// Server holds network address settings for the development auth server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration for the client's outbound HTTP transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Flow holds tunables of the login feedback loop.
	Flow Flow `envPrefix:"FLOW_"`
}

// App holds application-level configuration values that control token
// lifecycle and authentication.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Server holds network settings for the inbound transport layer of the
// development auth server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Adapter holds network settings used by the client transport layer.
type Adapter struct {
	// HTTPAddress is the auth server endpoint address used by the client.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Flow holds tunables of the login feedback loop.
type Flow struct {
	// ResultDelay is the smoothing interval applied before a login result
	// becomes observable, so the spinner does not flicker on fast networks.
	// Env: FLOW_RESULT_DELAY
	ResultDelay time.Duration `env:"RESULT_DELAY"`
}

// GetStructuredConfig loads, merges, and validates the full configuration
// from all supported sources.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withDefaults().
		build()
}
