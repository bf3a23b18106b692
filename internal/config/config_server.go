package config

import (
	"fmt"
	"time"
)

// ServerConfig is the configuration view used by the development auth
// server, assembled from [StructuredConfig].
type ServerConfig struct {
	// HTTPAddress is the TCP address the server listens on.
	HTTPAddress string

	// TokenSignKey is the secret key used to sign issued JWT tokens.
	TokenSignKey string
	// TokenIssuer is the "iss" claim of issued tokens.
	TokenIssuer string
	// TokenDuration is the validity window of issued tokens.
	TokenDuration time.Duration
}

// GetServerConfig builds and validates the dev server config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:   cfg.Server.HTTPAddress,
		TokenSignKey:  cfg.App.TokenSignKey,
		TokenIssuer:   cfg.App.TokenIssuer,
		TokenDuration: cfg.App.TokenDuration,
	}

	return serverCfg, serverCfg.validate()
}
