// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The structured config itself stays permissive; the role-specific views
// ([ClientConfig], [ServerConfig]) carry the strict checks, since a client
// process has no business requiring server-only settings and vice versa.
func (cfg *StructuredConfig) validate() error {
	if cfg.Flow.ResultDelay < 0 {
		return ErrInvalidFlowConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Flow.ResultDelay < 0 {
		return ErrInvalidFlowConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" || cfg.TokenDuration == 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
