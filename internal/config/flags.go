package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-server-address auth server address used by the client
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-result-delay login result smoothing delay (e.g., "1s")
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
func ParseFlags() *StructuredConfig {
	var listenAddress string
	var serverAddress string
	var requestTimeout time.Duration
	var resultDelay time.Duration
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration

	flag.StringVar(&listenAddress, "a", "", "Listen address host:port")
	flag.StringVar(&serverAddress, "server-address", "", "Auth server address")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&resultDelay, "result-delay", 0, "Login result smoothing delay (e.g., 1s)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Server: Server{
			HTTPAddress: listenAddress,
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Flow: Flow{
			ResultDelay: resultDelay,
		},
	}
}
