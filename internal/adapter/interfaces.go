package adapter

import "github.com/MKhiriev/go-login-flow/internal/flow"

// AuthAdapter is the client-side boundary to the auth server. It satisfies
// [flow.LoginAPI] so it can be injected into the effect executor, and keeps
// the bearer token obtained on a successful login for later authenticated
// requests.
type AuthAdapter interface {
	flow.LoginAPI

	// SetToken stores the bearer token for subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter, or an
	// empty string if none has been set.
	Token() string
}
