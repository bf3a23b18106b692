package models

// User represents a successfully authenticated account as returned by the
// auth server. The login flow treats it as an opaque value: it is carried
// from the network boundary into the logged-in state and handed to the UI,
// nothing in the core inspects it.
type User struct {
	// UserID is the unique identifier of the user, a UUIDv7 string
	// assigned by the server at registration time.
	UserID string `json:"user_id"`

	// Login is the unique user login identifier.
	// Typically used during authentication.
	Login string `json:"login"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`
}
