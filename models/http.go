package models

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	// Username is the login identifier being authenticated.
	Username string `json:"username"`

	// Password is the plaintext password to verify.
	Password string `json:"password"`
}

// LoginResponse is the JSON body returned on a successful login. The bearer
// token travels separately in the Authorization response header.
type LoginResponse struct {
	// User is the authenticated account record.
	User User `json:"user"`
}
