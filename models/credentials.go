package models

import "unicode"

const (
	minUsernameLength = 6
	minPasswordLength = 8
)

// Credentials is the username/password pair the user types on the login
// screen. It is a plain value: two instances are equal iff both fields match.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Valid reports whether the pair is worth sending to the server: the
// username has at least six characters, the password at least eight, and the
// password contains at least one letter or digit.
func (c Credentials) Valid() bool {
	if len(c.Username) < minUsernameLength || len(c.Password) < minPasswordLength {
		return false
	}

	for _, r := range c.Password {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}

	return false
}
