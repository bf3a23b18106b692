package flow

import "github.com/MKhiriev/go-login-flow/models"

// PhaseKind tags the mutually exclusive lifecycle phase of the login screen.
type PhaseKind int

const (
	// KindLoggedOut - the form is editable, no request in flight.
	KindLoggedOut PhaseKind = iota
	// KindPerformingLogin - a login request is in flight.
	KindPerformingLogin
	// KindLoggedIn - the login request succeeded.
	KindLoggedIn
	// KindLoginFailed - the login request failed; the error is on display.
	KindLoginFailed
)

// String returns the phase tag name for logging.
func (k PhaseKind) String() string {
	switch k {
	case KindLoggedOut:
		return "logged_out"
	case KindPerformingLogin:
		return "performing_login"
	case KindLoggedIn:
		return "logged_in"
	case KindLoginFailed:
		return "login_failed"
	default:
		return "unknown"
	}
}

// Phase is the lifecycle sum of the state machine. Exactly one kind is
// active; User is meaningful only for [KindLoggedIn] and Err only for
// [KindLoginFailed], both are zero otherwise so Phase values stay comparable.
type Phase struct {
	Kind PhaseKind
	User models.User
	Err  models.APIError
}

// LoggedOut returns the editable-form phase.
func LoggedOut() Phase {
	return Phase{Kind: KindLoggedOut}
}

// PerformingLogin returns the request-in-flight phase.
func PerformingLogin() Phase {
	return Phase{Kind: KindPerformingLogin}
}

// LoggedIn returns the success phase carrying the authenticated user.
func LoggedIn(user models.User) Phase {
	return Phase{Kind: KindLoggedIn, User: user}
}

// LoginFailed returns the failure phase carrying the display error.
func LoginFailed(err models.APIError) Phase {
	return Phase{Kind: KindLoginFailed, Err: err}
}

// StateModel is the single source of truth of the login screen. It is an
// immutable value: [Reduce] returns a new model on every accepted event and
// never mutates its input. Comparable, so successive models deduplicate
// with ==.
type StateModel struct {
	// Credentials holds the current form contents.
	Credentials models.Credentials

	// IsPasswordHidden is the masked-echo toggle of the password input.
	IsPasswordHidden bool

	// Phase is the current lifecycle phase.
	Phase Phase
}

// InitialState returns the model the screen starts from: empty credentials,
// password hidden, logged out.
func InitialState() StateModel {
	return StateModel{
		IsPasswordHidden: true,
		Phase:            LoggedOut(),
	}
}
