package flow

import "github.com/MKhiriev/go-login-flow/models"

// Event is the closed set of inputs the reducer accepts. The UI collaborator
// must translate every raw signal into one of these variants before feeding
// the [Store]; the core never receives raw terminal or widget values.
//
// All variants are comparable value types.
type Event interface {
	isEvent()
}

// FeedbackEvent marks events produced exclusively by effect execution.
// [Store.Dispatch] rejects them so the UI cannot forge a login result.
type FeedbackEvent interface {
	Event
	isFeedback()
}

// UsernameChanged carries the full current value of the username input.
// It is a snapshot, not a delta: applying it twice is the same as once.
type UsernameChanged struct {
	Value string
}

// PasswordChanged carries the full current value of the password input.
type PasswordChanged struct {
	Value string
}

// LoginButtonTapped is emitted when the user submits the form.
type LoginButtonTapped struct{}

// PasswordToggled is emitted when the user flips password visibility.
type PasswordToggled struct{}

// ErrorMessageDismissed is emitted when the user closes the failure alert.
type ErrorMessageDismissed struct{}

// LoginRequestSucceeded is the feedback event of a completed login request.
type LoginRequestSucceeded struct {
	User models.User
}

// LoginRequestFailed is the feedback event of a rejected or failed login
// request.
type LoginRequestFailed struct {
	Err models.APIError
}

func (UsernameChanged) isEvent()       {}
func (PasswordChanged) isEvent()       {}
func (LoginButtonTapped) isEvent()     {}
func (PasswordToggled) isEvent()       {}
func (ErrorMessageDismissed) isEvent() {}
func (LoginRequestSucceeded) isEvent() {}
func (LoginRequestFailed) isEvent()    {}

func (LoginRequestSucceeded) isFeedback() {}
func (LoginRequestFailed) isFeedback()    {}
