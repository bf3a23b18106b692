package flow

import (
	"testing"

	"github.com/MKhiriev/go-login-flow/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testCreds = models.Credentials{Username: "validUser", Password: "longenoughpw1"}
	testUser  = models.User{UserID: "0198a6e2-7b9d-7c33-b8f1-2f54d1a3c001", Login: "validUser", Name: "Valid User"}
	testErr   = models.APIError{Code: models.CodeInvalidCredentials, Message: "invalid login/password", HTTPStatus: 401}
)

func loggedOutModel(creds models.Credentials, hidden bool) StateModel {
	return StateModel{Credentials: creds, IsPasswordHidden: hidden, Phase: LoggedOut()}
}

func TestReduce_LoggedOut_UsernameChanged(t *testing.T) {
	model := InitialState()

	next, effects := Reduce(model, UsernameChanged{Value: "alice01"})

	assert.Equal(t, "alice01", next.Credentials.Username)
	assert.Equal(t, LoggedOut(), next.Phase)
	assert.Empty(t, effects)
}

func TestReduce_LoggedOut_PasswordChanged(t *testing.T) {
	model := InitialState()

	next, effects := Reduce(model, PasswordChanged{Value: "secret123"})

	assert.Equal(t, "secret123", next.Credentials.Password)
	assert.Equal(t, LoggedOut(), next.Phase)
	assert.Empty(t, effects)
}

func TestReduce_LoggedOut_PasswordToggled(t *testing.T) {
	model := loggedOutModel(testCreds, true)

	next, effects := Reduce(model, PasswordToggled{})

	assert.False(t, next.IsPasswordHidden, "toggle must flip visibility")
	assert.Equal(t, model.Credentials, next.Credentials, "toggle must not touch credentials")
	assert.Equal(t, LoggedOut(), next.Phase, "toggle is phase-preserving")
	assert.Empty(t, effects)

	back, effects := Reduce(next, PasswordToggled{})
	assert.True(t, back.IsPasswordHidden, "second toggle must flip back")
	assert.Empty(t, effects)
}

func TestReduce_LoggedOut_LoginButtonTapped(t *testing.T) {
	model := loggedOutModel(testCreds, true)

	next, effects := Reduce(model, LoginButtonTapped{})

	assert.Equal(t, PerformingLogin(), next.Phase)
	assert.Equal(t, testCreds, next.Credentials)
	require.Len(t, effects, 1)
	assert.True(t, effects.Contains(LoginRequest{Credentials: testCreds}),
		"exactly one login request with the current credentials must be requested")
}

func TestReduce_PerformingLogin_Succeeded(t *testing.T) {
	model := loggedOutModel(testCreds, true)
	model.Phase = PerformingLogin()

	next, effects := Reduce(model, LoginRequestSucceeded{User: testUser})

	assert.Equal(t, LoggedIn(testUser), next.Phase)
	assert.Empty(t, effects)
}

func TestReduce_PerformingLogin_Failed(t *testing.T) {
	model := loggedOutModel(testCreds, true)
	model.Phase = PerformingLogin()

	next, effects := Reduce(model, LoginRequestFailed{Err: testErr})

	assert.Equal(t, LoginFailed(testErr), next.Phase)
	assert.Empty(t, effects)
}

func TestReduce_LoginFailed_Dismissed(t *testing.T) {
	model := loggedOutModel(testCreds, false)
	model.Phase = LoginFailed(testErr)

	next, effects := Reduce(model, ErrorMessageDismissed{})

	assert.Equal(t, LoggedOut(), next.Phase)
	assert.Equal(t, testCreds, next.Credentials, "dismissing must preserve credentials")
	assert.False(t, next.IsPasswordHidden, "dismissing must preserve the visibility toggle")
	assert.Empty(t, effects)
}

// TestReduce_IdentityFallback checks that every (phase, event) pair outside
// the transition table reduces to the unchanged model with no effects.
func TestReduce_IdentityFallback(t *testing.T) {
	performing := loggedOutModel(testCreds, true)
	performing.Phase = PerformingLogin()

	loggedIn := loggedOutModel(testCreds, true)
	loggedIn.Phase = LoggedIn(testUser)

	failed := loggedOutModel(testCreds, true)
	failed.Phase = LoginFailed(testErr)

	tests := []struct {
		name  string
		model StateModel
		event Event
	}{
		{"logged out ignores dismiss", loggedOutModel(testCreds, true), ErrorMessageDismissed{}},
		{"logged out ignores success feedback", loggedOutModel(testCreds, true), LoginRequestSucceeded{User: testUser}},
		{"logged out ignores failure feedback", loggedOutModel(testCreds, true), LoginRequestFailed{Err: testErr}},
		{"performing ignores username edits", performing, UsernameChanged{Value: "mallory99"}},
		{"performing ignores password edits", performing, PasswordChanged{Value: "something-else1"}},
		{"performing ignores repeated taps", performing, LoginButtonTapped{}},
		{"performing ignores toggle", performing, PasswordToggled{}},
		{"performing ignores dismiss", performing, ErrorMessageDismissed{}},
		{"logged in ignores everything", loggedIn, LoginButtonTapped{}},
		{"logged in ignores feedback", loggedIn, LoginRequestFailed{Err: testErr}},
		{"failed ignores taps", failed, LoginButtonTapped{}},
		{"failed ignores edits", failed, UsernameChanged{Value: "other1"}},
		{"failed ignores success feedback", failed, LoginRequestSucceeded{User: testUser}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, effects := Reduce(tt.model, tt.event)
			assert.Equal(t, tt.model, next, "unmatched pair must be identity")
			assert.Empty(t, effects, "unmatched pair must request no effects")
		})
	}
}

// TestReduce_Idempotence checks that snapshot-style events are pure functions
// of the latest value, not deltas.
func TestReduce_Idempotence(t *testing.T) {
	model := InitialState()

	once, _ := Reduce(model, UsernameChanged{Value: "x"})
	twice, _ := Reduce(once, UsernameChanged{Value: "x"})

	assert.Equal(t, once, twice)
}

// TestReduce_DoesNotMutateInput checks purity: the input model is untouched.
func TestReduce_DoesNotMutateInput(t *testing.T) {
	model := loggedOutModel(testCreds, true)
	original := model

	_, _ = Reduce(model, LoginButtonTapped{})
	_, _ = Reduce(model, UsernameChanged{Value: "changed"})

	assert.Equal(t, original, model)
}

// TestReduce_EndToEnd walks the happy path of the spec: edit both fields,
// tap login, observe the in-flight phase and the single requested effect,
// inject the success feedback and land in LoggedIn.
func TestReduce_EndToEnd(t *testing.T) {
	model := InitialState()

	model, effects := Reduce(model, UsernameChanged{Value: "alice01"})
	require.Empty(t, effects)

	model, effects = Reduce(model, PasswordChanged{Value: "secret123"})
	require.Empty(t, effects)

	model, effects = Reduce(model, LoginButtonTapped{})
	require.Equal(t, KindPerformingLogin, model.Phase.Kind)
	require.Len(t, effects, 1)
	want := LoginRequest{Credentials: models.Credentials{Username: "alice01", Password: "secret123"}}
	require.True(t, effects.Contains(want))

	model, effects = Reduce(model, LoginRequestSucceeded{User: testUser})
	assert.Equal(t, LoggedIn(testUser), model.Phase)
	assert.Empty(t, effects)
}
