package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject(t *testing.T) {
	performing := loggedOutModel(testCreds, true)
	performing.Phase = PerformingLogin()

	invalid := loggedOutModel(testCreds, true)
	invalid.Credentials.Password = "short"

	visible := loggedOutModel(testCreds, false)

	failed := loggedOutModel(testCreds, true)
	failed.Phase = LoginFailed(testErr)

	tests := []struct {
		name  string
		model StateModel
		want  ViewModel
	}{
		{
			name:  "initial state",
			model: InitialState(),
			want:  ViewModel{IsPasswordHidden: true, Phase: LoggedOut()},
		},
		{
			name:  "valid credentials enable the button",
			model: loggedOutModel(testCreds, true),
			want:  ViewModel{IsLoginButtonEnabled: true, IsPasswordHidden: true, Phase: LoggedOut()},
		},
		{
			name:  "invalid credentials keep the button disabled",
			model: invalid,
			want:  ViewModel{IsPasswordHidden: true, Phase: LoggedOut()},
		},
		{
			name:  "in-flight request spins and disables the button",
			model: performing,
			want:  ViewModel{IsSpinning: true, IsPasswordHidden: true, Phase: PerformingLogin()},
		},
		{
			name:  "visibility toggle is copied through",
			model: visible,
			want:  ViewModel{IsLoginButtonEnabled: true, Phase: LoggedOut()},
		},
		{
			name:  "failure phase is carried for rendering",
			model: failed,
			want:  ViewModel{IsLoginButtonEnabled: true, IsPasswordHidden: true, Phase: LoginFailed(testErr)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Project(tt.model))
		})
	}
}
