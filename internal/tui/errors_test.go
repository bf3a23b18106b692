package tui

import (
	"testing"

	"github.com/MKhiriev/go-login-flow/models"
	"github.com/stretchr/testify/assert"
)

func TestHumanizeAPIError(t *testing.T) {
	tests := []struct {
		name string
		err  models.APIError
		want string
	}{
		{
			name: "invalid credentials",
			err:  models.APIError{Code: models.CodeInvalidCredentials, Message: "invalid login/password"},
			want: "Invalid username or password",
		},
		{
			name: "server unavailable",
			err:  models.APIError{Code: models.CodeServerUnavailable, Message: "connection refused"},
			want: "No network or the server is unavailable",
		},
		{
			name: "server error passes its message through",
			err:  models.APIError{Code: models.CodeServerError, Message: "internal server error"},
			want: "internal server error",
		},
		{
			name: "empty message falls back to a generic line",
			err:  models.APIError{Code: models.CodeServerError},
			want: "Something went wrong, try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeAPIError(tt.err))
		})
	}
}
