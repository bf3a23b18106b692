// Package tui implements the terminal UI collaborator of the login flow.
// It translates key events 1:1 into flow events, dispatches them to the
// store, and renders the view-model projection of every published snapshot.
// The TUI never injects feedback events; those come only from effect
// execution inside the store.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-login-flow/internal/flow"
	"github.com/MKhiriev/go-login-flow/internal/logger"
	"github.com/MKhiriev/go-login-flow/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	store  *flow.Store
	logger *logger.Logger
}

func New(store *flow.Store, logger *logger.Logger) (*TUI, error) {
	return &TUI{store: store, logger: logger}, nil
}

// Run drives the login screen until the user either authenticates or quits.
// Returns the authenticated user, or [ErrUserQuit] if the screen was
// abandoned.
func (t *TUI) Run(ctx context.Context) (models.User, error) {
	model := NewLoginModel(t.store)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.User{}, err
	}

	result, ok := finalModel.(*LoginModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}

	return result.vm.Phase.User, nil
}
