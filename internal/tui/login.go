// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-login-flow/internal/flow"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// snapshotMsg wraps a state snapshot received from the store so it can
// travel through the Bubble Tea message loop.
type snapshotMsg flow.StateModel

// LoginModel is the Bubble Tea model for the login screen. It renders two
// text inputs (username and password), dispatches flow events for every
// user gesture, and re-renders from the view-model projection of each store
// snapshot. On a successful login the program quits and [TUI.Run] hands the
// authenticated user back to the caller.
type LoginModel struct {
	store *flow.Store

	inputs []textinput.Model
	focus  int
	spin   spinner.Model

	vm         flow.ViewModel
	quitByUser bool
}

// NewLoginModel creates a [LoginModel] with pre-configured username and
// password inputs. The username field receives focus immediately; the
// password field starts with masked echo, matching the initial state.
func NewLoginModel(store *flow.Store) *LoginModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &LoginModel{
		store:  store,
		inputs: []textinput.Model{usernameInput, passwordInput},
		spin:   s,
		vm:     flow.Project(flow.InitialState()),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation and begins
// listening for store snapshots.
func (m *LoginModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForSnapshot())
}

// waitForSnapshot blocks on the store's snapshot channel and delivers the
// next snapshot as a message. Re-armed after every received snapshot.
func (m *LoginModel) waitForSnapshot() tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(<-m.store.Snapshots())
	}
}

// Update implements [tea.Model]. Handled messages:
//   - snapshotMsg      — recomputes the view model; quits once logged in.
//   - spinner.TickMsg  — advances the spinner while a request is in flight.
//   - ctrl+c           — quits, marking the run as abandoned.
//   - tab / shift+tab  — moves focus between inputs.
//   - ctrl+r           — dispatches PasswordToggled.
//   - enter            — dispatches LoginButtonTapped when the button is
//     enabled, or ErrorMessageDismissed while the failure alert is shown.
//
// All other key events are forwarded to the focused input widget and any
// resulting value change is dispatched as a UsernameChanged/PasswordChanged
// event.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		return m.applySnapshot(flow.StateModel(msg))

	case spinner.TickMsg:
		if !m.vm.IsSpinning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *LoginModel) applySnapshot(model flow.StateModel) (tea.Model, tea.Cmd) {
	wasSpinning := m.vm.IsSpinning
	m.vm = flow.Project(model)

	if m.vm.IsPasswordHidden {
		m.inputs[1].EchoMode = textinput.EchoPassword
	} else {
		m.inputs[1].EchoMode = textinput.EchoNormal
	}

	if m.vm.Phase.Kind == flow.KindLoggedIn {
		return m, tea.Quit
	}

	cmds := []tea.Cmd{m.waitForSnapshot()}
	if m.vm.IsSpinning && !wasSpinning {
		cmds = append(cmds, m.spin.Tick)
	}

	return m, tea.Batch(cmds...)
}

func (m *LoginModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitByUser = true
		return m, tea.Quit

	case "esc":
		if m.vm.Phase.Kind == flow.KindLoginFailed {
			m.dispatch(flow.ErrorMessageDismissed{})
			return m, nil
		}
		m.quitByUser = true
		return m, tea.Quit

	case "tab":
		m.focusNext()
		return m, nil

	case "shift+tab":
		m.focusPrev()
		return m, nil

	case "ctrl+r":
		m.dispatch(flow.PasswordToggled{})
		return m, nil

	case "enter":
		if m.vm.Phase.Kind == flow.KindLoginFailed {
			m.dispatch(flow.ErrorMessageDismissed{})
			return m, nil
		}
		if m.vm.IsLoginButtonEnabled {
			m.dispatch(flow.LoginButtonTapped{})
		}
		return m, nil
	}

	// text entry is frozen while a request is in flight; the reducer would
	// ignore the edits anyway and the widgets must not drift from the model
	if m.vm.IsSpinning || m.vm.Phase.Kind == flow.KindLoginFailed {
		return m, nil
	}

	var cmd tea.Cmd
	before := m.inputs[m.focus].Value()
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if after := m.inputs[m.focus].Value(); after != before {
		if m.focus == 0 {
			m.dispatch(flow.UsernameChanged{Value: after})
		} else {
			m.dispatch(flow.PasswordChanged{Value: after})
		}
	}

	return m, cmd
}

// dispatch forwards a UI event to the store. Dispatch can only fail on
// programming errors (feedback event from the UI, stopped store), neither
// of which is recoverable mid-session.
func (m *LoginModel) dispatch(event flow.Event) {
	if err := m.store.Dispatch(event); err != nil {
		panic(err)
	}
}

// View implements [tea.Model]. Renders the login form as a two-column table
// with username and password inputs, the submit button with its spinner,
// and the failure alert when a login attempt was rejected.
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field      │ Value\n")
	b.WriteString("───────────┼────────────────────────────────────────────\n")
	b.WriteString("Username   │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password   │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n\n")

	switch {
	case m.vm.IsSpinning:
		b.WriteString(m.spin.View())
		b.WriteString(" [Signing in...]\n")
	case m.vm.IsLoginButtonEnabled:
		b.WriteString(buttonStyle.Render("[Sign in]"))
		b.WriteString("\n")
	default:
		b.WriteString(disabledStyle.Render("[Sign in]"))
		b.WriteString("\n")
	}

	if m.vm.Phase.Kind == flow.KindLoginFailed {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + humanizeAPIError(m.vm.Phase.Err)))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter/esc: dismiss"))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ctrl+r: show/hide password │ enter: submit │ ctrl+c: quit")
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
