package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// loginKeyMap defines key bindings for the account form.
type loginKeyMap struct {
	Next   key.Binding
	Submit key.Binding
	Toggle key.Binding
	Cancel key.Binding
}

func defaultLoginKeyMap() loginKeyMap {
	return loginKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "login/register"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to game"),
		),
	}
}

// loginForm is the in-game account form, driven by bubbles text inputs.
type loginForm struct {
	username   textinput.Model
	password   textinput.Model
	keys       loginKeyMap
	focusIndex int
	register   bool // false = login, true = register
}

// formResult describes what the form asked the model to do.
type formResult int

const (
	formPending formResult = iota
	formSubmitted
	formCancelled
)

func newLoginForm() loginForm {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 32
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginForm{
		username: username,
		password: password,
		keys:     defaultLoginKeyMap(),
	}
}

// Update handles one message and reports whether the form was submitted or
// cancelled this frame.
func (f loginForm) Update(msg tea.Msg) (loginForm, tea.Cmd, formResult) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, f.keys.Cancel):
			return f, nil, formCancelled

		case key.Matches(keyMsg, f.keys.Submit):
			return f, nil, formSubmitted

		case key.Matches(keyMsg, f.keys.Toggle):
			f.register = !f.register
			return f, nil, formPending

		case key.Matches(keyMsg, f.keys.Next):
			f.focusIndex = (f.focusIndex + 1) % 2
			if f.focusIndex == 0 {
				f.password.Blur()
				return f, f.username.Focus(), formPending
			}
			f.username.Blur()
			return f, f.password.Focus(), formPending
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	f.username, cmd = f.username.Update(msg)
	cmds = append(cmds, cmd)
	f.password, cmd = f.password.Update(msg)
	cmds = append(cmds, cmd)
	return f, tea.Batch(cmds...), formPending
}

// Values returns the entered credentials.
func (f loginForm) Values() (username, password string) {
	return strings.TrimSpace(f.username.Value()), f.password.Value()
}

// Reset clears both fields and focuses the username input.
func (f loginForm) Reset() loginForm {
	f.username.SetValue("")
	f.password.SetValue("")
	f.password.Blur()
	f.username.Focus()
	f.focusIndex = 0
	return f
}

var (
	formTitleStyle = lipgloss.NewStyle().Bold(true)
	formBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2)
	formHintStyle = lipgloss.NewStyle().Faint(true)
)

// View renders the form box.
func (f loginForm) View() string {
	title := "Sign in"
	action := "ctrl+r: switch to register"
	if f.register {
		title = "Create account"
		action = "ctrl+r: switch to sign in"
	}

	body := formTitleStyle.Render(title) + "\n\n" +
		f.username.View() + "\n" +
		f.password.View() + "\n\n" +
		formHintStyle.Render("enter: submit · tab: next field · "+action+" · esc: back")

	return formBoxStyle.Render(body)
}
