package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ludexhq/ludex/internal/errors"
)

// loginFunc issues the login request
type loginFunc func(email, password string) tea.Cmd

// LoginModel is the login form view
type LoginModel struct {
	email    textinput.Model
	password textinput.Model
	focus    int
	busy     bool
	errLine  string
	login    loginFunc
}

// NewLoginModel creates the login view
func NewLoginModel(login loginFunc) LoginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword

	return LoginModel{
		email:    email,
		password: password,
		login:    login,
	}
}

// Reset clears the form for a fresh visit
func (m LoginModel) Reset() LoginModel {
	m.email.SetValue("")
	m.password.SetValue("")
	m.errLine = ""
	m.busy = false
	m.focus = 0
	m.email.Focus()
	m.password.Blur()
	return m
}

// Update handles login view messages
func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab":
			m.focus = (m.focus + 1) % 2
			if m.focus == 0 {
				m.email.Focus()
				m.password.Blur()
			} else {
				m.password.Focus()
				m.email.Blur()
			}
			return m, nil
		case "enter":
			if m.busy {
				return m, nil
			}
			email := strings.TrimSpace(m.email.Value())
			password := m.password.Value()
			if email == "" || password == "" {
				m.errLine = "Email y contraseña son obligatorios"
				return m, nil
			}
			m.busy = true
			m.errLine = ""
			return m, m.login(email, password)
		}

		var cmd tea.Cmd
		if m.focus == 0 {
			m.email, cmd = m.email.Update(msg)
		} else {
			m.password, cmd = m.password.Update(msg)
		}
		return m, cmd

	case loginResultMsg:
		m.busy = false
		if msg.err != nil {
			// The authorizer may also have fired globally; the inline
			// message still shows regardless.
			if errors.CodeOf(msg.err) == errors.ErrCodeInvalidCredentials {
				m.errLine = "Credenciales incorrectas"
			} else {
				m.errLine = "No se pudo iniciar sesión. Inténtalo de nuevo."
			}
			return m, nil
		}
		m.errLine = ""
		return m, nil
	}

	return m, nil
}

// View renders the login view
func (m LoginModel) View(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Sign in"))
	b.WriteString("\n")
	b.WriteString(m.email.View())
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n\n")

	if m.busy {
		b.WriteString(styles.Muted.Render("Signing in…"))
		b.WriteString("\n")
	}
	if m.errLine != "" {
		b.WriteString(styles.Error.Render(m.errLine))
		b.WriteString("\n")
	}
	b.WriteString(styles.Help.Render("enter submit · tab switch field · ctrl+r register · esc back"))
	return b.String()
}
