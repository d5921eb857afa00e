package tui

import (
	stderrors "errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ludexhq/ludex/internal/errors"
)

// stdAs narrows an error chain to a LudexError
func stdAs(err error, target any) bool {
	return stderrors.As(err, target)
}

// registerFunc issues the registration request
type registerFunc func(nickname, email, password string, maxPrice float64) tea.Cmd

// RegisterModel is the registration form view
type RegisterModel struct {
	fields   []textinput.Model
	focus    int
	busy     bool
	errLine  string
	register registerFunc
}

const (
	fieldNickname = iota
	fieldEmail
	fieldPassword
	fieldMaxPrice
)

// NewRegisterModel creates the registration view
func NewRegisterModel(register registerFunc) RegisterModel {
	nickname := textinput.New()
	nickname.Placeholder = "nickname"
	nickname.Focus()

	email := textinput.New()
	email.Placeholder = "email"

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	maxPrice := textinput.New()
	maxPrice.Placeholder = "max price (EUR)"
	maxPrice.CharLimit = 8

	return RegisterModel{
		fields:   []textinput.Model{nickname, email, password, maxPrice},
		register: register,
	}
}

// Update handles registration view messages
func (m RegisterModel) Update(msg tea.Msg) (RegisterModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			m.setFocus((m.focus + 1) % len(m.fields))
			return m, nil
		case "shift+tab":
			m.setFocus((m.focus + len(m.fields) - 1) % len(m.fields))
			return m, nil
		case "enter":
			if m.busy {
				return m, nil
			}
			return m.submit()
		}

		var cmd tea.Cmd
		m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
		return m, cmd

	case registerResultMsg:
		m.busy = false
		if msg.err != nil {
			// Server validation detail is shown verbatim when present.
			var le *errors.LudexError
			if stdAs(msg.err, &le) && le.Detail != "" {
				m.errLine = le.Detail
			} else {
				m.errLine = "No se pudo completar el registro."
			}
			return m, nil
		}
		m.errLine = ""
		return m, nil
	}

	return m, nil
}

func (m *RegisterModel) setFocus(focus int) {
	m.fields[m.focus].Blur()
	m.focus = focus
	m.fields[m.focus].Focus()
}

func (m RegisterModel) submit() (RegisterModel, tea.Cmd) {
	nickname := strings.TrimSpace(m.fields[fieldNickname].Value())
	email := strings.TrimSpace(m.fields[fieldEmail].Value())
	password := m.fields[fieldPassword].Value()
	if nickname == "" || email == "" || password == "" {
		m.errLine = "Nickname, email y contraseña son obligatorios"
		return m, nil
	}

	maxPrice := 0.0
	if raw := strings.TrimSpace(m.fields[fieldMaxPrice].Value()); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			m.errLine = "El precio máximo debe ser un número"
			return m, nil
		}
		maxPrice = parsed
	}

	m.busy = true
	m.errLine = ""
	return m, m.register(nickname, email, password, maxPrice)
}

// View renders the registration view
func (m RegisterModel) View(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Create account"))
	b.WriteString("\n")
	for _, field := range m.fields {
		b.WriteString(field.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.busy {
		b.WriteString(styles.Muted.Render("Registering…"))
		b.WriteString("\n")
	}
	if m.errLine != "" {
		b.WriteString(styles.Error.Render(m.errLine))
		b.WriteString("\n")
	}
	b.WriteString(styles.Help.Render("enter submit · tab next field · esc back"))
	return b.String()
}
