package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ludexhq/ludex/internal/api"
)

// saveProfileFunc issues the profile update request
type saveProfileFunc func(update api.ProfileUpdate) tea.Cmd

// ProfileModel is the profile view: shows the cached identity and lets the
// user rename themselves. The visible identity only changes once the server
// confirms the update.
type ProfileModel struct {
	user    api.User
	nick    textinput.Model
	editing bool
	busy    bool
	notice  string
	save    saveProfileFunc
}

// NewProfileModel creates the profile view
func NewProfileModel(save saveProfileFunc) ProfileModel {
	nick := textinput.New()
	nick.Placeholder = "new nickname"
	nick.CharLimit = 60

	return ProfileModel{
		nick: nick,
		save: save,
	}
}

// setUser installs the identity to display
func (m *ProfileModel) setUser(user api.User) {
	m.user = user
	m.editing = false
	m.busy = false
	m.notice = ""
}

// Update handles profile view messages
func (m ProfileModel) Update(msg tea.Msg) (ProfileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.editing {
			if msg.String() == "e" {
				m.editing = true
				m.nick.SetValue(m.user.Nick)
				m.nick.Focus()
				m.notice = ""
			}
			return m, nil
		}

		switch msg.String() {
		case "enter":
			if m.busy {
				return m, nil
			}
			nick := strings.TrimSpace(m.nick.Value())
			if nick == "" {
				m.notice = "El nickname no puede estar vacío"
				return m, nil
			}
			m.busy = true
			m.notice = ""
			return m, m.save(api.ProfileUpdate{Nick: &nick})
		case "esc":
			m.editing = false
			return m, nil
		}

		var cmd tea.Cmd
		m.nick, cmd = m.nick.Update(msg)
		return m, cmd

	case profileSavedMsg:
		m.busy = false
		if msg.err != nil {
			// Prior state stays visible until the server confirms.
			m.notice = "No se pudo actualizar el perfil."
			return m, nil
		}
		m.user = msg.session.User
		m.editing = false
		m.notice = ""
		return m, nil
	}

	return m, nil
}

// Editing reports whether the nickname field is capturing keystrokes
func (m ProfileModel) Editing() bool {
	return m.editing
}

// View renders the profile view
func (m ProfileModel) View(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Profile"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Nickname: %s\n", m.user.Nick))
	b.WriteString(fmt.Sprintf("Email:    %s\n", m.user.Email))
	b.WriteString(fmt.Sprintf("User ID:  %d\n", m.user.ID))
	b.WriteString("\n")

	if m.editing {
		b.WriteString(m.nick.View())
		b.WriteString("\n")
		if m.busy {
			b.WriteString(styles.Muted.Render("Saving…"))
			b.WriteString("\n")
		}
	}
	if m.notice != "" {
		b.WriteString(styles.Error.Render(m.notice))
		b.WriteString("\n")
	}

	if m.editing {
		b.WriteString(styles.Help.Render("enter save · esc cancel"))
	} else {
		b.WriteString(styles.Help.Render("e edit nickname · esc back"))
	}
	return b.String()
}
