package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ludexhq/ludex/internal/errors"
	"github.com/ludexhq/ludex/internal/session"
)

type loginRecorder struct {
	calls []Credentials
}

func (r *loginRecorder) login(email, password string) tea.Cmd {
	r.calls = append(r.calls, Credentials{Email: email, Password: password})
	return nil
}

func TestLoginRejectedShowsInlineMessage(t *testing.T) {
	rec := &loginRecorder{}
	m := NewLoginModel(rec.login)

	m, _ = m.Update(loginResultMsg{err: errors.NewInvalidCredentialsError()})

	if m.errLine != "Credenciales incorrectas" {
		t.Errorf("expected %q, got %q", "Credenciales incorrectas", m.errLine)
	}
	if m.busy {
		t.Error("expected busy flag cleared after a rejected login")
	}
}

func TestLoginTransportFailureShowsGenericMessage(t *testing.T) {
	rec := &loginRecorder{}
	m := NewLoginModel(rec.login)

	m, _ = m.Update(loginResultMsg{err: errors.NewServerError(502)})

	if m.errLine == "" {
		t.Error("expected an inline message on a failed login")
	}
	if m.errLine == "Credenciales incorrectas" {
		t.Error("a server failure must not read as bad credentials")
	}
}

func TestLoginSuccessClearsInlineMessage(t *testing.T) {
	rec := &loginRecorder{}
	m := NewLoginModel(rec.login)
	m.errLine = "Credenciales incorrectas"

	m, _ = m.Update(loginResultMsg{session: &session.Session{Token: "t1"}})

	if m.errLine != "" {
		t.Errorf("expected inline message cleared, got %q", m.errLine)
	}
}

func TestLoginSubmitRequiresBothFields(t *testing.T) {
	rec := &loginRecorder{}
	m := NewLoginModel(rec.login)

	m.email.SetValue("ana@example.com")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if len(rec.calls) != 0 {
		t.Fatalf("expected no request without a password, got %d", len(rec.calls))
	}
	if m.errLine == "" {
		t.Error("expected a validation message")
	}

	m.password.SetValue("secret")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if len(rec.calls) != 1 {
		t.Fatalf("expected one request, got %d", len(rec.calls))
	}
	if rec.calls[0].Email != "ana@example.com" || rec.calls[0].Password != "secret" {
		t.Errorf("unexpected credentials submitted: %+v", rec.calls[0])
	}
	if !m.busy {
		t.Error("expected busy flag set while the request is in flight")
	}
}

func TestLoginResetClearsForm(t *testing.T) {
	rec := &loginRecorder{}
	m := NewLoginModel(rec.login)
	m.email.SetValue("ana@example.com")
	m.password.SetValue("secret")
	m.errLine = "Credenciales incorrectas"
	m.busy = true

	m = m.Reset()

	if m.email.Value() != "" || m.password.Value() != "" {
		t.Error("expected both fields cleared")
	}
	if m.errLine != "" || m.busy {
		t.Error("expected error line and busy flag cleared")
	}
}
