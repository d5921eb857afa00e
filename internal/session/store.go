// Package session owns the client-side authentication state: the persisted
// session file, the in-process session service, and the transitions between
// anonymous and authenticated.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/ludexhq/ludex/internal/errors"
)

// State is the persisted session. Token and identity fields are set and
// cleared together; Save rejects anything in between. ReturnTo is the pending
// return navigation recorded when a guard bounces an anonymous user; it
// survives a login round-trip and is consumed once.
type State struct {
	Token    string `json:"token,omitempty"`
	UserID   int64  `json:"user_id,omitempty"`
	Nickname string `json:"nickname,omitempty"`
	Email    string `json:"email,omitempty"`
	ReturnTo string `json:"return_to,omitempty"`
}

// Authenticated reports whether the state carries a session
func (s State) Authenticated() bool {
	return s.Token != ""
}

// complete reports whether token and identity are consistent: both present or
// both absent.
func (s State) complete() bool {
	if s.Token == "" {
		return s.UserID == 0 && s.Nickname == "" && s.Email == ""
	}
	return s.UserID != 0 && s.Nickname != "" && s.Email != ""
}

// Store is the file-backed session store, the one canonical location for the
// token and cached identity. The session Service is its only writer; other
// components read through Token and Current.
type Store struct {
	path string

	mu    sync.Mutex
	state State
}

// NewStore creates a store over the given file path and loads any existing
// state. A missing or unreadable file yields an anonymous state; a corrupt
// file is reported but still yields a usable store.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, errors.Wrap(errors.ErrCodeFileReadFailed, "failed to read session file", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return s, errors.Wrap(errors.ErrCodeSessionCorrupt, "session file is corrupt", err)
	}
	if !state.complete() {
		// Drifted partial state from an older client. Treat as anonymous
		// rather than carrying a token without identity.
		state = State{ReturnTo: state.ReturnTo}
	}

	s.state = state
	return s, nil
}

// Current returns a copy of the current state
func (s *Store) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Token returns the current bearer token, or "" when anonymous
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

// Save atomically replaces the session fields, preserving any pending return
// path. Partial states are rejected.
func (s *Store) Save(state State) error {
	if !state.complete() {
		return errors.New(errors.ErrCodeSessionIncomplete,
			"session must carry token and identity together")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state.ReturnTo = s.state.ReturnTo
	if err := s.write(state); err != nil {
		return err
	}
	s.state = state
	return nil
}

// Clear removes the session fields. Idempotent: clearing an anonymous store
// is a no-op. The pending return path survives so a post-login redirect still
// works after a forced logout.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Authenticated() {
		return nil
	}

	cleared := State{ReturnTo: s.state.ReturnTo}
	if err := s.write(cleared); err != nil {
		return err
	}
	s.state = cleared
	return nil
}

// SetReturnTo records the pending return navigation. Last write wins.
func (s *Store) SetReturnTo(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state
	next.ReturnTo = path
	if err := s.write(next); err != nil {
		return err
	}
	s.state = next
	return nil
}

// ConsumeReturnTo returns the pending return path and clears it. The second
// call returns "".
func (s *Store) ConsumeReturnTo() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.state.ReturnTo
	if path == "" {
		return ""
	}

	next := s.state
	next.ReturnTo = ""
	if err := s.write(next); err == nil {
		s.state = next
	}
	return path
}

// write persists state with a temp-file rename so readers never observe a
// half-written session. Caller holds the mutex.
func (s *Store) write(state State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to create data directory", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to encode session", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "session-*.json")
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to create temp session file", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to write session file", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to set session file mode", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to close session file", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to replace session file", err)
	}
	return nil
}
