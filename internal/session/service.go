package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ludexhq/ludex/internal/api"
	"github.com/ludexhq/ludex/internal/errors"
	"github.com/ludexhq/ludex/internal/log"
)

// AuthAPI is the slice of the platform client the service needs
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	Register(ctx context.Context, nickname, email, password string, maxPrice float64) (*api.AuthResponse, error)
	RefreshToken(ctx context.Context, token string) (*api.AuthResponse, error)
	LogoutRemote(ctx context.Context) error
	UpdateMe(ctx context.Context, update api.ProfileUpdate) (*api.User, error)
}

// Session is the in-memory view of an authenticated session
type Session struct {
	Token string
	User  api.User
}

// Service is the single authority for authentication state transitions. All
// other components read session state through it; none write the store
// directly.
type Service struct {
	store  *Store
	client AuthAPI
	logger *log.Logger

	mu   sync.Mutex
	subs []func(*Session)
}

// NewService creates a session service over the store and API client
func NewService(store *Store, client AuthAPI, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Service{
		store:  store,
		client: client,
		logger: logger,
	}
}

// Subscribe registers a callback invoked after every state change. A nil
// session means the state became anonymous.
func (s *Service) Subscribe(fn func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Service) notify(session *Session) {
	s.mu.Lock()
	subs := make([]func(*Session), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(session)
	}
}

// Login authenticates with credentials. On success the token and identity are
// persisted atomically; on failure nothing is written.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	session, err := s.adopt(resp)
	if err != nil {
		return nil, err
	}

	s.logger.Info("logged in", "user_id", session.User.ID)
	return session, nil
}

// Register creates an account and, like Login, leaves the client
// authenticated on success.
func (s *Service) Register(ctx context.Context, nickname, email, password string, maxPrice float64) (*Session, error) {
	resp, err := s.client.Register(ctx, nickname, email, password, maxPrice)
	if err != nil {
		return nil, err
	}

	session, err := s.adopt(resp)
	if err != nil {
		return nil, err
	}

	s.logger.Info("registered", "user_id", session.User.ID)
	return session, nil
}

// adopt persists an auth response and publishes the new state
func (s *Service) adopt(resp *api.AuthResponse) (*Session, error) {
	state := State{
		Token:    resp.Token,
		UserID:   resp.User.ID,
		Nickname: resp.User.Nick,
		Email:    resp.User.Email,
	}
	if err := s.store.Save(state); err != nil {
		return nil, err
	}

	session := &Session{Token: resp.Token, User: resp.User}
	s.notify(session)
	return session, nil
}

// Logout clears the session and tells the server to discard it. Calling it
// while anonymous is a no-op, not an error.
func (s *Service) Logout(ctx context.Context) error {
	if !s.IsAuthenticated() {
		return nil
	}

	// Best-effort: the local session goes away regardless.
	if err := s.client.LogoutRemote(ctx); err != nil {
		s.logger.Debug("remote logout failed", "error", err)
	}

	if err := s.store.Clear(); err != nil {
		return err
	}
	s.notify(nil)
	s.logger.Info("logged out")
	return nil
}

// Invalidate clears the local session without a network call or navigation.
// The request authorizer calls it on 401/403; it is idempotent.
func (s *Service) Invalidate() {
	if !s.store.Current().Authenticated() {
		return
	}
	if err := s.store.Clear(); err != nil {
		s.logger.Warn("failed to clear session file", "error", err)
	}
	s.notify(nil)
}

// IsAuthenticated reports whether a token is present. Local check only; never
// touches the network.
func (s *Service) IsAuthenticated() bool {
	return s.store.Token() != ""
}

// Token returns the current bearer token, or "" when anonymous
func (s *Service) Token() string {
	return s.store.Token()
}

// CurrentUserID returns the cached user ID when authenticated
func (s *Service) CurrentUserID() (int64, bool) {
	state := s.store.Current()
	if !state.Authenticated() {
		return 0, false
	}
	return state.UserID, true
}

// CurrentUser returns the cached identity when authenticated
func (s *Service) CurrentUser() (api.User, bool) {
	state := s.store.Current()
	if !state.Authenticated() {
		return api.User{}, false
	}
	return api.User{ID: state.UserID, Nick: state.Nickname, Email: state.Email}, true
}

// RefreshToken exchanges the current token for a fresh one. On failure the
// old token is assumed dead: the session is cleared and SessionExpired
// returned.
func (s *Service) RefreshToken(ctx context.Context) (*Session, error) {
	token := s.store.Token()
	if token == "" {
		return nil, errors.NewNotAuthenticatedError("refresh token")
	}

	resp, err := s.client.RefreshToken(ctx, token)
	if err != nil {
		s.Invalidate()
		return nil, errors.Wrap(errors.ErrCodeSessionExpired, "token refresh rejected", err)
	}

	return s.adopt(resp)
}

// TokenNeedsRefresh reports whether the bearer token expires within leeway.
// The token is inspected without signature verification; only the server can
// actually validate it.
func (s *Service) TokenNeedsRefresh(leeway time.Duration) bool {
	token := s.store.Token()
	if token == "" {
		return false
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		// Opaque tokens carry no expiry; leave refresh to the 401 path.
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return time.Until(claims.ExpiresAt.Time) < leeway
}

// UpdateProfile applies a partial profile update. Identity fields change; the
// token does not.
func (s *Service) UpdateProfile(ctx context.Context, update api.ProfileUpdate) (*Session, error) {
	state := s.store.Current()
	if !state.Authenticated() {
		return nil, errors.NewNotAuthenticatedError("update profile")
	}

	user, err := s.client.UpdateMe(ctx, update)
	if err != nil {
		return nil, err
	}

	next := State{
		Token:    state.Token,
		UserID:   user.ID,
		Nickname: user.Nick,
		Email:    user.Email,
	}
	if err := s.store.Save(next); err != nil {
		return nil, err
	}

	session := &Session{Token: state.Token, User: *user}
	s.notify(session)
	return session, nil
}

// SetReturnTo records the pending return navigation for the route guard
func (s *Service) SetReturnTo(path string) {
	if err := s.store.SetReturnTo(path); err != nil {
		s.logger.Warn("failed to record return path", "error", err)
	}
}

// ConsumeReturnTo returns the pending return path, clearing it
func (s *Service) ConsumeReturnTo() string {
	return s.store.ConsumeReturnTo()
}
