// Package route models the application's navigable views and the guard that
// keeps anonymous users out of protected ones.
package route

import "strings"

// Route is a navigable view path, mirroring the site's URL space
type Route string

// Application routes
const (
	Home            Route = "/"
	Games           Route = "/games"
	GameDetail      Route = "/game"
	Search          Route = "/search"
	Login           Route = "/auth"
	Register        Route = "/register"
	Favorites       Route = "/favorites"
	Recommendations Route = "/recommendations"
	Profile         Route = "/profile"
)

// protected lists the routes that require an authenticated session
var protected = map[Route]bool{
	Favorites:       true,
	Recommendations: true,
	Profile:         true,
}

// IsProtected reports whether target requires a session. Detail-style routes
// ("/game/42") inherit from their base route.
func IsProtected(target Route) bool {
	if protected[target] {
		return true
	}
	base := Route("/" + firstSegment(string(target)))
	return protected[base]
}

func firstSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return path
}

// SessionReader is the slice of the session service the guard needs
type SessionReader interface {
	IsAuthenticated() bool
	SetReturnTo(path string)
	ConsumeReturnTo() string
}

// Decision is the outcome of a guard check
type Decision struct {
	// Allowed means navigation may proceed to the target
	Allowed bool
	// RedirectTo is where to go instead when denied
	RedirectTo Route
}

// Guard gates navigation to protected routes. The check is synchronous and
// local; it never makes a network call.
type Guard struct {
	sessions SessionReader
}

// NewGuard creates a guard over the session service
func NewGuard(sessions SessionReader) *Guard {
	return &Guard{sessions: sessions}
}

// Check decides whether navigation to target may proceed. When denied, the
// original target is recorded as the pending return path (last write wins)
// and the caller is redirected to the login route.
func (g *Guard) Check(target Route) Decision {
	if !IsProtected(target) || g.sessions.IsAuthenticated() {
		return Decision{Allowed: true}
	}

	g.sessions.SetReturnTo(string(target))
	return Decision{Allowed: false, RedirectTo: Login}
}

// AfterLogin returns where to navigate after a successful login: the pending
// return target if one was recorded, otherwise fallback. The target is
// consumed; a second call returns fallback.
func (g *Guard) AfterLogin(fallback Route) Route {
	if target := g.sessions.ConsumeReturnTo(); target != "" {
		return Route(target)
	}
	return fallback
}
