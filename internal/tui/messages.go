package tui

import (
	"github.com/ludexhq/ludex/internal/api"
	"github.com/ludexhq/ludex/internal/route"
	"github.com/ludexhq/ludex/internal/session"
)

// sessionChangedMsg is published whenever the session service changes state.
// A nil session means the client became anonymous.
type sessionChangedMsg struct {
	session *session.Session
}

// forcedLogoutMsg is posted by the request authorizer when an in-flight
// request came back 401/403: the session is already cleared, the UI must land
// on the login view.
type forcedLogoutMsg struct{}

// navigateMsg requests a view change
type navigateMsg struct {
	target route.Route
}

// searchDebounceMsg fires when the search quiet period elapses. Only the tick
// matching the latest input sequence issues a request.
type searchDebounceMsg struct {
	seq int
}

// searchResultMsg carries results for the query identified by seq; stale
// sequences are dropped.
type searchResultMsg struct {
	seq   int
	games []api.Game
	err   error
}

// gamesPageMsg carries one catalog page for the browse view
type gamesPageMsg struct {
	gen  int
	page *api.Page
	err  error
}

// favoritesPageMsg carries one favorites page
type favoritesPageMsg struct {
	gen  int
	page *api.FavoritesPage
	err  error
}

// recommendationsMsg carries the recommendation list
type recommendationsMsg struct {
	gen   int
	games []api.Game
	err   error
}

// detailMsg carries a game detail page plus its favorite flag
type detailMsg struct {
	gen      int
	game     *api.GameDetails
	favorite bool
	err      error
}

// loginResultMsg carries the outcome of a login attempt
type loginResultMsg struct {
	session *session.Session
	err     error
}

// registerResultMsg carries the outcome of a registration attempt
type registerResultMsg struct {
	session *session.Session
	err     error
}

// favoriteToggledMsg carries the outcome of an add/remove favorite. The view
// applies the change only on success.
type favoriteToggledMsg struct {
	gen      int
	gameID   int64
	favorite bool
	err      error
}

// profileSavedMsg carries the outcome of a profile update
type profileSavedMsg struct {
	session *session.Session
	err     error
}
