package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ludexhq/ludex/internal/api"
)

// waitEvent forwards one external event (authorizer escalation, session
// change) into the update loop, then re-arms itself.
func (a App) waitEvent() tea.Cmd {
	return func() tea.Msg {
		return <-a.events
	}
}

// searchCmd issues a catalog search tagged with the query sequence
func (a App) searchCmd(query string, seq int) tea.Cmd {
	return func() tea.Msg {
		games, err := a.client.SearchGames(context.Background(), query)
		return searchResultMsg{seq: seq, games: games, err: err}
	}
}

// loginCmd issues a login attempt
func (a App) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		session, err := a.sessions.Login(context.Background(), email, password)
		return loginResultMsg{session: session, err: err}
	}
}

// registerCmd issues a registration attempt
func (a App) registerCmd(nickname, email, password string, maxPrice float64) tea.Cmd {
	return func() tea.Msg {
		session, err := a.sessions.Register(context.Background(), nickname, email, password, maxPrice)
		return registerResultMsg{session: session, err: err}
	}
}

// loadGamesPage loads one catalog page for the browse view
func (a App) loadGamesPage(gen, page int) tea.Cmd {
	return func() tea.Msg {
		result, err := a.client.ListGames(context.Background(), page, a.pageSize, 0)
		return gamesPageMsg{gen: gen, page: result, err: err}
	}
}

// loadFavoritesPage loads one favorites page
func (a App) loadFavoritesPage(gen, page int) tea.Cmd {
	return func() tea.Msg {
		result, err := a.client.ListFavorites(context.Background(), page, a.pageSize)
		return favoritesPageMsg{gen: gen, page: result, err: err}
	}
}

// loadRecommendations loads the personalized recommendation list
func (a App) loadRecommendations(gen int) tea.Cmd {
	return func() tea.Msg {
		games, err := a.client.PersonalizedRecommendations(context.Background(), 2*a.pageSize)
		return recommendationsMsg{gen: gen, games: games, err: err}
	}
}

// loadDetail loads a game's detail page and its favorite flag
func (a App) loadDetail(gen int, gameID int64) tea.Cmd {
	return func() tea.Msg {
		game, err := a.client.GameByID(context.Background(), gameID)
		if err != nil {
			return detailMsg{gen: gen, err: err}
		}

		favorite := false
		if a.sessions.IsAuthenticated() {
			// Best-effort: an unknown flag renders as not-favorite.
			favorite, _ = a.client.IsFavorite(context.Background(), gameID)
		}
		return detailMsg{gen: gen, game: game, favorite: favorite}
	}
}

// toggleFavorite adds or removes a favorite. The visible state is only
// changed when the message comes back without an error.
func (a App) toggleFavorite(gen int, gameID int64, favorite bool) tea.Cmd {
	return func() tea.Msg {
		var err error
		if favorite {
			err = a.client.AddFavorite(context.Background(), api.SourceCatalog, gameID)
		} else {
			err = a.client.RemoveFavorite(context.Background(), gameID)
		}
		return favoriteToggledMsg{gen: gen, gameID: gameID, favorite: favorite, err: err}
	}
}

// saveProfile applies a profile update through the session service
func (a App) saveProfile(update api.ProfileUpdate) tea.Cmd {
	return func() tea.Msg {
		session, err := a.sessions.UpdateProfile(context.Background(), update)
		return profileSavedMsg{session: session, err: err}
	}
}
