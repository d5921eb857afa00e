// Package tui implements the interactive terminal client: catalog browsing,
// incremental search, favorites, recommendations, and the auth views.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ludexhq/ludex/internal/api"
	"github.com/ludexhq/ludex/internal/route"
	"github.com/ludexhq/ludex/internal/session"
)

// App is the root model. It owns navigation: every view change goes through
// the route guard, and every data load is tagged with a generation so results
// for a view the user already left are dropped.
type App struct {
	client   *api.Client
	sessions *session.Service
	guard    *route.Guard
	events   chan tea.Msg
	pageSize int
	styles   Styles

	width  int
	height int

	view route.Route
	prev route.Route
	gen  int

	search   SearchModel
	login    LoginModel
	register RegisterModel
	detail   DetailModel
	profile  ProfileModel

	browse    gameList
	favorites gameList
	recs      gameList
	spin      spinner.Model

	detailID int64
	status   string
	nick     string
}

// NewApp wires the root model. The returned app's PostEvent must be hooked up
// as the request authorizer's navigator before the program starts.
func NewApp(client *api.Client, sessions *session.Service, pageSize int) App {
	app := App{
		client:   client,
		sessions: sessions,
		guard:    route.NewGuard(sessions),
		events:   make(chan tea.Msg, 8),
		pageSize: pageSize,
		styles:   DefaultStyles(),
		view:     route.Home,
		prev:     route.Home,
	}

	app.search = NewSearchModel(app.searchCmd)
	app.login = NewLoginModel(app.loginCmd)
	app.register = NewRegisterModel(app.registerCmd)
	app.profile = NewProfileModel(app.saveProfile)
	app.browse = newGameList()
	app.favorites = newGameList()
	app.recs = newGameList()
	app.spin = spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(app.styles.Status))

	if user, ok := sessions.CurrentUser(); ok {
		app.nick = user.Nick
	}
	sessions.Subscribe(func(s *session.Session) {
		app.PostEvent(sessionChangedMsg{session: s})
	})

	return app
}

// NavigateToLogin satisfies the authorizer's navigator: a rejected in-flight
// request lands the user on the login view.
func (a App) NavigateToLogin() {
	a.PostEvent(forcedLogoutMsg{})
}

// PostEvent injects a message into the update loop from outside it. The send
// never blocks; under backpressure the event is dropped, which only matters
// for duplicate notifications.
func (a App) PostEvent(msg tea.Msg) {
	select {
	case a.events <- msg:
	default:
	}
}

// Init starts listening for external events
func (a App) Init() tea.Cmd {
	return tea.Batch(a.waitEvent(), a.spin.Tick)
}

// Update is the root message dispatcher
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case sessionChangedMsg:
		if msg.session != nil {
			a.nick = msg.session.User.Nick
		} else {
			a.nick = ""
		}
		return a, a.waitEvent()

	case forcedLogoutMsg:
		// The session is already cleared; cancel whatever is loading and
		// land on login.
		a.gen++
		a.prev = a.view
		a.view = route.Login
		a.login = a.login.Reset()
		a.status = "Tu sesión ha expirado. Inicia sesión de nuevo."
		return a, a.waitEvent()

	case navigateMsg:
		return a.navigate(msg.target)

	case searchDebounceMsg, searchResultMsg:
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		return a, cmd

	case gamesPageMsg:
		if msg.gen != a.gen {
			return a, nil
		}
		a.applyPage(&a.browse, msg.page, msg.err)
		return a, nil

	case favoritesPageMsg:
		if msg.gen != a.gen {
			return a, nil
		}
		if msg.err != nil {
			a.favorites.loading = false
			a.favorites.notice = "No se pudieron cargar los favoritos."
			return a, nil
		}
		a.favorites.addPage(favoriteGames(msg.page.Results), msg.page.Count)
		return a, nil

	case recommendationsMsg:
		if msg.gen != a.gen {
			return a, nil
		}
		if msg.err != nil {
			a.recs.loading = false
			a.recs.notice = "No se pudieron cargar las recomendaciones."
			return a, nil
		}
		a.recs.addPage(msg.games, len(msg.games))
		a.recs.done = true
		return a, nil

	case detailMsg:
		if msg.gen != a.gen {
			return a, nil
		}
		if msg.err != nil {
			a.detail.loading = false
			a.detail.notice = "No se pudo cargar el juego."
			return a, nil
		}
		a.detail.setGame(msg.game, msg.favorite)
		return a, nil

	case loginResultMsg:
		var cmd tea.Cmd
		a.login, cmd = a.login.Update(msg)
		if msg.err == nil && msg.session != nil {
			a.status = "Hola, " + msg.session.User.Nick
			next, navCmd := a.navigate(a.guard.AfterLogin(route.Home))
			return next, tea.Batch(cmd, navCmd)
		}
		return a, cmd

	case registerResultMsg:
		var cmd tea.Cmd
		a.register, cmd = a.register.Update(msg)
		if msg.err == nil && msg.session != nil {
			a.status = "Cuenta creada. Hola, " + msg.session.User.Nick
			next, navCmd := a.navigate(a.guard.AfterLogin(route.Home))
			return next, tea.Batch(cmd, navCmd)
		}
		return a, cmd

	case favoriteToggledMsg:
		if msg.gen != a.gen {
			return a, nil
		}
		if msg.err != nil {
			a.status = "No se pudo actualizar favoritos."
			return a, nil
		}
		if a.view == route.GameDetail && a.detailID == msg.gameID {
			a.detail.favorite = msg.favorite
		}
		if !msg.favorite {
			a.favorites.remove(msg.gameID)
		}
		return a, nil

	case profileSavedMsg:
		var cmd tea.Cmd
		a.profile, cmd = a.profile.Update(msg)
		if msg.err == nil && msg.session != nil {
			a.nick = msg.session.User.Nick
			a.status = "Perfil actualizado"
		}
		return a, cmd
	}

	return a, nil
}

func (a App) applyPage(list *gameList, page *api.Page, err error) {
	if err != nil {
		list.loading = false
		list.notice = "No se pudo cargar el catálogo."
		return
	}
	list.addPage(page.Results, page.Count)
}

// handleKey routes keystrokes: global shortcuts first, then the active view
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if !a.textEntry() {
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "g":
			return a.navigate(route.Games)
		case "s":
			return a.navigate(route.Search)
		case "f":
			if a.view != route.GameDetail {
				return a.navigate(route.Favorites)
			}
		case "r":
			return a.navigate(route.Recommendations)
		case "p":
			return a.navigate(route.Profile)
		case "l":
			if a.sessionless() {
				return a.navigate(route.Login)
			}
		}
	}

	switch a.view {
	case route.Games:
		return a.listKey(msg, &a.browse, a.nextBrowsePage)
	case route.Favorites:
		return a.listKey(msg, &a.favorites, a.nextFavoritesPage)
	case route.Recommendations:
		return a.listKey(msg, &a.recs, nil)

	case route.Search:
		if msg.String() == "enter" {
			if game, ok := a.search.Selected(); ok {
				return a.openDetail(game.ID)
			}
			return a, nil
		}
		if msg.String() == "esc" {
			return a.navigate(route.Home)
		}
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		return a, cmd

	case route.GameDetail:
		switch msg.String() {
		case "f":
			return a.toggleDetailFavorite()
		case "esc":
			return a.navigate(a.prev)
		}
		return a, nil

	case route.Login:
		switch msg.String() {
		case "esc":
			return a.navigate(route.Home)
		case "ctrl+r":
			return a.navigate(route.Register)
		}
		var cmd tea.Cmd
		a.login, cmd = a.login.Update(msg)
		return a, cmd

	case route.Register:
		if msg.String() == "esc" {
			return a.navigate(route.Login)
		}
		var cmd tea.Cmd
		a.register, cmd = a.register.Update(msg)
		return a, cmd

	case route.Profile:
		if msg.String() == "esc" && !a.profile.Editing() {
			return a.navigate(route.Home)
		}
		var cmd tea.Cmd
		a.profile, cmd = a.profile.Update(msg)
		return a, cmd
	}

	return a, nil
}

// listKey handles cursor movement and selection for the scrolling lists.
// Moving near the end of a list with pages remaining triggers the next load.
func (a App) listKey(msg tea.KeyMsg, list *gameList, loadNext func() tea.Cmd) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		list.moveUp()
		return a, nil
	case "down", "j":
		list.moveDown()
		if loadNext != nil && list.nearEnd() {
			list.loading = true
			return a, loadNext()
		}
		return a, nil
	case "enter":
		if game, ok := list.selected(); ok {
			return a.openDetail(game.ID)
		}
		return a, nil
	case "esc":
		return a.navigate(route.Home)
	}
	return a, nil
}

func (a App) nextBrowsePage() tea.Cmd {
	return a.loadGamesPage(a.gen, a.browse.page+1)
}

func (a App) nextFavoritesPage() tea.Cmd {
	return a.loadFavoritesPage(a.gen, a.favorites.page+1)
}

// navigate moves to target through the route guard. A denied check records
// the intended destination and lands on login instead.
func (a App) navigate(target route.Route) (tea.Model, tea.Cmd) {
	decision := a.guard.Check(target)
	if !decision.Allowed {
		a.gen++
		a.prev = a.view
		a.view = decision.RedirectTo
		a.login = a.login.Reset()
		a.status = "Inicia sesión para continuar"
		return a, nil
	}

	if id, ok := detailTarget(target); ok {
		return a.openDetail(id)
	}

	a.gen++
	a.prev = a.view
	a.view = target
	a.status = ""

	switch target {
	case route.Games:
		a.browse.reset()
		a.browse.loading = true
		return a, a.loadGamesPage(a.gen, 1)
	case route.Favorites:
		a.favorites.reset()
		a.favorites.loading = true
		return a, a.loadFavoritesPage(a.gen, 1)
	case route.Recommendations:
		a.recs.reset()
		a.recs.loading = true
		return a, a.loadRecommendations(a.gen)
	case route.Profile:
		if user, ok := a.sessions.CurrentUser(); ok {
			a.profile.setUser(user)
		}
		return a, nil
	case route.Login:
		a.login = a.login.Reset()
		return a, nil
	}

	return a, nil
}

// openDetail loads a game's detail view
func (a App) openDetail(gameID int64) (tea.Model, tea.Cmd) {
	a.gen++
	a.prev = a.view
	a.view = route.GameDetail
	a.detailID = gameID
	a.detail = DetailModel{loading: true}
	return a, a.loadDetail(a.gen, gameID)
}

// toggleDetailFavorite flips the favorite state of the shown game. Anonymous
// users are sent to login with the detail route recorded for return.
func (a App) toggleDetailFavorite() (tea.Model, tea.Cmd) {
	if a.detail.game == nil {
		return a, nil
	}
	if !a.sessions.IsAuthenticated() {
		a.sessions.SetReturnTo(fmt.Sprintf("%s/%d", route.GameDetail, a.detailID))
		a.gen++
		a.prev = a.view
		a.view = route.Login
		a.login = a.login.Reset()
		a.status = "Inicia sesión para guardar favoritos"
		return a, nil
	}
	return a, a.toggleFavorite(a.gen, a.detailID, !a.detail.favorite)
}

// textEntry reports whether the active view is capturing free-form text, in
// which case single-letter shortcuts stay disabled.
func (a App) textEntry() bool {
	switch a.view {
	case route.Search, route.Login, route.Register:
		return true
	case route.Profile:
		return a.profile.Editing()
	}
	return false
}

func (a App) sessionless() bool {
	return !a.sessions.IsAuthenticated()
}

// detailTarget parses routes of the form "/game/42"
func detailTarget(target route.Route) (int64, bool) {
	path := string(target)
	prefix := string(route.GameDetail) + "/"
	if !strings.HasPrefix(path, prefix) {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(path, prefix), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// View renders the active view with a shared header and footer
func (a App) View() string {
	var b strings.Builder

	header := "Ludex"
	if a.nick != "" {
		header += " · " + a.nick
	}
	b.WriteString(a.styles.Title.Render(header))
	b.WriteString("\n")
	if a.status != "" {
		b.WriteString(a.styles.Status.Render(a.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	listHeight := a.height - 8
	if listHeight < 5 {
		listHeight = 12
	}

	switch a.view {
	case route.Home:
		b.WriteString(a.styles.Subtitle.Render("Discover your next game."))
		b.WriteString("\n")
		b.WriteString(a.styles.Help.Render("g games · s search · f favorites · r recommendations · p profile · q quit"))
	case route.Games:
		b.WriteString(a.styles.Subtitle.Render("Catalog"))
		b.WriteString("\n")
		b.WriteString(a.browse.render(a.styles, listHeight, a.spin.View()))
	case route.Favorites:
		b.WriteString(a.styles.Subtitle.Render("Favorites"))
		b.WriteString("\n")
		b.WriteString(a.favorites.render(a.styles, listHeight, a.spin.View()))
	case route.Recommendations:
		b.WriteString(a.styles.Subtitle.Render("Recommended for you"))
		b.WriteString("\n")
		b.WriteString(a.recs.render(a.styles, listHeight, a.spin.View()))
	case route.Search:
		b.WriteString(a.search.View(a.styles))
	case route.GameDetail:
		b.WriteString(a.detail.View(a.styles))
	case route.Login:
		b.WriteString(a.login.View(a.styles))
	case route.Register:
		b.WriteString(a.register.View(a.styles))
	case route.Profile:
		b.WriteString(a.profile.View(a.styles))
	}

	return b.String()
}

// favoriteGames converts favorite rows into list rows
func favoriteGames(favorites []api.Favorite) []api.Game {
	games := make([]api.Game, 0, len(favorites))
	for _, f := range favorites {
		games = append(games, api.Game{
			ID:              f.GameID,
			Name:            f.Name,
			BackgroundImage: f.BackgroundImage,
		})
	}
	return games
}
