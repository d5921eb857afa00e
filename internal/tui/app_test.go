package tui

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ludexhq/ludex/internal/api"
	"github.com/ludexhq/ludex/internal/route"
	"github.com/ludexhq/ludex/internal/session"
)

type fakeAuth struct {
	resp *api.AuthResponse
}

func (f *fakeAuth) Login(context.Context, string, string) (*api.AuthResponse, error) {
	return f.resp, nil
}

func (f *fakeAuth) Register(context.Context, string, string, string, float64) (*api.AuthResponse, error) {
	return f.resp, nil
}

func (f *fakeAuth) RefreshToken(context.Context, string) (*api.AuthResponse, error) {
	return f.resp, nil
}

func (f *fakeAuth) LogoutRemote(context.Context) error { return nil }

func (f *fakeAuth) UpdateMe(context.Context, api.ProfileUpdate) (*api.User, error) {
	return &f.resp.User, nil
}

func newTestApp(t *testing.T) (App, *session.Service) {
	t.Helper()

	store, err := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	auth := &fakeAuth{resp: &api.AuthResponse{
		Token: "tok",
		User:  api.User{ID: 7, Nick: "ana", Email: "ana@example.com"},
	}}
	svc := session.NewService(store, auth, nil)
	client := api.NewClient("http://127.0.0.1:1")

	return NewApp(client, svc, 12), svc
}

func asApp(t *testing.T, model interface{ View() string }) App {
	t.Helper()
	app, ok := model.(App)
	if !ok {
		t.Fatalf("expected App model, got %T", model)
	}
	return app
}

func TestAnonymousProtectedNavigationLandsOnLogin(t *testing.T) {
	app, svc := newTestApp(t)

	model, cmd := app.Update(navigateMsg{target: route.Favorites})
	app = asApp(t, model)

	if app.view != route.Login {
		t.Fatalf("expected login view, got %s", app.view)
	}
	if cmd != nil {
		t.Error("denied navigation must not load anything")
	}
	if app.status == "" {
		t.Error("expected a status line telling the user to sign in")
	}

	// The denied destination is recorded for the post-login redirect.
	if got := svc.ConsumeReturnTo(); got != string(route.Favorites) {
		t.Errorf("expected return path %q, got %q", route.Favorites, got)
	}
}

func TestLoginReturnsToDeniedDestination(t *testing.T) {
	app, svc := newTestApp(t)

	model, _ := app.Update(navigateMsg{target: route.Recommendations})
	app = asApp(t, model)
	if app.view != route.Login {
		t.Fatalf("expected login view, got %s", app.view)
	}

	sess, err := svc.Login(context.Background(), "ana@example.com", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	model, cmd := app.Update(loginResultMsg{session: sess})
	app = asApp(t, model)

	if app.view != route.Recommendations {
		t.Errorf("expected redirect to %s, got %s", route.Recommendations, app.view)
	}
	if cmd == nil {
		t.Error("expected the destination view to start loading")
	}

	// The redirect is consumed: nothing pending for the next login.
	if got := svc.ConsumeReturnTo(); got != "" {
		t.Errorf("expected return path consumed, got %q", got)
	}
}

func TestLoginWithoutPendingDestinationGoesHome(t *testing.T) {
	app, svc := newTestApp(t)

	model, _ := app.Update(navigateMsg{target: route.Login})
	app = asApp(t, model)

	sess, err := svc.Login(context.Background(), "ana@example.com", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	model, _ = app.Update(loginResultMsg{session: sess})
	app = asApp(t, model)

	if app.view != route.Home {
		t.Errorf("expected home view, got %s", app.view)
	}
}

func TestForcedLogoutLandsOnLogin(t *testing.T) {
	app, svc := newTestApp(t)

	if _, err := svc.Login(context.Background(), "ana@example.com", "secret"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	model, _ := app.Update(navigateMsg{target: route.Favorites})
	app = asApp(t, model)
	if app.view != route.Favorites {
		t.Fatalf("expected favorites view, got %s", app.view)
	}

	model, _ = app.Update(forcedLogoutMsg{})
	app = asApp(t, model)

	if app.view != route.Login {
		t.Errorf("expected login view after forced logout, got %s", app.view)
	}
	if app.status == "" {
		t.Error("expected an expiry notice")
	}
}

func TestStalePageResultIsDropped(t *testing.T) {
	app, _ := newTestApp(t)

	model, _ := app.Update(navigateMsg{target: route.Games})
	app = asApp(t, model)
	stale := app.gen

	// The user leaves before the page arrives.
	model, _ = app.Update(navigateMsg{target: route.Search})
	app = asApp(t, model)

	page := &api.Page{Count: 1, Results: []api.Game{{ID: 1, Name: "Celeste"}}}
	model, _ = app.Update(gamesPageMsg{gen: stale, page: page})
	app = asApp(t, model)

	if len(app.browse.items) != 0 {
		t.Errorf("stale page must not populate the list, got %d items", len(app.browse.items))
	}
}

func TestFreshPageResultApplies(t *testing.T) {
	app, _ := newTestApp(t)

	model, _ := app.Update(navigateMsg{target: route.Games})
	app = asApp(t, model)

	page := &api.Page{Count: 2, Results: []api.Game{{ID: 1, Name: "Celeste"}, {ID: 2, Name: "Hades"}}}
	model, _ = app.Update(gamesPageMsg{gen: app.gen, page: page})
	app = asApp(t, model)

	if len(app.browse.items) != 2 {
		t.Errorf("expected 2 items, got %d", len(app.browse.items))
	}
}

func TestDetailTargetParsing(t *testing.T) {
	if id, ok := detailTarget(route.Route("/game/42")); !ok || id != 42 {
		t.Errorf("expected /game/42 to parse to 42, got %d %v", id, ok)
	}
	for _, target := range []route.Route{route.Games, route.Route("/game/"), route.Route("/game/abc")} {
		if _, ok := detailTarget(target); ok {
			t.Errorf("expected %s not to parse as a detail route", target)
		}
	}
}

func TestFavoriteRowsBecomeListRows(t *testing.T) {
	games := favoriteGames([]api.Favorite{
		{Source: api.SourceRAWG, GameID: 42, Name: "Outer Wilds"},
		{Source: api.SourceCatalog, GameID: 7, Name: "Celeste"},
	})

	if len(games) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(games))
	}
	if games[0].ID != 42 || games[0].Name != "Outer Wilds" {
		t.Errorf("unexpected first row: %+v", games[0])
	}
}
