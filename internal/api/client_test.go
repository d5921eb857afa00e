package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludexhq/ludex/internal/errors"
)

func TestLoginSuccess(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login-json", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Write([]byte(`{"token":"t1","token_type":"bearer","user":{"id":5,"nick":"x","email":"a@b.com"}}`))
	})
	server := newTestServer(t, handler)
	client := NewClient(server.URL)

	resp, err := client.Login(context.Background(), "a@b.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "t1", resp.Token)
	assert.Equal(t, int64(5), resp.User.ID)
	assert.Equal(t, "x", resp.User.Nick)
	assert.Equal(t, "a@b.com", resp.User.Email)
}

func TestLoginBadCredentials(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	server := newTestServer(t, handler)
	client := NewClient(server.URL)

	_, err := client.Login(context.Background(), "a@b.com", "wrong")

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidCredentials, errors.CodeOf(err))
}

func TestRegisterValidationDetailSurfacedVerbatim(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"email already registered"}`))
	})
	server := newTestServer(t, handler)
	client := NewClient(server.URL)

	_, err := client.Register(context.Background(), "x", "a@b.com", "pw", 40)

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidation, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "email already registered")
}

func TestRegisterServerFailureMapsToRegistrationFailed(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	server := newTestServer(t, handler)
	client := NewClient(server.URL)

	_, err := client.Register(context.Background(), "x", "a@b.com", "pw", 40)

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeRegistrationFailed, errors.CodeOf(err))
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantCode errors.ErrorCode
	}{
		{"unauthorized", http.StatusUnauthorized, errors.ErrCodeNotAuthenticated},
		{"forbidden", http.StatusForbidden, errors.ErrCodeNotAuthenticated},
		{"not found", http.StatusNotFound, errors.ErrCodeNotFound},
		{"bad request", http.StatusBadRequest, errors.ErrCodeValidation},
		{"unprocessable", http.StatusUnprocessableEntity, errors.ErrCodeValidation},
		{"server error", http.StatusInternalServerError, errors.ErrCodeServer},
		{"bad gateway", http.StatusBadGateway, errors.ErrCodeServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			server := newTestServer(t, handler)
			client := NewClient(server.URL)

			_, err := client.Me(context.Background())

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.CodeOf(err))
		})
	}
}

func TestTransportFailure(t *testing.T) {
	server := newTestServer(t, http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(url)
	_, err := client.ListGames(context.Background(), 1, 12, 0)

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeTransport, errors.CodeOf(err))
}

func TestSearchGamesSkipsNetworkForBlankQuery(t *testing.T) {
	calls := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`[]`))
	})
	server := newTestServer(t, handler)
	client := NewClient(server.URL)

	for _, query := range []string{"", "   ", "\t"} {
		games, err := client.SearchGames(context.Background(), query)
		require.NoError(t, err)
		assert.Empty(t, games)
	}

	assert.Zero(t, calls, "blank queries must not hit the network")
}

func TestListGamesQueryParameters(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "12", r.URL.Query().Get("page_size"))
		assert.Equal(t, "7", r.URL.Query().Get("genre"))
		w.Write([]byte(`{"count":1,"results":[{"id":10,"name":"Hades"}]}`))
	})
	server := newTestServer(t, handler)
	client := NewClient(server.URL)

	page, err := client.ListGames(context.Background(), 2, 12, 7)

	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Hades", page.Results[0].Name)
}

func TestFavoritesRoundTrip(t *testing.T) {
	var addBody string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/users/favorites", func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		addBody = string(buf)
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("DELETE /api/users/favorites/42", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /api/users/favorites/contains/42", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`true`))
	})
	server := newTestServer(t, mux)
	client := NewClient(server.URL)

	require.NoError(t, client.AddFavorite(context.Background(), SourceRAWG, 42))
	assert.JSONEq(t, `{"source":"rawg","game_id":42}`, addBody)

	fav, err := client.IsFavorite(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, fav)

	require.NoError(t, client.RemoveFavorite(context.Background(), 42))
}

func TestRecommendationsByGenresQuery(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{"rpg", "indie"}, r.URL.Query()["genre"])
		assert.Equal(t, "25.00", r.URL.Query().Get("max_price"))
		w.Write([]byte(`[{"id":1,"name":"Undertale"}]`))
	})
	server := newTestServer(t, handler)
	client := NewClient(server.URL)

	games, err := client.RecommendationsByGenres(context.Background(), []string{"rpg", "indie"}, 25, 10)

	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Undertale", games[0].Name)
}
