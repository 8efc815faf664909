package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) TMDBAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewTMDBAdapter(TMDBConfig{APIKey: "k", BaseURL: srv.URL + "/", Language: "uk-UA", Timeout: time.Second}, nil)
}

func TestFetchGenres(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/genre/movie/list", r.URL.Path)
		assert.Equal(t, "k", r.URL.Query().Get("api_key"))
		assert.Equal(t, "uk-UA", r.URL.Query().Get("language"))
		_, _ = w.Write([]byte(`{"genres":[{"id":28,"name":"Бойовик"},{"id":35,"name":"Комедія"}]}`))
	})

	genres, err := a.FetchGenres(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []TMDBGenre{{ID: 28, Name: "Бойовик"}, {ID: 35, Name: "Комедія"}}, genres)
}

func TestSearchMoviesSendsQuery(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "the dark knight", q.Get("query"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "false", q.Get("include_adult"))
		_, _ = w.Write([]byte(`{"results":[]}`))
	})

	body, err := a.SearchMovies(context.Background(), "the dark knight", 2)
	require.NoError(t, err)
	assert.JSONEq(t, `{"results":[]}`, string(body))
}

func TestMovieDetailsAppendsCredits(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/155", r.URL.Path)
		assert.Equal(t, "credits", r.URL.Query().Get("append_to_response"))
		_, _ = w.Write([]byte(`{"id":155}`))
	})

	_, err := a.MovieDetails(context.Background(), 155)
	require.NoError(t, err)
}

func TestNonSuccessStatusIsUpstreamError(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status_message":"Invalid API key"}`, http.StatusUnauthorized)
	})

	_, err := a.SearchMovies(context.Background(), "x", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUpstreamUnavailable))
	var upstream *domain.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusUnauthorized, upstream.StatusCode)
}

func TestTransportFailureIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	a := NewTMDBAdapter(TMDBConfig{APIKey: "k", BaseURL: srv.URL}, nil)

	_, err := a.MovieDetails(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestMalformedGenreListIsUpstreamError(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})
	_, err := a.FetchGenres(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}
