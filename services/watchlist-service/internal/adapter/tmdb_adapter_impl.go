package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/domain"
)

// TMDBConfig holds what the adapter needs from the service config.
type TMDBConfig struct {
	APIKey   string
	BaseURL  string
	Language string
	Timeout  time.Duration
}

type tmdbAdapterImpl struct {
	cfg    TMDBConfig
	client *http.Client
}

// NewTMDBAdapter builds the adapter. A nil client gets one with cfg.Timeout (5s when unset).
func NewTMDBAdapter(cfg TMDBConfig, client *http.Client) TMDBAdapter {
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &tmdbAdapterImpl{cfg: cfg, client: client}
}

// FetchGenres loads the full movie genre list.
func (a *tmdbAdapterImpl) FetchGenres(ctx context.Context) ([]TMDBGenre, error) {
	body, err := a.doRequest(ctx, "/genre/movie/list", nil)
	if err != nil {
		return nil, err
	}
	var list TMDBGenreList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, &domain.UpstreamError{Err: fmt.Errorf("failed to parse genre list: %w", err)}
	}
	return list.Genres, nil
}

// SearchMovies returns the raw body of a title search.
func (a *tmdbAdapterImpl) SearchMovies(ctx context.Context, query string, page int) ([]byte, error) {
	return a.doRequest(ctx, "/search/movie", url.Values{
		"query":         {query},
		"page":          {strconv.Itoa(page)},
		"include_adult": {"false"},
	})
}

// MovieDetails returns the raw body of a movie lookup with credits embedded.
func (a *tmdbAdapterImpl) MovieDetails(ctx context.Context, tmdbID int) ([]byte, error) {
	return a.doRequest(ctx, "/movie/"+strconv.Itoa(tmdbID), url.Values{
		"append_to_response": {"credits"},
	})
}

// doRequest performs the HTTP GET and returns response body bytes.
// Every failure is a *domain.UpstreamError.
func (a *tmdbAdapterImpl) doRequest(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", a.cfg.APIKey)
	if a.cfg.Language != "" {
		params.Set("language", a.cfg.Language)
	}
	endpoint := a.cfg.BaseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &domain.UpstreamError{Err: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Err: fmt.Errorf("failed to call tmdb %s: %w", path, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.UpstreamError{Err: fmt.Errorf("failed to read tmdb response: %w", err)}
	}
	return body, nil
}
