package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/Nox1KCL/Movies-WatchList/pkg/cache"
	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/adapter"
	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/domain"
)

// SearchCacheTTL bounds how long a raw search payload is reused.
const SearchCacheTTL = time.Hour

const maxCastNames = 5

type metadataService struct {
	adapter   adapter.TMDBAdapter
	cache     cache.Cache
	genres    *GenreCache
	imageBase string
	log       *slog.Logger
}

// NewMetadataService creates a domain.MetadataGateway backed by TMDB.
func NewMetadataService(a adapter.TMDBAdapter, c cache.Cache, genres *GenreCache, imageBase string, log *slog.Logger) domain.MetadataGateway {
	return &metadataService{
		adapter:   a,
		cache:     c,
		genres:    genres,
		imageBase: strings.TrimRight(imageBase, "/"),
		log:       log.With("component", "metadata_service"),
	}
}

// SearchCacheKey builds the cache key for a search page.
func SearchCacheKey(query string, page int) string {
	return "tmdb:search:" + normalizeQuery(query) + ":" + strconv.Itoa(page)
}

func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Search returns formatted TMDB search results, serving repeated queries from the cache.
func (s *metadataService) Search(ctx context.Context, query string, page int) ([]domain.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrEmptyQuery
	}
	if page < 1 {
		page = 1
	}
	s.warmGenres(ctx)

	key := SearchCacheKey(query, page)
	payload, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.Warn("search cache read failed", "key", key, "error", err)
		}
		payload, err = s.adapter.SearchMovies(ctx, strings.TrimSpace(query), page)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetEx(ctx, key, SearchCacheTTL, payload); err != nil {
			s.log.Warn("search cache write failed", "key", key, "error", err)
		}
	}

	var resp adapter.TMDBSearchResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, &domain.UpstreamError{Err: fmt.Errorf("failed to parse search response: %w", err)}
	}

	results := make([]domain.SearchResult, 0, len(resp.Results))
	for _, item := range resp.Results {
		genreIDs := item.GenreIDs
		if genreIDs == nil {
			genreIDs = []int{}
		}
		results = append(results, domain.SearchResult{
			TMDBID:        item.ID,
			Title:         item.Title,
			OriginalTitle: item.OriginalTitle,
			Year:          ParseReleaseYear(item.ReleaseDate),
			Overview:      item.Overview,
			PosterURL:     s.imageURL(item.PosterPath),
			BackdropURL:   s.imageURL(item.BackdropPath),
			VoteAverage:   item.VoteAverage,
			VoteCount:     item.VoteCount,
			Genre:         s.genres.ResolveNames(ctx, genreIDs),
			GenreIDs:      genreIDs,
		})
	}
	return results, nil
}

// Details fetches one movie with credits. It is never cached.
func (s *metadataService) Details(ctx context.Context, tmdbID int) (*domain.MovieDetails, error) {
	s.warmGenres(ctx)

	payload, err := s.adapter.MovieDetails(ctx, tmdbID)
	if err != nil {
		return nil, err
	}
	var d adapter.TMDBMovieDetails
	if err := json.Unmarshal(payload, &d); err != nil {
		return nil, &domain.UpstreamError{Err: fmt.Errorf("failed to parse movie details: %w", err)}
	}

	genres := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		genres = append(genres, g.Name)
	}
	directors := []string{}
	for _, member := range d.Credits.Crew {
		if member.Job == "Director" {
			directors = append(directors, member.Name)
		}
	}
	cast := []string{}
	for i, member := range d.Credits.Cast {
		if i == maxCastNames {
			break
		}
		cast = append(cast, member.Name)
	}

	return &domain.MovieDetails{
		TMDBID:        d.ID,
		Title:         d.Title,
		OriginalTitle: d.OriginalTitle,
		Year:          ParseReleaseYear(d.ReleaseDate),
		Overview:      d.Overview,
		PosterURL:     s.imageURL(d.PosterPath),
		BackdropURL:   s.imageURL(d.BackdropPath),
		VoteAverage:   d.VoteAverage,
		VoteCount:     d.VoteCount,
		Runtime:       d.Runtime,
		Genre:         strings.Join(genres[:min(maxGenreNames, len(genres))], ", "),
		Genres:        genres,
		Directors:     directors,
		Cast:          cast,
		Tagline:       d.Tagline,
		Budget:        d.Budget,
		Revenue:       d.Revenue,
		Status:        d.Status,
	}, nil
}

func (s *metadataService) warmGenres(ctx context.Context) {
	if err := s.genres.EnsureLoaded(ctx); err != nil {
		s.log.Warn("genre list unavailable", "error", err)
	}
}

func (s *metadataService) imageURL(path *string) *string {
	if path == nil || *path == "" {
		return nil
	}
	u := s.imageBase + *path
	return &u
}

// ParseReleaseYear reads the year from a TMDB release date ("2010-07-15").
// Empty or malformed dates yield nil.
func ParseReleaseYear(date *string) *int {
	if date == nil || len(*date) < 4 {
		return nil
	}
	year, err := strconv.Atoi((*date)[:4])
	if err != nil || year <= 0 {
		return nil
	}
	return &year
}
