package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/Nox1KCL/Movies-WatchList/pkg/cache"
	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/adapter"
	"golang.org/x/sync/singleflight"
)

// GenresKey is the cache hash holding genre id -> name.
const GenresKey = "tmdb:genres"

// maxGenreNames caps how many names resolveNames joins.
const maxGenreNames = 3

// GenreCache maps TMDB genre ids to display names. The in-process map is backed
// by a shared cache hash so a restarted process does not have to call TMDB again.
type GenreCache struct {
	adapter adapter.TMDBAdapter
	cache   cache.Cache
	log     *slog.Logger

	group  singleflight.Group
	mu     sync.RWMutex
	names  map[int]string
	loaded bool
}

// NewGenreCache creates an empty GenreCache.
func NewGenreCache(a adapter.TMDBAdapter, c cache.Cache, log *slog.Logger) *GenreCache {
	return &GenreCache{
		adapter: a,
		cache:   c,
		log:     log.With("component", "genre_cache"),
		names:   make(map[int]string),
	}
}

// EnsureLoaded fills the genre map once per process. Concurrent callers share one load.
func (g *GenreCache) EnsureLoaded(ctx context.Context) error {
	g.mu.RLock()
	loaded := g.loaded
	g.mu.RUnlock()
	if loaded {
		return nil
	}

	// Shared by every waiter; it outlives the first caller's ctx.
	loadCtx := context.WithoutCancel(ctx)
	_, err, _ := g.group.Do(GenresKey, func() (any, error) {
		return nil, g.load(loadCtx)
	})
	return err
}

func (g *GenreCache) load(ctx context.Context) error {
	g.mu.RLock()
	loaded := g.loaded
	g.mu.RUnlock()
	if loaded {
		return nil
	}

	stored, err := g.cache.HGetAll(ctx, GenresKey)
	if err != nil {
		g.log.Warn("failed to read cached genres", "error", err)
	}
	if len(stored) > 0 {
		names := make(map[int]string, len(stored))
		for field, name := range stored {
			id, err := strconv.Atoi(field)
			if err != nil {
				continue
			}
			names[id] = name
		}
		g.store(names)
		g.log.Debug("genres loaded from cache", "count", len(names))
		return nil
	}

	genres, err := g.adapter.FetchGenres(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch genres: %w", err)
	}
	names := make(map[int]string, len(genres))
	fields := make(map[string]string, len(genres))
	for _, genre := range genres {
		names[genre.ID] = genre.Name
		fields[strconv.Itoa(genre.ID)] = genre.Name
	}
	if len(fields) > 0 {
		if err := g.cache.HSetMany(ctx, GenresKey, fields); err != nil {
			g.log.Warn("failed to cache genres", "error", err)
		}
	}
	g.store(names)
	g.log.Info("genres loaded from tmdb", "count", len(names))
	return nil
}

func (g *GenreCache) store(names map[int]string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for id, name := range names {
		g.names[id] = name
	}
	g.loaded = true
}

// ResolveNames joins the names of the first three resolvable ids with ", ".
// Unknown ids are skipped. Once the map is loaded it is authoritative; before that
// ids are looked up in the shared hash one by one.
func (g *GenreCache) ResolveNames(ctx context.Context, ids []int) string {
	if len(ids) == 0 {
		return ""
	}
	resolved := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := g.lookup(ctx, id); ok {
			resolved = append(resolved, name)
		}
	}
	if len(resolved) > maxGenreNames {
		resolved = resolved[:maxGenreNames]
	}
	return strings.Join(resolved, ", ")
}

func (g *GenreCache) lookup(ctx context.Context, id int) (string, bool) {
	g.mu.RLock()
	name, ok := g.names[id]
	loaded := g.loaded
	g.mu.RUnlock()
	if ok || loaded {
		return name, ok
	}

	name, err := g.cache.HGet(ctx, GenresKey, strconv.Itoa(id))
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			g.log.Warn("genre lookup failed", "genre_id", id, "error", err)
		}
		return "", false
	}
	g.mu.Lock()
	g.names[id] = name
	g.mu.Unlock()
	return name, true
}
