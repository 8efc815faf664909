package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/Nox1KCL/Movies-WatchList/pkg/logger"
	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/adapter"
	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/domain"
)

func discardLogger() *slog.Logger {
	return logger.Discard()
}

type fakeTMDB struct {
	genres     []adapter.TMDBGenre
	genresErr  error
	search     []byte
	details    []byte
	err        error
	genreCalls atomic.Int32
	searchHits atomic.Int32
	// release blocks FetchGenres until closed when set.
	release chan struct{}
}

func (f *fakeTMDB) FetchGenres(ctx context.Context) ([]adapter.TMDBGenre, error) {
	f.genreCalls.Add(1)
	if f.release != nil {
		<-f.release
	}
	return f.genres, f.genresErr
}

func (f *fakeTMDB) SearchMovies(ctx context.Context, query string, page int) ([]byte, error) {
	f.searchHits.Add(1)
	return f.search, f.err
}

func (f *fakeTMDB) MovieDetails(ctx context.Context, tmdbID int) ([]byte, error) {
	return f.details, f.err
}

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*domain.User
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	user.ID = r.nextID
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, r.err
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, r.err
}

func (r *fakeUserRepo) FindByEmailOrUsername(_ context.Context, email, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email || u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, r.err
}

func (r *fakeUserRepo) Delete(_ context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return false, r.err
	}
	delete(r.users, id)
	return true, nil
}

type fakeMovieRepo struct {
	mu     sync.Mutex
	nextID uint
	movies map[uint]domain.Movie
	// listFilter records the last filter passed to List.
	listFilter domain.MovieFilter
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: make(map[uint]domain.Movie)}
}

func (r *fakeMovieRepo) List(_ context.Context, userID uint, filter domain.MovieFilter) ([]domain.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listFilter = filter
	out := []domain.Movie{}
	for _, m := range r.movies {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovieRepo) GetByID(_ context.Context, userID, id uint) (*domain.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.movies[id]
	if !ok || m.UserID != userID {
		return nil, nil
	}
	return &m, nil
}

func (r *fakeMovieRepo) Create(_ context.Context, movie *domain.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.movies {
		if m.UserID == movie.UserID && m.TMDBID != nil && movie.TMDBID != nil && *m.TMDBID == *movie.TMDBID {
			return domain.ErrDuplicateMovie
		}
	}
	r.nextID++
	movie.ID = r.nextID
	r.movies[movie.ID] = *movie
	return nil
}

func (r *fakeMovieRepo) Update(_ context.Context, movie *domain.Movie) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.movies[movie.ID]
	if !ok || m.UserID != movie.UserID {
		return false, nil
	}
	r.movies[movie.ID] = *movie
	return true, nil
}

func (r *fakeMovieRepo) Delete(_ context.Context, userID, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.movies[id]
	if !ok || m.UserID != userID {
		return false, nil
	}
	delete(r.movies, id)
	return true, nil
}

// fakeTransactor runs fn inline and counts rollbacks.
type fakeTransactor struct {
	calls     int
	rollbacks int
}

func (t *fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	if err := fn(ctx); err != nil {
		t.rollbacks++
		return err
	}
	return nil
}

var errBoom = errors.New("boom")
