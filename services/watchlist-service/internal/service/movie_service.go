package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/domain"
	"github.com/microcosm-cc/bluemonday"
)

// movieService implements domain.MovieService. Every call is scoped to one user.
type movieService struct {
	repo   domain.MovieRepository
	tx     domain.Transactor
	policy *bluemonday.Policy
	now    func() time.Time
	log    *slog.Logger
}

// MovieServiceOption customises a movie service.
type MovieServiceOption func(*movieService)

// WithMovieClock replaces the time source used for added/updated/watch dates.
func WithMovieClock(now func() time.Time) MovieServiceOption {
	return func(s *movieService) { s.now = now }
}

// NewMovieService creates a new MovieService.
func NewMovieService(repo domain.MovieRepository, tx domain.Transactor, log *slog.Logger, opts ...MovieServiceOption) domain.MovieService {
	s := &movieService{
		repo:   repo,
		tx:     tx,
		policy: bluemonday.StrictPolicy(),
		now:    func() time.Time { return time.Now().UTC() },
		log:    log.With("component", "movie_service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *movieService) ListMovies(ctx context.Context, userID uint, filter domain.MovieFilter) ([]domain.Movie, error) {
	if filter.Genre != nil && strings.TrimSpace(*filter.Genre) == "" {
		filter.Genre = nil
	}
	movies, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

func (s *movieService) GetMovie(ctx context.Context, userID, id uint) (*domain.Movie, error) {
	movie, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load movie: %w", err)
	}
	if movie == nil {
		return nil, domain.ErrMovieNotFound
	}
	return movie, nil
}

// CreateMovie stores movie for userID. The owner and the timestamps are always set here.
func (s *movieService) CreateMovie(ctx context.Context, userID uint, movie *domain.Movie) (*domain.Movie, error) {
	now := s.now()
	movie.ID = 0
	movie.UserID = userID
	movie.Notes = s.sanitize(movie.Notes)
	movie.AddedDate = now
	movie.UpdatedDate = now
	movie.EnsureWatchDate(now)

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, movie)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("movie added", "user_id", userID, "movie_id", movie.ID, "tmdb_id", movie.TMDBID)
	return movie, nil
}

// UpdateMovie applies patch to the user's movie.
func (s *movieService) UpdateMovie(ctx context.Context, userID, id uint, patch domain.MoviePatch) (*domain.Movie, error) {
	if patch.IsEmpty() {
		return nil, domain.ErrEmptyUpdate
	}
	patch.Notes = s.sanitize(patch.Notes)

	var updated *domain.Movie
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		movie, err := s.GetMovie(ctx, userID, id)
		if err != nil {
			return err
		}
		patch.Apply(movie, s.now())
		ok, err := s.repo.Update(ctx, movie)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrMovieNotFound
		}
		updated = movie
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteMovie removes the user's movie and returns it as it was.
func (s *movieService) DeleteMovie(ctx context.Context, userID, id uint) (*domain.Movie, error) {
	var deleted *domain.Movie
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		movie, err := s.GetMovie(ctx, userID, id)
		if err != nil {
			return err
		}
		ok, err := s.repo.Delete(ctx, userID, id)
		if err != nil {
			return fmt.Errorf("failed to delete movie: %w", err)
		}
		if !ok {
			return domain.ErrMovieNotFound
		}
		deleted = movie
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("movie deleted", "user_id", userID, "movie_id", id)
	return deleted, nil
}

// sanitize strips markup from free-text notes.
func (s *movieService) sanitize(notes *string) *string {
	if notes == nil {
		return nil
	}
	clean := strings.TrimSpace(s.policy.Sanitize(*notes))
	return &clean
}
