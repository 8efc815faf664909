package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/domain"
	"gorm.io/gorm"
)

type movieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new MovieRepository with the given GORM DB instance.
func NewMovieRepository(db *gorm.DB) domain.MovieRepository {
	return &movieRepository{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// List returns the user's movies matching filter, newest first.
func (r *movieRepository) List(ctx context.Context, userID uint, filter domain.MovieFilter) ([]domain.Movie, error) {
	movies := []domain.Movie{}
	query := conn(ctx, r.db).Model(&domain.Movie{}).Where("user_id = ?", userID)
	if filter.Genre != nil && *filter.Genre != "" {
		query = query.Where("genre ILIKE ?", "%"+likeEscaper.Replace(*filter.Genre)+"%")
	}
	if filter.Year != nil {
		query = query.Where("year = ?", *filter.Year)
	}
	if filter.Status != nil && *filter.Status != "" {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if err := query.Order("added_date DESC").Order("id DESC").Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

// GetByID retrieves the user's movie by its ID.
func (r *movieRepository) GetByID(ctx context.Context, userID, id uint) (*domain.Movie, error) {
	var movie domain.Movie
	if err := conn(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).First(&movie).Error; err != nil {
		return nil, notFoundAsNil("movie", err)
	}
	return &movie, nil
}

// Create inserts a new movie into the database.
func (r *movieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	if err := conn(ctx, r.db).Create(movie).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateMovie
		}
		return fmt.Errorf("failed to create movie: %w", err)
	}
	return nil
}

// Update writes every mutable column of movie. It reports false when no row of that user matched.
func (r *movieRepository) Update(ctx context.Context, movie *domain.Movie) (bool, error) {
	result := conn(ctx, r.db).Model(movie).Where("user_id = ?", movie.UserID).Updates(map[string]interface{}{
		"tmdb_id":        movie.TMDBID,
		"title":          movie.Title,
		"original_title": movie.OriginalTitle,
		"year":           movie.Year,
		"genre":          movie.Genre,
		"poster_url":     movie.PosterURL,
		"overview":       movie.Overview,
		"runtime":        movie.Runtime,
		"status":         string(movie.Status),
		"user_rating":    movie.UserRating,
		"notes":          movie.Notes,
		"watch_date":     movie.WatchDate,
		"updated_date":   movie.UpdatedDate,
	})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return false, domain.ErrDuplicateMovie
		}
		return false, fmt.Errorf("failed to update movie: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Delete removes the user's movie by ID and reports whether a row was removed.
func (r *movieRepository) Delete(ctx context.Context, userID, id uint) (bool, error) {
	result := conn(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Movie{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete movie: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
