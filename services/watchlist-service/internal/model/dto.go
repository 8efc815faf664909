package model

import (
	"time"

	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/domain"
)

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginRequest accepts either JSON {"email","password"} or the OAuth2 password form,
// where the email travels in the "username" field.
type LoginRequest struct {
	Email    string `json:"email" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// TokenResponse is the login response payload
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"`
}

// NewTokenResponse builds the bearer token response.
func NewTokenResponse(t *domain.AccessToken) TokenResponse {
	return TokenResponse{AccessToken: t.Token, TokenType: "bearer", ExpiresAt: t.ExpiresAt.Unix()}
}

// MovieCreateRequest represents the payload for adding a movie to the watchlist
type MovieCreateRequest struct {
	TMDBID        *int       `json:"tmdb_id" binding:"omitempty,gt=0"`
	Title         string     `json:"title" binding:"required,max=255"`
	OriginalTitle *string    `json:"original_title" binding:"omitempty,max=255"`
	Year          int        `json:"year" binding:"required,gte=1870,lte=2100"`
	Genre         string     `json:"genre" binding:"required,max=200"`
	PosterURL     *string    `json:"poster_url" binding:"omitempty,max=500"`
	Overview      *string    `json:"overview"`
	Runtime       *int       `json:"runtime" binding:"omitempty,gt=0"`
	Status        string     `json:"status" binding:"required,oneof=want_to_watch watching watched"`
	UserRating    *float64   `json:"user_rating" binding:"omitempty,gte=0,lte=10"`
	Notes         *string    `json:"notes"`
	WatchDate     *time.Time `json:"watch_date"`
}

// ToMovie converts the request into an unsaved domain.Movie.
func (r MovieCreateRequest) ToMovie() *domain.Movie {
	return &domain.Movie{
		TMDBID:        r.TMDBID,
		Title:         r.Title,
		OriginalTitle: r.OriginalTitle,
		Year:          r.Year,
		Genre:         r.Genre,
		PosterURL:     r.PosterURL,
		Overview:      r.Overview,
		Runtime:       r.Runtime,
		Status:        domain.MovieStatus(r.Status),
		UserRating:    r.UserRating,
		Notes:         r.Notes,
		WatchDate:     r.WatchDate,
	}
}

// MovieUpdateRequest is a partial update; omitted or null fields are left unchanged.
type MovieUpdateRequest struct {
	TMDBID        *int       `json:"tmdb_id" binding:"omitempty,gt=0"`
	Title         *string    `json:"title" binding:"omitempty,min=1,max=255"`
	OriginalTitle *string    `json:"original_title" binding:"omitempty,max=255"`
	Year          *int       `json:"year" binding:"omitempty,gte=1870,lte=2100"`
	Genre         *string    `json:"genre" binding:"omitempty,max=200"`
	PosterURL     *string    `json:"poster_url" binding:"omitempty,max=500"`
	Overview      *string    `json:"overview"`
	Runtime       *int       `json:"runtime" binding:"omitempty,gt=0"`
	Status        *string    `json:"status" binding:"omitempty,oneof=want_to_watch watching watched"`
	UserRating    *float64   `json:"user_rating" binding:"omitempty,gte=0,lte=10"`
	Notes         *string    `json:"notes"`
	WatchDate     *time.Time `json:"watch_date"`
}

// ToPatch converts the request into a domain.MoviePatch.
func (r MovieUpdateRequest) ToPatch() domain.MoviePatch {
	p := domain.MoviePatch{
		TMDBID:        r.TMDBID,
		Title:         r.Title,
		OriginalTitle: r.OriginalTitle,
		Year:          r.Year,
		Genre:         r.Genre,
		PosterURL:     r.PosterURL,
		Overview:      r.Overview,
		Runtime:       r.Runtime,
		UserRating:    r.UserRating,
		Notes:         r.Notes,
		WatchDate:     r.WatchDate,
	}
	if r.Status != nil {
		s := domain.MovieStatus(*r.Status)
		p.Status = &s
	}
	return p
}

// MovieListQuery holds the optional filters of GET /movies/.
type MovieListQuery struct {
	Genre  *string `form:"genre"`
	Year   *int    `form:"year"`
	Status *string `form:"status" binding:"omitempty,oneof=want_to_watch watching watched"`
}

// ToFilter converts the query into a domain.MovieFilter.
func (q MovieListQuery) ToFilter() domain.MovieFilter {
	f := domain.MovieFilter{Genre: q.Genre, Year: q.Year}
	if q.Status != nil && *q.Status != "" {
		s := domain.MovieStatus(*q.Status)
		f.Status = &s
	}
	return f
}

// SearchQuery holds the parameters of GET /movies/search.
type SearchQuery struct {
	Query string `form:"query" binding:"required"`
	Page  int    `form:"page"`
}
