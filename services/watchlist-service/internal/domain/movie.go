package domain

import (
	"context"
	"time"
)

type MovieStatus string

const (
	StatusWantToWatch MovieStatus = "want_to_watch"
	StatusWatching    MovieStatus = "watching"
	StatusWatched     MovieStatus = "watched"
)

// Valid reports whether s is one of the known statuses.
func (s MovieStatus) Valid() bool {
	switch s {
	case StatusWantToWatch, StatusWatching, StatusWatched:
		return true
	}
	return false
}

// Movie is one entry in a user's watchlist.
type Movie struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	UserID        uint        `gorm:"not null;index;uniqueIndex:idx_movies_user_tmdb" json:"-"`
	TMDBID        *int        `gorm:"column:tmdb_id;uniqueIndex:idx_movies_user_tmdb" json:"tmdb_id"`
	Title         string      `gorm:"size:255;not null" json:"title"`
	OriginalTitle *string     `json:"original_title"`
	Year          int         `gorm:"not null" json:"year"`
	Genre         string      `gorm:"size:200;not null" json:"genre"`
	PosterURL     *string     `gorm:"size:500" json:"poster_url"`
	Overview      *string     `gorm:"type:text" json:"overview"`
	Runtime       *int        `json:"runtime"`
	Status        MovieStatus `gorm:"type:varchar(20);not null" json:"status"`
	UserRating    *float64    `json:"user_rating"`
	Notes         *string     `gorm:"type:text" json:"notes"`
	WatchDate     *time.Time  `json:"watch_date"`
	AddedDate     time.Time   `gorm:"not null" json:"added_date"`
	UpdatedDate   time.Time   `gorm:"not null" json:"updated_date"`
}

// MovieFilter narrows a watchlist listing. Nil fields are ignored.
// Genre is a case-insensitive substring match, the others are equality matches.
type MovieFilter struct {
	Genre  *string
	Year   *int
	Status *MovieStatus
}

// MoviePatch is a partial update. Nil fields are left as they are.
type MoviePatch struct {
	TMDBID        *int
	Title         *string
	OriginalTitle *string
	Year          *int
	Genre         *string
	PosterURL     *string
	Overview      *string
	Runtime       *int
	Status        *MovieStatus
	UserRating    *float64
	Notes         *string
	WatchDate     *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p MoviePatch) IsEmpty() bool {
	return p.TMDBID == nil && p.Title == nil && p.OriginalTitle == nil && p.Year == nil &&
		p.Genre == nil && p.PosterURL == nil && p.Overview == nil && p.Runtime == nil &&
		p.Status == nil && p.UserRating == nil && p.Notes == nil && p.WatchDate == nil
}

// Apply copies the set fields onto m and stamps UpdatedDate.
// Moving to watched without a watch date records now as the watch date.
func (p MoviePatch) Apply(m *Movie, now time.Time) {
	if p.TMDBID != nil {
		m.TMDBID = p.TMDBID
	}
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.OriginalTitle != nil {
		m.OriginalTitle = p.OriginalTitle
	}
	if p.Year != nil {
		m.Year = *p.Year
	}
	if p.Genre != nil {
		m.Genre = *p.Genre
	}
	if p.PosterURL != nil {
		m.PosterURL = p.PosterURL
	}
	if p.Overview != nil {
		m.Overview = p.Overview
	}
	if p.Runtime != nil {
		m.Runtime = p.Runtime
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.UserRating != nil {
		m.UserRating = p.UserRating
	}
	if p.Notes != nil {
		m.Notes = p.Notes
	}
	if p.WatchDate != nil {
		m.WatchDate = p.WatchDate
	}
	m.EnsureWatchDate(now)
	m.UpdatedDate = now
}

// EnsureWatchDate fills WatchDate for a watched movie that has none.
func (m *Movie) EnsureWatchDate(now time.Time) {
	if m.Status == StatusWatched && m.WatchDate == nil {
		t := now
		m.WatchDate = &t
	}
}

// MovieRepository persists movies. Every query is scoped by the owning user;
// lookups return (nil, nil) when nothing matches for that user.
type MovieRepository interface {
	List(ctx context.Context, userID uint, filter MovieFilter) ([]Movie, error)
	GetByID(ctx context.Context, userID, id uint) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, movie *Movie) (bool, error)
	Delete(ctx context.Context, userID, id uint) (bool, error)
}

type MovieService interface {
	ListMovies(ctx context.Context, userID uint, filter MovieFilter) ([]Movie, error)
	GetMovie(ctx context.Context, userID, id uint) (*Movie, error)
	CreateMovie(ctx context.Context, userID uint, movie *Movie) (*Movie, error)
	UpdateMovie(ctx context.Context, userID, id uint, patch MoviePatch) (*Movie, error)
	DeleteMovie(ctx context.Context, userID, id uint) (*Movie, error)
}
