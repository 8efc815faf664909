package domain

import "context"

// SearchResult is one formatted TMDB search hit.
type SearchResult struct {
	TMDBID        int      `json:"tmdb_id"`
	Title         *string  `json:"title"`
	OriginalTitle *string  `json:"original_title"`
	Year          *int     `json:"year"`
	Overview      *string  `json:"overview"`
	PosterURL     *string  `json:"poster_url"`
	BackdropURL   *string  `json:"backdrop_url"`
	VoteAverage   *float64 `json:"vote_average"`
	VoteCount     *int     `json:"vote_count"`
	Genre         string   `json:"genre"`
	GenreIDs      []int    `json:"genre_ids"`
}

// MovieDetails is a formatted TMDB movie with credits.
type MovieDetails struct {
	TMDBID        int      `json:"tmdb_id"`
	Title         *string  `json:"title"`
	OriginalTitle *string  `json:"original_title"`
	Year          *int     `json:"year"`
	Overview      *string  `json:"overview"`
	PosterURL     *string  `json:"poster_url"`
	BackdropURL   *string  `json:"backdrop_url"`
	VoteAverage   *float64 `json:"vote_average"`
	VoteCount     *int     `json:"vote_count"`
	Runtime       *int     `json:"runtime"`
	Genre         string   `json:"genre"`
	Genres        []string `json:"genres"`
	Directors     []string `json:"directors"`
	Cast          []string `json:"cast"`
	Tagline       *string  `json:"tagline"`
	Budget        *int64   `json:"budget"`
	Revenue       *int64   `json:"revenue"`
	Status        *string  `json:"status"`
}

// MetadataGateway looks movies up in TMDB.
type MetadataGateway interface {
	Search(ctx context.Context, query string, page int) ([]SearchResult, error)
	Details(ctx context.Context, tmdbID int) (*MovieDetails, error)
}
