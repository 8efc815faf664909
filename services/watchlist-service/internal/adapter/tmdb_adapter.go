package adapter

import "context"

// TMDBAdapter talks to the TMDB v3 HTTP API. Search and details return the raw
// response body so callers can cache the exact upstream payload.
type TMDBAdapter interface {
	FetchGenres(ctx context.Context) ([]TMDBGenre, error)
	SearchMovies(ctx context.Context, query string, page int) ([]byte, error)
	MovieDetails(ctx context.Context, tmdbID int) ([]byte, error)
}

type TMDBGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type TMDBGenreList struct {
	Genres []TMDBGenre `json:"genres"`
}

// TMDBSearchResponse is the body of GET /search/movie.
type TMDBSearchResponse struct {
	Page         int             `json:"page"`
	Results      []TMDBMovieItem `json:"results"`
	TotalPages   int             `json:"total_pages"`
	TotalResults int             `json:"total_results"`
}

// TMDBMovieItem is a search hit. Fields TMDB may omit are pointers.
type TMDBMovieItem struct {
	ID            int      `json:"id"`
	Title         *string  `json:"title"`
	OriginalTitle *string  `json:"original_title"`
	ReleaseDate   *string  `json:"release_date"`
	Overview      *string  `json:"overview"`
	PosterPath    *string  `json:"poster_path"`
	BackdropPath  *string  `json:"backdrop_path"`
	VoteAverage   *float64 `json:"vote_average"`
	VoteCount     *int     `json:"vote_count"`
	GenreIDs      []int    `json:"genre_ids"`
}

// TMDBMovieDetails is the body of GET /movie/{id}?append_to_response=credits.
type TMDBMovieDetails struct {
	ID            int         `json:"id"`
	Title         *string     `json:"title"`
	OriginalTitle *string     `json:"original_title"`
	ReleaseDate   *string     `json:"release_date"`
	Overview      *string     `json:"overview"`
	PosterPath    *string     `json:"poster_path"`
	BackdropPath  *string     `json:"backdrop_path"`
	VoteAverage   *float64    `json:"vote_average"`
	VoteCount     *int        `json:"vote_count"`
	Runtime       *int        `json:"runtime"`
	Genres        []TMDBGenre `json:"genres"`
	Tagline       *string     `json:"tagline"`
	Budget        *int64      `json:"budget"`
	Revenue       *int64      `json:"revenue"`
	Status        *string     `json:"status"`
	Credits       struct {
		Cast []TMDBCredit `json:"cast"`
		Crew []TMDBCredit `json:"crew"`
	} `json:"credits"`
}

type TMDBCredit struct {
	Name string `json:"name"`
	Job  string `json:"job,omitempty"`
}
