package handler

import (
	"log/slog"
	"net/http"

	"github.com/Nox1KCL/Movies-WatchList/pkg/middleware"
	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/domain"
	"github.com/gin-gonic/gin"
)

// RouterDeps is everything the HTTP layer needs.
type RouterDeps struct {
	Auth           domain.AuthService
	Movies         domain.MovieService
	Metadata       domain.MetadataGateway
	AllowedOrigins []string
	Log            *slog.Logger
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(d.Log), middleware.CORS(d.AllowedOrigins))

	authH := NewAuthHandler(d.Auth, d.Log)
	movieH := NewMovieHandler(d.Movies, d.Log)
	metaH := NewMetadataHandler(d.Metadata, d.Log)
	requireUser := middleware.AuthMiddleware[*domain.User](d.Auth, d.Log)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.GET("/me", requireUser, authH.Me)
	auth.DELETE("/me", requireUser, authH.DeleteMe)

	movies := r.Group("/movies", requireUser)
	movies.GET("/", movieH.List)
	movies.POST("/", movieH.Create)
	movies.GET("/search", metaH.Search)
	movies.GET("/tmdb/:tmdb_id", metaH.Details)
	movies.GET("/:movie_id", movieH.Get)
	movies.PATCH("/:movie_id", movieH.Update)
	movies.DELETE("/:movie_id", movieH.Delete)

	return r
}
