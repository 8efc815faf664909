package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/domain"
	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/model"
	"github.com/gin-gonic/gin"
)

// MovieHandler serves the authenticated user's watchlist.
type MovieHandler struct {
	Service domain.MovieService
	log     *slog.Logger
}

func NewMovieHandler(service domain.MovieService, log *slog.Logger) *MovieHandler {
	return &MovieHandler{Service: service, log: log.With("component", "movie_handler")}
}

// List handles GET /movies/?genre=&year=&status=
func (h *MovieHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var q model.MovieListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	movies, err := h.Service.ListMovies(c.Request.Context(), user.ID, q.ToFilter())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := movieID(c)
	if !ok {
		return
	}
	movie, err := h.Service.GetMovie(c.Request.Context(), user.ID, id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req model.MovieCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	movie, err := h.Service.CreateMovie(c.Request.Context(), user.ID, req.ToMovie())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, movie)
}

func (h *MovieHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := movieID(c)
	if !ok {
		return
	}
	var req model.MovieUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	movie, err := h.Service.UpdateMovie(c.Request.Context(), user.ID, id, req.ToPatch())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

// Delete handles DELETE /movies/:movie_id and returns the removed record.
func (h *MovieHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := movieID(c)
	if !ok {
		return
	}
	movie, err := h.Service.DeleteMovie(c.Request.Context(), user.ID, id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

func movieID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("movie_id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return 0, false
	}
	return uint(id), true
}
