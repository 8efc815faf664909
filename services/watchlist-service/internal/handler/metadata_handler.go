package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/domain"
	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/model"
	"github.com/gin-gonic/gin"
)

// MetadataHandler exposes TMDB search and detail lookups.
type MetadataHandler struct {
	Gateway domain.MetadataGateway
	log     *slog.Logger
}

func NewMetadataHandler(gateway domain.MetadataGateway, log *slog.Logger) *MetadataHandler {
	return &MetadataHandler{Gateway: gateway, log: log.With("component", "metadata_handler")}
}

// Search handles GET /movies/search?query=&page=
func (h *MetadataHandler) Search(c *gin.Context) {
	var q model.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	results, err := h.Gateway.Search(c.Request.Context(), q.Query, q.Page)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// Details handles GET /movies/tmdb/:tmdb_id
func (h *MetadataHandler) Details(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("tmdb_id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tmdb id"})
		return
	}
	details, err := h.Gateway.Details(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, details)
}
