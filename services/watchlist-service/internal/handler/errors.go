package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Nox1KCL/Movies-WatchList/pkg/util"
	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/domain"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error to its HTTP status. Only validation messages
// reach the client verbatim; everything unexpected is logged and hidden.
func respondError(c *gin.Context, log *slog.Logger, err error) {
	var validation *domain.ValidationError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		log.Debug("request unauthorized", "request_id", util.RequestID(c), "reason", err.Error())
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
	case errors.Is(err, domain.ErrMovieNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		log.Warn("metadata upstream failed", "request_id", util.RequestID(c), "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": domain.ErrUpstreamUnavailable.Error()})
	default:
		log.Error("request failed", "path", c.FullPath(), "request_id", util.RequestID(c), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// badRequest reports a binding failure.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func currentUser(c *gin.Context) (*domain.User, bool) {
	user, ok := util.CurrentUser[*domain.User](c)
	if !ok || user == nil {
		c.Header("WWW-Authenticate", "Bearer")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return nil, false
	}
	return user, true
}
