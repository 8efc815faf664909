package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Nox1KCL/Movies-WatchList/pkg/util"
	"github.com/gin-gonic/gin"
)

// IdentityResolver turns a bearer token into an authenticated user.
type IdentityResolver[U any] interface {
	ResolveIdentity(ctx context.Context, token string) (U, error)
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// AuthMiddleware returns a Gin middleware that resolves the bearer token to a user and injects it into the context.
// Every failure gets the same response; the specific reason only goes to the log.
func AuthMiddleware[U any](resolver IdentityResolver[U], log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		user, err := resolver.ResolveIdentity(c.Request.Context(), token)
		if err != nil {
			log.Debug("authentication rejected",
				"path", c.FullPath(),
				"request_id", util.RequestID(c),
				"reason", err.Error())
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}
		c.Set(util.CurrentUserKey, user)
		c.Next()
	}
}
