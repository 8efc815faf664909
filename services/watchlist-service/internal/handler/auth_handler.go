package handler

import (
	"log/slog"
	"net/http"

	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/domain"
	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/model"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	Service domain.AuthService
	log     *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service domain.AuthService, log *slog.Logger) *AuthHandler {
	return &AuthHandler{Service: service, log: log.With("component", "auth_handler")}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, err := h.Service.Register(c.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login handles POST /auth/login. Both the OAuth2 password form and JSON are accepted.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}
	token, err := h.Service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, model.NewTokenResponse(token))
}

// Me handles GET /auth/me. The user is reloaded so the response reflects the stored row.
func (h *AuthHandler) Me(c *gin.Context) {
	current, ok := currentUser(c)
	if !ok {
		return
	}
	user, err := h.Service.GetUser(c.Request.Context(), current.ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteMe handles DELETE /auth/me.
func (h *AuthHandler) DeleteMe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteAccount(c.Request.Context(), user.ID); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
