package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/calorie-quest/backend/internal/service"
)

// AuthHandler exchanges the owner passphrase for an access token.
type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/auth/login", h.Login)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Passphrase == "" {
		badRequest(c, "passphrase is required")
		return
	}

	token, expires, err := h.authService.Login(req.Passphrase)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, loginResponse{Token: token, ExpiresAt: expires})
}
