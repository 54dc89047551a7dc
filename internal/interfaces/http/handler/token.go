package handler

import (
	"github.com/gin-gonic/gin"
	credentialapp "github.com/invoicing/backend/internal/application/credential"
)

// TokenHandler exposes the cached external service token
type TokenHandler struct {
	BaseHandler
	tokenService *credentialapp.TokenService
}

// NewTokenHandler creates a new TokenHandler
func NewTokenHandler(tokenService *credentialapp.TokenService) *TokenHandler {
	return &TokenHandler{
		tokenService: tokenService,
	}
}

// Current returns a usable bearer token, refreshing it against the
// authorization service only when the stored one has gone stale
func (h *TokenHandler) Current(c *gin.Context) {
	token, err := h.tokenService.CurrentToken(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, token)
}
