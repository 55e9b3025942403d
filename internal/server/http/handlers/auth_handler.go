package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/jayeshsingh-11/creative-cascade/internal/domain/errors"
	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
	"github.com/jayeshsingh-11/creative-cascade/internal/server/http/dto"
	"github.com/jayeshsingh-11/creative-cascade/internal/server/http/middleware"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	role := model.Role(req.Role)
	if role == "" {
		role = model.RoleBuyer
	}

	user, token, err := h.facade.Register(c.Request.Context(), req.Email, req.Name, req.Password, role)
	if err != nil {
		// Malformed signup data is the caller's fault, not an auth failure.
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			c.Status(http.StatusBadRequest)
			return
		}
		writeError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  string(user.Role),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  string(user.Role),
	})
}
