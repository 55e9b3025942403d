package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/jayeshsingh-11/creative-cascade/internal/domain/errors"
	pkgAuth "github.com/jayeshsingh-11/creative-cascade/internal/pkg/auth"
	"github.com/jayeshsingh-11/creative-cascade/internal/server/http/middleware"
)

// CurrentSession extracts the authenticated session from context.
func CurrentSession(c *gin.Context) pkgAuth.Session {
	val, ok := c.Get(middleware.SessionContextKey)
	if !ok {
		return pkgAuth.Session{}
	}
	session, _ := val.(pkgAuth.Session)
	return session
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// writeError translates domain errors to HTTP statuses.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrValidation),
		errors.Is(err, domainErrors.ErrEmptyCart):
		c.Status(http.StatusBadRequest)
	case errors.Is(err, domainErrors.ErrInvalidCredentials),
		errors.Is(err, domainErrors.ErrInvalidSignature),
		errors.Is(err, domainErrors.ErrUnauthorized):
		c.Status(http.StatusUnauthorized)
	case errors.Is(err, domainErrors.ErrForbidden):
		c.Status(http.StatusForbidden)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.Status(http.StatusConflict)
	case errors.Is(err, domainErrors.ErrPaymentProvider):
		c.Status(http.StatusBadGateway)
	default:
		c.Status(http.StatusInternalServerError)
	}
}
