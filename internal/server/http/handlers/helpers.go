package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/errors"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/server/http/middleware"
)

// CurrentActorID extracts the acting user identifier from context.
func CurrentActorID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.ActorIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// respondError maps domain errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domainErrors.ErrAlreadyExists),
		errors.Is(err, domainErrors.ErrInvalidState),
		errors.Is(err, domainErrors.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, domainErrors.ErrLockTimeout):
		status = http.StatusServiceUnavailable
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
