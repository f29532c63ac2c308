package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"movievault/internal/authz"
	"movievault/internal/store"
)

// fail maps domain errors to HTTP statuses: denials to 403, absent targets to
// 404, malformed or duplicate input to 400, everything else to 500. Reason
// strings go out verbatim.
func fail(c *gin.Context, err error) {
	var deniedErr *authz.DeniedError
	switch {
	case errors.As(err, &deniedErr):
		c.JSON(http.StatusForbidden, gin.H{"error": deniedErr.Reason})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrDuplicateUsername),
		errors.Is(err, store.ErrDuplicateAssignment),
		errors.Is(err, store.ErrNotAssigned),
		errors.Is(err, authz.ErrUnsupportedFile),
		errors.Is(err, authz.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func notFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
}
