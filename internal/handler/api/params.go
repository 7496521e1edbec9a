package api

import (
	"net/http"
	"strconv"

	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultPageFrom = 0
	defaultPageSize = 10
)

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func sharerID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetSharerID(c)
	if !ok {
		// RequireSharer must run before any handler that reaches here.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		c.Abort()
		return uuid.Nil, false
	}
	return id, true
}

// parsePageQuery reads the from/size query pair. Range validation happens in
// the usecase layer; only malformed numbers are rejected here.
func parsePageQuery(c *gin.Context) (from, size int, ok bool) {
	from, ok = parseIntQuery(c, "from", defaultPageFrom)
	if !ok {
		return 0, 0, false
	}
	size, ok = parseIntQuery(c, "size", defaultPageSize)
	if !ok {
		return 0, 0, false
	}
	return from, size, true
}

func parseIntQuery(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name+" parameter", nil)
		return 0, false
	}
	return v, true
}
