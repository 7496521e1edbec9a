package middleware

import (
	"net/http"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SharerHeader carries the caller identity. There is no authentication
// beyond it; the gateway in front of the service owns that concern.
const SharerHeader = "X-Sharer-User-Id"

const ctxSharerIDKey = "sharer_id"

// RequireSharer rejects requests that lack a well-formed caller id header.
func RequireSharer() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(SharerHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing caller id header"),
				"X-Sharer-User-Id header required", nil)
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				"Invalid X-Sharer-User-Id header format", nil)
			return
		}

		c.Set(ctxSharerIDKey, id)
		c.Next()
	}
}

func GetSharerID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxSharerIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
