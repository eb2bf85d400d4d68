package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// ActorIDContextKey is a gin context key for the acting user identifier.
	ActorIDContextKey = "actorID"
	// ActorIDHeader carries the identifier of the authenticated user, set by
	// the gateway in front of this service.
	ActorIDHeader = "X-Actor-ID"
)

// RequireActor ensures every mutating request names the acting user.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(ActorIDHeader)
		if header == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		actorID, err := strconv.ParseInt(header, 10, 64)
		if err != nil || actorID <= 0 {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set(ActorIDContextKey, actorID)
		c.Next()
	}
}
