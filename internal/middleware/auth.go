package middleware

import (
	"errors"
	"net/http"
	"strings"

	"lostlinked/internal/model"
	"lostlinked/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AuthUserKey is the gin context key holding the authenticated user
const AuthUserKey = "authUser"

// BearerAuth rejects requests without a valid bearer token and stores the
// resolved user in the request context. Every 401 carries the
// WWW-Authenticate challenge. Missing header, malformed header, bad
// token and deleted user all produce the same response.
func BearerAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Not authenticated")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			unauthorized(c, "Not authenticated")
			return
		}

		user, err := authService.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			if errors.Is(err, service.ErrUnauthenticated) {
				unauthorized(c, service.ErrUnauthenticated.Error())
				return
			}
			log.Error().Err(err).Msg("authentication lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
			return
		}

		c.Set(AuthUserKey, user)
		c.Next()
	}
}

func unauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detail})
}

// AuthUser returns the user stored by BearerAuth
func AuthUser(c *gin.Context) (*model.User, bool) {
	v, exists := c.Get(AuthUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok
}
