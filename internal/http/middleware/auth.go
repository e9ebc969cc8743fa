package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jacksonlmp/taskflow/internal/model"
	"github.com/jacksonlmp/taskflow/internal/service"
)

const (
	SessionCookieName = "taskflow_session"
	SessionIDHeader   = "X-Session-ID"

	userContextKey = "currentUser"
)

// RequireAuth resolves the caller from the session cookie or the
// X-Session-ID header and stores the user on the context. Every failure
// mode is the same uniform 401.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := SessionID(c)
		if err != nil {
			unauthorized(c)
			return
		}

		user, err := authService.ValidateSession(c.Request.Context(), sessionID)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated caller set by RequireAuth, or nil.
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}

// SetCurrentUser is exported for handler tests that bypass RequireAuth.
func SetCurrentUser(c *gin.Context, user *model.User) {
	c.Set(userContextKey, user)
}

// SessionID reads the session identifier from the cookie, falling back to
// the X-Session-ID header for non-browser clients.
func SessionID(c *gin.Context) (int64, error) {
	raw, err := c.Cookie(SessionCookieName)
	if err != nil || raw == "" {
		raw = c.GetHeader(SessionIDHeader)
	}
	return strconv.ParseInt(raw, 10, 64)
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"detail": "Authentication credentials were not provided.",
	})
}
