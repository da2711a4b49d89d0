package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mcandidier/workflow/internal/model"
	"github.com/mcandidier/workflow/internal/service"
)

const (
	sessionCookieName = "workflow_session"
	sessionIDHeader   = "X-Session-ID"

	userContextKey = "current_user"
)

// AuthRequired resolves the caller's session to a user and stores it on the
// request context. Requests without a resolvable identity never reach the
// handlers.
func AuthRequired(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := sessionIDFrom(c)
		if err != nil {
			respondError(c, http.StatusUnauthorized, kindUnauthorized, "not authenticated")
			c.Abort()
			return
		}

		user, err := authService.ValidateSession(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrUserNotFound) {
				respondError(c, http.StatusUnauthorized, kindUnauthorized, "session expired")
				c.Abort()
				return
			}
			slog.ErrorContext(c.Request.Context(), "failed to validate session", "error", err)
			respondError(c, http.StatusInternalServerError, kindInternal, "failed to validate session")
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// sessionIDFrom reads the session ID from the X-Session-ID header, falling
// back to the session cookie.
func sessionIDFrom(c *gin.Context) (int64, error) {
	raw := c.GetHeader(sessionIDHeader)
	if raw == "" {
		cookie, err := c.Cookie(sessionCookieName)
		if err != nil {
			return 0, err
		}
		raw = cookie
	}
	return strconv.ParseInt(raw, 10, 64)
}

func currentUser(c *gin.Context) (*model.User, bool) {
	value, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok
}
