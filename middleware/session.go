package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-console/auth"
	"hotel-console/models"
	"hotel-console/permissions"
)

const (
	sessionKey = "session"
	tokenKey   = "sessionToken"

	// SessionCookie may carry the token instead of the Authorization header.
	SessionCookie = "hotel_session"
)

// Token extracts the session token from "Authorization: Bearer" or the
// session cookie.
func Token(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if t, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(t)
		}
	}
	if t, err := c.Cookie(SessionCookie); err == nil {
		return t
	}
	return ""
}

// CheckAuth guards every protected route. Without a live session the request
// stops with 401 and the page the client should go back to.
func CheckAuth(svc *auth.Service, entryPage string, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := Token(c)
		sess, err := svc.GetSession(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, auth.ErrNoSession) {
				log.Error("session lookup failed", slog.Any("error", err))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success":  false,
				"error":    "authentication required",
				"redirect": entryPage,
			})
			return
		}
		c.Set(sessionKey, sess)
		c.Set(tokenKey, token)
		c.Next()
	}
}

// CurrentSession returns the session CheckAuth attached, or nil.
func CurrentSession(c *gin.Context) *models.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*models.Session); ok {
			return s
		}
	}
	return nil
}

func CurrentToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}

// RequirePage keeps sessions away from pages their role may not open,
// sending them back to the dashboard.
func RequirePage(page, fallback string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !permissions.CanViewPage(CurrentSession(c), page) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success":  false,
				"error":    "Access denied",
				"redirect": fallback,
			})
			return
		}
		c.Next()
	}
}
