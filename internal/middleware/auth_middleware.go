package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/takeo/dojomaster/internal/app/models"
	"github.com/takeo/dojomaster/internal/app/models/dto"
	"github.com/takeo/dojomaster/internal/pkg/auth"
)

// Context key under which the authenticated session is stored.
const SessionContextKey = "session"

// AuthMiddleware guards routes with the in-memory session registry.
type AuthMiddleware struct {
	sessions *auth.SessionManager
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(sessions *auth.SessionManager) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// SessionAuth resolves the Bearer session id and aborts with 401 when it is
// missing or unknown. Sessions die with the process, so a stale id after a
// restart fails here like any other unknown id.
func (m *AuthMiddleware) SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header missing")
			return
		}

		sessionID := strings.TrimPrefix(authHeader, "Bearer ")
		if sessionID == authHeader || sessionID == "" {
			abortUnauthorized(c, "Expected Bearer session id")
			return
		}

		session, err := m.sessions.Get(sessionID)
		if err != nil {
			abortUnauthorized(c, "Unknown or expired session")
			return
		}

		c.Set(SessionContextKey, session)
		c.Next()
	}
}

// RoleRequired aborts with 403 unless the session user has the given role.
// Must run after SessionAuth.
func (m *AuthMiddleware) RoleRequired(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := SessionFromContext(c)
		if !ok {
			abortUnauthorized(c, "Authentication required")
			return
		}
		if session.User.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeForbidden, "Insufficient role")))
			return
		}
		c.Next()
	}
}

// SessionFromContext returns the session stored by SessionAuth.
func SessionFromContext(c *gin.Context) (auth.Session, bool) {
	value, exists := c.Get(SessionContextKey)
	if !exists {
		return auth.Session{}, false
	}
	session, ok := value.(auth.Session)
	return session, ok
}

func abortUnauthorized(c *gin.Context, details string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
	errorDetail = errorDetail.WithDetails(details)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}
