package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type AuthMiddleware struct {
	tokenService *auth.SessionTokenService
	userRepo     user.Repository
	cookieName   string
	logger       logger.Interface
}

func NewAuthMiddleware(
	tokenService *auth.SessionTokenService,
	userRepo user.Repository,
	cookieName string,
	logger logger.Interface,
) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		userRepo:     userRepo,
		cookieName:   cookieName,
		logger:       logger,
	}
}

// RequireAuth authenticates the session cookie and resolves the user from
// the store. Role and email come from the database on every request, so a
// role change takes effect without reissuing the cookie.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetTokenFromCookie(c, m.cookieName)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication token")
			c.Abort()
			return
		}

		claims, err := m.tokenService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify session token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		u, err := m.userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			// Token is valid but the account is gone.
			m.logger.Warnw("session token for unknown user", "user_id", claims.UserID)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, u.ID())
		c.Set(constants.ContextKeyUserEmail, u.Email())
		c.Set(constants.ContextKeyUserRole, u.Role().String())

		c.Next()
	}
}

// RequireAdmin allows only admin users through. Must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)
		if role != constants.RoleAdmin {
			utils.ErrorResponse(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUserID returns the authenticated user's ID from the context.
func CurrentUserID(c *gin.Context) uint {
	if v, exists := c.Get(constants.ContextKeyUserID); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// IsAdmin reports whether the authenticated user has the admin role.
func IsAdmin(c *gin.Context) bool {
	return c.GetString(constants.ContextKeyUserRole) == constants.RoleAdmin
}
