package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Chetan55567/portfolio-api/internal/application/service"
	"github.com/Chetan55567/portfolio-api/pkg/auth"
	"github.com/Chetan55567/portfolio-api/pkg/logger"
)

const (
	AuthCookieName         = "auth-token"
	GinContextKeyAdminUser = "adminUser"
)

// AuthMiddleware re-verifies the session on every protected request; the
// cookie is the primary transport, a Bearer header is accepted as a
// fallback for API clients.
func AuthMiddleware(jwtSvc *auth.JWTService, revoker service.SessionRevoker, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {

		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		revoked, err := revoker.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			// fail closed when the revocation store is unreachable
			log.Error("Failed to check session revocation", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session revoked"})
			return
		}

		c.Set(GinContextKeyAdminUser, claims.Username)

		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
		return token
	}
	return ""
}

func GetAdminUserFromGinContext(c *gin.Context) (string, bool) {
	value, ok := c.Get(GinContextKeyAdminUser)
	if !ok {
		return "", false
	}
	username, ok := value.(string)
	return username, ok
}

func setAuthCookie(c *gin.Context, token string, maxAge time.Duration, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AuthCookieName, token, int(maxAge.Seconds()), "/", "", secure, true)
}

func clearAuthCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AuthCookieName, "", -1, "/", "", secure, true)
}
