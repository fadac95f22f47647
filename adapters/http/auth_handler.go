package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/Chetan55567/portfolio-api/internal/application/usecase/auth"
	"github.com/Chetan55567/portfolio-api/pkg/apperror"
	"github.com/Chetan55567/portfolio-api/pkg/logger"
)

type AuthHandler struct {
	loginUseCase  *authUC.LoginUseCase
	logoutUseCase *authUC.LogoutUseCase
	secureCookies bool
	logger        logger.Logger
}

func NewAuthHandler(loginUC *authUC.LoginUseCase, logoutUC *authUC.LogoutUseCase, secureCookies bool, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		loginUseCase:  loginUC,
		logoutUseCase: logoutUC,
		secureCookies: secureCookies,
		logger:        log,
	}
}

// Auth handles both login and logout on one endpoint, switched by the
// "action" field.
func (h *AuthHandler) Auth(c *gin.Context) {
	var req AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	if req.Action == "logout" {
		token, _ := c.Cookie(AuthCookieName)
		// the cookie is cleared even when revocation fails; the client
		// session always ends on logout
		clearAuthCookie(c, h.secureCookies)
		if err := h.logoutUseCase.Execute(c.Request.Context(), token); err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	if req.Username == "" || req.Password == "" {
		c.Error(apperror.NewInvalidInput("Username and password are required", nil))
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), authUC.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, apperror.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.Error(err)
		return
	}

	setAuthCookie(c, output.AccessToken, output.MaxAge, h.secureCookies)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
