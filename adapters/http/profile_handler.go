package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/Chetan55567/portfolio-api/internal/application/usecase/profile"
	"github.com/Chetan55567/portfolio-api/pkg/apperror"
	"github.com/Chetan55567/portfolio-api/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: uc,
		logger:         log,
	}
}

// GetProfile is the public read endpoint: the full {profile, settings}
// envelope, no auth.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output.Data)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile update", err))
		return
	}

	input := profileUC.UpdateProfileInput{
		Profile:  req.Profile,
		Settings: req.Settings,
	}
	output, err := h.profileUseCase.ExecuteUpdateProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output.Data)
}
