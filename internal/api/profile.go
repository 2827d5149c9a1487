package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/calorie-quest/backend/internal/service"
)

type ProfileHandler struct {
	profileService service.IProfileService
}

func NewProfileHandler(profileService service.IProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.POST("", h.SaveProfile)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfile(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SaveProfile creates the profile (201) or updates it (200).
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var in service.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	profile, created, err := h.profileService.SaveProfile(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, profile)
}
