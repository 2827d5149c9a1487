package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/calorie-quest/backend/internal/service"
)

// ProgressHandler serves body measurements and the gamification state.
type ProgressHandler struct {
	measurementService  service.IMeasurementService
	gamificationService service.IGamificationService
}

func NewProgressHandler(measurementService service.IMeasurementService, gamificationService service.IGamificationService) *ProgressHandler {
	return &ProgressHandler{
		measurementService:  measurementService,
		gamificationService: gamificationService,
	}
}

func (h *ProgressHandler) RegisterRoutes(router *gin.RouterGroup) {
	progress := router.Group("/progress")
	{
		progress.GET("/measurements", h.ListMeasurements)
		progress.POST("/measurements", h.SaveMeasurement)
		progress.DELETE("/measurements/:id", h.DeleteMeasurement)
		progress.GET("/gamification", h.GetGamification)
	}
}

func (h *ProgressHandler) ListMeasurements(c *gin.Context) {
	list, err := h.measurementService.ListMeasurements(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// SaveMeasurement creates (201) or overwrites (200) the measurement for a date.
func (h *ProgressHandler) SaveMeasurement(c *gin.Context) {
	var in service.MeasurementInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	m, created, err := h.measurementService.SaveMeasurement(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, m)
}

func (h *ProgressHandler) DeleteMeasurement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, errInvalidID)
		return
	}
	if err := h.measurementService.DeleteMeasurement(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "measurement deleted"})
}

func (h *ProgressHandler) GetGamification(c *gin.Context) {
	state, err := h.gamificationService.GetState(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGamificationResponse(state))
}
