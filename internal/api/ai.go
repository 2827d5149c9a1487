package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/calorie-quest/backend/internal/service"
)

// AIHandler serves the AI generated progress summary and daily quest.
type AIHandler struct {
	progressService service.IProgressService
	questService    service.IQuestService
	recomputeLimit  gin.HandlerFunc
}

// NewAIHandler creates an AIHandler. recomputeLimit guards the expensive
// recompute call and may be nil.
func NewAIHandler(progressService service.IProgressService, questService service.IQuestService, recomputeLimit gin.HandlerFunc) *AIHandler {
	return &AIHandler{
		progressService: progressService,
		questService:    questService,
		recomputeLimit:  recomputeLimit,
	}
}

func (h *AIHandler) RegisterRoutes(router *gin.RouterGroup) {
	ai := router.Group("/ai")
	{
		ai.GET("/progress/summary", h.GetProgressSummary)
		if h.recomputeLimit != nil {
			ai.POST("/recompute-progress", h.recomputeLimit, h.RecomputeProgress)
		} else {
			ai.POST("/recompute-progress", h.RecomputeProgress)
		}
		ai.GET("/daily-quest", h.GetDailyQuest)
	}
}

func (h *AIHandler) GetProgressSummary(c *gin.Context) {
	summary, err := h.progressService.GetSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *AIHandler) RecomputeProgress(c *gin.Context) {
	summary, err := h.progressService.Recompute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *AIHandler) GetDailyQuest(c *gin.Context) {
	c.JSON(http.StatusOK, h.questService.GetDailyQuest(c.Request.Context()))
}
