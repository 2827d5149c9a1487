package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/calorie-quest/backend/internal/service"
)

// DayHandler serves the food diary: days and the meals logged on them.
type DayHandler struct {
	mealService service.IMealService
}

func NewDayHandler(mealService service.IMealService) *DayHandler {
	return &DayHandler{mealService: mealService}
}

func (h *DayHandler) RegisterRoutes(router *gin.RouterGroup) {
	days := router.Group("/days")
	{
		days.GET("", h.ListDays)
		days.GET("/:date", h.GetDay)
		days.POST("/:date/meals", h.AddMeal)
		days.PUT("/meals/:id", h.EditMeal)
		days.DELETE("/meals/:id", h.DeleteMeal)
	}
}

func (h *DayHandler) ListDays(c *gin.Context) {
	days, err := h.mealService.ListDays(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]DayListItem, len(days))
	for i, d := range days {
		out[i] = newDayListItem(d)
	}
	c.JSON(http.StatusOK, out)
}

func (h *DayHandler) GetDay(c *gin.Context) {
	day, err := h.mealService.GetDay(c.Request.Context(), c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDayResponse(day))
}

func (h *DayHandler) AddMeal(c *gin.Context) {
	var in service.MealInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	res, err := h.mealService.AddMeal(c.Request.Context(), c.Param("date"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newMealResponse(res))
}

func (h *DayHandler) EditMeal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, errInvalidID)
		return
	}
	var in service.MealEdit
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	res, err := h.mealService.EditMeal(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newMealResponse(res))
}

func (h *DayHandler) DeleteMeal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, errInvalidID)
		return
	}
	if err := h.mealService.DeleteMeal(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "meal deleted"})
}
