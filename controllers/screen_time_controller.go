package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/apper-canvas/dynamic-mindfulpath-integrated/models"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/services"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/store"
)

type ScreenTimeController struct {
	Svc *services.ScreenTimeService
}

func NewScreenTimeController(svc *services.ScreenTimeService) *ScreenTimeController {
	return &ScreenTimeController{Svc: svc}
}

func (h *ScreenTimeController) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.GetAll(c.Request.Context()))
}

func (h *ScreenTimeController) Get(c *gin.Context) {
	entry := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "log not found"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *ScreenTimeController) Create(c *gin.Context) {
	var req models.CreateScreenTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.Svc.Create(c.Request.Context(), req.Entry()))
}

func (h *ScreenTimeController) Update(c *gin.Context) {
	var patch models.ScreenTimePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := h.Svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "log not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *ScreenTimeController) Delete(c *gin.Context) {
	entry, err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "log not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *ScreenTimeController) Today(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.TodaysEntry(c.Request.Context()))
}

func (h *ScreenTimeController) WeeklyTrends(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.WeeklyTrends(c.Request.Context()))
}

func (h *ScreenTimeController) MonthlyTrends(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.MonthlyTrends(c.Request.Context()))
}

// Average reports the mean daily minutes over the last `days` days
// (default 7).
func (h *ScreenTimeController) Average(c *gin.Context) {
	days := 7
	if v := c.Query("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = parsed
	}
	c.JSON(http.StatusOK, gin.H{
		"days":           days,
		"averageMinutes": h.Svc.AverageScreenTime(c.Request.Context(), days),
	})
}
