package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apper-canvas/dynamic-mindfulpath-integrated/models"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/services"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/store"
)

type MoodController struct {
	Svc *services.MoodService
}

func NewMoodController(svc *services.MoodService) *MoodController {
	return &MoodController{Svc: svc}
}

func (h *MoodController) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.GetAll(c.Request.Context()))
}

func (h *MoodController) Get(c *gin.Context) {
	entry := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *MoodController) Create(c *gin.Context) {
	var req models.CreateMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.Svc.Create(c.Request.Context(), req.Entry()))
}

func (h *MoodController) Update(c *gin.Context) {
	var patch models.MoodPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := h.Svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *MoodController) Delete(c *gin.Context) {
	entry, err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Today returns a JSON null when nothing has been logged yet; that is
// an expected state, not an error.
func (h *MoodController) Today(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.TodaysEntry(c.Request.Context()))
}

func (h *MoodController) WeeklyTrends(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.WeeklyTrends(c.Request.Context()))
}

func (h *MoodController) MonthlyTrends(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.MonthlyTrends(c.Request.Context()))
}
