package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apper-canvas/dynamic-mindfulpath-integrated/models"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/services"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/store"
)

type GratitudeController struct {
	Svc *services.GratitudeService
}

func NewGratitudeController(svc *services.GratitudeService) *GratitudeController {
	return &GratitudeController{Svc: svc}
}

func (h *GratitudeController) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.GetAll(c.Request.Context()))
}

func (h *GratitudeController) Get(c *gin.Context) {
	entry := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *GratitudeController) Create(c *gin.Context) {
	var req models.CreateGratitudeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.Svc.Create(c.Request.Context(), req.Entry()))
}

func (h *GratitudeController) Update(c *gin.Context) {
	var patch models.GratitudePatch
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

func (h *GratitudeController) Delete(c *gin.Context) {
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

func (h *GratitudeController) Today(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.TodaysEntry(c.Request.Context()))
}

func (h *GratitudeController) Streak(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"streak": h.Svc.CurrentStreak(c.Request.Context())})
}
