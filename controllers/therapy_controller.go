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

type TherapyController struct {
	Svc *services.TherapyService
}

func NewTherapyController(svc *services.TherapyService) *TherapyController {
	return &TherapyController{Svc: svc}
}

func (h *TherapyController) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.GetAll(c.Request.Context()))
}

func (h *TherapyController) Get(c *gin.Context) {
	session := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *TherapyController) Create(c *gin.Context) {
	var req models.CreateTherapyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.Svc.Create(c.Request.Context(), req.Session()))
}

func (h *TherapyController) Update(c *gin.Context) {
	var patch models.TherapyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session, err := h.Svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *TherapyController) Delete(c *gin.Context) {
	session, err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *TherapyController) Recent(c *gin.Context) {
	limit, ok := limitQuery(c, 5)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.Svc.RecentSessions(c.Request.Context(), limit))
}

func (h *TherapyController) TopicFrequency(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.TopicFrequency(c.Request.Context()))
}

// limitQuery reads a ?limit= query with a default; a bad value writes the
// 400 itself and reports ok=false.
func limitQuery(c *gin.Context, def int) (int, bool) {
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return 0, false
		}
		return parsed, true
	}
	return def, true
}
