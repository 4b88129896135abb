package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apper-canvas/dynamic-mindfulpath-integrated/models"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/services"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/store"
)

type AllergyController struct {
	Svc *services.AllergyService
}

func NewAllergyController(svc *services.AllergyService) *AllergyController {
	return &AllergyController{Svc: svc}
}

func (h *AllergyController) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.GetAll(c.Request.Context()))
}

func (h *AllergyController) Get(c *gin.Context) {
	episode := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if episode == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "episode not found"})
		return
	}
	c.JSON(http.StatusOK, episode)
}

func (h *AllergyController) Create(c *gin.Context) {
	var req models.CreateAllergyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.Svc.Create(c.Request.Context(), req.Episode()))
}

func (h *AllergyController) Update(c *gin.Context) {
	var patch models.AllergyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	episode, err := h.Svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "episode not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, episode)
}

func (h *AllergyController) Delete(c *gin.Context) {
	episode, err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "episode not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, episode)
}

func (h *AllergyController) Recent(c *gin.Context) {
	limit, ok := limitQuery(c, 5)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.Svc.RecentEpisodes(c.Request.Context(), limit))
}

func (h *AllergyController) TriggerFrequency(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.TriggerFrequency(c.Request.Context()))
}
