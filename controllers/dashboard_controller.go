package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apper-canvas/dynamic-mindfulpath-integrated/services"
)

type DashboardController struct {
	Svc *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{Svc: svc}
}

func (h *DashboardController) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.Summary(c.Request.Context()))
}
