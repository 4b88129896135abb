package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/apper-canvas/dynamic-mindfulpath-integrated/services"
)

type ExportController struct {
	Svc *services.ExportService
}

func NewExportController(svc *services.ExportService) *ExportController {
	return &ExportController{Svc: svc}
}

// Counts reports how many records per category fall in the range, so
// the caller can preview an export before requesting it. The range
// defaults to the last 30 days.
func (h *ExportController) Counts(c *gin.Context) {
	now := time.Now()
	start := c.DefaultQuery("startDate", now.AddDate(0, 0, -30).Format("2006-01-02"))
	end := c.DefaultQuery("endDate", now.Format("2006-01-02"))

	counts, err := h.Svc.Counts(c.Request.Context(), start, end)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"startDate": start,
		"endDate":   end,
		"counts":    counts,
	})
}

func (h *ExportController) Export(c *gin.Context) {
	var req services.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Svc.Export(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Body)
}
