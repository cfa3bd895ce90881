package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mbonetti/leetsync-engine/internal/core/services"
)

type StatusHandler struct {
	svc *services.SyncService
}

func NewStatusHandler(svc *services.SyncService) *StatusHandler {
	return &StatusHandler{svc: svc}
}

func (h *StatusHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/status", h.Status)
	r.GET("/runs", h.Runs)
}

// @Summary Current synchronization status
// @Description Reports the latest sync run, stored snapshot size and live connection checks.
// @Tags status
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} services.SyncStatus
// @Failure 500 {object} map[string]string "Status lookup failed"
// @Router /status [get]
func (h *StatusHandler) Status(c *gin.Context) {
	status, err := h.svc.Status(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve status"})
		return
	}

	c.JSON(http.StatusOK, status)
}

// @Summary Recent sync runs
// @Description Lists sync runs started within the last N days, newest first.
// @Tags status
// @Security ApiKeyAuth
// @Produce json
// @Param days query int false "Lookback window in days (default 7)"
// @Success 200 {array} domain.SyncRun
// @Failure 400 {object} map[string]string "Invalid days parameter"
// @Failure 500 {object} map[string]string "Run lookup failed"
// @Router /runs [get]
func (h *StatusHandler) Runs(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
		return
	}

	since := time.Now().UTC().AddDate(0, 0, -days)
	runs, err := h.svc.RunsSince(c.Request.Context(), since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve sync runs"})
		return
	}

	c.JSON(http.StatusOK, runs)
}
