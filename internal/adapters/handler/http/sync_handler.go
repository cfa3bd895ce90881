package http

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mbonetti/leetsync-engine/internal/core/domain"
	"github.com/mbonetti/leetsync-engine/internal/core/services"
)

type SyncHandler struct {
	svc *services.SyncService
}

func NewSyncHandler(svc *services.SyncService) *SyncHandler {
	return &SyncHandler{svc: svc}
}

func (h *SyncHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/sync", h.Sync)
	r.POST("/cleanup", h.Cleanup)
}

// @Summary Trigger a synchronization pass
// @Description Runs a full or incremental sync from LeetCode to Google Sheets. Requires authentication.
// @Tags sync
// @Security ApiKeyAuth
// @Produce json
// @Param mode query string false "Sync mode: full or incremental (default incremental)"
// @Success 200 {object} services.SyncResult
// @Failure 400 {object} map[string]string "Unknown sync mode"
// @Failure 502 {object} map[string]string "Sync pipeline failed"
// @Router /sync [post]
func (h *SyncHandler) Sync(c *gin.Context) {
	mode := c.DefaultQuery("mode", domain.SyncModeIncremental)

	var (
		result *services.SyncResult
		err    error
	)
	switch mode {
	case domain.SyncModeFull:
		result, err = h.svc.FullSync(c.Request.Context(), domain.SyncTriggerAPI)
	case domain.SyncModeIncremental:
		result, err = h.svc.IncrementalSync(c.Request.Context(), domain.SyncTriggerAPI)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be full or incremental"})
		return
	}
	if err != nil {
		log.Printf("api: %s sync failed: %v", mode, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "sync failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Remove records outside the retention window
// @Description Drops problems solved before the given number of days and republishes the sheets. Requires authentication.
// @Tags sync
// @Security ApiKeyAuth
// @Produce json
// @Param days query int false "Days of data to keep (default 365)"
// @Success 200 {object} services.SyncResult
// @Failure 400 {object} map[string]string "Invalid days parameter"
// @Failure 502 {object} map[string]string "Cleanup failed"
// @Router /cleanup [post]
func (h *SyncHandler) Cleanup(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "365"))
	if err != nil || days < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
		return
	}

	result, err := h.svc.Cleanup(c.Request.Context(), days, domain.SyncTriggerAPI)
	if err != nil {
		log.Printf("api: cleanup failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "cleanup failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}
