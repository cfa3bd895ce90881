package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mbonetti/leetsync-engine/internal/core/analytics"
	"github.com/mbonetti/leetsync-engine/internal/core/domain"
)

// AnalyticsHandler serves reports computed over the stored snapshot, so
// reads never touch the remote services.
type AnalyticsHandler struct {
	snapshots domain.SnapshotRepository
	engine    *analytics.Engine
}

func NewAnalyticsHandler(snapshots domain.SnapshotRepository, engine *analytics.Engine) *AnalyticsHandler {
	return &AnalyticsHandler{
		snapshots: snapshots,
		engine:    engine,
	}
}

func (h *AnalyticsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/analytics", h.Report)
	r.GET("/metrics", h.Metrics)
	r.GET("/problems", h.Problems)
}

// @Summary Analytics report
// @Description Generates the topic, progress and summary report from the stored snapshot.
// @Tags analytics
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} domain.AnalyticsReport
// @Failure 500 {object} map[string]string "Snapshot read failed"
// @Router /analytics [get]
func (h *AnalyticsHandler) Report(c *gin.Context) {
	records, err := h.snapshots.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load snapshot"})
		return
	}

	c.JSON(http.StatusOK, h.engine.Generate(records))
}

// @Summary Progress metrics
// @Description Returns streaks, solving patterns and difficulty progression from the stored snapshot.
// @Tags analytics
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} domain.ProgressMetrics
// @Failure 500 {object} map[string]string "Snapshot read failed"
// @Router /metrics [get]
func (h *AnalyticsHandler) Metrics(c *gin.Context) {
	records, err := h.snapshots.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load snapshot"})
		return
	}

	c.JSON(http.StatusOK, h.engine.Metrics(records))
}

// @Summary Stored problem snapshot
// @Description Lists the normalized problem records from the last successful sync.
// @Tags analytics
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} domain.ProblemRecord
// @Failure 500 {object} map[string]string "Snapshot read failed"
// @Router /problems [get]
func (h *AnalyticsHandler) Problems(c *gin.Context) {
	records, err := h.snapshots.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load snapshot"})
		return
	}

	c.JSON(http.StatusOK, records)
}
