package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agriinsight/internal/monitoring"
)

// HealthCheck is a liveness probe with no dependencies.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// StatusHandler reports a runtime snapshot for operators.
type StatusHandler struct {
	service *monitoring.Service
}

func NewStatusHandler(service *monitoring.Service) *StatusHandler {
	return &StatusHandler{service: service}
}

func (h *StatusHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Snapshot())
}
