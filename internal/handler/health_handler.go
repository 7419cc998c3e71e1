// Package handler contains the gin HTTP handlers. Handlers parse the
// request, call the service layer and render its outcome; they hold no
// state of their own.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles liveness checks.
type HealthHandler struct {
	storageDriver string
}

// NewHealthHandler creates a HealthHandler reporting the configured
// storage driver.
func NewHealthHandler(storageDriver string) *HealthHandler {
	return &HealthHandler{storageDriver: storageDriver}
}

// Healthz responds with the service status. It does not touch the
// repository, so a slow backend never fails the liveness probe.
func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "heroes-service",
		"storage": h.storageDriver,
	})
}
