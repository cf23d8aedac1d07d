package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Maxxvall/BarskieHoromi/internal/application/ports"
)

// HealthHandler обрабатывает health check endpoints.
type HealthHandler struct {
	store   ports.PromoStore
	archive ports.OrderArchive // nil когда архив не настроен
	version string
}

// NewHealthHandler создаёт новый HealthHandler.
func NewHealthHandler(store ports.PromoStore, archive ports.OrderArchive, version string) *HealthHandler {
	return &HealthHandler{store: store, archive: archive, version: version}
}

// RegisterRoutes регистрирует health check маршруты.
func (h *HealthHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}

// Health - liveness probe: процесс жив и отвечает.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"version":   h.version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready - readiness probe: проверяет зависимости.
// Архив опционален и не валит готовность, его статус только репортится.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx := c.Request.Context()
	checks := gin.H{}
	status := http.StatusOK

	if err := h.store.Ping(ctx); err != nil {
		checks["promo_store"] = "unavailable"
		status = http.StatusServiceUnavailable
	} else {
		checks["promo_store"] = "ok"
	}

	if h.archive != nil {
		if err := h.archive.Ping(ctx); err != nil {
			checks["order_archive"] = "unavailable"
		} else {
			checks["order_archive"] = "ok"
		}
	} else {
		checks["order_archive"] = "disabled"
	}

	readyStatus := "ready"
	if status != http.StatusOK {
		readyStatus = "not ready"
	}

	c.JSON(status, gin.H{
		"status": readyStatus,
		"checks": checks,
	})
}
