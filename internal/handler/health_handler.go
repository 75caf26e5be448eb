package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yourusername/captcha-api/internal/handler/dto"
	"github.com/yourusername/captcha-api/pkg/database"
)

// LivenessMessage - фиксированный ответ корневого маршрута
const LivenessMessage = "Maze Game Captcha API running!"

const readinessTimeout = 2 * time.Second

// HealthHandler обслуживает проверки живости и готовности
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler создает обработчик проверок состояния
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Root отвечает, что процесс запущен. Базу данных не трогает.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: LivenessMessage})
}

// Ready проверяет доступность базы данных
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, dto.StatusResponse{Status: "unavailable"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	if err := database.Ping(ctx, h.db); err != nil {
		log.Printf("[HealthHandler] База данных недоступна: %v", err)
		c.JSON(http.StatusServiceUnavailable, dto.StatusResponse{Status: "unavailable"})
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: "ok"})
}
