package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/captcha-api/internal/handler/dto"
	"github.com/yourusername/captcha-api/internal/middleware"
	apperrors "github.com/yourusername/captcha-api/internal/pkg/errors"
	"github.com/yourusername/captcha-api/internal/service"
)

// CaptchaHandler обрабатывает запросы, связанные с капчами
type CaptchaHandler struct {
	captchaService *service.CaptchaService
}

// NewCaptchaHandler создает новый обработчик капч
func NewCaptchaHandler(captchaService *service.CaptchaService) *CaptchaHandler {
	return &CaptchaHandler{captchaService: captchaService}
}

// CreateCaptcha обрабатывает запрос на создание капчи
func (h *CaptchaHandler) CreateCaptcha(c *gin.Context) {
	var req dto.CreateCaptchaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	captcha, err := h.captchaService.CreateCaptcha(c.Request.Context(), *req.Question, *req.Answer)
	if err != nil {
		h.handleCaptchaError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCaptchaResponse(captcha))
}

// GetCaptcha возвращает капчу по ID без ответа
func (h *CaptchaHandler) GetCaptcha(c *gin.Context) {
	captchaID := c.MustGet("captchaID").(uint)

	captcha, err := h.captchaService.GetCaptcha(c.Request.Context(), captchaID)
	if err != nil {
		h.handleCaptchaError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCaptchaResponse(captcha))
}

// handleCaptchaError переводит ошибки сервиса в HTTP-ответы
func (h *CaptchaHandler) handleCaptchaError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Captcha not found"})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		log.Printf("ERROR: Internal server error in CaptchaHandler (request_id=%s): %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
