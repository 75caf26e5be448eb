package dto

import (
	"github.com/yourusername/captcha-api/internal/domain/entity"
)

// CreateCaptchaRequest представляет запрос на создание капчи.
// Указатели отличают отсутствующее поле от пустой строки: пустая строка допустима,
// отсутствие поля или null отклоняются валидатором.
type CreateCaptchaRequest struct {
	Question *string `json:"question" binding:"required"`
	Answer   *string `json:"answer" binding:"required"`
}

// CaptchaResponse представляет капчу в формате для ответа клиенту.
// Ответ на капчу в него не входит.
type CaptchaResponse struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
}

// MessageResponse используется для простых текстовых ответов
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse описывает тело ответа проверки готовности
type StatusResponse struct {
	Status string `json:"status"`
}

// NewCaptchaResponse создает DTO для капчи
func NewCaptchaResponse(c *entity.Captcha) *CaptchaResponse {
	if c == nil {
		return nil
	}
	return &CaptchaResponse{
		ID:       c.ID,
		Question: c.Question,
	}
}
