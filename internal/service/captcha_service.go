package service

import (
	"context"
	"fmt"
	"log"

	"github.com/yourusername/captcha-api/internal/domain/entity"
	"github.com/yourusername/captcha-api/internal/domain/repository"
)

// CaptchaService предоставляет методы для работы с капчами
type CaptchaService struct {
	captchaRepo repository.CaptchaRepository
}

// NewCaptchaService создает новый сервис капч
func NewCaptchaService(captchaRepo repository.CaptchaRepository) *CaptchaService {
	return &CaptchaService{captchaRepo: captchaRepo}
}

// CreateCaptcha сохраняет новую пару вопрос/ответ и возвращает сохранённую запись с присвоенным ID.
// Дедупликации нет: одинаковые пары получают разные ID.
func (s *CaptchaService) CreateCaptcha(ctx context.Context, question, answer string) (*entity.Captcha, error) {
	captcha := &entity.Captcha{
		Question: question,
		Answer:   answer,
	}

	if err := s.captchaRepo.Create(ctx, captcha); err != nil {
		return nil, fmt.Errorf("failed to create captcha: %w", err)
	}

	log.Printf("[CaptchaService] Создана капча #%d", captcha.ID)
	return captcha, nil
}

// GetCaptcha возвращает капчу по ID
func (s *CaptchaService) GetCaptcha(ctx context.Context, id uint) (*entity.Captcha, error) {
	return s.captchaRepo.GetByID(ctx, id)
}
