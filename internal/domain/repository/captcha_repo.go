package repository

import (
	"context"

	"github.com/yourusername/captcha-api/internal/domain/entity"
)

// CaptchaRepository определяет методы для работы с капчами
type CaptchaRepository interface {
	// Create сохраняет капчу и заполняет её ID значением, присвоенным базой
	Create(ctx context.Context, captcha *entity.Captcha) error
	GetByID(ctx context.Context, id uint) (*entity.Captcha, error)
}
