package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/captcha-api/internal/domain/entity"
	apperrors "github.com/yourusername/captcha-api/internal/pkg/errors"
)

// CaptchaRepo реализует repository.CaptchaRepository
type CaptchaRepo struct {
	db *gorm.DB
}

// NewCaptchaRepo создает новый репозиторий капч
func NewCaptchaRepo(db *gorm.DB) *CaptchaRepo {
	return &CaptchaRepo{db: db}
}

// Create сохраняет капчу в отдельной транзакции.
// Соединение берётся из пула на время транзакции и возвращается при любом исходе
// (commit или rollback). ID заполняется через RETURNING и соответствует закоммиченной строке.
func (r *CaptchaRepo) Create(ctx context.Context, captcha *entity.Captcha) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(captcha).Error
	})
	return classifyError("create captcha", err)
}

// GetByID возвращает капчу по ID
func (r *CaptchaRepo) GetByID(ctx context.Context, id uint) (*entity.Captcha, error) {
	var captcha entity.Captcha
	err := r.db.WithContext(ctx).First(&captcha, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, classifyError("get captcha", err)
	}
	return &captcha, nil
}
