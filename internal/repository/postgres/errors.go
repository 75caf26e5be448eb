package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	apperrors "github.com/yourusername/captcha-api/internal/pkg/errors"
)

// Коды ошибок PostgreSQL, которые имеют смысл для вызывающего кода
const (
	pgCodeUniqueViolation  = "23505"
	pgCodeNotNullViolation = "23502"
	pgCodeCheckViolation   = "23514"
)

// pgErrorCode извлекает SQLSTATE из ошибки pgx/v5 (pgconn.PgError) или lib/pq (pq.Error)
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// classifyError переводит ошибку драйвера в ошибку приложения.
// Нераспознанные ошибки оборачиваются как есть и считаются сбоем хранилища.
func classifyError(op string, err error) error {
	if err == nil {
		return nil
	}
	switch pgErrorCode(err) {
	case pgCodeUniqueViolation:
		return fmt.Errorf("%s: %w: %v", op, apperrors.ErrConflict, err)
	case pgCodeNotNullViolation, pgCodeCheckViolation:
		return fmt.Errorf("%s: %w: %v", op, apperrors.ErrValidation, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
