package entity

// Captcha представляет пару вопрос/ответ для капчи в лабиринте.
// Запись создаётся один раз и больше не изменяется.
type Captcha struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Question string `gorm:"type:text;not null" json:"question"`
	Answer   string `gorm:"type:text;not null" json:"-"` // Скрыто от клиента
}

// TableName определяет имя таблицы для GORM
func (Captcha) TableName() string {
	return "captchas"
}
