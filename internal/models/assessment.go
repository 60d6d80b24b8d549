package models

import "github.com/google/uuid"

// Assessment — проверочный тест, привязанный к материалу.
// Для ядра портала тест непрозрачен: используется только для проверки
// существования и передачи идентификатора плюс отображаемые поля.
type Assessment struct {
	ID            string
	MaterialID    string
	Title         string
	QuestionCount int32
	PassingScore  int32
	EstimatedTime string
}

// Identity — аутентифицированный пользователь с точки зрения портала.
// Сама подсистема аутентификации внешняя: портал лишь валидирует access-токен
// и извлекает из него идентификатор и отображаемое имя.
type Identity struct {
	UserID   uuid.UUID
	Username string
}
