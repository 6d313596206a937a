package models

import "github.com/pkg/errors"

// Ошибки движка, по ним контроллеры выбирают код ответа.
// Использовать через errors.Wrap/errors.Is
var (
	ErrNotFound     = errors.New("запись не найдена")
	ErrValidation   = errors.New("некорректные данные запроса")
	ErrDelivery     = errors.New("не удалось отправить уведомление")
	ErrInvalidToken = errors.New("код не найден, просрочен или уже использован")
)
