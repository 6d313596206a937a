package apimodels

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"hiring-feedback-backend/models"
)

var validate = validator.New()

// ValidateStruct проверка DTO по тегам validate, до любого сохранения
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err != nil {
		return errors.Wrap(models.ErrValidation, err.Error())
	}
	return nil
}

// ValidateEmail синтаксическая проверка адреса получателя
func ValidateEmail(email string) error {
	err := validate.Var(email, "required,email")
	if err != nil {
		return errors.Wrapf(models.ErrValidation, "некорректный адрес почты (%v)", email)
	}
	return nil
}
