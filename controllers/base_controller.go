package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hiring-feedback-backend/models"
	apimodels "hiring-feedback-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("не указан идентификатор записи")
	}
	return id, nil
}

// ErrorResponse код ответа выбирается по ошибке движка
func (c *BaseAPIController) ErrorResponse(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, models.ErrValidation):
		code = fiber.StatusBadRequest
	case errors.Is(err, models.ErrInvalidToken):
		code = fiber.StatusForbidden
	case errors.Is(err, models.ErrDelivery):
		code = fiber.StatusBadGateway
	}
	return ctx.Status(code).JSON(apimodels.NewError(err.Error()))
}
