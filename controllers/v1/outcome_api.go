package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hiring-feedback-backend/controllers"
	outcomehandler "hiring-feedback-backend/lib/outcome"
	apimodels "hiring-feedback-backend/models/api"
	outcomeapimodels "hiring-feedback-backend/models/api/outcome"
)

type outcomeApiController struct {
	controllers.BaseAPIController
}

func InitOutcomeApiRouters(app *fiber.App) {
	controller := outcomeApiController{}
	app.Route("outcome", func(router fiber.Router) {
		router.Post("", controller.record)
	})
}

// @Summary Зафиксировать результат подбора
// @Tags Результат подбора
// @Description Фиксирует терминальный результат по отклику и запускает запрос отзыва
// @Param body body outcomeapimodels.RecordOutcomeRequest true "body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/outcome [post]
func (c *outcomeApiController) record(ctx *fiber.Ctx) error {
	body := outcomeapimodels.RecordOutcomeRequest{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := outcomehandler.Instance.Record(body)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.JSON(apimodels.NewResponse(id))
}
