package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hiring-feedback-backend/controllers"
	feedbackrequesthandler "hiring-feedback-backend/lib/feedback-request"
	apimodels "hiring-feedback-backend/models/api"
	feedbackapimodels "hiring-feedback-backend/models/api/feedback"
)

type feedbackRequestApiController struct {
	controllers.BaseAPIController
}

func InitFeedbackRequestApiRouters(app *fiber.App) {
	controller := feedbackRequestApiController{}
	app.Route("application", func(router fiber.Router) {
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Post("feedback-request", controller.request) // запросить/повторить отзыв по этапу
		})
	})
}

// @Summary Запросить отзыв кандидата по этапу
// @Tags Отзывы
// @Description Создает запрос отзыва по этапу и отправляет письмо, повторный вызов переотправляет письмо
// @Param   id   path    string  true  "ID отклика"
// @Param body body feedbackapimodels.RequestFeedbackRequest true "body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/v1/application/{id}/feedback-request [post]
func (c *feedbackRequestApiController) request(ctx *fiber.Ctx) error {
	applicationID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body := feedbackapimodels.RequestFeedbackRequest{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := body.Validate(); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	err = feedbackrequesthandler.Instance.RequestFeedback(applicationID, body.Stage)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.JSON(apimodels.NewResponse(nil))
}
