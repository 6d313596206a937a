package public

import (
	"github.com/gofiber/fiber/v2"

	"hiring-feedback-backend/controllers"
	feedbackhandler "hiring-feedback-backend/lib/feedback"
	apimodels "hiring-feedback-backend/models/api"
	feedbackapimodels "hiring-feedback-backend/models/api/feedback"
)

type feedbackApiController struct {
	controllers.BaseAPIController
}

// InitFeedbackApiRouters публичные маршруты, доступ только по одноразовому токену
func InitFeedbackApiRouters(app *fiber.App) {
	controller := feedbackApiController{}
	app.Route("feedback", func(router fiber.Router) {
		router.Route(":token", func(tokenRouter fiber.Router) {
			tokenRouter.Get("", controller.getForm)
			tokenRouter.Post("", controller.submit)
		})
	})
}

// @Summary Данные формы отзыва
// @Tags Отзывы (публичные)
// @Description Данные для отрисовки формы отзыва по токену из письма
// @Param   token   path    string  true  "токен из письма"
// @Success 200 {object} apimodels.Response{data=feedbackapimodels.FormView}
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/feedback/{token} [get]
func (c *feedbackApiController) getForm(ctx *fiber.Ctx) error {
	token := ctx.Params("token")
	view, err := feedbackhandler.Instance.GetFormInfo(token)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.JSON(apimodels.NewResponse(view))
}

// @Summary Отправить отзыв
// @Tags Отзывы (публичные)
// @Description Принимает отзыв кандидата, токен одноразовый
// @Param   token   path    string  true  "токен из письма"
// @Param body body feedbackapimodels.SubmitRequest true "body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/feedback/{token} [post]
func (c *feedbackApiController) submit(ctx *fiber.Ctx) error {
	token := ctx.Params("token")
	body := feedbackapimodels.SubmitRequest{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := feedbackhandler.Instance.Submit(token, body)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.JSON(apimodels.NewResponse(nil))
}
