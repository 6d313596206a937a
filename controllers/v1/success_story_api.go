package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hiring-feedback-backend/controllers"
	successstoryhandler "hiring-feedback-backend/lib/success-story"
	apimodels "hiring-feedback-backend/models/api"
	storyapimodels "hiring-feedback-backend/models/api/success-story"
)

type successStoryApiController struct {
	controllers.BaseAPIController
}

func InitSuccessStoryApiRouters(app *fiber.App) {
	controller := successStoryApiController{}
	app.Route("success-story", func(router fiber.Router) {
		router.Post("list", controller.list)
	})
}

// @Summary Список историй успеха
// @Tags Истории успеха
// @Description Список историй успеха с пагинацией, опционально по работодателю
// @Param body body storyapimodels.SuccessStoryFilter true "body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]storyapimodels.SuccessStoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/success-story/list [post]
func (c *successStoryApiController) list(ctx *fiber.Ctx) error {
	body := storyapimodels.SuccessStoryFilter{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := successstoryhandler.Instance.List(body)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.JSON(apimodels.NewScrollerResponse(list, rowCount))
}
