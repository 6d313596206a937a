package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hiring-feedback-backend/controllers"
	xlsexport "hiring-feedback-backend/lib/export/xls"
	ratinghandler "hiring-feedback-backend/lib/rating"
	apimodels "hiring-feedback-backend/models/api"
	ratingapimodels "hiring-feedback-backend/models/api/rating"
)

type ratingApiController struct {
	controllers.BaseAPIController
}

func InitRatingApiRouters(app *fiber.App) {
	controller := ratingApiController{}
	app.Route("rating", func(router fiber.Router) {
		router.Get("export", controller.export)
		router.Get(":id", controller.get)
	})
}

// @Summary Рейтинг работодателя
// @Tags Рейтинг
// @Description Текущий срез рейтинга работодателя
// @Param   id   path    string  true  "ID работодателя"
// @Success 200 {object} apimodels.Response{data=ratingapimodels.CompanyRatingView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/rating/{id} [get]
func (c *ratingApiController) get(ctx *fiber.Ctx) error {
	companyID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := ratinghandler.Instance.GetCompanyRating(companyID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.JSON(apimodels.NewResponse(ratingapimodels.Convert(*rec)))
}

// @Summary Выгрузка рейтингов в XLSX
// @Tags Рейтинг
// @Description Срезы рейтингов всех работодателей одним файлом
// @Success 200
// @Failure 500 {object} apimodels.Response
// @router /api/v1/rating/export [get]
func (c *ratingApiController) export(ctx *fiber.Ctx) error {
	data, err := xlsexport.Instance.ExportRatings()
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="company_ratings.xlsx"`)
	return ctx.Send(data)
}
