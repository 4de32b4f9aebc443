package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hiring-flow-backend/controllers"
	"hiring-flow-backend/lib/approval"
	"hiring-flow-backend/lib/recommendation"
	"hiring-flow-backend/lib/verification"
	apimodels "hiring-flow-backend/models/api"
	hiringapimodels "hiring-flow-backend/models/api/hiring"
)

type approvalRequestApiController struct {
	controllers.BaseAPIController
}

func InitApprovalRequestApiRouters(app *fiber.App) {
	controller := approvalRequestApiController{}
	app.Route("request/:id", func(router fiber.Router) {
		router.Post("verification", controller.sendVerification)
		router.Post("approval", controller.sendApproval)
		router.Post("recommendation", controller.sendRecommendation)
		router.Get("recommendation/status", controller.recommendationStatus)
	})
}

// @Summary Send verification request
// @Tags Decision requests
// @Description Issue a verification link and prepare the email draft
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Param	body body	 hiringapimodels.VerificationRequestData	true	"request body"
// @Success 200 {object} apimodels.Response{data=notify.Draft}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/request/{id}/verification [post]
func (c *approvalRequestApiController) sendVerification(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload hiringapimodels.VerificationRequestData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	draft, hMsg, err := verification.Instance.SendRequest(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to send verification request")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(draft))
}

// @Summary Send approval request
// @Tags Decision requests
// @Description Issue an approval link for the role matching the current step
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Success 200 {object} apimodels.Response{data=notify.Draft}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/request/{id}/approval [post]
func (c *approvalRequestApiController) sendApproval(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	draft, hMsg, err := approval.Instance.SendRequest(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to send approval request")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(draft))
}

// @Summary Send recommendation request
// @Tags Decision requests
// @Description Issue a recommendation link for one of the two reference slots
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Param	body body	 hiringapimodels.RecommendationRequestData	true	"request body"
// @Success 200 {object} apimodels.Response{data=notify.Draft}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/request/{id}/recommendation [post]
func (c *approvalRequestApiController) sendRecommendation(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload hiringapimodels.RecommendationRequestData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	draft, hMsg, err := recommendation.Instance.SendRequest(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to send recommendation request")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(draft))
}

// @Summary Recommendation status
// @Tags Decision requests
// @Description Status of both reference slots
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Success 200 {object} apimodels.Response{data=hiringapimodels.RecommendationStatusView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/request/{id}/recommendation/status [get]
func (c *approvalRequestApiController) recommendationStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, hMsg, err := recommendation.Instance.Status(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get recommendation status")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
