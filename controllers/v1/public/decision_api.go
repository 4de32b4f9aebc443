package publicapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"hiring-flow-backend/controllers"
	"hiring-flow-backend/lib/approval"
	hiringflow "hiring-flow-backend/lib/hiring-flow"
	"hiring-flow-backend/lib/recommendation"
	tokenhandler "hiring-flow-backend/lib/token"
	"hiring-flow-backend/lib/verification"
	apimodels "hiring-flow-backend/models/api"
	hiringapimodels "hiring-flow-backend/models/api/hiring"
)

type decisionApiController struct {
	controllers.BaseAPIController
}

func InitDecisionApiRouters(app *fiber.App) {
	controller := decisionApiController{}
	app.Route("verification", func(router fiber.Router) {
		router.Get("", controller.getVerification)
		router.Post("decision", controller.submitVerification)
	})
	app.Route("approval", func(router fiber.Router) {
		router.Get("", controller.getApproval)
		router.Post("decision", controller.submitApproval)
	})
	app.Route("recommendation", func(router fiber.Router) {
		router.Get("", controller.getRecommendation)
		router.Post("", controller.submitRecommendation)
		router.Post("decline", controller.declineRecommendation)
	})
}

// @Summary Verification page context
// @Tags Public decisions
// @Description Candidate snapshot shown on the verification page
// @Param   token	query	string	true	"link token"
// @Success 200 {object} apimodels.Response{data=hiringapimodels.VerificationContext}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/verification [get]
func (c *decisionApiController) getVerification(ctx *fiber.Ctx) error {
	token := ctx.Query("token")
	resp, err := verification.Instance.GetContext(token)
	if err != nil {
		return c.sendDecisionError(ctx, err, "failed to get verification context")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Submit verification decision
// @Tags Public decisions
// @Description Submit verification decision
// @Param	body body	 hiringapimodels.DecisionData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/verification/decision [post]
func (c *decisionApiController) submitVerification(ctx *fiber.Ctx) error {
	var payload hiringapimodels.DecisionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := verification.Instance.SubmitDecision(payload)
	if err != nil {
		return c.sendDecisionError(ctx, err, "failed to submit verification decision")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Approval page context
// @Tags Public decisions
// @Description Candidate snapshot shown on the approval page
// @Param   token	query	string	true	"link token"
// @Success 200 {object} apimodels.Response{data=hiringapimodels.ApprovalContext}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/approval [get]
func (c *decisionApiController) getApproval(ctx *fiber.Ctx) error {
	token := ctx.Query("token")
	resp, err := approval.Instance.GetContext(token)
	if err != nil {
		return c.sendDecisionError(ctx, err, "failed to get approval context")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Submit approval decision
// @Tags Public decisions
// @Description Submit approval decision
// @Param	body body	 hiringapimodels.DecisionData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/approval/decision [post]
func (c *decisionApiController) submitApproval(ctx *fiber.Ctx) error {
	var payload hiringapimodels.DecisionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := approval.Instance.SubmitDecision(payload)
	if err != nil {
		return c.sendDecisionError(ctx, err, "failed to submit approval decision")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Recommendation page context
// @Tags Public decisions
// @Description Candidate snapshot shown on the recommendation page
// @Param   token	query	string	true	"link token"
// @Success 200 {object} apimodels.Response{data=hiringapimodels.RecommendationContext}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/recommendation [get]
func (c *decisionApiController) getRecommendation(ctx *fiber.Ctx) error {
	token := ctx.Query("token")
	resp, err := recommendation.Instance.GetContext(token)
	if err != nil {
		return c.sendDecisionError(ctx, err, "failed to get recommendation context")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Submit recommendation
// @Tags Public decisions
// @Description Submit recommendation feedback
// @Param	body body	 hiringapimodels.RecommendationSubmitData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/recommendation [post]
func (c *decisionApiController) submitRecommendation(ctx *fiber.Ctx) error {
	var payload hiringapimodels.RecommendationSubmitData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := recommendation.Instance.Submit(payload)
	if err != nil {
		return c.sendDecisionError(ctx, err, "failed to submit recommendation")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Decline recommendation request
// @Tags Public decisions
// @Description Decline the recommendation request
// @Param   token	query	string	true	"link token"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/recommendation/decline [post]
func (c *decisionApiController) declineRecommendation(ctx *fiber.Ctx) error {
	token := ctx.Query("token")
	err := recommendation.Instance.Decline(token)
	if err != nil {
		return c.sendDecisionError(ctx, err, "failed to decline recommendation")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// sendDecisionError keeps the public error surface uniform: any token
// problem reads "invalid or expired link" with no hint of the real cause.
func (c *decisionApiController) sendDecisionError(ctx *fiber.Ctx, err error, msg string) error {
	if errors.Is(err, tokenhandler.ErrInvalidLink) {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(tokenhandler.ErrInvalidLink.Error()))
	}
	if errors.Is(err, hiringflow.ErrIllegalTransition) {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.SendError(ctx, c.GetLogger(ctx), err, msg)
}
