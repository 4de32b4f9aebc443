package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hiring-flow-backend/controllers"
	"hiring-flow-backend/lib/candidate"
	apimodels "hiring-flow-backend/models/api"
	hiringapimodels "hiring-flow-backend/models/api/hiring"
)

type hiringFlowApiController struct {
	controllers.BaseAPIController
}

func InitHiringFlowApiRouters(app *fiber.App) {
	controller := hiringFlowApiController{}
	app.Route("flow/:id", func(router fiber.Router) {
		router.Put("advance", controller.advance)
		router.Put("assessment/score", controller.setAssessmentScore)
		router.Put("assessment/complete", controller.completeAssessment)
		router.Put("background-check/complete", controller.completeBackgroundCheck)
		router.Put("background-check/waive", controller.waiveBackgroundCheck)
		router.Put("salary-proposal", controller.saveSalaryProposal)
		router.Put("issue-contract", controller.issueContract)
	})
}

// @Summary Advance candidate to the next step
// @Tags Hiring flow
// @Description Advance candidate to the next step
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/flow/{id}/advance [put]
func (c *hiringFlowApiController) advance(ctx *fiber.Ctx) error {
	return c.flowAction(ctx, candidate.Instance.AdvanceStep, "failed to advance candidate step")
}

// @Summary Record assessment score
// @Tags Hiring flow
// @Description Record assessment score
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Param	body body	 hiringapimodels.AssessmentScoreData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/flow/{id}/assessment/score [put]
func (c *hiringFlowApiController) setAssessmentScore(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload hiringapimodels.AssessmentScoreData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := candidate.Instance.SetAssessmentScore(id, payload.Score)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to record assessment score")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Mark assessment as completed
// @Tags Hiring flow
// @Description Mark assessment as completed and advance the step
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/flow/{id}/assessment/complete [put]
func (c *hiringFlowApiController) completeAssessment(ctx *fiber.Ctx) error {
	return c.flowAction(ctx, candidate.Instance.CompleteAssessment, "failed to complete assessment")
}

// @Summary Mark background check as completed
// @Tags Hiring flow
// @Description Mark background check as completed and advance the step
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/flow/{id}/background-check/complete [put]
func (c *hiringFlowApiController) completeBackgroundCheck(ctx *fiber.Ctx) error {
	return c.flowAction(ctx, candidate.Instance.CompleteBackgroundCheck, "failed to complete background check")
}

// @Summary Waive background check
// @Tags Hiring flow
// @Description Mark background check as not required and advance the step
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/flow/{id}/background-check/waive [put]
func (c *hiringFlowApiController) waiveBackgroundCheck(ctx *fiber.Ctx) error {
	return c.flowAction(ctx, candidate.Instance.WaiveBackgroundCheck, "failed to waive background check")
}

// @Summary Save salary proposal
// @Tags Hiring flow
// @Description Save salary proposal and advance the step
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Param	body body	 hiringapimodels.SalaryProposalData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/flow/{id}/salary-proposal [put]
func (c *hiringFlowApiController) saveSalaryProposal(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload hiringapimodels.SalaryProposalData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := candidate.Instance.SaveSalaryProposal(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to save salary proposal")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Issue contract
// @Tags Hiring flow
// @Description Issue contract for the candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/flow/{id}/issue-contract [put]
func (c *hiringFlowApiController) issueContract(ctx *fiber.Ctx) error {
	return c.flowAction(ctx, candidate.Instance.IssueContract, "failed to issue contract")
}

func (c *hiringFlowApiController) flowAction(ctx *fiber.Ctx, action func(id string) (string, error), errMsg string) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := action(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, errMsg)
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
