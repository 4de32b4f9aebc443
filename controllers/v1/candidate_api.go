package apiv1

import (
	"context"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"hiring-flow-backend/controllers"
	"hiring-flow-backend/lib/candidate"
	filestorage "hiring-flow-backend/lib/file-storage"
	apimodels "hiring-flow-backend/models/api"
	hiringapimodels "hiring-flow-backend/models/api/hiring"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controller := candidateApiController{}
	app.Route("candidate", func(router fiber.Router) {
		router.Get("export", controller.exportPipeline)
		router.Get("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Delete("", controller.delete)
			idRouter.Post("upload-assessment-report", controller.uploadAssessmentReport)
			idRouter.Get("assessment-report", controller.getAssessmentReport)
			idRouter.Delete("assessment-report", controller.deleteAssessmentReport)
			idRouter.Post("upload-background-document", controller.uploadBackgroundDocument)
			idRouter.Get("background-document", controller.getBackgroundDocument)
			idRouter.Delete("background-document", controller.deleteBackgroundDocument)
			idRouter.Get("offer-summary", controller.offerSummary)
		})
	})
}

// @Summary Add a candidate selected for hiring
// @Tags Candidate
// @Description Add a candidate selected for hiring
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 hiringapimodels.CandidateCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate [post]
func (c *candidateApiController) create(ctx *fiber.Ctx) error {
	var payload hiringapimodels.CandidateCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := candidate.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create candidate")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Candidate pipeline list
// @Tags Candidate
// @Description Candidate pipeline list
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]hiringapimodels.CandidateView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/list [get]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	list, err := candidate.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list candidates")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Candidate details
// @Tags Candidate
// @Description Candidate details
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Success 200 {object} apimodels.Response{data=hiringapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id} [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, hMsg, err := candidate.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get candidate")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update candidate details
// @Tags Candidate
// @Description Update candidate details
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Param	body body	 hiringapimodels.CandidateUpdateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id} [put]
func (c *candidateApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload hiringapimodels.CandidateUpdateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := candidate.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update candidate")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete candidate
// @Tags Candidate
// @Description Delete candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id} [delete]
func (c *candidateApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = filestorage.Instance.DeleteCandidateFiles(ctx.UserContext(), id)
	if err != nil {
		c.GetLogger(ctx).WithError(err).Warn("failed to delete candidate files")
	}
	err = candidate.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete candidate")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Upload assessment report
// @Tags Candidate
// @Description Upload assessment report
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Param   report		formData	file 	true 	"file to upload"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/upload-assessment-report [post]
func (c *candidateApiController) uploadAssessmentReport(ctx *fiber.Ctx) error {
	return c.uploadFile(ctx, "report", filestorage.Instance.UploadAssessmentReport)
}

// @Summary Download assessment report
// @Tags Candidate
// @Description Download assessment report
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/assessment-report [get]
func (c *candidateApiController) getAssessmentReport(ctx *fiber.Ctx) error {
	return c.downloadFile(ctx, filestorage.Instance.GetAssessmentReport)
}

// @Summary Delete assessment report
// @Tags Candidate
// @Description Delete assessment report
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/assessment-report [delete]
func (c *candidateApiController) deleteAssessmentReport(ctx *fiber.Ctx) error {
	return c.deleteFile(ctx, filestorage.Instance.DeleteAssessmentReport)
}

// @Summary Upload background check document
// @Tags Candidate
// @Description Upload background check document
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Param   document		formData	file 	true 	"file to upload"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/upload-background-document [post]
func (c *candidateApiController) uploadBackgroundDocument(ctx *fiber.Ctx) error {
	return c.uploadFile(ctx, "document", filestorage.Instance.UploadBackgroundCheckDocument)
}

// @Summary Download background check document
// @Tags Candidate
// @Description Download background check document
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/background-document [get]
func (c *candidateApiController) getBackgroundDocument(ctx *fiber.Ctx) error {
	return c.downloadFile(ctx, filestorage.Instance.GetBackgroundCheckDocument)
}

// @Summary Delete background check document
// @Tags Candidate
// @Description Delete background check document
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/background-document [delete]
func (c *candidateApiController) deleteBackgroundDocument(ctx *fiber.Ctx) error {
	return c.deleteFile(ctx, filestorage.Instance.DeleteBackgroundCheckDocument)
}

// @Summary Export candidate pipeline to xlsx
// @Tags Candidate
// @Description Export candidate pipeline to xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/export [get]
func (c *candidateApiController) exportPipeline(ctx *fiber.Ctx) error {
	buf, err := candidate.Instance.ExportPipeline()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export candidate pipeline")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="candidates.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Offer summary PDF
// @Tags Candidate
// @Description Offer summary PDF for the issued contract
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "candidate ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/offer-summary [get]
func (c *candidateApiController) offerSummary(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	pdfFile, hMsg, err := candidate.Instance.OfferSummary(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to generate offer summary")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="offer-summary.pdf"`)
	return ctx.Status(fiber.StatusOK).Send(pdfFile)
}

func (c *candidateApiController) uploadFile(ctx *fiber.Ctx, formKey string, upload func(ctx context.Context, candidateID string, file []byte, fileName string) (string, error)) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := ctx.FormFile(formKey)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to open uploaded file")
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to read uploaded file")
	}
	hMsg, err := upload(ctx.UserContext(), id, fileBody, file.Filename)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to store uploaded file")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *candidateApiController) deleteFile(ctx *fiber.Ctx, remove func(ctx context.Context, candidateID string) (string, error)) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := remove(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete file")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *candidateApiController) downloadFile(ctx *fiber.Ctx, download func(ctx context.Context, candidateID string) ([]byte, string, error)) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileBody, fileName, err := download(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to download file")
	}
	if fileBody == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("file not found"))
	}
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return ctx.Status(fiber.StatusOK).Send(fileBody)
}
