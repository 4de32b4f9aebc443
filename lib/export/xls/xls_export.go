package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "hiring-flow-backend/models/db"
)

type Provider interface {
	ExportPipeline(list []dbmodels.Candidate) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var pipelineHeaders = []string{"Name", "Contacts", "Position", "Grade", "Current Step", "Assessment", "Background Check", "Total Salary", "Total CTC", "Range Fit", "Contract Issued"}

func (i impl) ExportPipeline(list []dbmodels.Candidate) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, pipelineHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		row, err = writePipelineData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data table")
		}
	}
	f.SetSheetName(sheet, "Candidates")
	return f.WriteToBuffer()
}

func writePipelineData(f *excelize.File, sheet string, list []dbmodels.Candidate, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(pipelineHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Name"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Name); err != nil {
			return row, err
		}

		// "Contacts"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v\r%v", item.Phone, item.Email)); err != nil {
			return row, err
		}

		// "Position"
		col++
		if err := writeColumn(f, sheet, col, row, item.Position); err != nil {
			return row, err
		}

		// "Grade"
		col++
		if item.SalaryProposal != nil {
			if err := writeColumn(f, sheet, col, row, item.SalaryProposal.Grade); err != nil {
				return row, err
			}
		}

		// "Current Step"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.CurrentStep)); err != nil {
			return row, err
		}

		// "Assessment"
		col++
		assessment := string(item.AssessmentStatus)
		if item.AssessmentScore != "" {
			assessment = fmt.Sprintf("%v (%v)", assessment, item.AssessmentScore)
		}
		if err := writeColumn(f, sheet, col, row, assessment); err != nil {
			return row, err
		}

		// "Background Check"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.BackgroundCheckStatus)); err != nil {
			return row, err
		}

		// "Total Salary"
		col++
		if item.SalaryProposal != nil {
			if err := writeColumn(f, sheet, col, row, item.SalaryProposal.TotalSalary); err != nil {
				return row, err
			}
		}

		// "Total CTC"
		col++
		if item.SalaryProposal != nil {
			if err := writeColumn(f, sheet, col, row, item.SalaryProposal.TotalCTC); err != nil {
				return row, err
			}
		}

		// "Range Fit"
		col++
		if item.SalaryProposal != nil {
			if err := writeColumn(f, sheet, col, row, item.SalaryProposal.RangeFitLabel); err != nil {
				return row, err
			}
		}

		// "Contract Issued"
		col++
		if item.ContractIssuedAt != nil {
			if err := writeColumn(f, sheet, col, row, item.ContractIssuedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
