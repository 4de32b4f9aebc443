package pdfexport

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	dbmodels "hiring-flow-backend/models/db"
)

// GenerateOfferSummary renders the salary package summary attached to an
// issued contract.
func GenerateOfferSummary(rec dbmodels.Candidate) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateOfferSummary panic recover: %v", r)
		}
	}()
	if rec.SalaryProposal == nil {
		return nil, errors.New("candidate has no salary proposal")
	}
	proposal := rec.SalaryProposal

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Offer Summary", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	writeRow(pdf, "Candidate", rec.Name)
	writeRow(pdf, "Position", rec.Position)
	if proposal.JobTitle != "" {
		writeRow(pdf, "Job Title", proposal.JobTitle)
	}
	if proposal.Grade != "" {
		writeRow(pdf, "Grade", proposal.Grade)
	}
	if proposal.Company != "" {
		writeRow(pdf, "Company", proposal.Company)
	}
	if proposal.ContractPeriod != "" {
		writeRow(pdf, "Contract Period", proposal.ContractPeriod)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Salary Package", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	writeRow(pdf, "Basic Salary", amount(proposal.Basic))
	for _, allowance := range proposal.Allowances {
		writeRow(pdf, allowance.Name, allowance.Amount)
	}
	writeRow(pdf, "Total Monthly Salary", amount(proposal.TotalSalary))
	writeRow(pdf, fmt.Sprintf("Employer Contribution (%.0f%%)", proposal.EmployerContributionPct), amount(proposal.EmployerContribution))
	pdf.SetFont("Helvetica", "B", 11)
	writeRow(pdf, "Total Cost to Company", amount(proposal.TotalCTC))
	pdf.SetFont("Helvetica", "", 11)

	if proposal.RangeFitLabel != "" {
		pdf.Ln(4)
		writeRow(pdf, "Range Fit", proposal.RangeFitLabel)
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	issuedAt := time.Now()
	if rec.ContractIssuedAt != nil {
		issuedAt = *rec.ContractIssuedAt
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("Contract issued on %s", issuedAt.Format("02 Jan 2006")), "", 1, "L", false, 0, "")

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRow(pdf *fpdf.Fpdf, label, value string) {
	pdf.CellFormat(70, 7, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}

func amount(v float64) string {
	return fmt.Sprintf("RM %.2f", v)
}
