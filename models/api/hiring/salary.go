package hiringapimodels

import (
	"strings"

	"github.com/pkg/errors"

	dbmodels "hiring-flow-backend/models/db"
)

type SalaryProposalData struct {
	Company                 string                     `json:"company"`
	ContractPeriod          string                     `json:"contract_period"`
	JobTitle                string                     `json:"job_title"`
	Grade                   string                     `json:"grade"`
	YearsOfExperience       string                     `json:"years_of_experience"`
	BasicSalary             string                     `json:"basic_salary"`
	Allowances              []dbmodels.SalaryAllowance `json:"allowances"`
	LastDrawnSalary         string                     `json:"last_drawn_salary"`
	ExpectedSalary          string                     `json:"expected_salary"`
	EmployerContributionPct *float64                   `json:"employer_contribution_pct"`
	WithInsight             bool                       `json:"with_insight"`
}

func (r SalaryProposalData) Validate() error {
	if strings.TrimSpace(r.BasicSalary) == "" {
		return errors.New("basic salary is required")
	}
	for _, allowance := range r.Allowances {
		if strings.TrimSpace(allowance.Name) == "" {
			return errors.New("allowance name is required")
		}
	}
	return nil
}

func (r SalaryProposalData) ToProposal(defaultContributionPct float64) dbmodels.SalaryProposal {
	contributionPct := defaultContributionPct
	if r.EmployerContributionPct != nil {
		contributionPct = *r.EmployerContributionPct
	}
	return dbmodels.SalaryProposal{
		Company:                 r.Company,
		ContractPeriod:          r.ContractPeriod,
		JobTitle:                r.JobTitle,
		Grade:                   r.Grade,
		YearsOfExp:              r.YearsOfExperience,
		BasicSalary:             r.BasicSalary,
		Allowances:              r.Allowances,
		LastDrawnSalary:         r.LastDrawnSalary,
		ExpectedSalary:          r.ExpectedSalary,
		EmployerContributionPct: contributionPct,
	}
}

type AssessmentScoreData struct {
	Score string `json:"score"`
}

func (r AssessmentScoreData) Validate() error {
	if strings.TrimSpace(r.Score) == "" {
		return errors.New("assessment score is required")
	}
	return nil
}
