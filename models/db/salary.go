package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
)

type SalaryAllowance struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// SalaryProposal is stored as one jsonb document on the candidate.
// Raw amounts are kept as entered, derived numbers are recomputed on save.
type SalaryProposal struct {
	Company        string            `json:"company,omitempty"`
	ContractPeriod string            `json:"contract_period,omitempty"`
	JobTitle       string            `json:"job_title,omitempty"`
	Grade          string            `json:"grade,omitempty"`
	YearsOfExp     string            `json:"years_of_experience,omitempty"`

	BasicSalary string            `json:"basic_salary"`
	Allowances  []SalaryAllowance `json:"allowances"`

	LastDrawnSalary string `json:"last_drawn_salary,omitempty"`
	ExpectedSalary  string `json:"expected_salary,omitempty"`

	Basic                   float64 `json:"basic"`
	AllowancesTotal         float64 `json:"allowances_total"`
	TotalSalary             float64 `json:"total_salary"`
	EmployerContributionPct float64 `json:"employer_contribution_pct"`
	EmployerContribution    float64 `json:"employer_contribution"`
	TotalCTC                float64 `json:"total_ctc"`

	BandMin float64 `json:"band_min,omitempty"`
	BandMid float64 `json:"band_mid,omitempty"`
	BandMax float64 `json:"band_max,omitempty"`

	RangeFitLabel string   `json:"range_fit_label,omitempty"`
	RiskFlags     []string `json:"risk_flags,omitempty"`
	Insight       string   `json:"insight,omitempty"`
}

func (j SalaryProposal) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *SalaryProposal) Scan(value any) error {
	if value == nil {
		return nil
	}
	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, j)
	case string:
		return json.Unmarshal([]byte(data), j)
	}
	return nil
}
