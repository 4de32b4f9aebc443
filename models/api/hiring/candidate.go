package hiringapimodels

import (
	"net/mail"
	"strings"
	"time"

	"github.com/pkg/errors"

	"hiring-flow-backend/models"
	dbmodels "hiring-flow-backend/models/db"
)

type CandidateCreateData struct {
	Name                string `json:"name"`
	Position            string `json:"position"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	RecruiterName       string `json:"recruiter_name"`
	RecruiterEmail      string `json:"recruiter_email"`
	HiringManager1Email string `json:"hiring_manager1_email"`
	HiringManager2Email string `json:"hiring_manager2_email"`
	Approver1Email      string `json:"approver1_email"`
	Approver2Email      string `json:"approver2_email"`
}

func (r CandidateCreateData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("candidate name is required")
	}
	if strings.TrimSpace(r.Position) == "" {
		return errors.New("position is required")
	}
	for _, email := range []string{r.Email, r.RecruiterEmail, r.HiringManager1Email, r.HiringManager2Email, r.Approver1Email, r.Approver2Email} {
		if email == "" {
			continue
		}
		if _, err := mail.ParseAddress(email); err != nil {
			return errors.Errorf("email %q has an invalid format", email)
		}
	}
	return nil
}

type CandidateUpdateData struct {
	Name                *string `json:"name"`
	Position            *string `json:"position"`
	Email               *string `json:"email"`
	Phone               *string `json:"phone"`
	RecruiterName       *string `json:"recruiter_name"`
	RecruiterEmail      *string `json:"recruiter_email"`
	HiringManager1Email *string `json:"hiring_manager1_email"`
	HiringManager2Email *string `json:"hiring_manager2_email"`
	Approver1Email      *string `json:"approver1_email"`
	Approver2Email      *string `json:"approver2_email"`
}

func (r CandidateUpdateData) ToUpdMap() map[string]interface{} {
	updMap := map[string]interface{}{}
	set := func(field string, value *string) {
		if value != nil {
			updMap[field] = *value
		}
	}
	set("name", r.Name)
	set("position", r.Position)
	set("email", r.Email)
	set("phone", r.Phone)
	set("recruiter_name", r.RecruiterName)
	set("recruiter_email", r.RecruiterEmail)
	set("hiring_manager1_email", r.HiringManager1Email)
	set("hiring_manager2_email", r.HiringManager2Email)
	set("approver1_email", r.Approver1Email)
	set("approver2_email", r.Approver2Email)
	return updMap
}

type CandidateView struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Position            string `json:"position"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	RecruiterName       string `json:"recruiter_name"`
	RecruiterEmail      string `json:"recruiter_email"`
	VerifierEmail       string `json:"verifier_email"`
	HiringManager1Email string `json:"hiring_manager1_email"`
	HiringManager2Email string `json:"hiring_manager2_email"`
	Approver1Email      string `json:"approver1_email"`
	Approver2Email      string `json:"approver2_email"`

	CurrentStep models.Step `json:"current_step"`

	AssessmentStatus     models.AssessmentStatus `json:"assessment_status"`
	AssessmentScore      string                  `json:"assessment_score"`
	AssessmentReportName string                  `json:"assessment_report_name"`

	BackgroundCheckStatus       models.BackgroundCheckStatus `json:"background_check_status"`
	BackgroundCheckDocumentName string                       `json:"background_check_document_name"`
	BackgroundCheckCompletedAt  *time.Time                   `json:"background_check_completed_at"`

	SalaryProposal *dbmodels.SalaryProposal `json:"salary_proposal"`
	Approvals      dbmodels.Approvals       `json:"approvals"`

	Recommendation1 dbmodels.RecommendationSlot `json:"recommendation1"`
	Recommendation2 dbmodels.RecommendationSlot `json:"recommendation2"`

	ContractIssuedAt *time.Time `json:"contract_issued_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func CandidateConvert(rec dbmodels.Candidate) CandidateView {
	return CandidateView{
		ID:                          rec.ID,
		Name:                        rec.Name,
		Position:                    rec.Position,
		Email:                       rec.Email,
		Phone:                       rec.Phone,
		RecruiterName:               rec.RecruiterName,
		RecruiterEmail:              rec.RecruiterEmail,
		VerifierEmail:               rec.VerifierEmail,
		HiringManager1Email:         rec.HiringManager1Email,
		HiringManager2Email:         rec.HiringManager2Email,
		Approver1Email:              rec.Approver1Email,
		Approver2Email:              rec.Approver2Email,
		CurrentStep:                 rec.CurrentStep,
		AssessmentStatus:            rec.AssessmentStatus,
		AssessmentScore:             rec.AssessmentScore,
		AssessmentReportName:        rec.AssessmentReportName,
		BackgroundCheckStatus:       rec.BackgroundCheckStatus,
		BackgroundCheckDocumentName: rec.BackgroundCheckDocumentName,
		BackgroundCheckCompletedAt:  rec.BackgroundCheckCompletedAt,
		SalaryProposal:              rec.SalaryProposal,
		Approvals:                   rec.Approvals,
		Recommendation1:             rec.Recommendation1,
		Recommendation2:             rec.Recommendation2,
		ContractIssuedAt:            rec.ContractIssuedAt,
		CreatedAt:                   rec.CreatedAt,
		UpdatedAt:                   rec.UpdatedAt,
	}
}
