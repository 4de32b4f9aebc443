package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"hiring-flow-backend/models"
)

type Candidate struct {
	BaseModel
	Name     string `gorm:"type:varchar(255)"`
	Position string `gorm:"type:varchar(255)"`
	Email    string `gorm:"type:varchar(255)"`
	Phone    string `gorm:"type:varchar(64)"`

	RecruiterName  string `gorm:"type:varchar(255)"`
	RecruiterEmail string `gorm:"type:varchar(255)"`

	VerifierEmail       string `gorm:"type:varchar(255)"`
	HiringManager1Email string `gorm:"type:varchar(255)"`
	HiringManager2Email string `gorm:"type:varchar(255)"`
	Approver1Email      string `gorm:"type:varchar(255)"`
	Approver2Email      string `gorm:"type:varchar(255)"`

	CurrentStep models.Step `gorm:"type:varchar(128)"`

	AssessmentStatus     models.AssessmentStatus `gorm:"type:varchar(32)"`
	AssessmentScore      string                  `gorm:"type:varchar(64)"`
	AssessmentReportKey  string                  `gorm:"type:varchar(512)"`
	AssessmentReportName string                  `gorm:"type:varchar(255)"`

	BackgroundCheckStatus       models.BackgroundCheckStatus `gorm:"type:varchar(32)"`
	BackgroundCheckDocumentKey  string                       `gorm:"type:varchar(512)"`
	BackgroundCheckDocumentName string                       `gorm:"type:varchar(255)"`
	BackgroundCheckCompletedAt  *time.Time

	SalaryProposal *SalaryProposal `gorm:"type:jsonb"`
	Approvals      Approvals       `gorm:"type:jsonb"`

	Recommendation1 RecommendationSlot `gorm:"embedded;embeddedPrefix:recommendation1_"`
	Recommendation2 RecommendationSlot `gorm:"embedded;embeddedPrefix:recommendation2_"`

	ContractIssuedAt *time.Time
}

// ApprovalDecision is one external party's recorded decision.
type ApprovalDecision struct {
	Decision  models.Decision `json:"decision"`
	Comment   string          `json:"comment"`
	Email     string          `json:"email,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// Approvals keeps one optional decision slot per known role.
// The role set is closed, so it is a fixed record rather than a map.
type Approvals struct {
	Verifier       *ApprovalDecision `json:"verifier,omitempty"`
	HiringManager1 *ApprovalDecision `json:"hm1,omitempty"`
	HiringManager2 *ApprovalDecision `json:"hm2,omitempty"`
	Approver1      *ApprovalDecision `json:"approver1,omitempty"`
	Approver2      *ApprovalDecision `json:"approver2,omitempty"`
}

func (j Approvals) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *Approvals) Scan(value any) error {
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

// ByKind returns the decision slot for an approval token kind.
func (j *Approvals) ByKind(kind models.TokenKind) **ApprovalDecision {
	switch kind {
	case models.TokenKindVerification:
		return &j.Verifier
	case models.TokenKindHiringManager1:
		return &j.HiringManager1
	case models.TokenKindHiringManager2:
		return &j.HiringManager2
	case models.TokenKindApprover1:
		return &j.Approver1
	case models.TokenKindApprover2:
		return &j.Approver2
	}
	return nil
}

type RecommendationSlot struct {
	Status       models.RecommendationStatus `gorm:"type:varchar(32)" json:"status"`
	Email        string                      `gorm:"type:varchar(255)" json:"email"`
	Name         string                      `gorm:"type:varchar(255)" json:"name"`
	Organization string                      `gorm:"type:varchar(255)" json:"organization"`
	Relationship string                      `gorm:"type:varchar(255)" json:"relationship"`
	Feedback     string                      `json:"feedback"`
	SubmittedAt  *time.Time                  `json:"submitted_at"`
}
