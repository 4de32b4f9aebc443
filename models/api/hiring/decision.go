package hiringapimodels

import (
	"net/mail"
	"strings"
	"time"

	"github.com/pkg/errors"

	"hiring-flow-backend/models"
	dbmodels "hiring-flow-backend/models/db"
)

type VerificationRequestData struct {
	VerifierEmail string `json:"verifier_email"`
}

func (r VerificationRequestData) Validate() error {
	if _, err := mail.ParseAddress(r.VerifierEmail); err != nil {
		return errors.New("verifier email has an invalid format")
	}
	return nil
}

type RecommendationRequestData struct {
	RecommendationNumber int    `json:"recommendation_number"`
	RecommenderEmail     string `json:"recommender_email"`
}

func (r RecommendationRequestData) Validate() error {
	if r.RecommendationNumber != 1 && r.RecommendationNumber != 2 {
		return errors.New("recommendation number must be 1 or 2")
	}
	if _, err := mail.ParseAddress(r.RecommenderEmail); err != nil {
		return errors.New("recommender email has an invalid format")
	}
	return nil
}

type DecisionData struct {
	Token    string          `json:"token"`
	Decision models.Decision `json:"decision"`
	Comment  string          `json:"comment"`
}

func (r DecisionData) Validate() error {
	if strings.TrimSpace(r.Token) == "" {
		return errors.New("token is required")
	}
	if !r.Decision.IsKnown() {
		return errors.New("decision must be one of Approved, Rejected, Request Change")
	}
	return nil
}

type RecommendationSubmitData struct {
	Token        string `json:"token"`
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Relationship string `json:"relationship"`
	Feedback     string `json:"feedback"`
}

func (r RecommendationSubmitData) Validate() error {
	if strings.TrimSpace(r.Token) == "" {
		return errors.New("token is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(r.Relationship) == "" {
		return errors.New("relationship is required")
	}
	if strings.TrimSpace(r.Feedback) == "" {
		return errors.New("feedback is required")
	}
	return nil
}

// VerificationContext is the read-only snapshot rendered on the public
// verification page.
type VerificationContext struct {
	CandidateID     string                   `json:"candidate_id"`
	CandidateName   string                   `json:"candidate_name"`
	Position        string                   `json:"position"`
	RecruiterName   string                   `json:"recruiter_name"`
	RecruiterEmail  string                   `json:"recruiter_email"`
	CurrentStep     models.Step              `json:"current_step"`
	SalaryProposal  *dbmodels.SalaryProposal `json:"salary_proposal"`
	Assessment      AssessmentSnapshot       `json:"assessment"`
	BackgroundCheck BackgroundCheckSnapshot  `json:"background_check"`
}

type AssessmentSnapshot struct {
	Status     models.AssessmentStatus `json:"status"`
	Score      string                  `json:"score"`
	ReportName string                  `json:"report_name"`
}

type BackgroundCheckSnapshot struct {
	Status       models.BackgroundCheckStatus `json:"status"`
	DocumentName string                       `json:"document_name"`
	CompletedAt  *time.Time                   `json:"completed_at"`
}

// ApprovalContext is rendered on the public approval page.
type ApprovalContext struct {
	CandidateName  string                   `json:"candidate_name"`
	Position       string                   `json:"position"`
	Kind           models.TokenKind         `json:"kind"`
	RoleLabel      string                   `json:"role_label"`
	SalaryProposal *dbmodels.SalaryProposal `json:"salary_proposal"`
}

// RecommendationContext is rendered on the public recommendation page.
type RecommendationContext struct {
	CandidateName        string `json:"candidate_name"`
	PositionApplied      string `json:"position_applied"`
	CandidateEmail       string `json:"candidate_email"`
	RecommendationNumber int    `json:"recommendation_number"`
	RecommenderEmail     string `json:"recommender_email"`
}

type RecommendationStatusView struct {
	Recommendation1 dbmodels.RecommendationSlot `json:"recommendation1"`
	Recommendation2 dbmodels.RecommendationSlot `json:"recommendation2"`
}
