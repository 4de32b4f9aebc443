package models

// Step is the candidate's current stage in the hiring flow.
// The string values are stored as-is and shown on the dashboard,
// so they must not be renamed.
type Step string

const (
	StepSelectedForHiring         Step = "Selected for Hiring"
	StepAssessmentCompleted       Step = "Assessment Completed"
	StepBackgroundCheckCompleted  Step = "Background Check Completed"
	StepSalaryPackagePrepared     Step = "Salary Package Prepared"
	StepReadyForVerification      Step = "Ready for Verification – Head, Talent Strategy"
	StepReadyForHiringManager1    Step = "Ready for Recommendation – Hiring Manager 1"
	StepReadyForHiringManager2    Step = "Ready for Recommendation – Hiring Manager 2"
	StepReadyForApprover1         Step = "Ready for Approval – Approver 1"
	StepReadyForApprover2         Step = "Ready for Approval – Approver 2"
	StepReadyForContractIssuance  Step = "Ready for Contract Issuance"
	StepContractIssued            Step = "Contract Issued"
)

// StepList is the required order of steps, used for progress rendering.
var StepList = []Step{
	StepSelectedForHiring,
	StepAssessmentCompleted,
	StepBackgroundCheckCompleted,
	StepSalaryPackagePrepared,
	StepReadyForVerification,
	StepReadyForHiringManager1,
	StepReadyForHiringManager2,
	StepReadyForApprover1,
	StepReadyForApprover2,
	StepReadyForContractIssuance,
	StepContractIssued,
}

func (s Step) IsKnown() bool {
	for _, known := range StepList {
		if s == known {
			return true
		}
	}
	return false
}

type AssessmentStatus string

const (
	AssessmentPending   AssessmentStatus = "Pending"
	AssessmentCompleted AssessmentStatus = "Completed"
)

type BackgroundCheckStatus string

const (
	BackgroundCheckPending     BackgroundCheckStatus = "Pending"
	BackgroundCheckCompleted   BackgroundCheckStatus = "Completed"
	BackgroundCheckNotRequired BackgroundCheckStatus = "Not Required"
)

// Decision is the outcome an external party records against a token.
type Decision string

const (
	DecisionApproved      Decision = "Approved"
	DecisionRejected      Decision = "Rejected"
	DecisionRequestChange Decision = "Request Change"
)

func (d Decision) IsKnown() bool {
	switch d {
	case DecisionApproved, DecisionRejected, DecisionRequestChange:
		return true
	}
	return false
}

// TokenKind is the decision class a token authorizes.
type TokenKind string

const (
	TokenKindVerification   TokenKind = "verification"
	TokenKindHiringManager1 TokenKind = "hm1"
	TokenKindHiringManager2 TokenKind = "hm2"
	TokenKindApprover1      TokenKind = "approver1"
	TokenKindApprover2      TokenKind = "approver2"
	TokenKindRecommendation TokenKind = "recommendation"
)

// ApprovalKinds are token kinds handled by the approval decision endpoint.
var ApprovalKinds = []TokenKind{
	TokenKindHiringManager1,
	TokenKindHiringManager2,
	TokenKindApprover1,
	TokenKindApprover2,
}

func (k TokenKind) IsApproval() bool {
	for _, known := range ApprovalKinds {
		if k == known {
			return true
		}
	}
	return false
}

type RecommendationStatus string

const (
	RecommendationNotRequested RecommendationStatus = "not-requested"
	RecommendationPending      RecommendationStatus = "pending"
	RecommendationCompleted    RecommendationStatus = "completed"
	RecommendationDeclined     RecommendationStatus = "declined"
)
