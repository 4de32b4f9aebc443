package hiringflow

import (
	"time"

	"github.com/pkg/errors"

	"hiring-flow-backend/models"
	dbmodels "hiring-flow-backend/models/db"
)

// ErrIllegalTransition is the base cause of every rejected trigger or
// decision, so callers can map it to a validation failure.
var ErrIllegalTransition = errors.New("illegal transition")

// Trigger names an event that may move a candidate to the next step.
type Trigger string

const (
	TriggerCompleteAssessment      Trigger = "complete_assessment"
	TriggerCompleteBackgroundCheck Trigger = "complete_background_check"
	TriggerWaiveBackgroundCheck    Trigger = "waive_background_check"
	TriggerSaveSalaryProposal      Trigger = "save_salary_proposal"
	TriggerSendVerification        Trigger = "send_verification"
	TriggerVerifierApproved        Trigger = "verifier_approved"
	TriggerAdvanceToHM2            Trigger = "advance_to_hm2"
	TriggerAdvanceToApprover1      Trigger = "advance_to_approver1"
	TriggerAdvanceToApprover2      Trigger = "advance_to_approver2"
	TriggerAdvanceToContract       Trigger = "advance_to_contract"
	TriggerIssueContract           Trigger = "issue_contract"
)

// transitions is the closed from-step × trigger → to-step table.
// Hiring Manager 2 and Approver 2 are optional, so the preceding steps
// also allow skipping straight past them.
var transitions = map[models.Step]map[Trigger]models.Step{
	models.StepSelectedForHiring: {
		TriggerCompleteAssessment: models.StepAssessmentCompleted,
	},
	models.StepAssessmentCompleted: {
		TriggerCompleteBackgroundCheck: models.StepBackgroundCheckCompleted,
		TriggerWaiveBackgroundCheck:    models.StepBackgroundCheckCompleted,
	},
	models.StepBackgroundCheckCompleted: {
		TriggerSaveSalaryProposal: models.StepSalaryPackagePrepared,
	},
	models.StepSalaryPackagePrepared: {
		TriggerSendVerification: models.StepReadyForVerification,
	},
	models.StepReadyForVerification: {
		// Self-transition: a fresh link can be requested again after a
		// rejection, a change request or a lost email.
		TriggerSendVerification: models.StepReadyForVerification,
		TriggerVerifierApproved: models.StepReadyForHiringManager1,
	},
	models.StepReadyForHiringManager1: {
		TriggerAdvanceToHM2:       models.StepReadyForHiringManager2,
		TriggerAdvanceToApprover1: models.StepReadyForApprover1,
	},
	models.StepReadyForHiringManager2: {
		TriggerAdvanceToApprover1: models.StepReadyForApprover1,
	},
	models.StepReadyForApprover1: {
		TriggerAdvanceToApprover2: models.StepReadyForApprover2,
		TriggerAdvanceToContract:  models.StepReadyForContractIssuance,
	},
	models.StepReadyForApprover2: {
		TriggerAdvanceToContract: models.StepReadyForContractIssuance,
	},
	models.StepReadyForContractIssuance: {
		TriggerIssueContract: models.StepContractIssued,
	},
}

// Advance validates a trigger against the candidate's current step and
// returns the column updates the caller must apply. The engine never
// writes storage itself.
func Advance(rec *dbmodels.Candidate, trigger Trigger) (updMap map[string]interface{}, err error) {
	if !rec.CurrentStep.IsKnown() {
		return nil, errors.Wrapf(ErrIllegalTransition, "candidate %s has unknown step %q", rec.ID, rec.CurrentStep)
	}
	stepTriggers, ok := transitions[rec.CurrentStep]
	if !ok {
		return nil, errors.Wrapf(ErrIllegalTransition, "no transitions defined from step %q", rec.CurrentStep)
	}
	nextStep, ok := stepTriggers[trigger]
	if !ok {
		return nil, errors.Wrapf(ErrIllegalTransition, "trigger %q is not allowed from step %q", trigger, rec.CurrentStep)
	}

	updMap = map[string]interface{}{
		"current_step": nextStep,
	}
	switch trigger {
	case TriggerCompleteAssessment:
		updMap["assessment_status"] = models.AssessmentCompleted
	case TriggerCompleteBackgroundCheck:
		if rec.BackgroundCheckStatus != models.BackgroundCheckPending {
			return nil, errors.Wrapf(ErrIllegalTransition, "background check phase already closed with status %q", rec.BackgroundCheckStatus)
		}
		updMap["background_check_status"] = models.BackgroundCheckCompleted
		updMap["background_check_completed_at"] = time.Now()
	case TriggerWaiveBackgroundCheck:
		if rec.BackgroundCheckStatus != models.BackgroundCheckPending {
			return nil, errors.Wrapf(ErrIllegalTransition, "background check phase already closed with status %q", rec.BackgroundCheckStatus)
		}
		updMap["background_check_status"] = models.BackgroundCheckNotRequired
	case TriggerIssueContract:
		updMap["contract_issued_at"] = time.Now()
	}
	return updMap, nil
}

// NextManualTrigger maps the current step to the dashboard "advance"
// action for the recommendation/approval chain. Hiring Manager 2 and
// Approver 2 are skipped when no contact email is configured.
func NextManualTrigger(rec *dbmodels.Candidate) (Trigger, error) {
	switch rec.CurrentStep {
	case models.StepReadyForHiringManager1:
		if rec.HiringManager2Email == "" {
			return TriggerAdvanceToApprover1, nil
		}
		return TriggerAdvanceToHM2, nil
	case models.StepReadyForHiringManager2:
		return TriggerAdvanceToApprover1, nil
	case models.StepReadyForApprover1:
		if rec.Approver2Email == "" {
			return TriggerAdvanceToContract, nil
		}
		return TriggerAdvanceToApprover2, nil
	case models.StepReadyForApprover2:
		return TriggerAdvanceToContract, nil
	}
	return "", errors.Wrapf(ErrIllegalTransition, "step %q has no manual advance action", rec.CurrentStep)
}

// ApplyDecision records an external party's decision and returns the
// column updates to apply. The verifier's "Approved" decision advances
// the step; recommendation/approval decisions are recorded without an
// automatic advance, the dashboard moves the chain forward explicitly.
func ApplyDecision(rec *dbmodels.Candidate, kind models.TokenKind, decision dbmodels.ApprovalDecision) (updMap map[string]interface{}, err error) {
	if kind == models.TokenKindVerification {
		if rec.CurrentStep != models.StepReadyForVerification {
			return nil, errors.Wrapf(ErrIllegalTransition, "verification decision is not allowed from step %q", rec.CurrentStep)
		}
		approvals := rec.Approvals
		approvals.Verifier = &decision
		updMap = map[string]interface{}{
			"approvals": approvals,
		}
		if decision.Decision == models.DecisionApproved {
			stepUpd, err := Advance(rec, TriggerVerifierApproved)
			if err != nil {
				return nil, err
			}
			for field, value := range stepUpd {
				updMap[field] = value
			}
		}
		return updMap, nil
	}

	if !kind.IsApproval() {
		return nil, errors.Wrapf(ErrIllegalTransition, "token kind %q does not carry a workflow decision", kind)
	}
	expectedKind, _, err := TokenKindForStep(rec)
	if err != nil {
		return nil, err
	}
	if kind != expectedKind {
		return nil, errors.Wrapf(ErrIllegalTransition, "decision of kind %q is not allowed from step %q", kind, rec.CurrentStep)
	}
	approvals := rec.Approvals
	slot := approvals.ByKind(kind)
	*slot = &decision
	return map[string]interface{}{
		"approvals": approvals,
	}, nil
}

// TokenKindForStep returns the approval token kind the current step is
// waiting on, along with the configured contact email.
func TokenKindForStep(rec *dbmodels.Candidate) (kind models.TokenKind, email string, err error) {
	switch rec.CurrentStep {
	case models.StepReadyForHiringManager1:
		return models.TokenKindHiringManager1, rec.HiringManager1Email, nil
	case models.StepReadyForHiringManager2:
		return models.TokenKindHiringManager2, rec.HiringManager2Email, nil
	case models.StepReadyForApprover1:
		return models.TokenKindApprover1, rec.Approver1Email, nil
	case models.StepReadyForApprover2:
		return models.TokenKindApprover2, rec.Approver2Email, nil
	}
	return "", "", errors.Wrapf(ErrIllegalTransition, "step %q does not expect a recommendation or approval decision", rec.CurrentStep)
}
