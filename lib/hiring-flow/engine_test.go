package hiringflow

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"hiring-flow-backend/models"
	dbmodels "hiring-flow-backend/models/db"
)

func candidateAt(step models.Step) *dbmodels.Candidate {
	return &dbmodels.Candidate{
		BaseModel:             dbmodels.BaseModel{ID: "cand-1"},
		Name:                  "Aisyah Rahman",
		Position:              "Senior Engineer",
		CurrentStep:           step,
		AssessmentStatus:      models.AssessmentPending,
		BackgroundCheckStatus: models.BackgroundCheckPending,
	}
}

func TestAdvance(t *testing.T) {
	t.Run(`full path with all optional roles configured`, func(t *testing.T) {
		rec := candidateAt(models.StepSelectedForHiring)
		rec.HiringManager2Email = "hm2@example.com"
		rec.Approver2Email = "approver2@example.com"

		path := []struct {
			trigger Trigger
			next    models.Step
		}{
			{TriggerCompleteAssessment, models.StepAssessmentCompleted},
			{TriggerCompleteBackgroundCheck, models.StepBackgroundCheckCompleted},
			{TriggerSaveSalaryProposal, models.StepSalaryPackagePrepared},
			{TriggerSendVerification, models.StepReadyForVerification},
			{TriggerVerifierApproved, models.StepReadyForHiringManager1},
			{TriggerAdvanceToHM2, models.StepReadyForHiringManager2},
			{TriggerAdvanceToApprover1, models.StepReadyForApprover1},
			{TriggerAdvanceToApprover2, models.StepReadyForApprover2},
			{TriggerAdvanceToContract, models.StepReadyForContractIssuance},
			{TriggerIssueContract, models.StepContractIssued},
		}
		for _, hop := range path {
			updMap, err := Advance(rec, hop.trigger)
			require.NoError(t, err, "trigger %s from %s", hop.trigger, rec.CurrentStep)
			require.Equal(t, hop.next, updMap["current_step"])
			rec.CurrentStep = hop.next
			if status, ok := updMap["background_check_status"]; ok {
				rec.BackgroundCheckStatus = status.(models.BackgroundCheckStatus)
			}
		}
	})

	t.Run(`skipping a step is rejected`, func(t *testing.T) {
		rec := candidateAt(models.StepSelectedForHiring)
		_, err := Advance(rec, TriggerSaveSalaryProposal)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrIllegalTransition))
	})

	t.Run(`moving backwards is rejected`, func(t *testing.T) {
		rec := candidateAt(models.StepReadyForApprover1)
		_, err := Advance(rec, TriggerCompleteAssessment)
		require.True(t, errors.Is(err, ErrIllegalTransition))
	})

	t.Run(`terminal step allows nothing`, func(t *testing.T) {
		rec := candidateAt(models.StepContractIssued)
		_, err := Advance(rec, TriggerIssueContract)
		require.True(t, errors.Is(err, ErrIllegalTransition))
	})

	t.Run(`unknown step is rejected`, func(t *testing.T) {
		rec := candidateAt(models.Step("Totally Made Up"))
		_, err := Advance(rec, TriggerCompleteAssessment)
		require.True(t, errors.Is(err, ErrIllegalTransition))
	})

	t.Run(`completing assessment closes the phase`, func(t *testing.T) {
		rec := candidateAt(models.StepSelectedForHiring)
		updMap, err := Advance(rec, TriggerCompleteAssessment)
		require.NoError(t, err)
		require.Equal(t, models.AssessmentCompleted, updMap["assessment_status"])
	})

	t.Run(`waiving background check marks it not required`, func(t *testing.T) {
		rec := candidateAt(models.StepAssessmentCompleted)
		updMap, err := Advance(rec, TriggerWaiveBackgroundCheck)
		require.NoError(t, err)
		require.Equal(t, models.StepBackgroundCheckCompleted, updMap["current_step"])
		require.Equal(t, models.BackgroundCheckNotRequired, updMap["background_check_status"])
		_, hasCompletedAt := updMap["background_check_completed_at"]
		require.False(t, hasCompletedAt)
	})

	t.Run(`background check cannot close twice`, func(t *testing.T) {
		rec := candidateAt(models.StepAssessmentCompleted)
		rec.BackgroundCheckStatus = models.BackgroundCheckNotRequired
		_, err := Advance(rec, TriggerCompleteBackgroundCheck)
		require.True(t, errors.Is(err, ErrIllegalTransition))
	})

	t.Run(`verification can be re-requested without moving the step`, func(t *testing.T) {
		rec := candidateAt(models.StepReadyForVerification)
		updMap, err := Advance(rec, TriggerSendVerification)
		require.NoError(t, err)
		require.Equal(t, models.StepReadyForVerification, updMap["current_step"])
	})

	t.Run(`issuing contract stamps the time`, func(t *testing.T) {
		rec := candidateAt(models.StepReadyForContractIssuance)
		updMap, err := Advance(rec, TriggerIssueContract)
		require.NoError(t, err)
		issuedAt, ok := updMap["contract_issued_at"].(time.Time)
		require.True(t, ok)
		require.WithinDuration(t, time.Now(), issuedAt, time.Minute)
	})
}

func TestNextManualTrigger(t *testing.T) {
	t.Run(`skips hiring manager 2 when not configured`, func(t *testing.T) {
		rec := candidateAt(models.StepReadyForHiringManager1)
		trigger, err := NextManualTrigger(rec)
		require.NoError(t, err)
		require.Equal(t, TriggerAdvanceToApprover1, trigger)
	})

	t.Run(`routes through hiring manager 2 when configured`, func(t *testing.T) {
		rec := candidateAt(models.StepReadyForHiringManager1)
		rec.HiringManager2Email = "hm2@example.com"
		trigger, err := NextManualTrigger(rec)
		require.NoError(t, err)
		require.Equal(t, TriggerAdvanceToHM2, trigger)
	})

	t.Run(`skips approver 2 when not configured`, func(t *testing.T) {
		rec := candidateAt(models.StepReadyForApprover1)
		trigger, err := NextManualTrigger(rec)
		require.NoError(t, err)
		require.Equal(t, TriggerAdvanceToContract, trigger)
	})

	t.Run(`no manual action outside the approval chain`, func(t *testing.T) {
		rec := candidateAt(models.StepSelectedForHiring)
		_, err := NextManualTrigger(rec)
		require.True(t, errors.Is(err, ErrIllegalTransition))
	})
}

func TestApplyDecision(t *testing.T) {
	decision := func(d models.Decision) dbmodels.ApprovalDecision {
		return dbmodels.ApprovalDecision{
			Decision:  d,
			Comment:   "looks fine",
			Email:     "party@example.com",
			Timestamp: time.Now(),
		}
	}

	t.Run(`verifier approval advances the step`, func(t *testing.T) {
		rec := candidateAt(models.StepReadyForVerification)
		updMap, err := ApplyDecision(rec, models.TokenKindVerification, decision(models.DecisionApproved))
		require.NoError(t, err)
		require.Equal(t, models.StepReadyForHiringManager1, updMap["current_step"])
		approvals := updMap["approvals"].(dbmodels.Approvals)
		require.NotNil(t, approvals.Verifier)
		require.Equal(t, models.DecisionApproved, approvals.Verifier.Decision)
	})

	t.Run(`verifier rejection records without advancing`, func(t *testing.T) {
		rec := candidateAt(models.StepReadyForVerification)
		updMap, err := ApplyDecision(rec, models.TokenKindVerification, decision(models.DecisionRejected))
		require.NoError(t, err)
		_, hasStep := updMap["current_step"]
		require.False(t, hasStep)
		approvals := updMap["approvals"].(dbmodels.Approvals)
		require.Equal(t, models.DecisionRejected, approvals.Verifier.Decision)
	})

	t.Run(`verification decision outside its step is rejected`, func(t *testing.T) {
		rec := candidateAt(models.StepReadyForHiringManager1)
		_, err := ApplyDecision(rec, models.TokenKindVerification, decision(models.DecisionApproved))
		require.True(t, errors.Is(err, ErrIllegalTransition))
	})

	t.Run(`approval decisions record without advancing`, func(t *testing.T) {
		rec := candidateAt(models.StepReadyForHiringManager1)
		rec.HiringManager1Email = "hm1@example.com"
		updMap, err := ApplyDecision(rec, models.TokenKindHiringManager1, decision(models.DecisionApproved))
		require.NoError(t, err)
		_, hasStep := updMap["current_step"]
		require.False(t, hasStep)
		approvals := updMap["approvals"].(dbmodels.Approvals)
		require.NotNil(t, approvals.HiringManager1)
	})

	t.Run(`approval kind must match the waiting step`, func(t *testing.T) {
		rec := candidateAt(models.StepReadyForHiringManager1)
		_, err := ApplyDecision(rec, models.TokenKindApprover1, decision(models.DecisionApproved))
		require.True(t, errors.Is(err, ErrIllegalTransition))
	})

	t.Run(`recommendation tokens carry no workflow decision`, func(t *testing.T) {
		rec := candidateAt(models.StepReadyForHiringManager1)
		_, err := ApplyDecision(rec, models.TokenKindRecommendation, decision(models.DecisionApproved))
		require.True(t, errors.Is(err, ErrIllegalTransition))
	})
}

func TestTokenKindForStep(t *testing.T) {
	t.Run(`maps waiting steps to roles`, func(t *testing.T) {
		rec := candidateAt(models.StepReadyForApprover1)
		rec.Approver1Email = "approver1@example.com"
		kind, email, err := TokenKindForStep(rec)
		require.NoError(t, err)
		require.Equal(t, models.TokenKindApprover1, kind)
		require.Equal(t, "approver1@example.com", email)
	})

	t.Run(`rejects steps outside the chain`, func(t *testing.T) {
		rec := candidateAt(models.StepSalaryPackagePrepared)
		_, _, err := TokenKindForStep(rec)
		require.True(t, errors.Is(err, ErrIllegalTransition))
	})
}
