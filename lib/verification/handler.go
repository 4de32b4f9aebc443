package verification

import (
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hiring-flow-backend/config"
	"hiring-flow-backend/db"
	candidatestore "hiring-flow-backend/lib/candidate/store"
	hiringflow "hiring-flow-backend/lib/hiring-flow"
	"hiring-flow-backend/lib/notify"
	tokenhandler "hiring-flow-backend/lib/token"
	tokenstore "hiring-flow-backend/lib/token/store"
	"hiring-flow-backend/models"
	hiringapimodels "hiring-flow-backend/models/api/hiring"
	dbmodels "hiring-flow-backend/models/db"
)

type Provider interface {
	SendRequest(candidateID string, data hiringapimodels.VerificationRequestData) (draft notify.Draft, hMsg string, err error)
	GetContext(token string) (hiringapimodels.VerificationContext, error)
	SubmitDecision(data hiringapimodels.DecisionData) (hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		db:     db.DB,
		tokens: tokenhandler.NewHandlerWithDB(db.DB),
	}
}

func NewHandlerWithDB(DB *gorm.DB) Provider {
	return impl{
		db:     DB,
		tokens: tokenhandler.NewHandlerWithDB(DB),
	}
}

type impl struct {
	db     *gorm.DB
	tokens tokenhandler.Provider
}

func (i impl) SendRequest(candidateID string, data hiringapimodels.VerificationRequestData) (draft notify.Draft, hMsg string, err error) {
	store := candidatestore.NewInstance(i.db)
	rec, err := store.GetByID(candidateID)
	if err != nil {
		return draft, "", err
	}
	if rec == nil {
		return draft, "candidate not found", nil
	}
	if rec.SalaryProposal == nil {
		return draft, "salary proposal must be prepared before verification", nil
	}

	updMap, err := hiringflow.Advance(rec, hiringflow.TriggerSendVerification)
	if err != nil {
		return draft, err.Error(), nil
	}
	updMap["verifier_email"] = data.VerifierEmail

	// Token issue and step change commit together; the step never moves
	// without a live link, and a failed issue never moves the step.
	var token string
	err = i.db.Transaction(func(tx *gorm.DB) error {
		token, err = tokenhandler.NewHandlerWithDB(tx).Issue(candidateID, models.TokenKindVerification, 0, data.VerifierEmail)
		if err != nil {
			return err
		}
		return candidatestore.NewInstance(tx).Update(candidateID, updMap)
	})
	if err != nil {
		return draft, "", err
	}

	ttlDays := config.Conf.Hiring.VerificationTokenTTLDays
	link := notify.VerificationLink(config.Conf.Hiring.PublicBaseURL, token, rec.Name, rec.Position)
	draft = notify.Instance.DecisionRequest(notify.Request{
		To:            data.VerifierEmail,
		CandidateName: rec.Name,
		Position:      rec.Position,
		Kind:          models.TokenKindVerification,
		Link:          link,
		TTLDays:       ttlDays,
	})
	return draft, "", nil
}

func (i impl) GetContext(token string) (ctx hiringapimodels.VerificationContext, err error) {
	tokenRec, err := i.tokens.Resolve(token)
	if err != nil {
		return ctx, err
	}
	if tokenRec.Kind != models.TokenKindVerification {
		return ctx, tokenhandler.ErrInvalidLink
	}
	rec, err := candidatestore.NewInstance(i.db).GetByID(tokenRec.CandidateID)
	if err != nil {
		return ctx, err
	}
	if rec == nil {
		return ctx, tokenhandler.ErrInvalidLink
	}
	return hiringapimodels.VerificationContext{
		CandidateID:    rec.ID,
		CandidateName:  rec.Name,
		Position:       rec.Position,
		RecruiterName:  rec.RecruiterName,
		RecruiterEmail: rec.RecruiterEmail,
		CurrentStep:    rec.CurrentStep,
		SalaryProposal: rec.SalaryProposal,
		Assessment: hiringapimodels.AssessmentSnapshot{
			Status:     rec.AssessmentStatus,
			Score:      rec.AssessmentScore,
			ReportName: rec.AssessmentReportName,
		},
		BackgroundCheck: hiringapimodels.BackgroundCheckSnapshot{
			Status:       rec.BackgroundCheckStatus,
			DocumentName: rec.BackgroundCheckDocumentName,
			CompletedAt:  rec.BackgroundCheckCompletedAt,
		},
	}, nil
}

// SubmitDecision applies the verifier's decision and consumes the token
// in one transaction. The conditional update on used_at guarantees
// at-most-once application; rollback on a failed record update leaves
// the token usable.
func (i impl) SubmitDecision(data hiringapimodels.DecisionData) (hMsg string, err error) {
	tokenRec, err := i.tokens.Resolve(data.Token)
	if err != nil {
		return "", err
	}
	if tokenRec.Kind != models.TokenKindVerification {
		return "", tokenhandler.ErrInvalidLink
	}

	err = i.db.Transaction(func(tx *gorm.DB) error {
		txTokens := tokenstore.NewInstance(tx)
		consumed, err := txTokens.Consume(data.Token, time.Now())
		if err != nil {
			return err
		}
		if !consumed {
			return tokenhandler.ErrInvalidLink
		}

		store := candidatestore.NewInstance(tx)
		rec, err := store.GetByID(tokenRec.CandidateID)
		if err != nil {
			return err
		}
		if rec == nil {
			return tokenhandler.ErrInvalidLink
		}

		decision := dbmodels.ApprovalDecision{
			Decision:  data.Decision,
			Comment:   data.Comment,
			Email:     tokenRec.RecipientEmail,
			Timestamp: time.Now(),
		}
		updMap, err := hiringflow.ApplyDecision(rec, models.TokenKindVerification, decision)
		if err != nil {
			return err
		}
		return store.Update(rec.ID, updMap)
	})
	if err != nil {
		return "", err
	}
	log.
		WithField("candidate_id", tokenRec.CandidateID).
		WithField("decision", data.Decision).
		Info("verification decision recorded")
	return "", nil
}
