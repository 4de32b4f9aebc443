package approval

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
	hiringapimodels "hiring-flow-backend/models/api/hiring"
	dbmodels "hiring-flow-backend/models/db"
)

type Provider interface {
	SendRequest(candidateID string) (draft notify.Draft, hMsg string, err error)
	GetContext(token string) (hiringapimodels.ApprovalContext, error)
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

// SendRequest issues a token for whichever recommendation/approval role
// the candidate's current step is waiting on. A missing contact email is
// a validation failure: no token, no step change.
func (i impl) SendRequest(candidateID string) (draft notify.Draft, hMsg string, err error) {
	store := candidatestore.NewInstance(i.db)
	rec, err := store.GetByID(candidateID)
	if err != nil {
		return draft, "", err
	}
	if rec == nil {
		return draft, "candidate not found", nil
	}

	kind, email, err := hiringflow.TokenKindForStep(rec)
	if err != nil {
		return draft, err.Error(), nil
	}
	if email == "" {
		return draft, "no contact email configured for " + notify.RoleLabel(kind), nil
	}

	token, err := i.tokens.Issue(candidateID, kind, 0, email)
	if err != nil {
		return draft, "", err
	}

	ttlDays := config.Conf.Hiring.ApprovalTokenTTLDays
	link := notify.ApprovalLink(config.Conf.Hiring.PublicBaseURL, token, kind, rec.Name, rec.Position)
	draft = notify.Instance.DecisionRequest(notify.Request{
		To:            email,
		CandidateName: rec.Name,
		Position:      rec.Position,
		Kind:          kind,
		Link:          link,
		TTLDays:       ttlDays,
	})
	return draft, "", nil
}

func (i impl) GetContext(token string) (ctx hiringapimodels.ApprovalContext, err error) {
	tokenRec, err := i.tokens.Resolve(token)
	if err != nil {
		return ctx, err
	}
	if !tokenRec.Kind.IsApproval() {
		return ctx, tokenhandler.ErrInvalidLink
	}
	rec, err := candidatestore.NewInstance(i.db).GetByID(tokenRec.CandidateID)
	if err != nil {
		return ctx, err
	}
	if rec == nil {
		return ctx, tokenhandler.ErrInvalidLink
	}
	return hiringapimodels.ApprovalContext{
		CandidateName:  rec.Name,
		Position:       rec.Position,
		Kind:           tokenRec.Kind,
		RoleLabel:      notify.RoleLabel(tokenRec.Kind),
		SalaryProposal: rec.SalaryProposal,
	}, nil
}

// SubmitDecision records the decision without advancing the step; the
// dashboard moves the chain forward explicitly after review.
func (i impl) SubmitDecision(data hiringapimodels.DecisionData) (hMsg string, err error) {
	tokenRec, err := i.tokens.Resolve(data.Token)
	if err != nil {
		return "", err
	}
	if !tokenRec.Kind.IsApproval() {
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
		updMap, err := hiringflow.ApplyDecision(rec, tokenRec.Kind, decision)
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
		WithField("kind", tokenRec.Kind).
		WithField("decision", data.Decision).
		Info("approval decision recorded")
	return "", nil
}
