package recommendation

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hiring-flow-backend/config"
	"hiring-flow-backend/db"
	candidatestore "hiring-flow-backend/lib/candidate/store"
	"hiring-flow-backend/lib/notify"
	tokenhandler "hiring-flow-backend/lib/token"
	tokenstore "hiring-flow-backend/lib/token/store"
	"hiring-flow-backend/models"
	hiringapimodels "hiring-flow-backend/models/api/hiring"
	dbmodels "hiring-flow-backend/models/db"
)

type Provider interface {
	SendRequest(candidateID string, data hiringapimodels.RecommendationRequestData) (draft notify.Draft, hMsg string, err error)
	GetContext(token string) (hiringapimodels.RecommendationContext, error)
	Submit(data hiringapimodels.RecommendationSubmitData) (hMsg string, err error)
	Decline(token string) error
	Status(candidateID string) (view hiringapimodels.RecommendationStatusView, hMsg string, err error)
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

// SendRequest opens one of the two reference slots. The sub-flow is an
// informational overlay: it never gates current_step, but references are
// only requested once the verifier has responded.
func (i impl) SendRequest(candidateID string, data hiringapimodels.RecommendationRequestData) (draft notify.Draft, hMsg string, err error) {
	store := candidatestore.NewInstance(i.db)
	rec, err := store.GetByID(candidateID)
	if err != nil {
		return draft, "", err
	}
	if rec == nil {
		return draft, "candidate not found", nil
	}
	if rec.Approvals.Verifier == nil {
		return draft, "references can be requested only after the verifier has responded", nil
	}

	token, err := i.tokens.Issue(candidateID, models.TokenKindRecommendation, data.RecommendationNumber, data.RecommenderEmail)
	if err != nil {
		return draft, "", err
	}

	prefix := slotPrefix(data.RecommendationNumber)
	err = store.Update(candidateID, map[string]interface{}{
		prefix + "status": models.RecommendationPending,
		prefix + "email":  data.RecommenderEmail,
	})
	if err != nil {
		return draft, "", err
	}

	ttlDays := config.Conf.Hiring.RecommendationTokenTTLDays
	link := notify.RecommendationLink(config.Conf.Hiring.PublicBaseURL, token)
	draft = notify.Instance.DecisionRequest(notify.Request{
		To:            data.RecommenderEmail,
		CandidateName: rec.Name,
		Position:      rec.Position,
		Kind:          models.TokenKindRecommendation,
		Link:          link,
		TTLDays:       ttlDays,
	})
	return draft, "", nil
}

func (i impl) GetContext(token string) (ctx hiringapimodels.RecommendationContext, err error) {
	tokenRec, err := i.resolveRecommendation(token)
	if err != nil {
		return ctx, err
	}
	rec, err := candidatestore.NewInstance(i.db).GetByID(tokenRec.CandidateID)
	if err != nil {
		return ctx, err
	}
	if rec == nil {
		return ctx, tokenhandler.ErrInvalidLink
	}
	return hiringapimodels.RecommendationContext{
		CandidateName:        rec.Name,
		PositionApplied:      rec.Position,
		CandidateEmail:       rec.Email,
		RecommendationNumber: tokenRec.RecommendationNumber,
		RecommenderEmail:     tokenRec.RecipientEmail,
	}, nil
}

func (i impl) Submit(data hiringapimodels.RecommendationSubmitData) (hMsg string, err error) {
	tokenRec, err := i.resolveRecommendation(data.Token)
	if err != nil {
		return "", err
	}

	now := time.Now()
	prefix := slotPrefix(tokenRec.RecommendationNumber)
	err = i.db.Transaction(func(tx *gorm.DB) error {
		consumed, err := tokenstore.NewInstance(tx).Consume(data.Token, now)
		if err != nil {
			return err
		}
		if !consumed {
			return tokenhandler.ErrInvalidLink
		}
		return candidatestore.NewInstance(tx).Update(tokenRec.CandidateID, map[string]interface{}{
			prefix + "status":       models.RecommendationCompleted,
			prefix + "name":         data.Name,
			prefix + "organization": data.Organization,
			prefix + "relationship": data.Relationship,
			prefix + "feedback":     data.Feedback,
			prefix + "submitted_at": now,
		})
	})
	if err != nil {
		return "", err
	}
	log.
		WithField("candidate_id", tokenRec.CandidateID).
		WithField("recommendation_number", tokenRec.RecommendationNumber).
		Info("recommendation submitted")
	return "", nil
}

// Decline lets a recommender opt out; the token is consumed so the link
// cannot be reused to submit later.
func (i impl) Decline(token string) error {
	tokenRec, err := i.resolveRecommendation(token)
	if err != nil {
		return err
	}
	prefix := slotPrefix(tokenRec.RecommendationNumber)
	return i.db.Transaction(func(tx *gorm.DB) error {
		consumed, err := tokenstore.NewInstance(tx).Consume(token, time.Now())
		if err != nil {
			return err
		}
		if !consumed {
			return tokenhandler.ErrInvalidLink
		}
		return candidatestore.NewInstance(tx).Update(tokenRec.CandidateID, map[string]interface{}{
			prefix + "status": models.RecommendationDeclined,
		})
	})
}

func (i impl) Status(candidateID string) (view hiringapimodels.RecommendationStatusView, hMsg string, err error) {
	rec, err := candidatestore.NewInstance(i.db).GetByID(candidateID)
	if err != nil {
		return view, "", err
	}
	if rec == nil {
		return view, "candidate not found", nil
	}
	return hiringapimodels.RecommendationStatusView{
		Recommendation1: rec.Recommendation1,
		Recommendation2: rec.Recommendation2,
	}, "", nil
}

func (i impl) resolveRecommendation(token string) (*dbmodels.AuthToken, error) {
	tokenRec, err := i.tokens.Resolve(token)
	if err != nil {
		return nil, err
	}
	if tokenRec.Kind != models.TokenKindRecommendation {
		return nil, tokenhandler.ErrInvalidLink
	}
	return tokenRec, nil
}

func slotPrefix(number int) string {
	return fmt.Sprintf("recommendation%d_", number)
}
