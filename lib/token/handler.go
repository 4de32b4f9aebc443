package tokenhandler

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hiring-flow-backend/config"
	tokenstore "hiring-flow-backend/lib/token/store"
	"hiring-flow-backend/models"
	dbmodels "hiring-flow-backend/models/db"
)

// ErrInvalidLink is the only token failure external parties ever see.
// Whether the token is missing, already used or expired stays internal.
var ErrInvalidLink = errors.New("invalid or expired link")

type Provider interface {
	Issue(candidateID string, kind models.TokenKind, recommendationNumber int, recipientEmail string) (token string, err error)
	Resolve(token string) (*dbmodels.AuthToken, error)
	Consume(token string) error
}

func NewHandlerWithDB(DB *gorm.DB) Provider {
	return impl{
		store: tokenstore.NewInstance(DB),
	}
}

type impl struct {
	store tokenstore.Provider
}

func (i impl) Issue(candidateID string, kind models.TokenKind, recommendationNumber int, recipientEmail string) (token string, err error) {
	rec := dbmodels.AuthToken{
		Token:                uuid.NewString(),
		CandidateID:          candidateID,
		Kind:                 kind,
		RecommendationNumber: recommendationNumber,
		RecipientEmail:       recipientEmail,
		ExpiresAt:            time.Now().Add(ttlFor(kind)),
	}
	_, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "failed to persist token")
	}
	log.
		WithField("candidate_id", candidateID).
		WithField("kind", kind).
		Info("token issued")
	return rec.Token, nil
}

func (i impl) Resolve(token string) (*dbmodels.AuthToken, error) {
	rec, err := i.store.GetByToken(token)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrInvalidLink
	}
	if rec.UsedAt != nil {
		log.WithField("candidate_id", rec.CandidateID).Debug("token already used")
		return nil, ErrInvalidLink
	}
	if rec.ExpiresAt.Before(time.Now()) {
		log.WithField("candidate_id", rec.CandidateID).Debug("token expired")
		return nil, ErrInvalidLink
	}
	return rec, nil
}

func (i impl) Consume(token string) error {
	consumed, err := i.store.Consume(token, time.Now())
	if err != nil {
		return err
	}
	if !consumed {
		return ErrInvalidLink
	}
	return nil
}

func ttlFor(kind models.TokenKind) time.Duration {
	days := config.Conf.Hiring.ApprovalTokenTTLDays
	switch kind {
	case models.TokenKindVerification:
		days = config.Conf.Hiring.VerificationTokenTTLDays
	case models.TokenKindRecommendation:
		days = config.Conf.Hiring.RecommendationTokenTTLDays
	}
	return time.Hour * 24 * time.Duration(days)
}
