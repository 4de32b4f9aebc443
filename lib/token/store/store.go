package tokenstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hiring-flow-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.AuthToken) (id string, err error)
	GetByToken(token string) (*dbmodels.AuthToken, error)
	Consume(token string, now time.Time) (consumed bool, err error)
	ListByCandidate(candidateID string) ([]dbmodels.AuthToken, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AuthToken) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByToken(token string) (*dbmodels.AuthToken, error) {
	rec := dbmodels.AuthToken{}
	err := i.db.
		Where("token = ?", token).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// Consume is a single conditional update on used_at. Under concurrent
// submission of the same token exactly one caller sees consumed=true;
// a read-then-write here would allow a decision to apply twice.
func (i impl) Consume(token string, now time.Time) (consumed bool, err error) {
	tx := i.db.
		Model(&dbmodels.AuthToken{}).
		Where("token = ?", token).
		Where("used_at IS NULL").
		Where("expires_at > ?", now).
		Updates(map[string]interface{}{"used_at": now})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (i impl) ListByCandidate(candidateID string) (list []dbmodels.AuthToken, err error) {
	err = i.db.
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
