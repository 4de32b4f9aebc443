package userstore

import (
	"gorm.io/gorm"

	dbmodels "hiring-flow-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.DashboardUser) (id string, err error)
	FindByEmail(email string) (*dbmodels.DashboardUser, error)
	Update(id string, updMap map[string]interface{}) error
	ExistByEmail(email string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.DashboardUser) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) FindByEmail(email string) (*dbmodels.DashboardUser, error) {
	rec := dbmodels.DashboardUser{}
	err := i.db.
		Where("email = ?", email).
		First(&rec).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.DashboardUser{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) ExistByEmail(email string) (bool, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.DashboardUser{}).
		Where("email = ?", email).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
