package db

import (
	log "github.com/sirupsen/logrus"

	"hiring-flow-backend/config"
	userstore "hiring-flow-backend/lib/auth/store"
	authhelpers "hiring-flow-backend/lib/utils/auth-helpers"
	dbmodels "hiring-flow-backend/models/db"
)

func InitPreload() {
	addDashboardAdmin()
}

func addDashboardAdmin() {
	if config.Conf.Admin.Email == "" {
		log.Warn("dashboard admin not added, ADMIN_EMAIL is not set")
		return
	}
	store := userstore.NewInstance(DB)
	existedRec, err := store.FindByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("failed to add dashboard admin")
		return
	}
	if existedRec != nil {
		return
	}
	rec := dbmodels.DashboardUser{
		FirstName: config.Conf.Admin.Name,
		Email:     config.Conf.Admin.Email,
		Password:  authhelpers.GetMD5Hash(config.Conf.Admin.Password),
	}
	_, err = store.Create(rec)
	if err != nil {
		log.WithError(err).Error("failed to add dashboard admin")
	}
}
