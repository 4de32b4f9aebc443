package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "hiring-flow-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.Candidate{}); err != nil {
		return errors.Wrap(err, "migration failed for Candidate")
	}
	if err := DB.AutoMigrate(&dbmodels.AuthToken{}); err != nil {
		return errors.Wrap(err, "migration failed for AuthToken")
	}
	if err := DB.AutoMigrate(&dbmodels.DashboardUser{}); err != nil {
		return errors.Wrap(err, "migration failed for DashboardUser")
	}
	log.Info("migrations finished")
	return nil
}
