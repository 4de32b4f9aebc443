package authhandler

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hiring-flow-backend/db"
	userstore "hiring-flow-backend/lib/auth/store"
	authhelpers "hiring-flow-backend/lib/utils/auth-helpers"
	authutils "hiring-flow-backend/lib/utils/auth-utils"
	authapimodels "hiring-flow-backend/models/api/auth"
)

type Provider interface {
	Login(email, password string) (response authapimodels.JWTResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: userstore.NewInstance(db.DB),
	}
}

type impl struct {
	store userstore.Provider
}

func (i impl) Login(email, password string) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", email)
	user, err := i.store.FindByEmail(email)
	if err != nil {
		logger.
			WithError(err).
			Error("failed to look up user by email")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		logger.Debug("no user with this email")
		return authapimodels.JWTResponse{}, errors.New("invalid email or password")
	}
	if authhelpers.GetMD5Hash(password) != user.Password {
		logger.Debug("password check failed")
		return authapimodels.JWTResponse{}, errors.New("invalid email or password")
	}
	tokenString, err := authutils.GetToken(user.ID, fmt.Sprintf("%s %s", user.FirstName, user.LastName))
	if err != nil {
		logger.WithError(err).Error("failed to generate JWT")
		return authapimodels.JWTResponse{}, err
	}
	err = i.store.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		logger.
			WithError(err).
			Error("failed to update last login time")
	}
	return authapimodels.JWTResponse{
		Token: tokenString,
	}, nil
}
