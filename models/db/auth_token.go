package dbmodels

import (
	"time"

	"hiring-flow-backend/models"
)

// AuthToken is a single-use credential embedded in an emailed link.
// UsedAt stays nil until the token is consumed; once set the token is inert.
type AuthToken struct {
	BaseModel
	Token                string           `gorm:"type:varchar(64);uniqueIndex"`
	CandidateID          string           `gorm:"type:varchar(36);index"`
	Kind                 models.TokenKind `gorm:"type:varchar(32)"`
	RecommendationNumber int              // 1 or 2 for recommendation tokens, 0 otherwise
	RecipientEmail       string           `gorm:"type:varchar(255)"`
	ExpiresAt            time.Time
	UsedAt               *time.Time
}

type DashboardUser struct {
	BaseModel
	Email     string `gorm:"type:varchar(255);uniqueIndex"`
	Password  string `gorm:"type:varchar(64)"`
	FirstName string `gorm:"type:varchar(255)"`
	LastName  string `gorm:"type:varchar(255)"`
	LastLogin *time.Time
}
