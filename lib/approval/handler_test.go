package approval

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hiring-flow-backend/config"
	candidatestore "hiring-flow-backend/lib/candidate/store"
	"hiring-flow-backend/lib/notify"
	tokenhandler "hiring-flow-backend/lib/token"
	tokenstore "hiring-flow-backend/lib/token/store"
	"hiring-flow-backend/models"
	hiringapimodels "hiring-flow-backend/models/api/hiring"
	dbmodels "hiring-flow-backend/models/db"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	DB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, DB.AutoMigrate(&dbmodels.Candidate{}, &dbmodels.AuthToken{}))
	return DB
}

func initTestServices() {
	conf := new(config.Configuration)
	conf.Hiring.PublicBaseURL = "http://localhost:8000"
	conf.Hiring.ApprovalTokenTTLDays = 7
	config.Conf = conf
	notify.NewHandler()
}

func seedCandidate(t *testing.T, DB *gorm.DB, step models.Step, hm1Email string) string {
	t.Helper()
	id, err := candidatestore.NewInstance(DB).Create(dbmodels.Candidate{
		Name:                "Aisyah Rahman",
		Position:            "Senior Engineer",
		CurrentStep:         step,
		HiringManager1Email: hm1Email,
		SalaryProposal: &dbmodels.SalaryProposal{
			BasicSalary: "8000",
			Basic:       8000,
		},
	})
	require.NoError(t, err)
	return id
}

func TestSendRequest(t *testing.T) {
	initTestServices()

	t.Run(`issues a token for the waiting role`, func(t *testing.T) {
		DB := testDB(t)
		handler := NewHandlerWithDB(DB)
		id := seedCandidate(t, DB, models.StepReadyForHiringManager1, "hm1@example.com")

		draft, hMsg, err := handler.SendRequest(id)
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Contains(t, draft.Link, "/approve?token=")
		require.Contains(t, draft.Link, "type=hm1")

		tokens, err := tokenstore.NewInstance(DB).ListByCandidate(id)
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		require.Equal(t, models.TokenKindHiringManager1, tokens[0].Kind)
		require.Equal(t, "hm1@example.com", tokens[0].RecipientEmail)
	})

	t.Run(`missing contact email creates no token`, func(t *testing.T) {
		DB := testDB(t)
		handler := NewHandlerWithDB(DB)
		id := seedCandidate(t, DB, models.StepReadyForHiringManager1, "")

		_, hMsg, err := handler.SendRequest(id)
		require.NoError(t, err)
		require.Equal(t, "no contact email configured for Hiring Manager 1", hMsg)

		tokens, err := tokenstore.NewInstance(DB).ListByCandidate(id)
		require.NoError(t, err)
		require.Empty(t, tokens)
	})

	t.Run(`rejected outside the approval chain`, func(t *testing.T) {
		DB := testDB(t)
		handler := NewHandlerWithDB(DB)
		id := seedCandidate(t, DB, models.StepSelectedForHiring, "hm1@example.com")

		_, hMsg, err := handler.SendRequest(id)
		require.NoError(t, err)
		require.NotEmpty(t, hMsg)
	})

	t.Run(`resend issues a fresh token`, func(t *testing.T) {
		DB := testDB(t)
		handler := NewHandlerWithDB(DB)
		id := seedCandidate(t, DB, models.StepReadyForHiringManager1, "hm1@example.com")

		_, _, err := handler.SendRequest(id)
		require.NoError(t, err)
		_, _, err = handler.SendRequest(id)
		require.NoError(t, err)

		tokens, err := tokenstore.NewInstance(DB).ListByCandidate(id)
		require.NoError(t, err)
		require.Len(t, tokens, 2)
	})
}

func TestGetContext(t *testing.T) {
	initTestServices()

	t.Run(`context carries the role label`, func(t *testing.T) {
		DB := testDB(t)
		handler := NewHandlerWithDB(DB)
		id := seedCandidate(t, DB, models.StepReadyForHiringManager1, "hm1@example.com")
		_, _, err := handler.SendRequest(id)
		require.NoError(t, err)
		tokens, err := tokenstore.NewInstance(DB).ListByCandidate(id)
		require.NoError(t, err)

		ctx, err := handler.GetContext(tokens[0].Token)
		require.NoError(t, err)
		require.Equal(t, models.TokenKindHiringManager1, ctx.Kind)
		require.Equal(t, "Hiring Manager 1", ctx.RoleLabel)
		require.NotNil(t, ctx.SalaryProposal)
	})

	t.Run(`verification token is not an approval link`, func(t *testing.T) {
		DB := testDB(t)
		handler := NewHandlerWithDB(DB)
		id := seedCandidate(t, DB, models.StepReadyForHiringManager1, "hm1@example.com")
		token, err := tokenhandler.NewHandlerWithDB(DB).Issue(id, models.TokenKindVerification, 0, "v@example.com")
		require.NoError(t, err)

		_, err = handler.GetContext(token)
		require.True(t, errors.Is(err, tokenhandler.ErrInvalidLink))
	})
}

func TestSubmitDecision(t *testing.T) {
	initTestServices()

	sendAndGetToken := func(t *testing.T, DB *gorm.DB, handler Provider, id string) string {
		_, hMsg, err := handler.SendRequest(id)
		require.NoError(t, err)
		require.Empty(t, hMsg)
		tokens, err := tokenstore.NewInstance(DB).ListByCandidate(id)
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		return tokens[0].Token
	}

	t.Run(`decision records without advancing the step`, func(t *testing.T) {
		DB := testDB(t)
		handler := NewHandlerWithDB(DB)
		id := seedCandidate(t, DB, models.StepReadyForHiringManager1, "hm1@example.com")
		token := sendAndGetToken(t, DB, handler, id)

		hMsg, err := handler.SubmitDecision(hiringapimodels.DecisionData{
			Token:    token,
			Decision: models.DecisionApproved,
			Comment:  "strong candidate",
		})
		require.NoError(t, err)
		require.Empty(t, hMsg)

		rec, err := candidatestore.NewInstance(DB).GetByID(id)
		require.NoError(t, err)
		require.Equal(t, models.StepReadyForHiringManager1, rec.CurrentStep)
		require.NotNil(t, rec.Approvals.HiringManager1)
		require.Equal(t, models.DecisionApproved, rec.Approvals.HiringManager1.Decision)
		require.Equal(t, "hm1@example.com", rec.Approvals.HiringManager1.Email)
	})

	t.Run(`token is single use`, func(t *testing.T) {
		DB := testDB(t)
		handler := NewHandlerWithDB(DB)
		id := seedCandidate(t, DB, models.StepReadyForHiringManager1, "hm1@example.com")
		token := sendAndGetToken(t, DB, handler, id)

		_, err := handler.SubmitDecision(hiringapimodels.DecisionData{Token: token, Decision: models.DecisionApproved})
		require.NoError(t, err)

		_, err = handler.SubmitDecision(hiringapimodels.DecisionData{Token: token, Decision: models.DecisionRejected})
		require.True(t, errors.Is(err, tokenhandler.ErrInvalidLink))
	})

	t.Run(`stale token no longer matches the waiting step`, func(t *testing.T) {
		DB := testDB(t)
		handler := NewHandlerWithDB(DB)
		id := seedCandidate(t, DB, models.StepReadyForHiringManager1, "hm1@example.com")
		token := sendAndGetToken(t, DB, handler, id)

		err := candidatestore.NewInstance(DB).Update(id, map[string]interface{}{
			"current_step": models.StepReadyForApprover1,
		})
		require.NoError(t, err)

		_, err = handler.SubmitDecision(hiringapimodels.DecisionData{Token: token, Decision: models.DecisionApproved})
		require.Error(t, err)

		// the failed transaction rolls back the consumption
		tokenRec, err := tokenstore.NewInstance(DB).GetByToken(token)
		require.NoError(t, err)
		require.Nil(t, tokenRec.UsedAt)
	})
}
