package candidate

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hiring-flow-backend/config"
	candidatestore "hiring-flow-backend/lib/candidate/store"
	xlsexport "hiring-flow-backend/lib/export/xls"
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
	conf.Hiring.EmployerContributionPct = 15
	config.Conf = conf
	xlsexport.NewHandler()
}

func createCandidate(t *testing.T, handler Provider) string {
	t.Helper()
	id, err := handler.Create(hiringapimodels.CandidateCreateData{
		Name:                "Aisyah Rahman",
		Position:            "Senior Engineer",
		Email:               "aisyah@example.com",
		Phone:               "+60123456789",
		HiringManager1Email: "hm1@example.com",
		Approver1Email:      "a1@example.com",
	})
	require.NoError(t, err)
	return id
}

func TestCreate(t *testing.T) {
	initTestServices()
	DB := testDB(t)
	handler := NewHandlerWithDB(DB)

	id := createCandidate(t, handler)

	rec, err := candidatestore.NewInstance(DB).GetByID(id)
	require.NoError(t, err)
	require.Equal(t, models.StepSelectedForHiring, rec.CurrentStep)
	require.Equal(t, models.AssessmentPending, rec.AssessmentStatus)
	require.Equal(t, models.BackgroundCheckPending, rec.BackgroundCheckStatus)
	require.Equal(t, models.RecommendationNotRequested, rec.Recommendation1.Status)
	require.Equal(t, models.RecommendationNotRequested, rec.Recommendation2.Status)
}

func TestWaivePath(t *testing.T) {
	initTestServices()
	DB := testDB(t)
	handler := NewHandlerWithDB(DB)
	id := createCandidate(t, handler)

	hMsg, err := handler.SetAssessmentScore(id, "85/100")
	require.NoError(t, err)
	require.Empty(t, hMsg)

	hMsg, err = handler.CompleteAssessment(id)
	require.NoError(t, err)
	require.Empty(t, hMsg)

	hMsg, err = handler.WaiveBackgroundCheck(id)
	require.NoError(t, err)
	require.Empty(t, hMsg)

	rec, err := candidatestore.NewInstance(DB).GetByID(id)
	require.NoError(t, err)
	require.Equal(t, models.StepBackgroundCheckCompleted, rec.CurrentStep)
	require.Equal(t, models.AssessmentCompleted, rec.AssessmentStatus)
	require.Equal(t, "85/100", rec.AssessmentScore)
	require.Equal(t, models.BackgroundCheckNotRequired, rec.BackgroundCheckStatus)
	require.Nil(t, rec.BackgroundCheckCompletedAt)
}

func TestSaveSalaryProposal(t *testing.T) {
	initTestServices()
	DB := testDB(t)
	handler := NewHandlerWithDB(DB)
	id := createCandidate(t, handler)

	_, err := handler.CompleteAssessment(id)
	require.NoError(t, err)
	_, err = handler.CompleteBackgroundCheck(id)
	require.NoError(t, err)

	hMsg, err := handler.SaveSalaryProposal(id, hiringapimodels.SalaryProposalData{
		Company:        "Acme Sdn Bhd",
		ContractPeriod: "2 years",
		JobTitle:       "Senior Engineer",
		Grade:          "E2",
		BasicSalary:    "RM 8,000",
		Allowances: []dbmodels.SalaryAllowance{
			{Name: "Transport", Amount: "RM 500"},
		},
	})
	require.NoError(t, err)
	require.Empty(t, hMsg)

	rec, err := candidatestore.NewInstance(DB).GetByID(id)
	require.NoError(t, err)
	require.Equal(t, models.StepSalaryPackagePrepared, rec.CurrentStep)
	require.NotNil(t, rec.SalaryProposal)
	require.Equal(t, 8500.0, rec.SalaryProposal.TotalSalary)
	require.Equal(t, 1275.0, rec.SalaryProposal.EmployerContribution)
	require.Equal(t, 9775.0, rec.SalaryProposal.TotalCTC)
	require.NotEmpty(t, rec.SalaryProposal.RangeFitLabel)

	t.Run(`out-of-order proposal is rejected with a message`, func(t *testing.T) {
		otherID := createCandidate(t, handler)
		hMsg, err := handler.SaveSalaryProposal(otherID, hiringapimodels.SalaryProposalData{
			BasicSalary: "RM 8,000",
		})
		require.NoError(t, err)
		require.NotEmpty(t, hMsg)
	})
}

func TestAdvanceStep(t *testing.T) {
	initTestServices()
	DB := testDB(t)
	handler := NewHandlerWithDB(DB)
	id := createCandidate(t, handler)

	// hm2 and approver2 have no emails, so the manual advance from the
	// hm1 step jumps straight to approver1.
	require.NoError(t, DB.Model(&dbmodels.Candidate{}).Where("id = ?", id).
		Update("current_step", models.StepReadyForHiringManager1).Error)

	hMsg, err := handler.AdvanceStep(id)
	require.NoError(t, err)
	require.Empty(t, hMsg)

	rec, err := candidatestore.NewInstance(DB).GetByID(id)
	require.NoError(t, err)
	require.Equal(t, models.StepReadyForApprover1, rec.CurrentStep)

	t.Run(`terminal step has no manual advance`, func(t *testing.T) {
		require.NoError(t, DB.Model(&dbmodels.Candidate{}).Where("id = ?", id).
			Update("current_step", models.StepContractIssued).Error)
		hMsg, err := handler.AdvanceStep(id)
		require.NoError(t, err)
		require.NotEmpty(t, hMsg)
	})
}

func TestIssueContract(t *testing.T) {
	initTestServices()
	DB := testDB(t)
	handler := NewHandlerWithDB(DB)
	id := createCandidate(t, handler)

	require.NoError(t, DB.Model(&dbmodels.Candidate{}).Where("id = ?", id).
		Update("current_step", models.StepReadyForContractIssuance).Error)

	hMsg, err := handler.IssueContract(id)
	require.NoError(t, err)
	require.Empty(t, hMsg)

	rec, err := candidatestore.NewInstance(DB).GetByID(id)
	require.NoError(t, err)
	require.Equal(t, models.StepContractIssued, rec.CurrentStep)
	require.NotNil(t, rec.ContractIssuedAt)
}

func TestExportPipeline(t *testing.T) {
	initTestServices()
	DB := testDB(t)
	handler := NewHandlerWithDB(DB)
	createCandidate(t, handler)

	buf, err := handler.ExportPipeline()
	require.NoError(t, err)
	require.NotZero(t, buf.Len())
}

func TestGetByID(t *testing.T) {
	initTestServices()
	DB := testDB(t)
	handler := NewHandlerWithDB(DB)

	_, hMsg, err := handler.GetByID(uuid.NewString())
	require.NoError(t, err)
	require.Equal(t, "candidate not found", hMsg)
}
