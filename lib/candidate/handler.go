package candidate

import (
	"bytes"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hiring-flow-backend/config"
	"hiring-flow-backend/db"
	candidatestore "hiring-flow-backend/lib/candidate/store"
	pdfexport "hiring-flow-backend/lib/export/pdf"
	xlsexport "hiring-flow-backend/lib/export/xls"
	hiringflow "hiring-flow-backend/lib/hiring-flow"
	"hiring-flow-backend/lib/salary"
	salaryinsight "hiring-flow-backend/lib/salary-insight"
	"hiring-flow-backend/models"
	hiringapimodels "hiring-flow-backend/models/api/hiring"
	dbmodels "hiring-flow-backend/models/db"
)

type Provider interface {
	Create(data hiringapimodels.CandidateCreateData) (id string, err error)
	GetByID(id string) (view hiringapimodels.CandidateView, hMsg string, err error)
	List() ([]hiringapimodels.CandidateView, error)
	Update(id string, data hiringapimodels.CandidateUpdateData) (hMsg string, err error)
	Delete(id string) error

	SetAssessmentScore(id, score string) (hMsg string, err error)
	CompleteAssessment(id string) (hMsg string, err error)
	CompleteBackgroundCheck(id string) (hMsg string, err error)
	WaiveBackgroundCheck(id string) (hMsg string, err error)
	SaveSalaryProposal(id string, data hiringapimodels.SalaryProposalData) (hMsg string, err error)
	AdvanceStep(id string) (hMsg string, err error)
	IssueContract(id string) (hMsg string, err error)

	ExportPipeline() (*bytes.Buffer, error)
	OfferSummary(id string) (pdfFile []byte, hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: candidatestore.NewInstance(db.DB),
	}
}

func NewHandlerWithDB(DB *gorm.DB) Provider {
	return impl{
		store: candidatestore.NewInstance(DB),
	}
}

type impl struct {
	store candidatestore.Provider
}

func (i impl) GetLogger(id string) *log.Entry {
	return log.WithField("candidate_id", id)
}

func (i impl) Create(data hiringapimodels.CandidateCreateData) (id string, err error) {
	rec := dbmodels.Candidate{
		Name:                  data.Name,
		Position:              data.Position,
		Email:                 data.Email,
		Phone:                 data.Phone,
		RecruiterName:         data.RecruiterName,
		RecruiterEmail:        data.RecruiterEmail,
		HiringManager1Email:   data.HiringManager1Email,
		HiringManager2Email:   data.HiringManager2Email,
		Approver1Email:        data.Approver1Email,
		Approver2Email:        data.Approver2Email,
		CurrentStep:           models.StepSelectedForHiring,
		AssessmentStatus:      models.AssessmentPending,
		BackgroundCheckStatus: models.BackgroundCheckPending,
		Recommendation1:       dbmodels.RecommendationSlot{Status: models.RecommendationNotRequested},
		Recommendation2:       dbmodels.RecommendationSlot{Status: models.RecommendationNotRequested},
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	i.GetLogger(id).Info("candidate selected for hiring")
	return id, nil
}

func (i impl) GetByID(id string) (view hiringapimodels.CandidateView, hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return view, "", err
	}
	if rec == nil {
		return view, "candidate not found", nil
	}
	return hiringapimodels.CandidateConvert(*rec), "", nil
}

func (i impl) List() ([]hiringapimodels.CandidateView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]hiringapimodels.CandidateView, 0, len(list))
	for _, rec := range list {
		result = append(result, hiringapimodels.CandidateConvert(rec))
	}
	return result, nil
}

func (i impl) Update(id string, data hiringapimodels.CandidateUpdateData) (hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "candidate not found", nil
	}
	return "", i.store.Update(id, data.ToUpdMap())
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) SetAssessmentScore(id, score string) (hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "candidate not found", nil
	}
	return "", i.store.Update(id, map[string]interface{}{"assessment_score": score})
}

func (i impl) CompleteAssessment(id string) (hMsg string, err error) {
	return i.advance(id, hiringflow.TriggerCompleteAssessment, nil)
}

func (i impl) CompleteBackgroundCheck(id string) (hMsg string, err error) {
	return i.advance(id, hiringflow.TriggerCompleteBackgroundCheck, nil)
}

func (i impl) WaiveBackgroundCheck(id string) (hMsg string, err error) {
	return i.advance(id, hiringflow.TriggerWaiveBackgroundCheck, nil)
}

func (i impl) SaveSalaryProposal(id string, data hiringapimodels.SalaryProposalData) (hMsg string, err error) {
	proposal := data.ToProposal(config.Conf.Hiring.EmployerContributionPct)
	salary.Compute(&proposal)
	if data.WithInsight && salaryinsight.Instance != nil {
		proposal.Insight = salaryinsight.Instance.GenerateInsight(&proposal)
	}
	return i.advance(id, hiringflow.TriggerSaveSalaryProposal, map[string]interface{}{
		"salary_proposal": &proposal,
	})
}

func (i impl) AdvanceStep(id string) (hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "candidate not found", nil
	}
	trigger, err := hiringflow.NextManualTrigger(rec)
	if err != nil {
		return err.Error(), nil
	}
	return i.applyTrigger(rec, trigger, nil)
}

func (i impl) IssueContract(id string) (hMsg string, err error) {
	return i.advance(id, hiringflow.TriggerIssueContract, nil)
}

func (i impl) ExportPipeline() (*bytes.Buffer, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportPipeline(list)
}

func (i impl) OfferSummary(id string) (pdfFile []byte, hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if rec == nil {
		return nil, "candidate not found", nil
	}
	if rec.SalaryProposal == nil {
		return nil, "candidate has no salary proposal", nil
	}
	pdfFile, err = pdfexport.GenerateOfferSummary(*rec)
	if err != nil {
		return nil, "", err
	}
	return pdfFile, "", nil
}

func (i impl) advance(id string, trigger hiringflow.Trigger, extraUpd map[string]interface{}) (hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "candidate not found", nil
	}
	return i.applyTrigger(rec, trigger, extraUpd)
}

func (i impl) applyTrigger(rec *dbmodels.Candidate, trigger hiringflow.Trigger, extraUpd map[string]interface{}) (hMsg string, err error) {
	updMap, err := hiringflow.Advance(rec, trigger)
	if err != nil {
		i.GetLogger(rec.ID).WithError(err).Debug("transition rejected")
		return err.Error(), nil
	}
	for field, value := range extraUpd {
		updMap[field] = value
	}
	err = i.store.Update(rec.ID, updMap)
	if err != nil {
		return "", err
	}
	i.GetLogger(rec.ID).
		WithField("from_step", rec.CurrentStep).
		WithField("to_step", updMap["current_step"]).
		Info("candidate step advanced")
	return "", nil
}
