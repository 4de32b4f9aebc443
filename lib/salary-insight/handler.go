package salaryinsight

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"hiring-flow-backend/config"
	"hiring-flow-backend/lib/salary"
	yagptclient "hiring-flow-backend/lib/salary-insight/yagpt-client"
	dbmodels "hiring-flow-backend/models/db"
)

// PlaceholderInsight is returned whenever generation fails. The insight
// is informational only and must never block the salary workflow.
const PlaceholderInsight = "Unable to generate insight at this time."

const systemPromt = "You are a professional compensation analyst providing concise salary package evaluations."

type Provider interface {
	GenerateInsight(proposal *dbmodels.SalaryProposal) string
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		client: yagptclient.NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID),
	}
}

type impl struct {
	client yagptclient.Provider
}

func (i impl) GenerateInsight(proposal *dbmodels.SalaryProposal) string {
	text := fmt.Sprintf(`Evaluate the following salary package and provide a 3-4 sentence assessment of whether it is competitive and fair.

Job Title: %s
Years of Experience: %s years
Last Drawn Salary: RM %.2f
Candidate's Expected Salary: RM %.2f
Proposed Basic Salary: RM %.2f
Proposed Total Salary: RM %.2f
Internal Band Range: RM %.2f - RM %.2f (Midpoint: RM %.2f)
Total Cost to Company (CTC): RM %.2f

Cover whether the proposed salary fits the experience level and position, how it compares to the internal band and the candidate's expectations, whether the gap between expected and proposed salary may affect acceptance, and a brief recommendation. Keep the response to 3-4 sentences maximum. Be direct and professional.`,
		proposal.JobTitle,
		proposal.YearsOfExp,
		salary.ParseAmount(proposal.LastDrawnSalary),
		salary.ParseAmount(proposal.ExpectedSalary),
		proposal.Basic,
		proposal.TotalSalary,
		proposal.BandMin, proposal.BandMax, proposal.BandMid,
		proposal.TotalCTC,
	)

	insight, err := i.client.GenerateByPromtAndText(systemPromt, text)
	if err != nil {
		log.WithError(err).Warn("salary insight generation failed, using placeholder")
		return PlaceholderInsight
	}
	if insight == "" {
		return PlaceholderInsight
	}
	return insight
}
