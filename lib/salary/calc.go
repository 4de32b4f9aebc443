package salary

import (
	"fmt"
	"regexp"
	"strconv"

	dbmodels "hiring-flow-backend/models/db"
)

const (
	RangeFitNoBandData    = "No band data"
	RangeFitBelowBand     = "Below Band"
	RangeFitBelowMidpoint = "Within Band (Below/Near Midpoint)"
	RangeFitNearUpper     = "Within Band (Near Upper Range)"
	RangeFitAboveBand     = "Above Band"
)

const riskThresholdPct = 30

var nonNumeric = regexp.MustCompile(`[^0-9.-]`)

// ParseAmount extracts a number from a free-form money string such as
// "RM 8,000". Malformed input parses to zero rather than an error.
func ParseAmount(value string) float64 {
	if value == "" {
		return 0
	}
	cleaned := nonNumeric.ReplaceAllString(value, "")
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// Compute fills the derived fields of a proposal from its raw inputs.
// It is deterministic: recomputing from the stored inputs always
// reproduces the same numbers.
func Compute(proposal *dbmodels.SalaryProposal) {
	proposal.Basic = ParseAmount(proposal.BasicSalary)
	proposal.AllowancesTotal = 0
	for _, allowance := range proposal.Allowances {
		proposal.AllowancesTotal += ParseAmount(allowance.Amount)
	}
	proposal.TotalSalary = proposal.Basic + proposal.AllowancesTotal
	proposal.EmployerContribution = proposal.TotalSalary * proposal.EmployerContributionPct / 100
	proposal.TotalCTC = proposal.TotalSalary + proposal.EmployerContribution

	if proposal.Grade != "" {
		if band, ok := BandForGrade(proposal.Grade); ok {
			proposal.BandMin = band.Min
			proposal.BandMid = band.Mid
			proposal.BandMax = band.Max
		}
	}
	proposal.RangeFitLabel = RangeFit(proposal.Basic, proposal.BandMin, proposal.BandMid, proposal.BandMax)
	proposal.RiskFlags = RiskFlags(proposal)
}

// RangeFit classifies a basic salary against a {min, mid, max} band.
func RangeFit(basic, bandMin, bandMid, bandMax float64) string {
	if bandMin == 0 || bandMax == 0 {
		return RangeFitNoBandData
	}
	switch {
	case basic < bandMin:
		return RangeFitBelowBand
	case basic <= bandMid:
		return RangeFitBelowMidpoint
	case basic <= bandMax:
		return RangeFitNearUpper
	}
	return RangeFitAboveBand
}

// RiskFlags raises independent warnings; they are not mutually exclusive.
func RiskFlags(proposal *dbmodels.SalaryProposal) []string {
	flags := []string{}

	if proposal.BandMax > 0 && proposal.Basic > proposal.BandMax {
		flags = append(flags, "Basic salary above band maximum")
	}

	if proposal.TotalSalary > 0 {
		allowanceRatio := proposal.AllowancesTotal / proposal.TotalSalary * 100
		if allowanceRatio > riskThresholdPct {
			flags = append(flags, fmt.Sprintf("Allowance ratio is %.1f%% (exceeds %d%% threshold)", allowanceRatio, riskThresholdPct))
		}
	}

	lastDrawn := ParseAmount(proposal.LastDrawnSalary)
	if lastDrawn > 0 {
		incrementPct := (proposal.TotalSalary - lastDrawn) / lastDrawn * 100
		if incrementPct > riskThresholdPct {
			flags = append(flags, fmt.Sprintf("Salary increment is %.1f%% (exceeds %d%% threshold)", incrementPct, riskThresholdPct))
		}
	}
	return flags
}
