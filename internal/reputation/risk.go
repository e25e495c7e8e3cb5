package reputation

import (
	"github.com/shopspring/decimal"
)

// RiskLevel 风险等级
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
	RiskVeryHigh RiskLevel = "Very High"
)

// Thresholds are inclusive lower bounds.
const (
	lowRiskScore    = 50
	mediumRiskScore = 20
	highRiskScore   = 5
)

func ClassifyRisk(score int64) RiskLevel {
	switch {
	case score >= lowRiskScore:
		return RiskLow
	case score >= mediumRiskScore:
		return RiskMedium
	case score >= highRiskScore:
		return RiskHigh
	default:
		return RiskVeryHigh
	}
}

// Reason explains a loan eligibility decision.
type Reason string

const (
	ReasonActiveLoanExists       Reason = "Active loan exists"
	ReasonInsufficientReputation Reason = "Insufficient reputation"
	ReasonEligible               Reason = "Eligible for loan"
)

// Eligibility is the result of get_loan_eligibility. Multiplier is set only
// when the wallet is eligible.
type Eligibility struct {
	Eligible   bool
	Reason     Reason
	MaxAmount  decimal.Decimal
	Multiplier *decimal.Decimal
}
