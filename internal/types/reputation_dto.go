package types

type EligibilityResp struct {
	Eligible   bool     `json:"eligible"`
	Reason     string   `json:"reason"`
	MaxAmount  float64  `json:"max_amount"`
	Multiplier *float64 `json:"multiplier,omitempty"`
}

type ReputationResp struct {
	ReputationScore int64           `json:"reputation_score"`
	RiskLevel       string          `json:"risk_level"`
	LoanEligibility EligibilityResp `json:"loan_eligibility"`
	Timestamp       int64           `json:"timestamp"`
}

// RequestLoanReq 申请贷款，金额不能超过额度
type RequestLoanReq struct {
	WalletAddress string  `json:"wallet_address,optional"`
	Amount        float64 `json:"amount,optional"`
}

// RepayLoanReq repays the wallet's active loan. Amount defaults to principal
// plus interest.
type RepayLoanReq struct {
	WalletAddress string  `json:"wallet_address,optional"`
	Amount        float64 `json:"amount,optional"`
}

type LeaderboardReq struct {
	Limit int `form:"limit,optional"`
}

type LeaderboardEntry struct {
	Rank              int     `json:"rank"`
	WalletAddress     string  `json:"wallet_address"`
	DisplayAddress    string  `json:"display_address"`
	TotalTransactions int64   `json:"total_transactions"`
	TotalVolume       float64 `json:"total_volume"`
	ReputationScore   int64   `json:"reputation_score"`
	RiskLevel         string  `json:"risk_level"`
}
