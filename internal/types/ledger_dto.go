package types

import "time"

type TrackUserReq struct {
	WalletAddress string `json:"wallet_address,optional"`
}

// LogTransactionReq defines the request body for recording a wallet transaction.
type LogTransactionReq struct {
	WalletAddress string `json:"wallet_address,optional"`
	// 链上交易哈希，可选
	TxHash string `json:"tx_hash,optional"`
	// transfer / faucet / stake / unstake / loan / repay
	Type   string  `json:"type,optional"`
	Amount float64 `json:"amount,optional"`
	// pending / success / failed, 默认 pending
	Status      string `json:"status,optional"`
	BlockNumber int64  `json:"block_number,optional"`
	GasUsed     int64  `json:"gas_used,optional"`
}

type LogTransactionResp struct {
	TransactionId int64  `json:"transaction_id"`
	Status        string `json:"status"`
}

type UserInfo struct {
	WalletAddress     string    `json:"wallet_address"`
	FirstSeen         time.Time `json:"first_seen"`
	LastSeen          time.Time `json:"last_seen"`
	TotalTransactions int64     `json:"total_transactions"`
	TotalVolume       float64   `json:"total_volume"`
	Country           string    `json:"country"`
	CreatedAt         time.Time `json:"created_at"`
}

type TransactionInfo struct {
	Id            int64     `json:"id"`
	WalletAddress string    `json:"wallet_address"`
	TxHash        string    `json:"tx_hash,omitempty"`
	Type          string    `json:"type"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	BlockNumber   int64     `json:"block_number,omitempty"`
	GasUsed       int64     `json:"gas_used,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type LoanInfo struct {
	Id            int64      `json:"id"`
	WalletAddress string     `json:"wallet_address"`
	LoanAmount    float64    `json:"loan_amount"`
	InterestRate  float64    `json:"interest_rate"`
	Status        string     `json:"status"`
	IssuedAt      time.Time  `json:"issued_at"`
	DueDate       time.Time  `json:"due_date"`
	RepaidAt      *time.Time `json:"repaid_at,omitempty"`
	RepaidAmount  *float64   `json:"repaid_amount,omitempty"`
}

// UserStatsResp is nil in the envelope when the wallet was never tracked.
type UserStatsResp struct {
	User               UserInfo          `json:"user"`
	RecentTransactions []TransactionInfo `json:"recent_transactions"`
	Loans              []LoanInfo        `json:"loans"`
	ReputationScore    int64             `json:"reputation_score"`
	RiskLevel          string            `json:"risk_level"`
}

type FeedbackReq struct {
	WalletAddress string `json:"wallet_address,optional"`
	Rating        int    `json:"rating,optional"`
	Comment       string `json:"comment,optional"`
	Feature       string `json:"feature,optional"`
}

type FeedbackResp struct {
	FeedbackId int64 `json:"feedback_id"`
}
