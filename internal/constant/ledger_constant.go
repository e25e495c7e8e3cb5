package constant

// TxType 交易类型
type TxType string

const (
	TxTypeTransfer TxType = "transfer"
	TxTypeFaucet   TxType = "faucet"
	TxTypeStake    TxType = "stake"
	TxTypeUnstake  TxType = "unstake"
	TxTypeLoan     TxType = "loan"
	TxTypeRepay    TxType = "repay"
)

// SupportedTxTypes lists every transaction type the ledger accepts.
var SupportedTxTypes = []TxType{
	TxTypeTransfer,
	TxTypeFaucet,
	TxTypeStake,
	TxTypeUnstake,
	TxTypeLoan,
	TxTypeRepay,
}

// LockedValueTxTypes count towards the network's total value locked.
var LockedValueTxTypes = []TxType{TxTypeStake, TxTypeLoan}

func (t TxType) Valid() bool {
	for _, supported := range SupportedTxTypes {
		if supported == t {
			return true
		}
	}
	return false
}

// TxStatus 交易状态
type TxStatus string

const (
	TxStatusPending TxStatus = "pending"
	TxStatusSuccess TxStatus = "success"
	TxStatusFailed  TxStatus = "failed"
)

func (s TxStatus) Valid() bool {
	switch s {
	case TxStatusPending, TxStatusSuccess, TxStatusFailed:
		return true
	}
	return false
}

// LoanStatus 贷款状态
type LoanStatus string

const (
	LoanStatusActive LoanStatus = "active"
	LoanStatusRepaid LoanStatus = "repaid"
)

func (s LoanStatus) Valid() bool {
	return s == LoanStatusActive || s == LoanStatusRepaid
}

// EventType 埋点事件类型
type EventType string

const (
	EventUserVisit   EventType = "user_visit"
	EventTransaction EventType = "transaction"
	EventFeedback    EventType = "feedback"
	EventLoanIssued  EventType = "loan_issued"
	EventLoanRepaid  EventType = "loan_repaid"
)

const (
	DefaultCountry = "Nigeria"

	MinFeedbackRating = 1
	MaxFeedbackRating = 5

	RecentTransactionLimit = 10
)
