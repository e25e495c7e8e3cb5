package event

import (
	"encoding/json"
	"fmt"

	"inclfinance/internal/constant"

	"github.com/shopspring/decimal"
)

// Payload is one of the known analytics event shapes.
type Payload interface {
	EventType() constant.EventType
}

type UserVisit struct {
	Timestamp int64 `json:"timestamp"`
}

type TransactionLogged struct {
	TransactionId int64             `json:"transaction_id"`
	Type          constant.TxType   `json:"type"`
	Amount        decimal.Decimal   `json:"amount"`
	Status        constant.TxStatus `json:"status"`
}

type FeedbackSubmitted struct {
	Rating  int    `json:"rating"`
	Feature string `json:"feature,omitempty"`
}

type LoanIssued struct {
	LoanId int64           `json:"loan_id"`
	Amount decimal.Decimal `json:"amount"`
}

type LoanRepaid struct {
	LoanId int64           `json:"loan_id"`
	Amount decimal.Decimal `json:"amount"`
}

func (UserVisit) EventType() constant.EventType         { return constant.EventUserVisit }
func (TransactionLogged) EventType() constant.EventType { return constant.EventTransaction }
func (FeedbackSubmitted) EventType() constant.EventType { return constant.EventFeedback }
func (LoanIssued) EventType() constant.EventType        { return constant.EventLoanIssued }
func (LoanRepaid) EventType() constant.EventType        { return constant.EventLoanRepaid }

// Encode serializes the payload for the event_data column.
func Encode(p Payload) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s payload: %w", p.EventType(), err)
	}
	return string(data), nil
}

// Decode restores the concrete payload stored for an event type.
func Decode(t constant.EventType, data string) (Payload, error) {
	var p Payload
	switch t {
	case constant.EventUserVisit:
		p = &UserVisit{}
	case constant.EventTransaction:
		p = &TransactionLogged{}
	case constant.EventFeedback:
		p = &FeedbackSubmitted{}
	case constant.EventLoanIssued:
		p = &LoanIssued{}
	case constant.EventLoanRepaid:
		p = &LoanRepaid{}
	default:
		return nil, fmt.Errorf("unknown event type %q", t)
	}
	if err := json.Unmarshal([]byte(data), p); err != nil {
		return nil, fmt.Errorf("failed to decode %s payload: %w", t, err)
	}
	return p, nil
}
