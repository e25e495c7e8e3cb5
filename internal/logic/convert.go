package logic

import (
	"inclfinance/internal/model"
	"inclfinance/internal/reputation"
	"inclfinance/internal/types"
)

func toUserInfo(u *model.Users) types.UserInfo {
	return types.UserInfo{
		WalletAddress:     u.WalletAddress,
		FirstSeen:         u.FirstSeen,
		LastSeen:          u.LastSeen,
		TotalTransactions: u.TotalTransactions,
		TotalVolume:       toFloat(u.TotalVolume),
		Country:           u.Country,
		CreatedAt:         u.CreatedAt,
	}
}

func toTransactionInfo(tx *model.Transactions) types.TransactionInfo {
	return types.TransactionInfo{
		Id:            tx.Id,
		WalletAddress: tx.WalletAddress,
		TxHash:        tx.TxHash.String,
		Type:          string(tx.Type),
		Amount:        toFloat(tx.Amount),
		Status:        string(tx.Status),
		BlockNumber:   tx.BlockNumber.Int64,
		GasUsed:       tx.GasUsed.Int64,
		CreatedAt:     tx.CreatedAt,
	}
}

func toLoanInfo(loan *model.Loans) types.LoanInfo {
	info := types.LoanInfo{
		Id:            loan.Id,
		WalletAddress: loan.WalletAddress,
		LoanAmount:    toFloat(loan.LoanAmount),
		InterestRate:  toFloat(loan.InterestRate),
		Status:        string(loan.Status),
		IssuedAt:      loan.IssuedAt,
		DueDate:       loan.DueDate,
	}
	if loan.RepaidAt.Valid {
		at := loan.RepaidAt.Time
		info.RepaidAt = &at
	}
	if loan.RepaidAmount.Valid {
		amount := toFloat(loan.RepaidAmount.Decimal)
		info.RepaidAmount = &amount
	}
	return info
}

func toEligibilityResp(e reputation.Eligibility) types.EligibilityResp {
	resp := types.EligibilityResp{
		Eligible:  e.Eligible,
		Reason:    string(e.Reason),
		MaxAmount: toFloat(e.MaxAmount),
	}
	if e.Multiplier != nil {
		m := toFloat(*e.Multiplier)
		resp.Multiplier = &m
	}
	return resp
}
