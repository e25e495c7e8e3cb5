package logic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inclfinance/internal/constant"
	"inclfinance/internal/event"
	"inclfinance/internal/model"
	"inclfinance/internal/svc"
	"inclfinance/internal/types"
	"inclfinance/internal/xerr"

	"github.com/shopspring/decimal"
	"github.com/zeromicro/go-zero/core/logx"
)

const defaultLoanPeriod = 30 * 24 * time.Hour

type LoanLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewLoanLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LoanLogic {
	return &LoanLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// RequestLoan issues a loan when the wallet is eligible and the amount fits
// its limit.
func (l *LoanLogic) RequestLoan(req *types.RequestLoanReq) (*types.LoanInfo, error) {
	wallet, err := normalizeWallet(l.svcCtx, req.WalletAddress)
	if err != nil {
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, xerr.InvalidInput("Loan amount must be positive")
	}
	amount := decimal.NewFromFloat(req.Amount)

	elig, err := l.svcCtx.Engine.LoanEligibility(l.ctx, wallet)
	if err != nil {
		l.Errorf("eligibility %s: %v", wallet, err)
		return nil, failed("Failed to request loan", err)
	}
	if !elig.Eligible {
		return nil, xerr.NotEligible(string(elig.Reason))
	}
	if amount.GreaterThan(elig.MaxAmount) {
		return nil, xerr.NotEligible(fmt.Sprintf("Requested amount exceeds limit of %s", elig.MaxAmount.StringFixed(2)))
	}

	now := l.svcCtx.Now()
	period := l.svcCtx.Config.Loan.Period
	if period <= 0 {
		period = defaultLoanPeriod
	}
	loan := &model.Loans{
		WalletAddress: wallet,
		LoanAmount:    amount,
		InterestRate:  decimal.NewFromFloat(l.svcCtx.Config.Loan.InterestRate),
		Status:        constant.LoanStatusActive,
		IssuedAt:      now,
		DueDate:       now.Add(period),
	}
	if err := l.svcCtx.LoansDao.Insert(l.ctx, loan); err != nil {
		l.Errorf("insert loan for %s: %v", wallet, err)
		return nil, failed("Failed to request loan", err)
	}
	if err := recordEvent(l.ctx, l.svcCtx, wallet, event.LoanIssued{LoanId: loan.Id, Amount: amount}); err != nil {
		l.Errorf("record loan event %d: %v", loan.Id, err)
		return nil, failed("Failed to request loan", err)
	}

	resp := toLoanInfo(loan)
	return &resp, nil
}

// RepayLoan closes the wallet's active loan. The amount must cover principal
// plus interest.
func (l *LoanLogic) RepayLoan(req *types.RepayLoanReq) (*types.LoanInfo, error) {
	wallet, err := normalizeWallet(l.svcCtx, req.WalletAddress)
	if err != nil {
		return nil, err
	}
	if req.Amount < 0 {
		return nil, xerr.InvalidInput("Repaid amount must not be negative")
	}

	loan, err := l.svcCtx.LoansDao.FindActive(l.ctx, wallet)
	if errors.Is(err, model.ErrNotFound) {
		return nil, xerr.NotFound("No active loan")
	}
	if err != nil {
		l.Errorf("find active loan %s: %v", wallet, err)
		return nil, failed("Failed to repay loan", err)
	}

	// 必须还清本息才算还款，部分还款不改变贷款状态
	due := amountDue(loan)
	amount := due
	if req.Amount > 0 {
		amount = decimal.NewFromFloat(req.Amount)
	}
	if amount.LessThan(due) {
		return nil, xerr.InvalidInput("Repaid amount must cover %s due", due.StringFixed(2))
	}

	now := l.svcCtx.Now()
	err = l.svcCtx.LoansDao.MarkRepaid(l.ctx, loan.Id, amount, now)
	if errors.Is(err, model.ErrNotFound) {
		return nil, xerr.NotFound("No active loan")
	}
	if err != nil {
		l.Errorf("mark loan %d repaid: %v", loan.Id, err)
		return nil, failed("Failed to repay loan", err)
	}
	if err := recordEvent(l.ctx, l.svcCtx, wallet, event.LoanRepaid{LoanId: loan.Id, Amount: amount}); err != nil {
		l.Errorf("record repay event %d: %v", loan.Id, err)
		return nil, failed("Failed to repay loan", err)
	}

	loan.Status = constant.LoanStatusRepaid
	loan.RepaidAt.Time, loan.RepaidAt.Valid = now, true
	loan.RepaidAmount = decimal.NewNullDecimal(amount)
	resp := toLoanInfo(loan)
	return &resp, nil
}

// amountDue 本金加利息，利率按百分比存储
func amountDue(loan *model.Loans) decimal.Decimal {
	rate := loan.InterestRate.Div(decimal.NewFromInt(100))
	return loan.LoanAmount.Mul(decimal.NewFromInt(1).Add(rate)).Round(8)
}
