package logic

import (
	"context"
	"errors"

	"inclfinance/internal/constant"
	"inclfinance/internal/event"
	"inclfinance/internal/model"
	"inclfinance/internal/svc"
	"inclfinance/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mr"
)

type UserLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewUserLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UserLogic {
	return &UserLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// TrackUser records a visit: the user is created on first sight, otherwise
// only last_seen moves.
func (l *UserLogic) TrackUser(req *types.TrackUserReq) error {
	wallet, err := normalizeWallet(l.svcCtx, req.WalletAddress)
	if err != nil {
		return err
	}

	now := l.svcCtx.Now()
	if err := l.svcCtx.UsersDao.Upsert(l.ctx, wallet, now); err != nil {
		l.Errorf("upsert user %s: %v", wallet, err)
		return failed("Failed to track user", err)
	}
	if err := recordEvent(l.ctx, l.svcCtx, wallet, event.UserVisit{Timestamp: now.Unix()}); err != nil {
		l.Errorf("record visit %s: %v", wallet, err)
		return failed("Failed to track user", err)
	}
	return nil
}

// UserStats returns nil when the wallet has never been tracked.
func (l *UserLogic) UserStats(req *types.WalletQueryReq) (*types.UserStatsResp, error) {
	wallet, err := normalizeWallet(l.svcCtx, req.WalletAddress)
	if err != nil {
		return nil, err
	}

	var (
		user  *model.Users
		txs   []*model.Transactions
		loans []*model.Loans
	)
	err = mr.Finish(func() error {
		u, err := l.svcCtx.UsersDao.FindOneByWallet(l.ctx, wallet)
		if errors.Is(err, model.ErrNotFound) {
			return nil
		}
		user = u
		return err
	}, func() (err error) {
		txs, err = l.svcCtx.TransactionsDao.ListRecent(l.ctx, wallet, constant.RecentTransactionLimit)
		return err
	}, func() (err error) {
		loans, err = l.svcCtx.LoansDao.ListByWallet(l.ctx, wallet)
		return err
	})
	if err != nil {
		l.Errorf("load stats for %s: %v", wallet, err)
		return nil, failed("Failed to get user stats", err)
	}
	if user == nil {
		return nil, nil
	}

	rep, err := l.svcCtx.Engine.Reputation(l.ctx, wallet)
	if err != nil {
		l.Errorf("score %s: %v", wallet, err)
		return nil, failed("Failed to get user stats", err)
	}

	resp := &types.UserStatsResp{
		User:               toUserInfo(user),
		RecentTransactions: make([]types.TransactionInfo, 0, len(txs)),
		Loans:              make([]types.LoanInfo, 0, len(loans)),
		ReputationScore:    rep.Score,
		RiskLevel:          string(rep.RiskLevel),
	}
	for _, tx := range txs {
		resp.RecentTransactions = append(resp.RecentTransactions, toTransactionInfo(tx))
	}
	for _, loan := range loans {
		resp.Loans = append(resp.Loans, toLoanInfo(loan))
	}
	return resp, nil
}
