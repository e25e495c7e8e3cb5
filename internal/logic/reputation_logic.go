package logic

import (
	"context"
	"sort"

	"inclfinance/internal/model"
	"inclfinance/internal/reputation"
	"inclfinance/internal/svc"
	"inclfinance/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mr"
)

const (
	maxLeaderboardSize = 100
	scoringWorkers     = 8
)

type ReputationLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewReputationLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ReputationLogic {
	return &ReputationLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// CheckReputation 返回分数、风险等级和贷款资格
func (l *ReputationLogic) CheckReputation(req *types.WalletQueryReq) (*types.ReputationResp, error) {
	wallet, err := normalizeWallet(l.svcCtx, req.WalletAddress)
	if err != nil {
		return nil, err
	}

	rep, err := l.svcCtx.Engine.Reputation(l.ctx, wallet)
	if err != nil {
		l.Errorf("score %s: %v", wallet, err)
		return nil, failed("Failed to check reputation", err)
	}
	elig, err := l.svcCtx.Engine.Eligibility(l.ctx, wallet, rep.Score)
	if err != nil {
		l.Errorf("eligibility %s: %v", wallet, err)
		return nil, failed("Failed to check reputation", err)
	}

	return &types.ReputationResp{
		ReputationScore: rep.Score,
		RiskLevel:       string(rep.RiskLevel),
		LoanEligibility: toEligibilityResp(elig),
		Timestamp:       l.svcCtx.Now().Unix(),
	}, nil
}

func (l *ReputationLogic) LoanEligibility(req *types.WalletQueryReq) (*types.EligibilityResp, error) {
	wallet, err := normalizeWallet(l.svcCtx, req.WalletAddress)
	if err != nil {
		return nil, err
	}

	elig, err := l.svcCtx.Engine.LoanEligibility(l.ctx, wallet)
	if err != nil {
		l.Errorf("eligibility %s: %v", wallet, err)
		return nil, failed("Failed to check loan eligibility", err)
	}
	resp := toEligibilityResp(elig)
	return &resp, nil
}

// Leaderboard ranks wallets with at least one transaction by their derived
// score, then by volume.
func (l *ReputationLogic) Leaderboard(req *types.LeaderboardReq) ([]types.LeaderboardEntry, error) {
	users, err := l.svcCtx.UsersDao.ListActive(l.ctx)
	if err != nil {
		l.Errorf("list active users: %v", err)
		return nil, failed("Failed to get leaderboard", err)
	}
	if len(users) == 0 {
		return []types.LeaderboardEntry{}, nil
	}

	entries, err := mr.MapReduce(func(source chan<- *model.Users) {
		for _, u := range users {
			source <- u
		}
	}, func(u *model.Users, writer mr.Writer[types.LeaderboardEntry], cancel func(error)) {
		score, err := l.svcCtx.Engine.Score(l.ctx, u.WalletAddress)
		if err != nil {
			cancel(err)
			return
		}
		writer.Write(types.LeaderboardEntry{
			WalletAddress:     u.WalletAddress,
			DisplayAddress:    displayAddress(u.WalletAddress),
			TotalTransactions: u.TotalTransactions,
			TotalVolume:       toFloat(u.TotalVolume),
			ReputationScore:   score,
			RiskLevel:         string(reputation.ClassifyRisk(score)),
		})
	}, func(pipe <-chan types.LeaderboardEntry, writer mr.Writer[[]types.LeaderboardEntry], cancel func(error)) {
		var all []types.LeaderboardEntry
		for e := range pipe {
			all = append(all, e)
		}
		writer.Write(all)
	}, mr.WithContext(l.ctx), mr.WithWorkers(scoringWorkers))
	if err != nil {
		l.Errorf("score leaderboard: %v", err)
		return nil, failed("Failed to get leaderboard", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.ReputationScore != b.ReputationScore {
			return a.ReputationScore > b.ReputationScore
		}
		if a.TotalVolume != b.TotalVolume {
			return a.TotalVolume > b.TotalVolume
		}
		return a.WalletAddress < b.WalletAddress
	})

	size := l.leaderboardSize(req.Limit)
	if len(entries) > size {
		entries = entries[:size]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

func (l *ReputationLogic) leaderboardSize(limit int) int {
	if limit > 0 {
		return min(limit, maxLeaderboardSize)
	}
	if l.svcCtx.Config.Leaderboard.Size > 0 {
		return l.svcCtx.Config.Leaderboard.Size
	}
	return 10
}
