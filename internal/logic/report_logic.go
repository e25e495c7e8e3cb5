package logic

import (
	"context"
	"time"

	"inclfinance/internal/constant"
	"inclfinance/internal/model"
	"inclfinance/internal/svc"
	"inclfinance/internal/types"

	"github.com/shopspring/decimal"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mr"
)

const (
	activeWindow = 24 * time.Hour
	dailyWindow  = 7 * 24 * time.Hour
	growthWindow = 30 * 24 * time.Hour
)

type ReportLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewReportLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ReportLogic {
	return &ReportLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Analytics 全站统计
func (l *ReportLogic) Analytics() (*types.AnalyticsResp, error) {
	now := l.svcCtx.Now()
	var (
		users, txs, active int64
		volume             decimal.Decimal
		breakdown          []model.TypeCount
		daily              []model.DailyStat
	)
	err := mr.Finish(func() (err error) {
		users, err = l.svcCtx.UsersDao.Count(l.ctx)
		return err
	}, func() (err error) {
		txs, err = l.svcCtx.TransactionsDao.Count(l.ctx)
		return err
	}, func() (err error) {
		volume, err = l.svcCtx.TransactionsDao.SumVolume(l.ctx, constant.TxStatusSuccess)
		return err
	}, func() (err error) {
		active, err = l.svcCtx.UsersDao.CountActiveSince(l.ctx, now.Add(-activeWindow))
		return err
	}, func() (err error) {
		breakdown, err = l.svcCtx.TransactionsDao.TypeBreakdown(l.ctx)
		return err
	}, func() (err error) {
		daily, err = l.svcCtx.TransactionsDao.DailyStatsSince(l.ctx, now.Add(-dailyWindow))
		return err
	})
	if err != nil {
		l.Errorf("load analytics: %v", err)
		return nil, failed("Failed to get analytics", err)
	}

	resp := &types.AnalyticsResp{
		TotalUsers:        users,
		TotalTransactions: txs,
		TotalVolume:       toFloat(volume),
		ActiveUsers:       active,
		TransactionTypes:  make([]types.TypeCount, 0, len(breakdown)),
		DailyStats:        make([]types.DailyStat, 0, len(daily)),
		LastUpdated:       now.Format(types.DateTimeLayout),
	}
	for _, b := range breakdown {
		resp.TransactionTypes = append(resp.TransactionTypes, types.TypeCount{Type: string(b.Type), Count: b.Count})
	}
	for _, d := range daily {
		resp.DailyStats = append(resp.DailyStats, types.DailyStat{
			Date:   d.Date.Format(types.DateLayout),
			Count:  d.Count,
			Volume: toFloat(d.Volume),
		})
	}
	return resp, nil
}

// NetworkStats reports value locked, average size, success rate and growth.
func (l *ReportLogic) NetworkStats() (*types.NetworkStatsResp, error) {
	now := l.svcCtx.Now()
	var (
		locked, avgSize   decimal.Decimal
		total, successful int64
		growth            []model.DailyCount
	)
	err := mr.Finish(func() (err error) {
		locked, err = l.svcCtx.TransactionsDao.SumVolume(l.ctx, constant.TxStatusSuccess, constant.LockedValueTxTypes...)
		return err
	}, func() (err error) {
		avgSize, err = l.svcCtx.TransactionsDao.AverageSuccessfulSize(l.ctx)
		return err
	}, func() (err error) {
		total, err = l.svcCtx.TransactionsDao.Count(l.ctx)
		return err
	}, func() (err error) {
		successful, err = l.svcCtx.TransactionsDao.CountByStatus(l.ctx, constant.TxStatusSuccess)
		return err
	}, func() (err error) {
		growth, err = l.svcCtx.UsersDao.GrowthSince(l.ctx, now.Add(-growthWindow))
		return err
	})
	if err != nil {
		l.Errorf("load network stats: %v", err)
		return nil, failed("Failed to get network stats", err)
	}

	resp := &types.NetworkStatsResp{
		TotalValueLocked:       toFloat(locked),
		AverageTransactionSize: toFloat(avgSize),
		SuccessRate:            successRate(successful, total),
		NetworkGrowth:          make([]types.GrowthPoint, 0, len(growth)),
		LastUpdated:            now.Format(types.DateTimeLayout),
	}
	for _, g := range growth {
		resp.NetworkGrowth = append(resp.NetworkGrowth, types.GrowthPoint{
			Date:     g.Date.Format(types.DateLayout),
			NewUsers: g.NewUsers,
		})
	}
	return resp, nil
}

// successRate is a percentage with two decimals, 0 when nothing was logged.
func successRate(successful, total int64) float64 {
	if total == 0 {
		return 0
	}
	rate := decimal.NewFromInt(successful).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(total))
	return rate.Round(2).InexactFloat64()
}
