package logic

import (
	"context"
	"testing"

	"inclfinance/internal/constant"
	"inclfinance/internal/types"
	"inclfinance/internal/xerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalytics(t *testing.T) {
	sc, _ := newTestSvc(t)
	seedUser(t, sc, "0xold", daysAgo(40))
	logTx(t, sc, "0xabc", constant.TxTypeTransfer, 100, constant.TxStatusSuccess)
	logTx(t, sc, "0xabc", constant.TxTypeStake, 50, constant.TxStatusSuccess)
	logTx(t, sc, "0xdef", constant.TxTypeTransfer, 70, constant.TxStatusFailed)

	resp, err := NewReportLogic(context.Background(), sc).Analytics()
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.TotalUsers)
	assert.Equal(t, int64(3), resp.TotalTransactions)
	assert.Equal(t, 150.0, resp.TotalVolume)
	assert.Equal(t, int64(2), resp.ActiveUsers)
	assert.Equal(t, []types.TypeCount{{Type: "stake", Count: 1}, {Type: "transfer", Count: 2}}, resp.TransactionTypes)
	require.Len(t, resp.DailyStats, 1)
	assert.Equal(t, "2025-03-01", resp.DailyStats[0].Date)
	assert.Equal(t, int64(3), resp.DailyStats[0].Count)
	assert.Equal(t, 220.0, resp.DailyStats[0].Volume)
	assert.Equal(t, "2025-03-01 12:00:00", resp.LastUpdated)
}

func TestNetworkStats(t *testing.T) {
	sc, _ := newTestSvc(t)
	l := NewReportLogic(context.Background(), sc)

	empty, err := l.NetworkStats()
	require.NoError(t, err)
	assert.Zero(t, empty.SuccessRate)
	assert.Empty(t, empty.NetworkGrowth)

	seedUser(t, sc, "0xold", daysAgo(40))
	seedUser(t, sc, "0xweek", daysAgo(7))
	logTx(t, sc, "0xabc", constant.TxTypeStake, 200, constant.TxStatusSuccess)
	logTx(t, sc, "0xabc", constant.TxTypeLoan, 100, constant.TxStatusSuccess)
	logTx(t, sc, "0xabc", constant.TxTypeTransfer, 0, constant.TxStatusSuccess)
	logTx(t, sc, "0xabc", constant.TxTypeStake, 900, constant.TxStatusFailed)

	resp, err := l.NetworkStats()
	require.NoError(t, err)
	assert.Equal(t, 300.0, resp.TotalValueLocked)
	assert.Equal(t, 150.0, resp.AverageTransactionSize)
	assert.Equal(t, 75.0, resp.SuccessRate)
	assert.Equal(t, []types.GrowthPoint{
		{Date: "2025-02-22", NewUsers: 1},
		{Date: "2025-03-01", NewUsers: 1},
	}, resp.NetworkGrowth)
}

func TestReports_StoreDown(t *testing.T) {
	sc, ledger := newTestSvc(t)
	ledger.WithError(errDown)
	l := NewReportLogic(context.Background(), sc)

	_, err := l.Analytics()
	assert.Equal(t, "Failed to get analytics", xerr.PublicMessage(err))
	_, err = l.NetworkStats()
	assert.Equal(t, "Failed to get network stats", xerr.PublicMessage(err))
}

func TestSuccessRate(t *testing.T) {
	assert.Equal(t, 0.0, successRate(0, 0))
	assert.Equal(t, 66.67, successRate(2, 3))
	assert.Equal(t, 100.0, successRate(4, 4))
}
