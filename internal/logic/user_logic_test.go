package logic

import (
	"context"
	"testing"

	"inclfinance/internal/constant"
	"inclfinance/internal/event"
	"inclfinance/internal/types"
	"inclfinance/internal/xerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackUser(t *testing.T) {
	sc, ledger := newTestSvc(t)
	l := NewUserLogic(context.Background(), sc)

	require.NoError(t, l.TrackUser(&types.TrackUserReq{WalletAddress: " 0xabc "}))
	require.NoError(t, l.TrackUser(&types.TrackUserReq{WalletAddress: "0xabc"}))

	n, err := sc.UsersDao.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	events := ledger.Events()
	require.Len(t, events, 2)
	assert.Equal(t, constant.EventUserVisit, events[0].EventType)
	assert.Equal(t, "0xabc", events[0].WalletAddress.String)

	p, err := event.Decode(events[0].EventType, events[0].EventData)
	require.NoError(t, err)
	assert.Equal(t, now.Unix(), p.(*event.UserVisit).Timestamp)
}

func TestTrackUser_Validation(t *testing.T) {
	sc, _ := newTestSvc(t)
	l := NewUserLogic(context.Background(), sc)

	err := l.TrackUser(&types.TrackUserReq{})
	assert.ErrorIs(t, err, xerr.ErrInvalidInput)
	assert.Equal(t, "Wallet address required", xerr.PublicMessage(err))
}

func TestTrackUser_HexAddressRequired(t *testing.T) {
	sc, _ := newTestSvc(t)
	sc.Config.Wallet.RequireHexAddress = true
	l := NewUserLogic(context.Background(), sc)

	err := l.TrackUser(&types.TrackUserReq{WalletAddress: "alice"})
	assert.ErrorIs(t, err, xerr.ErrInvalidInput)

	require.NoError(t, l.TrackUser(&types.TrackUserReq{WalletAddress: "0x52908400098527886e0f7030069857d2e4169ee7"}))
	u, err := sc.UsersDao.FindOneByWallet(context.Background(), hexWallet)
	require.NoError(t, err)
	assert.Equal(t, hexWallet, u.WalletAddress)
}

func TestTrackUser_StoreDown(t *testing.T) {
	sc, ledger := newTestSvc(t)
	ledger.WithError(errDown)

	err := NewUserLogic(context.Background(), sc).TrackUser(&types.TrackUserReq{WalletAddress: "0xabc"})
	assert.ErrorIs(t, err, xerr.ErrStoreUnavailable)
	assert.Equal(t, "Failed to track user", xerr.PublicMessage(err))
}

func TestUserStats(t *testing.T) {
	sc, _ := newTestSvc(t)
	l := NewUserLogic(context.Background(), sc)

	resp, err := l.UserStats(&types.WalletQueryReq{WalletAddress: "0xnobody"})
	require.NoError(t, err)
	assert.Nil(t, resp)

	seedUser(t, sc, "0xabc", daysAgo(4))
	for i := 0; i < 12; i++ {
		logTx(t, sc, "0xabc", constant.TxTypeTransfer, 10, constant.TxStatusSuccess)
	}
	lastId := logTx(t, sc, "0xabc", constant.TxTypeStake, 50, constant.TxStatusFailed)

	resp, err = l.UserStats(&types.WalletQueryReq{WalletAddress: "0xabc"})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "0xabc", resp.User.WalletAddress)
	assert.Equal(t, int64(12), resp.User.TotalTransactions)
	assert.Equal(t, 120.0, resp.User.TotalVolume)
	require.Len(t, resp.RecentTransactions, constant.RecentTransactionLimit)
	assert.Equal(t, lastId, resp.RecentTransactions[0].Id)
	assert.Empty(t, resp.Loans)
	// 12 transactions + 1 for volume + 4 days
	assert.Equal(t, int64(17), resp.ReputationScore)
	assert.Equal(t, "High", resp.RiskLevel)
}

func TestUserStats_StoreDown(t *testing.T) {
	sc, ledger := newTestSvc(t)
	ledger.WithError(errDown)

	_, err := NewUserLogic(context.Background(), sc).UserStats(&types.WalletQueryReq{WalletAddress: "0xabc"})
	assert.ErrorIs(t, err, xerr.ErrStoreUnavailable)
	assert.Equal(t, "Failed to get user stats", xerr.PublicMessage(err))
}
