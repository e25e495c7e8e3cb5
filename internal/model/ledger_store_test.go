package model_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"inclfinance/internal/constant"
	"inclfinance/internal/model"
	"inclfinance/internal/model/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerStore_ReadsThroughDaos(t *testing.T) {
	ctx := context.Background()
	ledger := memory.NewLedger()
	store := model.NewLedgerStore(ledger.Users(), ledger.Transactions(), ledger.Loans())
	seen := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	const wallet = "0xdead"

	_, ok, err := store.FirstSeen(ctx, wallet)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, ledger.Users().Upsert(ctx, wallet, seen))
	require.NoError(t, ledger.Users().Upsert(ctx, wallet, seen.Add(time.Hour)))
	for _, tx := range []model.Transactions{
		{WalletAddress: wallet, Type: constant.TxTypeTransfer, Amount: decimal.NewFromInt(100), Status: constant.TxStatusSuccess},
		{WalletAddress: wallet, Type: constant.TxTypeStake, Amount: decimal.NewFromInt(50), Status: constant.TxStatusSuccess},
		{WalletAddress: wallet, Type: constant.TxTypeStake, Amount: decimal.NewFromInt(999), Status: constant.TxStatusFailed},
	} {
		require.NoError(t, ledger.Transactions().Insert(ctx, &tx))
	}
	require.NoError(t, ledger.Loans().Insert(ctx, &model.Loans{WalletAddress: wallet, Status: constant.LoanStatusRepaid}))
	require.NoError(t, ledger.Loans().Insert(ctx, &model.Loans{WalletAddress: wallet, Status: constant.LoanStatusActive}))

	first, ok, err := store.FirstSeen(ctx, wallet)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, seen, first)

	n, err := store.CountSuccessfulTransactions(ctx, wallet)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	vol, err := store.SumSuccessfulTransactionVolume(ctx, wallet)
	require.NoError(t, err)
	assert.True(t, vol.Equal(decimal.NewFromInt(150)))

	repaid, err := store.CountRepaidLoans(ctx, wallet)
	require.NoError(t, err)
	assert.Equal(t, int64(1), repaid)

	active, err := store.HasActiveLoan(ctx, wallet)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestLedgerStore_FirstSeenPropagatesErrors(t *testing.T) {
	boom := errors.New("disk full")
	ledger := memory.NewLedger().WithError(boom)
	store := model.NewLedgerStore(ledger.Users(), ledger.Transactions(), ledger.Loans())

	_, _, err := store.FirstSeen(context.Background(), "0xdead")
	assert.ErrorIs(t, err, boom)
}
