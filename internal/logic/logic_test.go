package logic

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"inclfinance/internal/chain"
	"inclfinance/internal/config"
	"inclfinance/internal/constant"
	"inclfinance/internal/model/memory"
	"inclfinance/internal/svc"
	"inclfinance/internal/types"

	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

const (
	hexWallet = "0x52908400098527886E0F7030069857D2E4169EE7"
	txHash    = "0x88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a713944b"
)

func TestMain(m *testing.M) {
	logx.Disable()
	os.Exit(m.Run())
}

func testConfig() config.Config {
	var c config.Config
	c.Storage.Driver = config.DriverMemory
	c.Loan = config.LoanConf{
		InterestRate:  5,
		Period:        720 * time.Hour,
		BaseAmount:    200,
		MaxMultiplier: 2,
	}
	c.Leaderboard.Size = 10
	return c
}

func newTestSvc(t *testing.T) (*svc.ServiceContext, *memory.Ledger) {
	t.Helper()
	ledger := memory.NewLedger()
	sc := svc.NewMemoryServiceContext(testConfig(), ledger)
	sc.Now = func() time.Time { return now }
	t.Cleanup(sc.Close)
	return sc, ledger
}

func daysAgo(n int) time.Time {
	return now.Add(-time.Duration(n) * 24 * time.Hour)
}

// seedUser creates the user as first seen at the given time.
func seedUser(t *testing.T, sc *svc.ServiceContext, wallet string, at time.Time) {
	t.Helper()
	require.NoError(t, sc.UsersDao.Upsert(context.Background(), wallet, at))
}

func logTx(t *testing.T, sc *svc.ServiceContext, wallet string, txType constant.TxType, amount float64, status constant.TxStatus) int64 {
	t.Helper()
	resp, err := NewTransactionLogic(context.Background(), sc).LogTransaction(&types.LogTransactionReq{
		WalletAddress: wallet,
		Type:          string(txType),
		Amount:        amount,
		Status:        string(status),
	})
	require.NoError(t, err)
	return resp.TransactionId
}

type fakeResolver struct {
	receipt *chain.Receipt
	err     error
	calls   int
}

func (f *fakeResolver) Resolve(_ context.Context, _ string) (*chain.Receipt, error) {
	f.calls++
	return f.receipt, f.err
}

var errDown = errors.New("connection refused")
