package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"inclfinance/internal/config"
	"inclfinance/internal/model/memory"
	"inclfinance/internal/svc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	logx.Disable()
	RegisterErrorHandler()
	os.Exit(m.Run())
}

func newTestSvc(t *testing.T) (*svc.ServiceContext, *memory.Ledger) {
	t.Helper()
	var c config.Config
	c.Storage.Driver = config.DriverMemory
	c.Loan = config.LoanConf{InterestRate: 5, Period: 720 * time.Hour, BaseAmount: 200, MaxMultiplier: 2}
	c.Leaderboard.Size = 10

	ledger := memory.NewLedger()
	sc := svc.NewMemoryServiceContext(c, ledger)
	sc.Now = func() time.Time { return now }
	t.Cleanup(sc.Close)
	return sc, ledger
}

func do(t *testing.T, h http.HandlerFunc, method, target, body string) (int, map[string]any) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func TestTrackUserHandler(t *testing.T) {
	sc, _ := newTestSvc(t)

	code, body := do(t, TrackUserHandler(sc), http.MethodPost, "/api/users/track", `{"wallet_address":"0xabc"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "User tracked", body["message"])

	code, body = do(t, TrackUserHandler(sc), http.MethodPost, "/api/users/track", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Wallet address required", body["error"])
}

func TestLogTransactionHandler(t *testing.T) {
	sc, _ := newTestSvc(t)
	h := LogTransactionHandler(sc)

	code, body := do(t, h, http.MethodPost, "/api/transactions",
		`{"wallet_address":"0xabc","type":"stake","amount":250,"status":"success"}`)
	require.Equal(t, http.StatusOK, code, body)
	data := body["data"].(map[string]any)
	assert.NotZero(t, data["transaction_id"])
	assert.Equal(t, "success", data["status"])

	code, body = do(t, h, http.MethodPost, "/api/transactions", `{"wallet_address":"0xabc"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Missing required field: type", body["error"])

	code, body = do(t, h, http.MethodPost, "/api/transactions", `{"wallet_address":"0xabc","type":"stake","amount":"lots"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid request", body["error"])
}

func TestReputationHandlers(t *testing.T) {
	sc, _ := newTestSvc(t)
	do(t, TrackUserHandler(sc), http.MethodPost, "/api/users/track", `{"wallet_address":"0xabc"}`)
	for i := 0; i < 6; i++ {
		do(t, LogTransactionHandler(sc), http.MethodPost, "/api/transactions",
			`{"wallet_address":"0xabc","type":"transfer","amount":20,"status":"success"}`)
	}

	code, body := do(t, CheckReputationHandler(sc), http.MethodGet, "/api/reputation?wallet_address=0xabc", "")
	require.Equal(t, http.StatusOK, code, body)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(7), data["reputation_score"])
	assert.Equal(t, "High", data["risk_level"])
	elig := data["loan_eligibility"].(map[string]any)
	assert.Equal(t, true, elig["eligible"])
	assert.InDelta(t, 28.0, elig["max_amount"], 1e-9)

	code, body = do(t, LoanEligibilityHandler(sc), http.MethodGet, "/api/loans/eligibility?wallet_address=0xabc", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Eligible for loan", body["data"].(map[string]any)["reason"])

	code, body = do(t, CheckReputationHandler(sc), http.MethodGet, "/api/reputation", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Wallet address required", body["error"])

	code, body = do(t, LeaderboardHandler(sc), http.MethodGet, "/api/leaderboard?limit=5", "")
	assert.Equal(t, http.StatusOK, code)
	board := body["data"].([]any)
	require.Len(t, board, 1)
	assert.Equal(t, "0xabc", board[0].(map[string]any)["display_address"])
}

func TestUserStatsHandler_UnknownWallet(t *testing.T) {
	sc, _ := newTestSvc(t)

	code, body := do(t, UserStatsHandler(sc), http.MethodGet, "/api/users/stats?wallet_address=0xnobody", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	v, ok := body["data"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestLoanHandlers(t *testing.T) {
	sc, _ := newTestSvc(t)

	code, body := do(t, RequestLoanHandler(sc), http.MethodPost, "/api/loans", `{"wallet_address":"0xabc","amount":50}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "Insufficient reputation", body["error"])

	code, body = do(t, RepayLoanHandler(sc), http.MethodPost, "/api/loans/repay", `{"wallet_address":"0xabc"}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "No active loan", body["error"])
}

func TestFeedbackHandler(t *testing.T) {
	sc, ledger := newTestSvc(t)

	code, body := do(t, SaveFeedbackHandler(sc), http.MethodPost, "/api/feedback", `{"rating":9}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid rating", body["error"])

	code, body = do(t, SaveFeedbackHandler(sc), http.MethodPost, "/api/feedback", `{"rating":5,"comment":"works offline"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Feedback saved", body["message"])
	assert.Len(t, ledger.Feedback(), 1)
}

func TestReportHandlers(t *testing.T) {
	sc, _ := newTestSvc(t)

	code, body := do(t, AnalyticsHandler(sc), http.MethodGet, "/api/analytics", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(0), body["data"].(map[string]any)["total_users"])

	code, body = do(t, NetworkStatsHandler(sc), http.MethodGet, "/api/network/stats", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body["data"], "success_rate")
}

func TestStoreFailureHidesDiagnostics(t *testing.T) {
	sc, ledger := newTestSvc(t)
	ledger.WithError(errors.New("pq: password authentication failed for user incl"))

	code, body := do(t, AnalyticsHandler(sc), http.MethodGet, "/api/analytics", "")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Failed to get analytics", body["error"])
}
