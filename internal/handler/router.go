package handler

import (
	"net/http"
	"time"

	"inclfinance/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	RegisterErrorHandler()

	server.AddRoutes(
		[]rest.Route{
			// --- User Routes ---
			{
				Method:  http.MethodPost,
				Path:    "/users/track",
				Handler: TrackUserHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/users/stats",
				Handler: UserStatsHandler(serverCtx),
			},
			// --- Transaction Routes ---
			{
				Method:  http.MethodPost,
				Path:    "/transactions",
				Handler: LogTransactionHandler(serverCtx),
			},
			// --- Reputation & Loan Routes ---
			{
				Method:  http.MethodGet,
				Path:    "/reputation",
				Handler: CheckReputationHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/loans/eligibility",
				Handler: LoanEligibilityHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/loans",
				Handler: RequestLoanHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/loans/repay",
				Handler: RepayLoanHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/leaderboard",
				Handler: LeaderboardHandler(serverCtx),
			},
			// --- Report Routes ---
			{
				Method:  http.MethodGet,
				Path:    "/analytics",
				Handler: AnalyticsHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/network/stats",
				Handler: NetworkStatsHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/feedback",
				Handler: SaveFeedbackHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api"),
		rest.WithTimeout(30000*time.Millisecond),
	)
}
