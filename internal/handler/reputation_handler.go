package handler

import (
	"net/http"

	"inclfinance/internal/logic"
	"inclfinance/internal/svc"
	"inclfinance/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func CheckReputationHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.WalletQueryReq
		if err := parseRequest(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewReputationLogic(r.Context(), svcCtx)
		resp, err := l.CheckReputation(&req)
		writeData(w, r, resp, err)
	}
}

func LoanEligibilityHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.WalletQueryReq
		if err := parseRequest(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewReputationLogic(r.Context(), svcCtx)
		resp, err := l.LoanEligibility(&req)
		writeData(w, r, resp, err)
	}
}

func LeaderboardHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.LeaderboardReq
		if err := parseRequest(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewReputationLogic(r.Context(), svcCtx)
		resp, err := l.Leaderboard(&req)
		writeData(w, r, resp, err)
	}
}
