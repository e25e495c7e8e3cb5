package handler

import (
	"net/http"

	"inclfinance/internal/logic"
	"inclfinance/internal/svc"
	"inclfinance/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func AnalyticsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewReportLogic(r.Context(), svcCtx)
		resp, err := l.Analytics()
		writeData(w, r, resp, err)
	}
}

func NetworkStatsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewReportLogic(r.Context(), svcCtx)
		resp, err := l.NetworkStats()
		writeData(w, r, resp, err)
	}
}

func SaveFeedbackHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.FeedbackReq
		if err := parseRequest(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewFeedbackLogic(r.Context(), svcCtx)
		resp, err := l.SaveFeedback(&req)
		writeMessage(w, r, "Feedback saved", resp, err)
	}
}
