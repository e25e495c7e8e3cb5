package handler

import (
	"net/http"

	"inclfinance/internal/logic"
	"inclfinance/internal/svc"
	"inclfinance/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// TrackUserHandler 记录一次钱包访问
func TrackUserHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.TrackUserReq
		if err := parseRequest(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewUserLogic(r.Context(), svcCtx)
		err := l.TrackUser(&req)
		writeMessage(w, r, "User tracked", nil, err)
	}
}

func UserStatsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.WalletQueryReq
		if err := parseRequest(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewUserLogic(r.Context(), svcCtx)
		resp, err := l.UserStats(&req)
		writeData(w, r, resp, err)
	}
}
