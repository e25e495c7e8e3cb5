package handler

import (
	"net/http"

	"inclfinance/internal/logic"
	"inclfinance/internal/svc"
	"inclfinance/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func LogTransactionHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.LogTransactionReq
		if err := parseRequest(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		logx.WithContext(r.Context()).Infof("log transaction: wallet=%s type=%s status=%s", req.WalletAddress, req.Type, req.Status)

		l := logic.NewTransactionLogic(r.Context(), svcCtx)
		resp, err := l.LogTransaction(&req)
		writeData(w, r, resp, err)
	}
}
