package handler

import (
	"net/http"

	"inclfinance/internal/logic"
	"inclfinance/internal/svc"
	"inclfinance/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func RequestLoanHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.RequestLoanReq
		if err := parseRequest(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewLoanLogic(r.Context(), svcCtx)
		resp, err := l.RequestLoan(&req)
		writeMessage(w, r, "Loan issued", resp, err)
	}
}

func RepayLoanHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.RepayLoanReq
		if err := parseRequest(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewLoanLogic(r.Context(), svcCtx)
		resp, err := l.RepayLoan(&req)
		writeMessage(w, r, "Loan repaid", resp, err)
	}
}
