package handler

import (
	"context"
	"net/http"
	"sync"

	"inclfinance/internal/types"
	"inclfinance/internal/xerr"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

var registerOnce sync.Once

// RegisterErrorHandler makes httpx answer errors with {"error": msg} and the
// status derived from the error kind.
func RegisterErrorHandler() {
	registerOnce.Do(func() {
		httpx.SetErrorHandlerCtx(func(ctx context.Context, err error) (int, any) {
			status := xerr.HTTPStatus(err)
			if status >= http.StatusInternalServerError {
				logx.WithContext(ctx).Errorf("request failed: %v", err)
			}
			return status, types.ErrorResp{Error: xerr.PublicMessage(err)}
		})
	})
}

func parseRequest(r *http.Request, v any) error {
	if err := httpx.Parse(r, v); err != nil {
		logx.WithContext(r.Context()).Errorf("failed to parse request: %v", err)
		return xerr.InvalidInput("Invalid request")
	}
	return nil
}

func writeData(w http.ResponseWriter, r *http.Request, data any, err error) {
	if err != nil {
		httpx.ErrorCtx(r.Context(), w, err)
		return
	}
	httpx.OkJsonCtx(r.Context(), w, types.Response{Success: true, Data: data})
}

func writeMessage(w http.ResponseWriter, r *http.Request, msg string, data any, err error) {
	if err != nil {
		httpx.ErrorCtx(r.Context(), w, err)
		return
	}
	httpx.OkJsonCtx(r.Context(), w, types.Response{Success: true, Data: data, Message: msg})
}
