package types

// Response 成功响应统一外壳
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// ErrorResp is the body of every failed request.
type ErrorResp struct {
	Error string `json:"error"`
}

// WalletQueryReq carries the wallet_address query parameter.
type WalletQueryReq struct {
	WalletAddress string `form:"wallet_address,optional"`
}

// DateLayout is used for per-day report buckets.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)
