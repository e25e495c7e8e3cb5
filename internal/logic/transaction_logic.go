package logic

import (
	"context"
	"database/sql"
	"strings"

	"inclfinance/internal/chain"
	"inclfinance/internal/constant"
	"inclfinance/internal/event"
	"inclfinance/internal/model"
	"inclfinance/internal/svc"
	"inclfinance/internal/types"
	"inclfinance/internal/xerr"

	"github.com/shopspring/decimal"
	"github.com/zeromicro/go-zero/core/logx"
)

type TransactionLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewTransactionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *TransactionLogic {
	return &TransactionLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// LogTransaction appends a transaction. User counters only move for
// successful transactions, matching what the score reads.
func (l *TransactionLogic) LogTransaction(req *types.LogTransactionReq) (*types.LogTransactionResp, error) {
	tx, err := l.buildTransaction(req)
	if err != nil {
		return nil, err
	}
	if tx.TxHash.Valid {
		l.applyReceipt(tx)
	}

	now := l.svcCtx.Now()
	tx.CreatedAt = now
	if err := l.svcCtx.UsersDao.Upsert(l.ctx, tx.WalletAddress, now); err != nil {
		l.Errorf("upsert user %s: %v", tx.WalletAddress, err)
		return nil, failed("Failed to log transaction", err)
	}
	if err := l.svcCtx.TransactionsDao.Insert(l.ctx, tx); err != nil {
		l.Errorf("insert transaction for %s: %v", tx.WalletAddress, err)
		return nil, failed("Failed to log transaction", err)
	}
	if tx.Status == constant.TxStatusSuccess {
		if err := l.svcCtx.UsersDao.IncrementStats(l.ctx, tx.WalletAddress, tx.Amount, now); err != nil {
			l.Errorf("update stats for %s: %v", tx.WalletAddress, err)
			return nil, failed("Failed to log transaction", err)
		}
	}

	payload := event.TransactionLogged{
		TransactionId: tx.Id,
		Type:          tx.Type,
		Amount:        tx.Amount,
		Status:        tx.Status,
	}
	if err := recordEvent(l.ctx, l.svcCtx, tx.WalletAddress, payload); err != nil {
		l.Errorf("record transaction event %d: %v", tx.Id, err)
		return nil, failed("Failed to log transaction", err)
	}

	return &types.LogTransactionResp{
		TransactionId: tx.Id,
		Status:        string(tx.Status),
	}, nil
}

func (l *TransactionLogic) buildTransaction(req *types.LogTransactionReq) (*model.Transactions, error) {
	if strings.TrimSpace(req.WalletAddress) == "" {
		return nil, xerr.InvalidInput("Missing required field: wallet_address")
	}
	wallet, err := normalizeWallet(l.svcCtx, req.WalletAddress)
	if err != nil {
		return nil, err
	}

	txType := constant.TxType(strings.TrimSpace(req.Type))
	if txType == "" {
		return nil, xerr.InvalidInput("Missing required field: type")
	}
	if !txType.Valid() {
		return nil, xerr.InvalidInput("Unsupported transaction type: %s", txType)
	}

	if req.Amount < 0 {
		return nil, xerr.InvalidInput("Amount must not be negative")
	}

	status := constant.TxStatusPending
	if req.Status != "" {
		status = constant.TxStatus(req.Status)
		if !status.Valid() {
			return nil, xerr.InvalidInput("Invalid transaction status: %s", req.Status)
		}
	}

	tx := &model.Transactions{
		WalletAddress: wallet,
		Type:          txType,
		Amount:        decimal.NewFromFloat(req.Amount),
		Status:        status,
	}
	if req.TxHash != "" {
		if !chain.ValidTxHash(req.TxHash) {
			return nil, xerr.InvalidInput("Invalid transaction hash")
		}
		tx.TxHash = sql.NullString{String: strings.ToLower(req.TxHash), Valid: true}
	}
	if req.BlockNumber > 0 {
		tx.BlockNumber = sql.NullInt64{Int64: req.BlockNumber, Valid: true}
	}
	if req.GasUsed > 0 {
		tx.GasUsed = sql.NullInt64{Int64: req.GasUsed, Valid: true}
	}
	return tx, nil
}

// applyReceipt overrides client supplied fields with what the chain says.
// Lookup errors keep the client's values.
func (l *TransactionLogic) applyReceipt(tx *model.Transactions) {
	if l.svcCtx.Resolver == nil {
		return
	}
	receipt, err := l.svcCtx.Resolver.Resolve(l.ctx, tx.TxHash.String)
	if err != nil {
		l.Errorf("resolve receipt %s: %v", tx.TxHash.String, err)
		return
	}

	tx.Status = receipt.Status
	if receipt.BlockNumber > 0 {
		tx.BlockNumber = sql.NullInt64{Int64: receipt.BlockNumber, Valid: true}
	}
	if receipt.GasUsed > 0 {
		tx.GasUsed = sql.NullInt64{Int64: receipt.GasUsed, Valid: true}
	}
}
