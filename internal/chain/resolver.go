package chain

import (
	"context"
	"errors"
	"fmt"

	"inclfinance/internal/constant"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	evmTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// ReceiptFetcher is the part of ethclient.Client the resolver needs.
type ReceiptFetcher interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*evmTypes.Receipt, error)
}

// Receipt 链上回执里与交易记录相关的字段
type Receipt struct {
	Status      constant.TxStatus
	BlockNumber int64
	GasUsed     int64
}

// Resolver looks up the on-chain outcome of a logged transaction.
type Resolver interface {
	Resolve(ctx context.Context, txHash string) (*Receipt, error)
}

type RPCResolver struct {
	client ReceiptFetcher
	closer func()
}

func NewRPCResolver(client ReceiptFetcher) *RPCResolver {
	return &RPCResolver{client: client}
}

// Dial connects to an EVM JSON-RPC endpoint.
func Dial(rpcURL string) (*RPCResolver, error) {
	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rpc %s: %w", rpcURL, err)
	}
	return &RPCResolver{client: client, closer: client.Close}, nil
}

// Resolve returns a pending receipt while the transaction is not mined.
func (r *RPCResolver) Resolve(ctx context.Context, txHash string) (*Receipt, error) {
	if !ValidTxHash(txHash) {
		return nil, fmt.Errorf("invalid transaction hash %q", txHash)
	}

	receipt, err := r.client.TransactionReceipt(ctx, common.HexToHash(txHash))
	if errors.Is(err, ethereum.NotFound) {
		return &Receipt{Status: constant.TxStatusPending}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch receipt %s: %w", txHash, err)
	}

	out := &Receipt{
		Status:  constant.TxStatusFailed,
		GasUsed: int64(receipt.GasUsed),
	}
	if receipt.Status == evmTypes.ReceiptStatusSuccessful {
		out.Status = constant.TxStatusSuccess
	}
	if receipt.BlockNumber != nil {
		out.BlockNumber = receipt.BlockNumber.Int64()
	}
	return out, nil
}

func (r *RPCResolver) Close() {
	if r.closer != nil {
		r.closer()
	}
}
