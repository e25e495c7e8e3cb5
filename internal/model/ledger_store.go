package model

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerStore exposes the read side of the ledger needed to derive a
// wallet's reputation.
type LedgerStore struct {
	users UsersDao
	txs   TransactionsDao
	loans LoansDao
}

func NewLedgerStore(users UsersDao, txs TransactionsDao, loans LoansDao) *LedgerStore {
	return &LedgerStore{
		users: users,
		txs:   txs,
		loans: loans,
	}
}

func (s *LedgerStore) CountSuccessfulTransactions(ctx context.Context, wallet string) (int64, error) {
	return s.txs.CountSuccessful(ctx, wallet)
}

func (s *LedgerStore) SumSuccessfulTransactionVolume(ctx context.Context, wallet string) (decimal.Decimal, error) {
	return s.txs.SumSuccessfulVolume(ctx, wallet)
}

func (s *LedgerStore) CountRepaidLoans(ctx context.Context, wallet string) (int64, error) {
	return s.loans.CountRepaid(ctx, wallet)
}

func (s *LedgerStore) HasActiveLoan(ctx context.Context, wallet string) (bool, error) {
	return s.loans.HasActive(ctx, wallet)
}

// FirstSeen reports ok=false, with no error, for a wallet that was never tracked.
func (s *LedgerStore) FirstSeen(ctx context.Context, wallet string) (time.Time, bool, error) {
	user, err := s.users.FindOneByWallet(ctx, wallet)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, err
	}
	return user.FirstSeen, true, nil
}
