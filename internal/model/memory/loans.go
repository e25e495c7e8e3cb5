package memory

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"inclfinance/internal/constant"
	"inclfinance/internal/model"

	"github.com/shopspring/decimal"
)

type loansDao struct{ l *Ledger }

func (d loansDao) Insert(_ context.Context, data *model.Loans) error {
	d.l.mu.Lock()
	defer d.l.mu.Unlock()
	if d.l.err != nil {
		return d.l.err
	}
	data.Id = d.l.id()
	cp := *data
	d.l.loans = append(d.l.loans, &cp)
	return nil
}

func (d loansDao) FindActive(_ context.Context, wallet string) (*model.Loans, error) {
	d.l.mu.Lock()
	defer d.l.mu.Unlock()
	if d.l.err != nil {
		return nil, d.l.err
	}
	var found *model.Loans
	for _, loan := range d.l.loans {
		if loan.WalletAddress != wallet || loan.Status != constant.LoanStatusActive {
			continue
		}
		if found == nil || loan.IssuedAt.After(found.IssuedAt) {
			found = loan
		}
	}
	if found == nil {
		return nil, model.ErrNotFound
	}
	cp := *found
	return &cp, nil
}

func (d loansDao) MarkRepaid(_ context.Context, id int64, amount decimal.Decimal, at time.Time) error {
	d.l.mu.Lock()
	defer d.l.mu.Unlock()
	if d.l.err != nil {
		return d.l.err
	}
	for _, loan := range d.l.loans {
		if loan.Id == id && loan.Status == constant.LoanStatusActive {
			loan.Status = constant.LoanStatusRepaid
			loan.RepaidAt = sql.NullTime{Time: at, Valid: true}
			loan.RepaidAmount = decimal.NullDecimal{Decimal: amount, Valid: true}
			return nil
		}
	}
	return model.ErrNotFound
}

func (d loansDao) ListByWallet(_ context.Context, wallet string) ([]*model.Loans, error) {
	d.l.mu.Lock()
	defer d.l.mu.Unlock()
	if d.l.err != nil {
		return nil, d.l.err
	}
	var out []*model.Loans
	for _, loan := range d.l.loans {
		if loan.WalletAddress == wallet {
			cp := *loan
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].IssuedAt.After(out[j].IssuedAt) })
	return out, nil
}

func (d loansDao) CountRepaid(_ context.Context, wallet string) (int64, error) {
	return d.count(wallet, constant.LoanStatusRepaid)
}

func (d loansDao) HasActive(_ context.Context, wallet string) (bool, error) {
	n, err := d.count(wallet, constant.LoanStatusActive)
	return n > 0, err
}

func (d loansDao) count(wallet string, status constant.LoanStatus) (int64, error) {
	d.l.mu.Lock()
	defer d.l.mu.Unlock()
	if d.l.err != nil {
		return 0, d.l.err
	}
	var n int64
	for _, loan := range d.l.loans {
		if loan.WalletAddress == wallet && loan.Status == status {
			n++
		}
	}
	return n, nil
}

type feedbackDao struct{ l *Ledger }

func (d feedbackDao) Insert(_ context.Context, data *model.Feedback) error {
	d.l.mu.Lock()
	defer d.l.mu.Unlock()
	if d.l.err != nil {
		return d.l.err
	}
	data.Id = d.l.id()
	cp := *data
	d.l.feedback = append(d.l.feedback, &cp)
	return nil
}

type eventsDao struct{ l *Ledger }

func (d eventsDao) Insert(_ context.Context, data *model.AnalyticsEvents) error {
	d.l.mu.Lock()
	defer d.l.mu.Unlock()
	if d.l.err != nil {
		return d.l.err
	}
	data.Id = d.l.id()
	cp := *data
	d.l.events = append(d.l.events, &cp)
	return nil
}
