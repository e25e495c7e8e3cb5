package memory

import (
	"context"
	"sort"
	"time"

	"inclfinance/internal/constant"
	"inclfinance/internal/model"

	"github.com/shopspring/decimal"
)

type transactionsDao struct{ l *Ledger }

func (d transactionsDao) Insert(_ context.Context, data *model.Transactions) error {
	d.l.mu.Lock()
	defer d.l.mu.Unlock()
	if d.l.err != nil {
		return d.l.err
	}
	data.Id = d.l.id()
	cp := *data
	d.l.txs = append(d.l.txs, &cp)
	return nil
}

func (d transactionsDao) ListRecent(_ context.Context, wallet string, limit int) ([]*model.Transactions, error) {
	d.l.mu.Lock()
	defer d.l.mu.Unlock()
	if d.l.err != nil {
		return nil, d.l.err
	}
	var out []*model.Transactions
	for _, tx := range d.l.txs {
		if tx.WalletAddress == wallet {
			cp := *tx
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Id > out[j].Id
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (d transactionsDao) CountSuccessful(_ context.Context, wallet string) (int64, error) {
	d.l.mu.Lock()
	defer d.l.mu.Unlock()
	if d.l.err != nil {
		return 0, d.l.err
	}
	var n int64
	for _, tx := range d.l.txs {
		if tx.WalletAddress == wallet && tx.Status == constant.TxStatusSuccess {
			n++
		}
	}
	return n, nil
}

func (d transactionsDao) SumSuccessfulVolume(_ context.Context, wallet string) (decimal.Decimal, error) {
	d.l.mu.Lock()
	defer d.l.mu.Unlock()
	if d.l.err != nil {
		return decimal.Zero, d.l.err
	}
	sum := decimal.Zero
	for _, tx := range d.l.txs {
		if tx.WalletAddress == wallet && tx.Status == constant.TxStatusSuccess {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum, nil
}

func (d transactionsDao) Count(_ context.Context) (int64, error) {
	d.l.mu.Lock()
	defer d.l.mu.Unlock()
	if d.l.err != nil {
		return 0, d.l.err
	}
	return int64(len(d.l.txs)), nil
}

func (d transactionsDao) CountByStatus(_ context.Context, status constant.TxStatus) (int64, error) {
	d.l.mu.Lock()
	defer d.l.mu.Unlock()
	if d.l.err != nil {
		return 0, d.l.err
	}
	var n int64
	for _, tx := range d.l.txs {
		if tx.Status == status {
			n++
		}
	}
	return n, nil
}

func (d transactionsDao) SumVolume(_ context.Context, status constant.TxStatus, types ...constant.TxType) (decimal.Decimal, error) {
	d.l.mu.Lock()
	defer d.l.mu.Unlock()
	if d.l.err != nil {
		return decimal.Zero, d.l.err
	}
	sum := decimal.Zero
	for _, tx := range d.l.txs {
		if tx.Status != status {
			continue
		}
		if len(types) > 0 && !containsType(types, tx.Type) {
			continue
		}
		sum = sum.Add(tx.Amount)
	}
	return sum, nil
}

func (d transactionsDao) AverageSuccessfulSize(_ context.Context) (decimal.Decimal, error) {
	d.l.mu.Lock()
	defer d.l.mu.Unlock()
	if d.l.err != nil {
		return decimal.Zero, d.l.err
	}
	sum, n := decimal.Zero, int64(0)
	for _, tx := range d.l.txs {
		if tx.Status == constant.TxStatusSuccess && tx.Amount.IsPositive() {
			sum = sum.Add(tx.Amount)
			n++
		}
	}
	if n == 0 {
		return decimal.Zero, nil
	}
	return sum.Div(decimal.NewFromInt(n)), nil
}

func (d transactionsDao) TypeBreakdown(_ context.Context) ([]model.TypeCount, error) {
	d.l.mu.Lock()
	defer d.l.mu.Unlock()
	if d.l.err != nil {
		return nil, d.l.err
	}
	counts := make(map[constant.TxType]int64)
	for _, tx := range d.l.txs {
		counts[tx.Type]++
	}
	out := make([]model.TypeCount, 0, len(counts))
	for t, n := range counts {
		out = append(out, model.TypeCount{Type: t, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out, nil
}

func (d transactionsDao) DailyStatsSince(_ context.Context, since time.Time) ([]model.DailyStat, error) {
	d.l.mu.Lock()
	defer d.l.mu.Unlock()
	if d.l.err != nil {
		return nil, d.l.err
	}
	byDay := make(map[time.Time]*model.DailyStat)
	for _, tx := range d.l.txs {
		if tx.CreatedAt.Before(since) {
			continue
		}
		key := day(tx.CreatedAt)
		st, ok := byDay[key]
		if !ok {
			st = &model.DailyStat{Date: key, Volume: decimal.Zero}
			byDay[key] = st
		}
		st.Count++
		st.Volume = st.Volume.Add(tx.Amount)
	}
	out := make([]model.DailyStat, 0, len(byDay))
	for _, st := range byDay {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func containsType(types []constant.TxType, t constant.TxType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}
