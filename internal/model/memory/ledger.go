// Package memory holds an in-process ledger implementing the model DAOs.
// It backs the "memory" storage driver and unit tests that should not need
// a running database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"inclfinance/internal/constant"
	"inclfinance/internal/model"

	"github.com/shopspring/decimal"
)

// Ledger is the shared state behind all memory DAOs.
type Ledger struct {
	mu       sync.Mutex
	users    map[string]*model.Users
	txs      []*model.Transactions
	loans    []*model.Loans
	feedback []*model.Feedback
	events   []*model.AnalyticsEvents
	nextID   int64
	err      error
}

func NewLedger() *Ledger {
	return &Ledger{users: make(map[string]*model.Users)}
}

// WithError makes every subsequent call fail with err.
func (l *Ledger) WithError(err error) *Ledger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.err = err
	return l
}

// Events returns a copy of the recorded analytics events.
func (l *Ledger) Events() []model.AnalyticsEvents {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.AnalyticsEvents, 0, len(l.events))
	for _, e := range l.events {
		out = append(out, *e)
	}
	return out
}

// Feedback returns a copy of the stored feedback rows.
func (l *Ledger) Feedback() []model.Feedback {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.Feedback, 0, len(l.feedback))
	for _, f := range l.feedback {
		out = append(out, *f)
	}
	return out
}

func (l *Ledger) id() int64 {
	l.nextID++
	return l.nextID
}

func (l *Ledger) Users() model.UsersDao { return usersDao{l} }

func (l *Ledger) Transactions() model.TransactionsDao { return transactionsDao{l} }

func (l *Ledger) Loans() model.LoansDao { return loansDao{l} }

func (l *Ledger) FeedbackDao() model.FeedbackDao { return feedbackDao{l} }

func (l *Ledger) AnalyticsEvents() model.AnalyticsEventsDao { return eventsDao{l} }

type usersDao struct{ l *Ledger }

func (d usersDao) Upsert(_ context.Context, wallet string, at time.Time) error {
	d.l.mu.Lock()
	defer d.l.mu.Unlock()
	if d.l.err != nil {
		return d.l.err
	}
	if u, ok := d.l.users[wallet]; ok {
		u.LastSeen = at
		return nil
	}
	d.l.users[wallet] = &model.Users{
		Id:            d.l.id(),
		WalletAddress: wallet,
		FirstSeen:     at,
		LastSeen:      at,
		TotalVolume:   decimal.Zero,
		Country:       constant.DefaultCountry,
		CreatedAt:     at,
	}
	return nil
}

func (d usersDao) FindOneByWallet(_ context.Context, wallet string) (*model.Users, error) {
	d.l.mu.Lock()
	defer d.l.mu.Unlock()
	if d.l.err != nil {
		return nil, d.l.err
	}
	u, ok := d.l.users[wallet]
	if !ok {
		return nil, model.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (d usersDao) IncrementStats(_ context.Context, wallet string, amount decimal.Decimal, at time.Time) error {
	d.l.mu.Lock()
	defer d.l.mu.Unlock()
	if d.l.err != nil {
		return d.l.err
	}
	if u, ok := d.l.users[wallet]; ok {
		u.TotalTransactions++
		u.TotalVolume = u.TotalVolume.Add(amount)
		u.LastSeen = at
	}
	return nil
}

func (d usersDao) Count(_ context.Context) (int64, error) {
	d.l.mu.Lock()
	defer d.l.mu.Unlock()
	if d.l.err != nil {
		return 0, d.l.err
	}
	return int64(len(d.l.users)), nil
}

func (d usersDao) CountActiveSince(_ context.Context, since time.Time) (int64, error) {
	d.l.mu.Lock()
	defer d.l.mu.Unlock()
	if d.l.err != nil {
		return 0, d.l.err
	}
	var n int64
	for _, u := range d.l.users {
		if !u.LastSeen.Before(since) {
			n++
		}
	}
	return n, nil
}

func (d usersDao) ListActive(_ context.Context) ([]*model.Users, error) {
	d.l.mu.Lock()
	defer d.l.mu.Unlock()
	if d.l.err != nil {
		return nil, d.l.err
	}
	var out []*model.Users
	for _, u := range d.l.users {
		if u.TotalTransactions > 0 {
			cp := *u
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out, nil
}

func (d usersDao) GrowthSince(_ context.Context, since time.Time) ([]model.DailyCount, error) {
	d.l.mu.Lock()
	defer d.l.mu.Unlock()
	if d.l.err != nil {
		return nil, d.l.err
	}
	byDay := make(map[time.Time]int64)
	for _, u := range d.l.users {
		if !u.FirstSeen.Before(since) {
			byDay[day(u.FirstSeen)]++
		}
	}
	out := make([]model.DailyCount, 0, len(byDay))
	for date, n := range byDay {
		out = append(out, model.DailyCount{Date: date, NewUsers: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func day(t time.Time) time.Time {
	y, m, dd := t.UTC().Date()
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}
