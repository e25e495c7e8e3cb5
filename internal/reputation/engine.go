// Package reputation derives a wallet's trust score, risk level and loan
// eligibility from its recorded ledger history. Nothing here writes: every
// result is recomputed from the store on each call.
package reputation

import (
	"context"
	"strings"
	"time"

	"inclfinance/internal/xerr"

	"github.com/shopspring/decimal"
)

const (
	volumeUnit        = 100
	repaidLoanPoints  = 10
	maxTenureDays     = 30
	defaultMinScore   = 5
	defaultBaseAmount = 200
)

// Store is the read side of the ledger the engine depends on.
type Store interface {
	CountSuccessfulTransactions(ctx context.Context, wallet string) (int64, error)
	SumSuccessfulTransactionVolume(ctx context.Context, wallet string) (decimal.Decimal, error)
	CountRepaidLoans(ctx context.Context, wallet string) (int64, error)
	HasActiveLoan(ctx context.Context, wallet string) (bool, error)
	FirstSeen(ctx context.Context, wallet string) (time.Time, bool, error)
}

// Policy 贷款额度策略
type Policy struct {
	// BaseAmount is the loan ceiling at multiplier 1.
	BaseAmount decimal.Decimal
	// MaxMultiplier caps exposure regardless of how high the score goes.
	MaxMultiplier decimal.Decimal
	// ScoreDivisor turns a score into a multiplier: score / ScoreDivisor.
	ScoreDivisor decimal.Decimal
	// MinScore is the lowest score that can borrow.
	MinScore int64
}

func DefaultPolicy() Policy {
	return Policy{
		BaseAmount:    decimal.NewFromInt(defaultBaseAmount),
		MaxMultiplier: decimal.NewFromInt(2),
		ScoreDivisor:  decimal.NewFromInt(50),
		MinScore:      defaultMinScore,
	}
}

// Reputation is the result of get_reputation.
type Reputation struct {
	Score     int64
	RiskLevel RiskLevel
}

// Breakdown keeps each clamped term of a score.
type Breakdown struct {
	Transactions int64
	Volume       int64
	Repayments   int64
	Tenure       int64
}

func (b Breakdown) Total() int64 {
	return max(0, b.Transactions+b.Volume+b.Repayments+b.Tenure)
}

type Engine struct {
	store  Store
	policy Policy
	now    func() time.Time
}

type Option func(*Engine)

func WithPolicy(p Policy) Option {
	return func(e *Engine) {
		e.policy = p
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(store Store, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		policy: DefaultPolicy(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Score computes the wallet's reputation score. A wallet without a user
// record scores 0.
func (e *Engine) Score(ctx context.Context, wallet string) (int64, error) {
	b, err := e.Breakdown(ctx, wallet)
	if err != nil {
		return 0, err
	}
	return b.Total(), nil
}

// Breakdown returns the four score terms, each already clamped to >= 0.
func (e *Engine) Breakdown(ctx context.Context, wallet string) (Breakdown, error) {
	if err := checkWallet(wallet); err != nil {
		return Breakdown{}, err
	}

	firstSeen, ok, err := e.store.FirstSeen(ctx, wallet)
	if err != nil {
		return Breakdown{}, storeErr(err)
	}
	if !ok {
		return Breakdown{}, nil
	}

	txCount, err := e.store.CountSuccessfulTransactions(ctx, wallet)
	if err != nil {
		return Breakdown{}, storeErr(err)
	}
	volume, err := e.store.SumSuccessfulTransactionVolume(ctx, wallet)
	if err != nil {
		return Breakdown{}, storeErr(err)
	}
	repaid, err := e.store.CountRepaidLoans(ctx, wallet)
	if err != nil {
		return Breakdown{}, storeErr(err)
	}

	return Breakdown{
		Transactions: max(0, txCount),
		Volume:       max(0, volume.Div(decimal.NewFromInt(volumeUnit)).Floor().IntPart()),
		Repayments:   max(0, repaid*repaidLoanPoints),
		Tenure:       tenureDays(firstSeen, e.now()),
	}, nil
}

func tenureDays(firstSeen, now time.Time) int64 {
	days := int64(now.Sub(firstSeen) / (24 * time.Hour))
	return min(max(0, days), maxTenureDays)
}

// Reputation implements get_reputation.
func (e *Engine) Reputation(ctx context.Context, wallet string) (Reputation, error) {
	score, err := e.Score(ctx, wallet)
	if err != nil {
		return Reputation{}, err
	}
	return Reputation{Score: score, RiskLevel: ClassifyRisk(score)}, nil
}

// LoanEligibility implements get_loan_eligibility: it scores the wallet and
// then decides.
func (e *Engine) LoanEligibility(ctx context.Context, wallet string) (Eligibility, error) {
	score, err := e.Score(ctx, wallet)
	if err != nil {
		return Eligibility{}, err
	}
	return e.Eligibility(ctx, wallet, score)
}

// Eligibility decides for an already computed score. Rules apply in order
// and the first match wins.
func (e *Engine) Eligibility(ctx context.Context, wallet string, score int64) (Eligibility, error) {
	if err := checkWallet(wallet); err != nil {
		return Eligibility{}, err
	}

	active, err := e.store.HasActiveLoan(ctx, wallet)
	if err != nil {
		return Eligibility{}, storeErr(err)
	}
	if active {
		return Eligibility{Reason: ReasonActiveLoanExists, MaxAmount: decimal.Zero}, nil
	}
	if score < e.policy.MinScore {
		return Eligibility{Reason: ReasonInsufficientReputation, MaxAmount: decimal.Zero}, nil
	}

	multiplier := decimal.Min(e.policy.MaxMultiplier, decimal.NewFromInt(score).Div(e.policy.ScoreDivisor))
	return Eligibility{
		Eligible:   true,
		Reason:     ReasonEligible,
		MaxAmount:  e.policy.BaseAmount.Mul(multiplier),
		Multiplier: &multiplier,
	}, nil
}

func checkWallet(wallet string) error {
	if strings.TrimSpace(wallet) == "" {
		return xerr.InvalidInput("Wallet address required")
	}
	return nil
}

func storeErr(err error) error {
	return xerr.StoreUnavailable("Failed to read ledger", err)
}
