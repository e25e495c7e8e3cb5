package model

import (
	"context"
	"errors"
	"time"

	"inclfinance/internal/constant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LoansDao defines the interface for database operations on the loans table.
type LoansDao interface {
	Insert(ctx context.Context, data *Loans) error
	FindActive(ctx context.Context, wallet string) (*Loans, error)
	MarkRepaid(ctx context.Context, id int64, amount decimal.Decimal, at time.Time) error
	ListByWallet(ctx context.Context, wallet string) ([]*Loans, error)
	CountRepaid(ctx context.Context, wallet string) (int64, error)
	HasActive(ctx context.Context, wallet string) (bool, error)
}

type loansDao struct {
	db *gorm.DB
}

// NewLoansDao creates a new instance of LoansDao.
func NewLoansDao(db *gorm.DB) LoansDao {
	return &loansDao{
		db: db,
	}
}

func (d *loansDao) Insert(ctx context.Context, data *Loans) error {
	return d.db.WithContext(ctx).Create(data).Error
}

// FindActive returns the wallet's newest active loan.
func (d *loansDao) FindActive(ctx context.Context, wallet string) (*Loans, error) {
	var resp Loans
	err := d.db.WithContext(ctx).
		Where("wallet_address = ? AND status = ?", wallet, constant.LoanStatusActive).
		Order("issued_at DESC").
		First(&resp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &resp, nil
}

func (d *loansDao) MarkRepaid(ctx context.Context, id int64, amount decimal.Decimal, at time.Time) error {
	res := d.db.WithContext(ctx).Model(&Loans{}).
		Where("id = ? AND status = ?", id, constant.LoanStatusActive).
		Updates(map[string]any{
			"status":        constant.LoanStatusRepaid,
			"repaid_at":     at,
			"repaid_amount": amount,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByWallet returns all of the wallet's loans, newest first.
func (d *loansDao) ListByWallet(ctx context.Context, wallet string) ([]*Loans, error) {
	var loans []*Loans
	err := d.db.WithContext(ctx).
		Where("wallet_address = ?", wallet).
		Order("issued_at DESC").
		Find(&loans).Error
	if err != nil {
		return nil, err
	}
	return loans, nil
}

func (d *loansDao) CountRepaid(ctx context.Context, wallet string) (int64, error) {
	return d.countByStatus(ctx, wallet, constant.LoanStatusRepaid)
}

func (d *loansDao) HasActive(ctx context.Context, wallet string) (bool, error) {
	n, err := d.countByStatus(ctx, wallet, constant.LoanStatusActive)
	return n > 0, err
}

func (d *loansDao) countByStatus(ctx context.Context, wallet string, status constant.LoanStatus) (int64, error) {
	var n int64
	err := d.db.WithContext(ctx).Model(&Loans{}).
		Where("wallet_address = ? AND status = ?", wallet, status).
		Count(&n).Error
	return n, err
}
