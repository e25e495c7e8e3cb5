package model

import (
	"context"
	"time"

	"inclfinance/internal/constant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionsDao defines the interface for database operations on the transactions table.
type TransactionsDao interface {
	Insert(ctx context.Context, data *Transactions) error
	ListRecent(ctx context.Context, wallet string, limit int) ([]*Transactions, error)
	CountSuccessful(ctx context.Context, wallet string) (int64, error)
	SumSuccessfulVolume(ctx context.Context, wallet string) (decimal.Decimal, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status constant.TxStatus) (int64, error)
	SumVolume(ctx context.Context, status constant.TxStatus, types ...constant.TxType) (decimal.Decimal, error)
	AverageSuccessfulSize(ctx context.Context) (decimal.Decimal, error)
	TypeBreakdown(ctx context.Context) ([]TypeCount, error)
	DailyStatsSince(ctx context.Context, since time.Time) ([]DailyStat, error)
}

type transactionsDao struct {
	db *gorm.DB
}

type amountRow struct {
	Total decimal.Decimal
}

// NewTransactionsDao creates a new instance of TransactionsDao.
func NewTransactionsDao(db *gorm.DB) TransactionsDao {
	return &transactionsDao{
		db: db,
	}
}

// Insert adds a new record to the transactions table.
func (d *transactionsDao) Insert(ctx context.Context, data *Transactions) error {
	return d.db.WithContext(ctx).Create(data).Error
}

// ListRecent returns the wallet's newest transactions first.
func (d *transactionsDao) ListRecent(ctx context.Context, wallet string, limit int) ([]*Transactions, error) {
	var txs []*Transactions
	err := d.db.WithContext(ctx).
		Where("wallet_address = ?", wallet).
		Order("created_at DESC").
		Limit(limit).
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}

func (d *transactionsDao) CountSuccessful(ctx context.Context, wallet string) (int64, error) {
	var n int64
	err := d.db.WithContext(ctx).Model(&Transactions{}).
		Where("wallet_address = ? AND status = ?", wallet, constant.TxStatusSuccess).
		Count(&n).Error
	return n, err
}

func (d *transactionsDao) SumSuccessfulVolume(ctx context.Context, wallet string) (decimal.Decimal, error) {
	var row amountRow
	err := d.db.WithContext(ctx).Model(&Transactions{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("wallet_address = ? AND status = ?", wallet, constant.TxStatusSuccess).
		Scan(&row).Error
	return row.Total, err
}

func (d *transactionsDao) Count(ctx context.Context) (int64, error) {
	var n int64
	err := d.db.WithContext(ctx).Model(&Transactions{}).Count(&n).Error
	return n, err
}

func (d *transactionsDao) CountByStatus(ctx context.Context, status constant.TxStatus) (int64, error) {
	var n int64
	err := d.db.WithContext(ctx).Model(&Transactions{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

// SumVolume sums amounts with the given status, optionally restricted to types.
func (d *transactionsDao) SumVolume(ctx context.Context, status constant.TxStatus, types ...constant.TxType) (decimal.Decimal, error) {
	var row amountRow
	q := d.db.WithContext(ctx).Model(&Transactions{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("status = ?", status)
	if len(types) > 0 {
		q = q.Where("type IN ?", types)
	}
	err := q.Scan(&row).Error
	return row.Total, err
}

// AverageSuccessfulSize averages successful, non-zero amounts.
func (d *transactionsDao) AverageSuccessfulSize(ctx context.Context) (decimal.Decimal, error) {
	var row amountRow
	err := d.db.WithContext(ctx).Model(&Transactions{}).
		Select("COALESCE(AVG(amount), 0) AS total").
		Where("status = ? AND amount > ?", constant.TxStatusSuccess, 0).
		Scan(&row).Error
	return row.Total, err
}

func (d *transactionsDao) TypeBreakdown(ctx context.Context) ([]TypeCount, error) {
	var rows []TypeCount
	err := d.db.WithContext(ctx).Model(&Transactions{}).
		Select("type, COUNT(*) AS count").
		Group("type").
		Order("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DailyStatsSince 按天统计交易笔数和交易额
func (d *transactionsDao) DailyStatsSince(ctx context.Context, since time.Time) ([]DailyStat, error) {
	var rows []DailyStat
	err := d.db.WithContext(ctx).Model(&Transactions{}).
		Select("DATE(created_at) AS date, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS volume").
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("date").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
