package model

import (
	"context"
	"errors"
	"time"

	"inclfinance/internal/constant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = gorm.ErrRecordNotFound

// UsersDao defines the interface for database operations on the users table.
type UsersDao interface {
	Upsert(ctx context.Context, wallet string, at time.Time) error
	FindOneByWallet(ctx context.Context, wallet string) (*Users, error)
	IncrementStats(ctx context.Context, wallet string, amount decimal.Decimal, at time.Time) error
	Count(ctx context.Context) (int64, error)
	CountActiveSince(ctx context.Context, since time.Time) (int64, error)
	ListActive(ctx context.Context) ([]*Users, error)
	GrowthSince(ctx context.Context, since time.Time) ([]DailyCount, error)
}

type usersDao struct {
	db *gorm.DB
}

// NewUsersDao creates a new instance of UsersDao.
func NewUsersDao(db *gorm.DB) UsersDao {
	return &usersDao{
		db: db,
	}
}

// Upsert inserts the wallet or, when it already exists, only bumps last_seen.
func (d *usersDao) Upsert(ctx context.Context, wallet string, at time.Time) error {
	user := &Users{
		WalletAddress: wallet,
		FirstSeen:     at,
		LastSeen:      at,
		Country:       constant.DefaultCountry,
		CreatedAt:     at,
	}
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "wallet_address"}},
		DoUpdates: clause.Assignments(map[string]any{"last_seen": at}),
	}).Create(user).Error
}

// FindOneByWallet retrieves a single user record by its wallet address.
func (d *usersDao) FindOneByWallet(ctx context.Context, wallet string) (*Users, error) {
	var resp Users
	err := d.db.WithContext(ctx).Where("wallet_address = ?", wallet).First(&resp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &resp, nil
}

// IncrementStats 累加用户交易次数和交易额
func (d *usersDao) IncrementStats(ctx context.Context, wallet string, amount decimal.Decimal, at time.Time) error {
	return d.db.WithContext(ctx).Model(&Users{}).
		Where("wallet_address = ?", wallet).
		Updates(map[string]any{
			"total_transactions": gorm.Expr("total_transactions + ?", 1),
			"total_volume":       gorm.Expr("total_volume + ?", amount),
			"last_seen":          at,
		}).Error
}

func (d *usersDao) Count(ctx context.Context) (int64, error) {
	var n int64
	err := d.db.WithContext(ctx).Model(&Users{}).Count(&n).Error
	return n, err
}

func (d *usersDao) CountActiveSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := d.db.WithContext(ctx).Model(&Users{}).Where("last_seen >= ?", since).Count(&n).Error
	return n, err
}

// ListActive returns every user with at least one recorded transaction.
func (d *usersDao) ListActive(ctx context.Context) ([]*Users, error) {
	var users []*Users
	err := d.db.WithContext(ctx).Where("total_transactions > ?", 0).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GrowthSince counts new users per day, oldest day first.
func (d *usersDao) GrowthSince(ctx context.Context, since time.Time) ([]DailyCount, error) {
	var rows []DailyCount
	err := d.db.WithContext(ctx).Model(&Users{}).
		Select("DATE(first_seen) AS date, COUNT(*) AS new_users").
		Where("first_seen >= ?", since).
		Group("DATE(first_seen)").
		Order("date").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
