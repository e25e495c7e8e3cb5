package model

import (
	"database/sql"
	"time"

	"inclfinance/internal/constant"

	"github.com/shopspring/decimal"
)

// Users corresponds to the users table. Reputation is always derived and
// therefore has no column here.
type Users struct {
	Id                int64           `gorm:"primaryKey;autoIncrement"`
	WalletAddress     string          `gorm:"size:128;uniqueIndex;not null"`
	FirstSeen         time.Time       `gorm:"not null"`
	LastSeen          time.Time       `gorm:"not null;index"`
	TotalTransactions int64           `gorm:"not null;default:0"`
	TotalVolume       decimal.Decimal `gorm:"type:numeric(36,8);not null;default:0"`
	Country           string          `gorm:"size:64;not null;default:Nigeria"`
	CreatedAt         time.Time       `gorm:"not null"`
}

func (Users) TableName() string { return "users" }

// Transactions corresponds to the transactions table.
type Transactions struct {
	Id            int64             `gorm:"primaryKey;autoIncrement"`
	WalletAddress string            `gorm:"size:128;not null;index"`
	TxHash        sql.NullString    `gorm:"size:66"`
	Type          constant.TxType   `gorm:"size:32;not null;index"`
	Amount        decimal.Decimal   `gorm:"type:numeric(36,8);not null;default:0"`
	Status        constant.TxStatus `gorm:"size:16;not null;default:pending;index"`
	BlockNumber   sql.NullInt64
	GasUsed       sql.NullInt64
	CreatedAt     time.Time `gorm:"not null;index"`
}

func (Transactions) TableName() string { return "transactions" }

// Loans corresponds to the loans table.
type Loans struct {
	Id            int64               `gorm:"primaryKey;autoIncrement"`
	WalletAddress string              `gorm:"size:128;not null;index"`
	LoanAmount    decimal.Decimal     `gorm:"type:numeric(36,8);not null"`
	InterestRate  decimal.Decimal     `gorm:"type:numeric(10,4);not null"`
	Status        constant.LoanStatus `gorm:"size:16;not null;default:active;index"`
	IssuedAt      time.Time           `gorm:"not null"`
	DueDate       time.Time
	RepaidAt      sql.NullTime
	RepaidAmount  decimal.NullDecimal `gorm:"type:numeric(36,8)"`
}

func (Loans) TableName() string { return "loans" }

// Feedback corresponds to the feedback table.
type Feedback struct {
	Id            int64          `gorm:"primaryKey;autoIncrement"`
	WalletAddress sql.NullString `gorm:"size:128"`
	Rating        int            `gorm:"not null"`
	Comment       sql.NullString `gorm:"type:text"`
	Feature       sql.NullString `gorm:"size:64"`
	CreatedAt     time.Time      `gorm:"not null"`
}

func (Feedback) TableName() string { return "feedback" }

// AnalyticsEvents corresponds to the analytics_events table. EventData holds
// the JSON encoding of the typed payload matching EventType.
type AnalyticsEvents struct {
	Id            int64              `gorm:"primaryKey;autoIncrement"`
	WalletAddress sql.NullString     `gorm:"size:128;index"`
	EventType     constant.EventType `gorm:"size:32;not null;index"`
	EventData     string             `gorm:"type:text"`
	CreatedAt     time.Time          `gorm:"not null"`
}

func (AnalyticsEvents) TableName() string { return "analytics_events" }

// Tables lists every model for auto migration.
func Tables() []any {
	return []any{&Users{}, &Transactions{}, &Loans{}, &Feedback{}, &AnalyticsEvents{}}
}

// TypeCount is one row of the per-type transaction breakdown.
type TypeCount struct {
	Type  constant.TxType
	Count int64
}

// DailyStat aggregates transactions created on one day.
type DailyStat struct {
	Date   time.Time
	Count  int64
	Volume decimal.Decimal
}

// DailyCount counts users first seen on one day.
type DailyCount struct {
	Date     time.Time
	NewUsers int64
}
