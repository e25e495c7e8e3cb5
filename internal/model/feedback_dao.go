package model

import (
	"context"

	"gorm.io/gorm"
)

// FeedbackDao defines the interface for database operations on the feedback table.
type FeedbackDao interface {
	Insert(ctx context.Context, data *Feedback) error
}

type feedbackDao struct {
	db *gorm.DB
}

func NewFeedbackDao(db *gorm.DB) FeedbackDao {
	return &feedbackDao{db: db}
}

func (d *feedbackDao) Insert(ctx context.Context, data *Feedback) error {
	return d.db.WithContext(ctx).Create(data).Error
}

// AnalyticsEventsDao defines the interface for database operations on the analytics_events table.
type AnalyticsEventsDao interface {
	Insert(ctx context.Context, data *AnalyticsEvents) error
}

type analyticsEventsDao struct {
	db *gorm.DB
}

func NewAnalyticsEventsDao(db *gorm.DB) AnalyticsEventsDao {
	return &analyticsEventsDao{db: db}
}

func (d *analyticsEventsDao) Insert(ctx context.Context, data *AnalyticsEvents) error {
	return d.db.WithContext(ctx).Create(data).Error
}
