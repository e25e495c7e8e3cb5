package logic

import (
	"context"
	"testing"

	"inclfinance/internal/constant"
	"inclfinance/internal/types"
	"inclfinance/internal/xerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFeedback(t *testing.T) {
	sc, ledger := newTestSvc(t)
	l := NewFeedbackLogic(context.Background(), sc)

	resp, err := l.SaveFeedback(&types.FeedbackReq{Rating: 4, Comment: " easy onboarding ", Feature: "wallet"})
	require.NoError(t, err)
	assert.NotZero(t, resp.FeedbackId)

	_, err = l.SaveFeedback(&types.FeedbackReq{WalletAddress: "0xabc", Rating: 1})
	require.NoError(t, err)

	rows := ledger.Feedback()
	require.Len(t, rows, 2)
	assert.False(t, rows[0].WalletAddress.Valid)
	assert.Equal(t, "easy onboarding", rows[0].Comment.String)
	assert.Equal(t, "0xabc", rows[1].WalletAddress.String)
	assert.False(t, rows[1].Feature.Valid)

	events := ledger.Events()
	require.Len(t, events, 2)
	assert.Equal(t, constant.EventFeedback, events[0].EventType)
}

func TestSaveFeedback_InvalidRating(t *testing.T) {
	sc, ledger := newTestSvc(t)
	l := NewFeedbackLogic(context.Background(), sc)

	for _, rating := range []int{0, -1, 6} {
		_, err := l.SaveFeedback(&types.FeedbackReq{Rating: rating})
		assert.ErrorIs(t, err, xerr.ErrInvalidInput)
		assert.Equal(t, "Invalid rating", xerr.PublicMessage(err))
	}
	assert.Empty(t, ledger.Feedback())
}
