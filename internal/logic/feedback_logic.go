package logic

import (
	"context"
	"strings"

	"inclfinance/internal/constant"
	"inclfinance/internal/event"
	"inclfinance/internal/model"
	"inclfinance/internal/svc"
	"inclfinance/internal/types"
	"inclfinance/internal/xerr"

	"github.com/zeromicro/go-zero/core/logx"
)

type FeedbackLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewFeedbackLogic(ctx context.Context, svcCtx *svc.ServiceContext) *FeedbackLogic {
	return &FeedbackLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// SaveFeedback stores a 1-5 rating. The wallet is optional.
func (l *FeedbackLogic) SaveFeedback(req *types.FeedbackReq) (*types.FeedbackResp, error) {
	if req.Rating < constant.MinFeedbackRating || req.Rating > constant.MaxFeedbackRating {
		return nil, xerr.InvalidInput("Invalid rating")
	}

	var wallet string
	if strings.TrimSpace(req.WalletAddress) != "" {
		w, err := normalizeWallet(l.svcCtx, req.WalletAddress)
		if err != nil {
			return nil, err
		}
		wallet = w
	}

	row := &model.Feedback{
		WalletAddress: nullString(wallet),
		Rating:        req.Rating,
		Comment:       nullString(strings.TrimSpace(req.Comment)),
		Feature:       nullString(strings.TrimSpace(req.Feature)),
		CreatedAt:     l.svcCtx.Now(),
	}
	if err := l.svcCtx.FeedbackDao.Insert(l.ctx, row); err != nil {
		l.Errorf("insert feedback: %v", err)
		return nil, failed("Failed to save feedback", err)
	}

	payload := event.FeedbackSubmitted{Rating: row.Rating, Feature: row.Feature.String}
	if err := recordEvent(l.ctx, l.svcCtx, wallet, payload); err != nil {
		l.Errorf("record feedback event %d: %v", row.Id, err)
		return nil, failed("Failed to save feedback", err)
	}
	return &types.FeedbackResp{FeedbackId: row.Id}, nil
}
