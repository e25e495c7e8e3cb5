package logic

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"inclfinance/internal/chain"
	"inclfinance/internal/event"
	"inclfinance/internal/model"
	"inclfinance/internal/svc"
	"inclfinance/internal/xerr"

	"github.com/shopspring/decimal"
	"github.com/zeromicro/go-zero/core/logx"
)

// normalizeWallet trims the identifier and, when hex addresses are
// required, validates it and returns the checksum form.
func normalizeWallet(svcCtx *svc.ServiceContext, raw string) (string, error) {
	wallet := strings.TrimSpace(raw)
	if wallet == "" {
		return "", xerr.InvalidInput("Wallet address required")
	}
	if !svcCtx.Config.Wallet.RequireHexAddress {
		return wallet, nil
	}
	if !chain.ValidAddress(wallet) {
		return "", xerr.InvalidInput("Invalid wallet address")
	}
	return chain.ChecksumAddress(wallet), nil
}

// displayAddress 排行榜展示用的缩写地址，例如 0x1234...abcd
func displayAddress(wallet string) string {
	if len(wallet) <= 10 {
		return wallet
	}
	return wallet[:6] + "..." + wallet[len(wallet)-4:]
}

// failed keeps client errors as they are and turns everything else into a
// store failure carrying msg as the public message.
func failed(msg string, err error) error {
	if errors.Is(err, xerr.ErrInvalidInput) || errors.Is(err, xerr.ErrNotFound) || errors.Is(err, xerr.ErrNotEligible) {
		return err
	}
	return xerr.StoreUnavailable(msg, err)
}

// recordEvent stores an analytics row and hands it to the publisher.
// Publishing problems are only logged.
func recordEvent(ctx context.Context, svcCtx *svc.ServiceContext, wallet string, payload event.Payload) error {
	data, err := event.Encode(payload)
	if err != nil {
		return err
	}

	row := &model.AnalyticsEvents{
		WalletAddress: nullString(wallet),
		EventType:     payload.EventType(),
		EventData:     data,
		CreatedAt:     svcCtx.Now(),
	}
	if err := svcCtx.AnalyticsEventsDao.Insert(ctx, row); err != nil {
		return err
	}

	evt := event.Event{
		Id:            row.Id,
		WalletAddress: wallet,
		EventType:     row.EventType,
		Payload:       payload,
		CreatedAt:     row.CreatedAt,
	}
	if err := svcCtx.Publisher.Publish(ctx, evt); err != nil {
		logx.WithContext(ctx).Errorf("publish %s event: %v", evt.EventType, err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func toFloat(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
