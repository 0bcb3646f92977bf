package trading

import (
	"errors"
	"fmt"
	"strings"

	"papertrader/src/model"
)

// Side is the direction of an order.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// OrderRequest is the request-scoped order submitted by a caller. It is
// built once at the transport boundary and never mutated.
type OrderRequest struct {
	UserID     string
	Ticker     string
	Quantity   int
	Limit      bool
	LimitPrice float64
	Side       Side
}

// Validate rejects orders that would otherwise reach the evaluator
// malformed: non-positive quantity, blank ticker, or a limit order with a
// non-positive limit price.
func (o OrderRequest) Validate() error {
	if strings.TrimSpace(o.Ticker) == "" {
		return errors.New("ticker must not be empty")
	}
	if o.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", o.Quantity)
	}
	if o.Limit && o.LimitPrice <= 0 {
		return fmt.Errorf("limit price must be positive, got %.2f", o.LimitPrice)
	}
	if o.Side != SideBuy && o.Side != SideSell {
		return fmt.Errorf("unknown order side %q", o.Side)
	}
	return nil
}

// NormalizedTicker returns the ticker uppercased and trimmed. Quote lookups
// are case-insensitive, so "aapl" and "AAPL" resolve to the same symbol.
func (o OrderRequest) NormalizedTicker() string {
	return strings.ToUpper(strings.TrimSpace(o.Ticker))
}

// KindLabel maps (side, limit) to the persisted order-kind label.
func KindLabel(side Side, limit bool) string {
	switch {
	case side == SideBuy && limit:
		return model.KindLimitBuy
	case side == SideBuy:
		return model.KindMarketBuy
	case limit:
		return model.KindLimitSell
	default:
		return model.KindMarketSell
	}
}
