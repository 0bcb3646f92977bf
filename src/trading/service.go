package trading

import (
	"context"
	"errors"
	"fmt"
	"time"

	logger "github.com/sirupsen/logrus"

	"papertrader/src/model"
)

// ErrSymbolNotFound is returned (possibly wrapped) by a QuoteSource when
// the provider does not know the requested ticker. The service maps it to
// a not-found outcome instead of a generic provider error.
var ErrSymbolNotFound = errors.New("symbol not found")

// QuoteSource fetches the latest closing price for a ticker. Implementations
// must wrap ErrSymbolNotFound for unknown tickers so the service can tell
// them apart from other provider failures.
type QuoteSource interface {
	LatestPrice(ctx context.Context, ticker string) (float64, error)
}

// TransactionRecorder persists one executed order. Implementations assign a
// fresh ID and capture timestamp at write time when the record carries none.
type TransactionRecorder interface {
	Record(ctx context.Context, txn *model.TransactionRecord) error
}

// Status classifies the result of an order submission.
type Status string

const (
	StatusExecuted Status = "executed"
	StatusInvalid  Status = "invalid"
	StatusRejected Status = "rejected"
	StatusNotFound Status = "not_found"
	StatusError    Status = "error"
)

// Outcome is the caller-facing result of Submit. A successful execution
// carries no payload beyond its status.
type Outcome struct {
	Status  Status
	Message string
}

// OrderService orchestrates one order submission: fetch a quote, evaluate
// the order against it, persist the fill. Both collaborators are injected
// so tests can substitute fakes.
type OrderService struct {
	quotes   QuoteSource
	recorder TransactionRecorder
}

func NewOrderService(quotes QuoteSource, recorder TransactionRecorder) *OrderService {
	return &OrderService{quotes: quotes, recorder: recorder}
}

// Submit runs the quote -> evaluate -> record sequence for a single order.
// All failures are converted to outcomes here; nothing propagates to the
// transport layer. There is no retry and no deduplication: resubmitting a
// successful order inserts a new record each time.
func (s *OrderService) Submit(ctx context.Context, order OrderRequest) Outcome {
	if err := order.Validate(); err != nil {
		logger.WithFields(map[string]interface{}{
			"user_id": order.UserID,
			"ticker":  order.Ticker,
		}).WithError(err).Warn("Rejecting malformed order")

		return Outcome{Status: StatusInvalid, Message: err.Error()}
	}

	ticker := order.NormalizedTicker()

	price, err := s.quotes.LatestPrice(ctx, ticker)
	if err != nil {
		if errors.Is(err, ErrSymbolNotFound) {
			logger.WithField("ticker", ticker).Warn("Quote source does not know ticker")
			return Outcome{
				Status:  StatusNotFound,
				Message: fmt.Sprintf("no quote available for ticker: %s", ticker),
			}
		}

		logger.WithField("ticker", ticker).WithError(err).Error("Quote fetch failed")
		return Outcome{
			Status:  StatusError,
			Message: fmt.Sprintf("could not fetch quote for %s: %s", ticker, err),
		}
	}

	decision := Evaluate(order, price)
	if !decision.Executed {
		logger.WithFields(map[string]interface{}{
			"ticker":       ticker,
			"side":         order.Side,
			"limit_price":  order.LimitPrice,
			"market_price": price,
		}).Warn(decision.Reason)

		return Outcome{Status: StatusRejected, Message: decision.Reason}
	}

	txn := &model.TransactionRecord{
		UserID:      order.UserID,
		AssetTicker: ticker,
		Price:       decision.FillPrice,
		Quantity:    order.Quantity,
		TotalAmount: decision.FillPrice * float64(order.Quantity),
		PurchasedAt: time.Now().UTC(),
		OrderType:   KindLabel(order.Side, order.Limit),
	}

	if err := s.recorder.Record(ctx, txn); err != nil {
		logger.WithFields(map[string]interface{}{
			"user_id": order.UserID,
			"ticker":  ticker,
		}).WithError(err).Error("Failed to persist transaction")

		return Outcome{
			Status:  StatusError,
			Message: fmt.Sprintf("transaction was not recorded: %s", err),
		}
	}

	logger.WithFields(map[string]interface{}{
		"user_id":    order.UserID,
		"ticker":     ticker,
		"fill_price": decision.FillPrice,
		"quantity":   order.Quantity,
		"order_type": txn.OrderType,
	}).Info("Order executed")

	return Outcome{Status: StatusExecuted}
}
