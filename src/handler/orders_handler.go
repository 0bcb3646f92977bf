package handler

import (
	"context"
	"encoding/json"
	"net/http"

	logger "github.com/sirupsen/logrus"

	"papertrader/src/trading"
)

type orderSubmitter interface {
	Submit(ctx context.Context, order trading.OrderRequest) trading.Outcome
}

// orderPayload is the wire shape of an order submission. The side is not
// part of the body; it is selected by which endpoint the caller hits.
type orderPayload struct {
	UserID     string  `json:"user_id"`
	Ticker     string  `json:"ticker"`
	Quantity   int     `json:"quantity"`
	LimitOrder bool    `json:"limit_order"`
	LimitPrice float64 `json:"limit_price"`
}

// BuyOrderHandler returns a handler that submits a buy order.
func BuyOrderHandler(svc orderSubmitter) http.HandlerFunc {
	return orderHandler(trading.SideBuy, svc)
}

// SellOrderHandler returns a handler that submits a sell order.
func SellOrderHandler(svc orderSubmitter) http.HandlerFunc {
	return orderHandler(trading.SideSell, svc)
}

func orderHandler(side trading.Side, svc orderSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload orderPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			logger.WithError(err).Warn("invalid order payload")
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}

		outcome := svc.Submit(r.Context(), trading.OrderRequest{
			UserID:     payload.UserID,
			Ticker:     payload.Ticker,
			Quantity:   payload.Quantity,
			Limit:      payload.LimitOrder,
			LimitPrice: payload.LimitPrice,
			Side:       side,
		})

		if outcome.Status == trading.StatusExecuted {
			// Success carries no payload.
			w.WriteHeader(http.StatusOK)
			return
		}

		http.Error(w, outcome.Message, outcomeStatusCode(outcome))
	}
}

func outcomeStatusCode(o trading.Outcome) int {
	switch o.Status {
	case trading.StatusExecuted:
		return http.StatusOK
	case trading.StatusNotFound:
		return http.StatusNotFound
	case trading.StatusInvalid, trading.StatusRejected:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
