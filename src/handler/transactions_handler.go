package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	logger "github.com/sirupsen/logrus"

	"papertrader/src/model"
)

type transactionLister interface {
	FindByUserID(ctx context.Context, userID string) ([]model.TransactionRecord, error)
}

type transactionHistoryResponse struct {
	Transactions []model.TransactionRecord `json:"transactions"`
	TotalBought  decimal.Decimal           `json:"total_bought"`
	TotalSold    decimal.Decimal           `json:"total_sold"`
}

// UserTransactionsHandler returns a handler serving a user's transaction
// history plus buy/sell aggregate totals.
func UserTransactionsHandler(repo transactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(chi.URLParam(r, "userId"))
		if userID == "" {
			http.Error(w, "userId is required", http.StatusBadRequest)
			return
		}

		txns, err := repo.FindByUserID(r.Context(), userID)
		if err != nil {
			logger.WithField("user_id", userID).WithError(err).Error("failed to fetch transactions")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		// Decimal sums keep the aggregates exact even when the per-row
		// float amounts do not add cleanly.
		totalBought := decimal.Zero
		totalSold := decimal.Zero
		for _, txn := range txns {
			amount := decimal.NewFromFloat(txn.TotalAmount)
			switch txn.OrderType {
			case model.KindMarketBuy, model.KindLimitBuy:
				totalBought = totalBought.Add(amount)
			case model.KindMarketSell, model.KindLimitSell:
				totalSold = totalSold.Add(amount)
			}
		}

		if txns == nil {
			txns = []model.TransactionRecord{}
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(transactionHistoryResponse{
			Transactions: txns,
			TotalBought:  totalBought,
			TotalSold:    totalSold,
		})
		if err != nil {
			logger.WithError(err).Error("failed to encode transaction history response")
		}
	}
}
