package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	logger "github.com/sirupsen/logrus"

	"papertrader/src/trading"
)

type priceSource interface {
	LatestPrice(ctx context.Context, ticker string) (float64, error)
}

// PriceHandler returns a handler serving the latest price for the ticker in
// the URL as a bare JSON number.
func PriceHandler(src priceSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ticker := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "ticker")))
		if ticker == "" {
			http.Error(w, "ticker is required", http.StatusBadRequest)
			return
		}

		price, err := src.LatestPrice(r.Context(), ticker)
		if err != nil {
			if errors.Is(err, trading.ErrSymbolNotFound) {
				http.Error(w, fmt.Sprintf("no quote available for ticker: %s", ticker), http.StatusNotFound)
				return
			}

			logger.WithField("ticker", ticker).WithError(err).Error("failed to fetch price")
			http.Error(w, fmt.Sprintf("could not fetch quote for %s: %s", ticker, err), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(price); err != nil {
			logger.WithError(err).Error("failed to encode price response")
		}
	}
}
