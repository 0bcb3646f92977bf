package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	logger "github.com/sirupsen/logrus"

	"papertrader/src/handler"
	"papertrader/src/quotes"
	"papertrader/src/repository"
	"papertrader/src/trading"
)

// StartServer wires the quote connector, repositories and order service
// together and serves the HTTP API until SIGINT/SIGTERM.
func StartServer(port string) {
	quoteConfig := quotes.GetConfig()
	quoteClient := quotes.NewYahooClient(quoteConfig.BaseURL, quoteConfig.Timeout)

	txnRepo := repository.NewTransactionRepository()
	userRepo := repository.NewUserRepository()
	orderService := trading.NewOrderService(quoteClient, txnRepo)

	r := chi.NewRouter()

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.WithError(err).Error("\"/healthcheck\" error")
		}
	})

	r.Get("/price/{ticker}", handler.PriceHandler(quoteClient))
	r.Post("/order/buy", handler.BuyOrderHandler(orderService))
	r.Post("/order/sell", handler.SellOrderHandler(orderService))
	r.Get("/users", handler.ListUsersHandler(userRepo))
	r.Post("/users", handler.CreateUserHandler(userRepo))
	r.Get("/users/{userId}/transactions", handler.UserTransactionsHandler(txnRepo))

	// Graceful server
	addr := ":" + port
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		logger.Infof("Listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server crashed")
		}
	}()

	// Shutdown on SIGINT or SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Shutdown error")
	}
}
