package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"papertrader/src/database"
	"papertrader/src/model"
)

// TransactionRepository writes and reads transaction_history rows. It is
// the production trading.TransactionRecorder.
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a repository backed by the main
// read/write database.
func NewTransactionRepository() *TransactionRepository {
	logger.WithField("component", "TransactionRepository").
		Info("Creating new TransactionRepository with MainDB")

	return &TransactionRepository{db: database.MainDB}
}

// WithDB allows overriding the underlying *gorm.DB instance.
// Useful for tests or when using a specific session/transaction.
func (r *TransactionRepository) WithDB(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Record inserts one immutable transaction row. A fresh UUID and a capture
// timestamp are assigned at write time when the record carries none, so
// resubmitting an identical order always produces a distinct row.
func (r *TransactionRepository) Record(
	ctx context.Context,
	txn *model.TransactionRecord,
) error {

	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}
	if txn.PurchasedAt.IsZero() {
		txn.PurchasedAt = time.Now().UTC()
	}

	logger.WithFields(map[string]interface{}{
		"repo":       "TransactionRepository",
		"op":         "Record",
		"user_id":    txn.UserID,
		"ticker":     txn.AssetTicker,
		"qty":        txn.Quantity,
		"order_type": txn.OrderType,
	}).Debug("Recording transaction")

	err := r.db.WithContext(ctx).Create(txn).Error
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"repo": "TransactionRepository",
			"op":   "Record",
		}).WithError(err).Error("Failed to record transaction")

		return err
	}

	logger.WithFields(map[string]interface{}{
		"repo":           "TransactionRepository",
		"op":             "Record",
		"transaction_id": txn.ID,
	}).Info("Transaction recorded")

	return nil
}

// FindByUserID returns a user's transactions from newest to oldest.
func (r *TransactionRepository) FindByUserID(
	ctx context.Context,
	userID string,
) ([]model.TransactionRecord, error) {

	logger.WithFields(map[string]interface{}{
		"repo":    "TransactionRepository",
		"op":      "FindByUserID",
		"user_id": userID,
	}).Debug("Fetching transactions for user")

	var txns []model.TransactionRecord

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("purchased_at DESC").
		Find(&txns).Error

	if err != nil {
		logger.WithFields(map[string]interface{}{
			"repo":    "TransactionRepository",
			"op":      "FindByUserID",
			"user_id": userID,
		}).WithError(err).Error("Failed to fetch transactions")

		return nil, err
	}

	return txns, nil
}
