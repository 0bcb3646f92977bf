package model

import "time"

// Order-kind labels persisted in transaction_history.order_type.
// The exact strings are part of the stored-data contract.
const (
	KindMarketBuy  = "Market Buy"
	KindMarketSell = "Market Sell"
	KindLimitBuy   = "Limit Buy"
	KindLimitSell  = "Limit Sell"
)

// TransactionRecord is one executed order. Rows are append-only: the
// application writes each record exactly once and never updates or
// deletes it.
type TransactionRecord struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string    `gorm:"size:60;not null;index" json:"user_id"`
	AssetTicker string    `gorm:"size:12;not null;index" json:"asset_ticker"`
	Price       float64   `gorm:"not null" json:"price"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	TotalAmount float64   `gorm:"not null" json:"total_amount"`
	PurchasedAt time.Time `gorm:"not null" json:"purchased_at"`
	OrderType   string    `gorm:"size:20;not null" json:"order_type"`
}

// TableName keeps the legacy table name so existing rows stay readable.
func (TransactionRecord) TableName() string {
	return "transaction_history"
}
