package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type DashboardSummary struct {
	Shoes            int64           `json:"shoes"`
	Brands           int64           `json:"brands"`
	Categories       int64           `json:"categories"`
	PromoCodes       int64           `json:"promoCodes"`
	Transactions     int64           `json:"transactions"`
	PaidTransactions int64           `json:"paidTransactions"`
	Revenue          decimal.Decimal `json:"revenue"`
	RevenueText      string          `json:"revenueText"`
}

// TransactionEvent is published on every transaction mutation.
type TransactionEvent struct {
	Type             string    `json:"type"`
	TransactionID    string    `json:"transactionId"`
	BookingTrxID     string    `json:"bookingTrxId"`
	IsPaid           bool      `json:"isPaid"`
	GrandTotalAmount int64     `json:"grandTotalAmount"`
	OccurredAt       time.Time `json:"occurredAt"`
}

const (
	EventTransactionCreated  = "transaction.created"
	EventTransactionUpdated  = "transaction.updated"
	EventTransactionApproved = "transaction.approved"
	EventTransactionDeleted  = "transaction.deleted"
)

// OrphanImage records a blob whose cleanup failed.
type OrphanImage struct {
	URL        string    `bson:"url" json:"url"`
	Reason     string    `bson:"reason" json:"reason"`
	Source     string    `bson:"source" json:"source"`
	RecordedAt time.Time `bson:"recorded_at" json:"recordedAt"`
}
