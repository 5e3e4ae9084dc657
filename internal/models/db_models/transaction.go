package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusPending  TransactionStatus = "pending"
	TxnStatusPaid     TransactionStatus = "paid"
	TxnStatusFailed   TransactionStatus = "failed"
	TxnStatusRefunded TransactionStatus = "refunded"
)

type Transaction struct {
	BaseModel
	AccountID      uuid.UUID         `gorm:"index"`
	SubscriptionID *uuid.UUID        `gorm:"index"`
	AmountMinor    int64
	Currency       string            `gorm:"size:3"`
	Status         TransactionStatus `gorm:"type:transaction_status;index"`

	Provider      string `gorm:"index"`
	ProviderTxnID string `gorm:"index"` // idempotency across webhooks

	PaidAt     *int64
	RefundedAt *int64

	// Raw receipts, webhook payloads, failure reasons
	Receipt  datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Subscription *Subscription `gorm:"foreignKey:SubscriptionID"`
}
