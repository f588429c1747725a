package domain

import (
	"time" // Timestamps

	"github.com/shopspring/decimal" // Exact currency arithmetic
)

// TransactionType tells deposits and withdrawals apart
type TransactionType int16

const (
	Deposit  TransactionType = 1 // Money received
	Withdraw TransactionType = 2 // Money paid
)

// String returns the human readable name of the type
func (t TransactionType) String() string {
	switch t {
	case Deposit:
		return "Deposit"
	case Withdraw:
		return "Withdraw"
	default:
		return "Unknown"
	}
}

// Transaction Model
type Transaction struct {
	ID               int64           `json:"id" gorm:"primaryKey"`                      // Primary key
	UserID           string          `json:"userId" gorm:"size:160;not null;index"`     // Owner of the transaction
	CategoryID       int64           `json:"categoryId" gorm:"not null;index"`          // Category reference, not enforced
	CreatedAt        time.Time       `json:"createdAt" gorm:"not null"`                 // Assigned by the server on creation
	Amount           decimal.Decimal `json:"amount" gorm:"type:decimal(18,2);not null"` // Negative for withdrawals
	PaidOrReceivedAt time.Time       `json:"paidOrReceivedAt" gorm:"not null;index"`    // When the money moved
	Title            string          `json:"title" gorm:"size:80;not null"`             // Display title
	Type             TransactionType `json:"type" gorm:"type:smallint;not null"`        // Deposit or withdraw
}

// NormalizeAmount forces a withdrawal amount to be non-positive
func NormalizeAmount(t TransactionType, amount decimal.Decimal) decimal.Decimal {
	if t == Withdraw && !amount.IsNegative() {
		return amount.Neg()
	}
	return amount
}
