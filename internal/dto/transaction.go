package dto

import (
	"time"

	"fina/internal/domain"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the body of POST /v1/transactions
type CreateTransactionRequest struct {
	Request
	Title            string                 `json:"title" binding:"required,max=80"`
	Type             domain.TransactionType `json:"type" binding:"required,oneof=1 2"`
	Amount           decimal.Decimal        `json:"amount"`
	CategoryID       int64                  `json:"categoryId" binding:"required,min=1"`
	PaidOrReceivedAt time.Time              `json:"paidOrReceivedAt" binding:"required"`
}

// UpdateTransactionRequest is the body of PUT /v1/transactions/:id
type UpdateTransactionRequest struct {
	Request
	ID               int64                  `json:"-"`
	Title            string                 `json:"title" binding:"required,max=80"`
	Type             domain.TransactionType `json:"type" binding:"required,oneof=1 2"`
	Amount           decimal.Decimal        `json:"amount"`
	CategoryID       int64                  `json:"categoryId" binding:"required,min=1"`
	PaidOrReceivedAt time.Time              `json:"paidOrReceivedAt" binding:"required"`
}

type DeleteTransactionRequest struct {
	Request
	ID int64
}

type GetTransactionByIDRequest struct {
	Request
	ID int64
}

// GetTransactionsByPeriodRequest lists transactions paid or received in a date range.
// Unset dates default to the current month.
type GetTransactionsByPeriodRequest struct {
	PagedRequest
	StartDate *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"endDate" time_format:"2006-01-02"`
}
