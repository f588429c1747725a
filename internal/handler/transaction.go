package handler

import (
	"context"  // Request scoped cancellation
	"fmt"      // Cache key formatting
	"net/http" // HTTP status codes
	"time"     // Period bounds and timestamps

	"fina/internal/db"     // Unit of work
	"fina/internal/domain" // Importing domain models
	"fina/internal/dto"    // Request and response shapes
	"fina/internal/utils"  // Calendar helpers and cache

	"gorm.io/gorm" // GORM ORM
)

// TransactionHandler implements the transaction operations
type TransactionHandler struct {
	db    *gorm.DB         // Database connection
	cache *utils.Cache     // Optional read-through cache
	now   func() time.Time // Clock, replaced in tests
}

// NewTransactionHandler builds a handler; cache may be nil to disable caching
func NewTransactionHandler(db *gorm.DB, cache *utils.Cache) *TransactionHandler {
	return &TransactionHandler{db: db, cache: cache, now: time.Now}
}

type transactionResponse = dto.Response[*domain.Transaction]

func transactionError(code int, message string) transactionResponse {
	return dto.NewResponse[*domain.Transaction](nil, code, message)
}

// Create stores a new transaction; withdrawals are stored as negative amounts.
// Timestamps are stored in UTC so every driver compares them as instants.
func (h *TransactionHandler) Create(ctx context.Context, req dto.CreateTransactionRequest) transactionResponse {
	transaction := &domain.Transaction{
		UserID:           req.UserID,                                   // Owner
		CategoryID:       req.CategoryID,                               // Soft reference to a category
		CreatedAt:        h.now().UTC(),                                // Server assigned
		Amount:           domain.NormalizeAmount(req.Type, req.Amount), // Sign follows the type
		PaidOrReceivedAt: req.PaidOrReceivedAt.UTC(),                   // Normalized to UTC
		Title:            req.Title,                                    // Label
		Type:             req.Type,                                     // Deposit or withdraw
	}

	uow := db.NewContext(h.db)          // Start a unit of work
	uow.Transactions().Add(transaction) // Schedule the insert
	if err := uow.SaveChanges(ctx); err != nil {
		logFailure(err, "Failed to create transaction", req.UserID, 0)
		return transactionError(http.StatusInternalServerError, "Could not create the transaction")
	}

	invalidate(ctx, h.cache, cacheScope("transactions", req.UserID)) // Cached pages are stale now
	return dto.NewResponse(transaction, http.StatusCreated, "Transaction created successfully")
}

// Update rewrites every client-editable field of an owned transaction
func (h *TransactionHandler) Update(ctx context.Context, req dto.UpdateTransactionRequest) transactionResponse {
	uow := db.NewContext(h.db)                                                 // Start a unit of work
	transaction, err := findOwned(ctx, uow.Transactions(), req.ID, req.UserID) // Load the caller's row
	if err != nil {
		logFailure(err, "Failed to load transaction", req.UserID, req.ID)
		return transactionError(http.StatusInternalServerError, "Could not update the transaction")
	}
	if transaction == nil {
		return transactionError(http.StatusNotFound, "Transaction not found") // Absent or not owned
	}

	transaction.CategoryID = req.CategoryID
	transaction.Amount = domain.NormalizeAmount(req.Type, req.Amount) // Sign follows the type
	transaction.Title = req.Title
	transaction.Type = req.Type
	transaction.PaidOrReceivedAt = req.PaidOrReceivedAt.UTC() // Normalized to UTC

	uow.Transactions().Update(transaction) // Schedule the write back
	if err := uow.SaveChanges(ctx); err != nil {
		logFailure(err, "Failed to update transaction", req.UserID, req.ID)
		return transactionError(http.StatusInternalServerError, "Could not update the transaction")
	}

	invalidate(ctx, h.cache, cacheScope("transactions", req.UserID)) // Cached pages are stale now
	return dto.NewResponse(transaction, http.StatusOK, "Transaction updated successfully")
}

// Delete removes an owned transaction and returns it
func (h *TransactionHandler) Delete(ctx context.Context, req dto.DeleteTransactionRequest) transactionResponse {
	uow := db.NewContext(h.db)                                                 // Start a unit of work
	transaction, err := findOwned(ctx, uow.Transactions(), req.ID, req.UserID) // Load the caller's row
	if err != nil {
		logFailure(err, "Failed to load transaction", req.UserID, req.ID)
		return transactionError(http.StatusInternalServerError, "Could not delete the transaction")
	}
	if transaction == nil {
		return transactionError(http.StatusNotFound, "Transaction not found") // Absent or not owned
	}

	uow.Transactions().Remove(transaction) // Schedule the delete
	if err := uow.SaveChanges(ctx); err != nil {
		logFailure(err, "Failed to delete transaction", req.UserID, req.ID)
		return transactionError(http.StatusInternalServerError, "Could not delete the transaction")
	}

	invalidate(ctx, h.cache, cacheScope("transactions", req.UserID)) // Cached pages are stale now
	return dto.NewResponse(transaction, http.StatusOK, "Transaction deleted successfully")
}

// GetByID returns one owned transaction
func (h *TransactionHandler) GetByID(ctx context.Context, req dto.GetTransactionByIDRequest) transactionResponse {
	scope := cacheScope("transactions", req.UserID) // Per-user cache scope
	return cachedRead(ctx, h.cache, scope, fmt.Sprintf("id:%d", req.ID), func() transactionResponse {
		transaction, err := findOwned(ctx, db.NewContext(h.db).Transactions(), req.ID, req.UserID)
		if err != nil {
			logFailure(err, "Failed to load transaction", req.UserID, req.ID)
			return transactionError(http.StatusInternalServerError, "Could not retrieve the transaction")
		}
		if transaction == nil {
			return transactionError(http.StatusNotFound, "Transaction not found") // Absent or not owned
		}
		return dto.NewResponse(transaction, http.StatusOK, "")
	})
}

// Period resolves the date range of req. Unset bounds default to the first
// and last day of now's month; the end bound covers its whole calendar day.
// Calendar days are taken in the location of each bound.
func Period(req dto.GetTransactionsByPeriodRequest, now time.Time) (start, end time.Time) {
	start = utils.FirstDay(now) // First day of the month, 00:00
	if req.StartDate != nil {
		start = *req.StartDate
	}
	end = utils.LastDay(now) // Last day of the month
	if req.EndDate != nil {
		end = *req.EndDate
	}
	return start, utils.EndOfDay(end)
}

// GetByPeriod returns one page of the transactions paid or received in the
// requested range, oldest first
func (h *TransactionHandler) GetByPeriod(ctx context.Context, req dto.GetTransactionsByPeriodRequest) dto.PagedResponse[[]domain.Transaction] {
	req.Normalize()                     // Apply paging defaults
	start, end := Period(req, h.now())  // Resolve the range in local calendar days
	start, end = start.UTC(), end.UTC() // Stored timestamps are UTC

	scope := cacheScope("transactions", req.UserID) // Per-user cache scope
	key := fmt.Sprintf("period:%d:%d:page:%d:size:%d", start.UnixNano(), end.UnixNano(), req.PageNumber, req.PageSize)
	return cachedRead(ctx, h.cache, scope, key, func() dto.PagedResponse[[]domain.Transaction] {
		query := db.NewContext(h.db).Transactions().Query().
			Where("user_id = ?", req.UserID).                                           // Caller's rows only
			Where("paid_or_received_at >= ? AND paid_or_received_at <= ?", start, end). // Inclusive range
			OrderBy("paid_or_received_at").                                             // Oldest first
			OrderBy("id")                                                               // Stable paging

		transactions, count, err := page(ctx, query, req.PagedRequest) // Page and total
		if err != nil {
			logFailure(err, "Failed to list transactions", req.UserID, 0)
			return dto.NewPagedError[[]domain.Transaction](http.StatusInternalServerError, "Could not retrieve the transactions")
		}
		return dto.NewPagedResponse(transactions, count, req.PageNumber, req.PageSize)
	})
}
