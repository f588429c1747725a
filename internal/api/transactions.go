package api

import (
	"fmt" // Location header formatting

	"fina/internal/dto"        // Request and response shapes
	"fina/internal/middleware" // Caller identity

	"github.com/gin-gonic/gin" // Gin web framework
)

// CreateTransactionEndpoint records a deposit or withdrawal
func CreateTransactionEndpoint(h TransactionHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateTransactionRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err) // Validation failed
			return
		}
		req.UserID = c.GetString(middleware.UserIDKey) // Owner comes from the caller identity
		resp := h.Create(c.Request.Context(), req)
		var id int64 // ID of the new transaction, when created
		if resp.Data != nil {
			id = resp.Data.ID
		}
		created(c, resp, fmt.Sprintf("/v1/transactions/%d", id))
	}
}

// UpdateTransactionEndpoint rewrites a transaction
func UpdateTransactionEndpoint(h TransactionHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c) // Parse the path ID
		if !ok {
			return
		}
		var req dto.UpdateTransactionRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		req.ID = id
		req.UserID = c.GetString(middleware.UserIDKey)
		reply(c, h.Update(c.Request.Context(), req))
	}
}

// DeleteTransactionEndpoint deletes a transaction
func DeleteTransactionEndpoint(h TransactionHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		req := dto.DeleteTransactionRequest{Request: dto.Request{UserID: c.GetString(middleware.UserIDKey)}, ID: id}
		reply(c, h.Delete(c.Request.Context(), req))
	}
}

// GetTransactionByIDEndpoint returns one transaction
func GetTransactionByIDEndpoint(h TransactionHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		req := dto.GetTransactionByIDRequest{Request: dto.Request{UserID: c.GetString(middleware.UserIDKey)}, ID: id}
		reply(c, h.GetByID(c.Request.Context(), req))
	}
}

// GetTransactionsByPeriodEndpoint returns a page of transactions in a date range
func GetTransactionsByPeriodEndpoint(h TransactionHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.GetTransactionsByPeriodRequest // Bind dates and paging from the query string
		if err := c.ShouldBindQuery(&req); err != nil {
			badRequest(c, err)
			return
		}
		req.UserID = c.GetString(middleware.UserIDKey)
		replyPaged(c, h.GetByPeriod(c.Request.Context(), req))
	}
}
