package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"fina/internal/domain"
	"fina/internal/dto"
	"fina/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow is mid-month so the default period is easy to reason about
var fixedNow = time.Date(2026, time.October, 19, 10, 0, 0, 0, time.Local)

func newTransactionHandler(t *testing.T) *TransactionHandler {
	t.Helper()
	h := NewTransactionHandler(testutil.NewDB(t), nil)
	h.now = func() time.Time { return fixedNow }
	return h
}

func createTransaction(t *testing.T, h *TransactionHandler, title string, typ domain.TransactionType, amount string, at time.Time) *domain.Transaction {
	t.Helper()
	return createTransactionFor(t, h, owner, title, typ, amount, at)
}

func createTransactionFor(t *testing.T, h *TransactionHandler, userID, title string, typ domain.TransactionType, amount string, at time.Time) *domain.Transaction {
	t.Helper()
	resp := h.Create(context.Background(), dto.CreateTransactionRequest{
		Request:          dto.Request{UserID: userID},
		Title:            title,
		Type:             typ,
		Amount:           decimal.RequireFromString(amount),
		CategoryID:       1,
		PaidOrReceivedAt: at,
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Message)
	return resp.Data
}

func TestTransactionHandler_CreateWithdrawIsNegative(t *testing.T) {
	ctx := context.Background()
	h := newTransactionHandler(t)

	created := createTransaction(t, h, "Rent", domain.Withdraw, "1200.50", fixedNow)
	assert.True(t, created.Amount.Equal(decimal.RequireFromString("-1200.50")))
	assert.True(t, fixedNow.Equal(created.CreatedAt))
	assert.Equal(t, time.UTC, created.CreatedAt.Location())

	stored := h.GetByID(ctx, dto.GetTransactionByIDRequest{Request: dto.Request{UserID: owner}, ID: created.ID})
	require.True(t, stored.IsSuccess())
	assert.True(t, stored.Data.Amount.LessThanOrEqual(decimal.Zero), "persisted amount %s", stored.Data.Amount)
	assert.Equal(t, domain.Withdraw, stored.Data.Type)
}

func TestTransactionHandler_DepositKeepsSign(t *testing.T) {
	h := newTransactionHandler(t)

	positive := createTransaction(t, h, "Salary", domain.Deposit, "5000", fixedNow)
	assert.True(t, positive.Amount.Equal(decimal.NewFromInt(5000)))

	negative := createTransaction(t, h, "Refund fix", domain.Deposit, "-20", fixedNow)
	assert.True(t, negative.Amount.Equal(decimal.NewFromInt(-20)))
}

func TestTransactionHandler_Update(t *testing.T) {
	ctx := context.Background()
	h := newTransactionHandler(t)
	created := createTransaction(t, h, "Salary", domain.Deposit, "100", fixedNow)

	resp := h.Update(ctx, dto.UpdateTransactionRequest{
		Request:          dto.Request{UserID: owner},
		ID:               created.ID,
		Title:            "Gym",
		Type:             domain.Withdraw,
		Amount:           decimal.NewFromInt(80),
		CategoryID:       7,
		PaidOrReceivedAt: fixedNow.AddDate(0, 0, -3),
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, resp.Data.Amount.Equal(decimal.NewFromInt(-80)))
	assert.EqualValues(t, 7, resp.Data.CategoryID)
	assert.Equal(t, owner, resp.Data.UserID)

	missing := h.Update(ctx, dto.UpdateTransactionRequest{
		Request: dto.Request{UserID: "bob@fina.dev"},
		ID:      created.ID,
		Title:   "x",
		Type:    domain.Deposit,
	})
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestTransactionHandler_DeleteMissing(t *testing.T) {
	h := newTransactionHandler(t)
	resp := h.Delete(context.Background(), dto.DeleteTransactionRequest{Request: dto.Request{UserID: owner}, ID: 404})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestTransactionHandler_Delete(t *testing.T) {
	ctx := context.Background()
	h := newTransactionHandler(t)
	created := createTransaction(t, h, "Salary", domain.Deposit, "100", fixedNow)

	resp := h.Delete(ctx, dto.DeleteTransactionRequest{Request: dto.Request{UserID: owner}, ID: created.ID})
	require.Equal(t, http.StatusOK, resp.Code)

	again := h.GetByID(ctx, dto.GetTransactionByIDRequest{Request: dto.Request{UserID: owner}, ID: created.ID})
	assert.Equal(t, http.StatusNotFound, again.Code)
}

func TestPeriod_Defaults(t *testing.T) {
	start, end := Period(dto.GetTransactionsByPeriodRequest{}, fixedNow)

	assert.Equal(t, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2026, time.October, 31, 23, 59, 59, 999999999, time.Local), end)
}

func TestPeriod_ExplicitBounds(t *testing.T) {
	from := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.Local)

	start, end := Period(dto.GetTransactionsByPeriodRequest{StartDate: &from, EndDate: &to}, fixedNow)
	assert.Equal(t, from, start)
	assert.Equal(t, time.Date(2026, time.March, 9, 23, 59, 59, 999999999, time.Local), end)
}

func TestTransactionHandler_GetByPeriodDefaultsToCurrentMonth(t *testing.T) {
	ctx := context.Background()
	h := newTransactionHandler(t)

	createTransaction(t, h, "last month", domain.Deposit, "1", time.Date(2026, time.September, 30, 23, 0, 0, 0, time.Local))
	createTransaction(t, h, "last day", domain.Deposit, "3", time.Date(2026, time.October, 31, 18, 0, 0, 0, time.Local))
	createTransaction(t, h, "first day", domain.Deposit, "2", time.Date(2026, time.October, 1, 0, 0, 0, 0, time.Local))
	createTransaction(t, h, "next month", domain.Deposit, "4", time.Date(2026, time.November, 1, 0, 0, 0, 0, time.Local))

	resp := h.GetByPeriod(ctx, dto.GetTransactionsByPeriodRequest{
		PagedRequest: dto.PagedRequest{Request: dto.Request{UserID: owner}},
	})
	require.True(t, resp.IsSuccess(), resp.Message)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "first day", resp.Data[0].Title)
	assert.Equal(t, "last day", resp.Data[1].Title)
	assert.EqualValues(t, 2, resp.TotalCount)
}

func TestTransactionHandler_GetByPeriodPaging(t *testing.T) {
	ctx := context.Background()
	h := newTransactionHandler(t)
	base := time.Date(2026, time.October, 1, 9, 0, 0, 0, time.Local)
	for i := 0; i < 15; i++ {
		createTransaction(t, h, "tx", domain.Withdraw, "1", base.Add(time.Duration(i)*time.Hour))
	}
	foreign := createTransactionFor(t, h, "bob@fina.dev", "bob's", domain.Deposit, "9", base)

	resp := h.GetByPeriod(ctx, dto.GetTransactionsByPeriodRequest{
		PagedRequest: dto.PagedRequest{Request: dto.Request{UserID: owner}, PageNumber: 2, PageSize: 10},
	})
	require.True(t, resp.IsSuccess())
	assert.EqualValues(t, 15, resp.TotalCount)
	assert.Equal(t, 2, resp.TotalPages)
	require.Len(t, resp.Data, 5)
	assert.True(t, resp.Data[0].PaidOrReceivedAt.Equal(base.Add(10*time.Hour)))
	for _, tx := range resp.Data {
		assert.Equal(t, owner, tx.UserID)
	}

	hidden := h.GetByID(ctx, dto.GetTransactionByIDRequest{Request: dto.Request{UserID: owner}, ID: foreign.ID})
	assert.Equal(t, http.StatusNotFound, hidden.Code)
}

func TestTransactionHandler_GetByPeriodComparesInstants(t *testing.T) {
	ctx := context.Background()
	h := newTransactionHandler(t)
	seoul := time.FixedZone("KST", 9*60*60)

	// 16:00 UTC on the 14th is 01:00 on the 15th in Seoul
	at := time.Date(2026, time.October, 14, 16, 0, 0, 0, time.UTC)
	createTransaction(t, h, "late night", domain.Withdraw, "12", at)
	createTransaction(t, h, "day before", domain.Withdraw, "3", time.Date(2026, time.October, 14, 14, 0, 0, 0, time.UTC))

	day := time.Date(2026, time.October, 15, 0, 0, 0, 0, seoul)
	resp := h.GetByPeriod(ctx, dto.GetTransactionsByPeriodRequest{
		PagedRequest: dto.PagedRequest{Request: dto.Request{UserID: owner}},
		StartDate:    &day,
		EndDate:      &day,
	})
	require.True(t, resp.IsSuccess(), resp.Message)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "late night", resp.Data[0].Title)
	assert.True(t, at.Equal(resp.Data[0].PaidOrReceivedAt))
}

func TestTransactionHandler_GetByPeriodInvertedRangeIsEmpty(t *testing.T) {
	h := newTransactionHandler(t)
	createTransaction(t, h, "tx", domain.Deposit, "1", fixedNow)

	from := fixedNow.AddDate(0, 0, 5)
	to := fixedNow.AddDate(0, 0, -5)
	resp := h.GetByPeriod(context.Background(), dto.GetTransactionsByPeriodRequest{
		PagedRequest: dto.PagedRequest{Request: dto.Request{UserID: owner}},
		StartDate:    &from,
		EndDate:      &to,
	})
	require.True(t, resp.IsSuccess())
	assert.Empty(t, resp.Data)
	assert.Zero(t, resp.TotalCount)
}
