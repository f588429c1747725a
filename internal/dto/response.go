package dto

import "net/http"

// Response is the envelope returned by every single-entity operation
type Response[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// NewResponse builds an envelope; a zero code means 200
func NewResponse[T any](data T, code int, message string) Response[T] {
	if code == 0 {
		code = http.StatusOK
	}
	return Response[T]{Data: data, Code: code, Message: message}
}

// IsSuccess reports a 2xx code
func (r Response[T]) IsSuccess() bool {
	return r.Code >= 200 && r.Code <= 299
}

// PagedResponse carries one page of records with the paging arithmetic
type PagedResponse[T any] struct {
	Response[T]
	TotalCount int64 `json:"totalCount"`
	PageNumber int   `json:"pageNumber"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// NewPagedResponse builds a successful page
func NewPagedResponse[T any](data T, totalCount int64, pageNumber, pageSize int) PagedResponse[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	}
	return PagedResponse[T]{
		Response:   NewResponse(data, http.StatusOK, ""),
		TotalCount: totalCount,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// NewPagedError builds a failed page with no data
func NewPagedError[T any](code int, message string) PagedResponse[T] {
	var zero T
	return PagedResponse[T]{Response: NewResponse(zero, code, message)}
}
