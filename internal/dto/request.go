// Package dto holds the request and response shapes shared by the API
// endpoints, the handlers and the front-end page.
package dto

const (
	DefaultPageNumber = 1   // First page
	DefaultPageSize   = 25  // Rows per page when the caller does not say
	MaxPageSize       = 100 // Upper bound accepted from callers
)

// Request carries the owner every operation is scoped to.
// It is never bound from client input; endpoints fill it from the caller identity.
type Request struct {
	UserID string `json:"-" form:"-"`
}

// PagedRequest adds paging parameters to a request
type PagedRequest struct {
	Request
	PageNumber int `json:"pageNumber" form:"pageNumber,default=1" binding:"min=1"`
	PageSize   int `json:"pageSize" form:"pageSize,default=25" binding:"min=1,max=100"`
}

// Normalize replaces out-of-range paging values with the defaults.
// Requests built in-process skip gin binding, so handlers call this.
func (r *PagedRequest) Normalize() {
	if r.PageNumber < 1 {
		r.PageNumber = DefaultPageNumber
	}
	if r.PageSize < 1 {
		r.PageSize = DefaultPageSize
	}
	if r.PageSize > MaxPageSize {
		r.PageSize = MaxPageSize
	}
}

// Offset is the number of rows to skip before the requested page
func (r PagedRequest) Offset() int {
	return (r.PageNumber - 1) * r.PageSize
}
