package dto

// CreateCategoryRequest is the body of POST /v1/categories
type CreateCategoryRequest struct {
	Request
	Title       string `json:"title" binding:"required,max=80"`
	Description string `json:"description" binding:"required,max=255"`
}

// UpdateCategoryRequest is the body of PUT /v1/categories/:id
type UpdateCategoryRequest struct {
	Request
	ID          int64  `json:"-"`
	Title       string `json:"title" binding:"required,max=80"`
	Description string `json:"description" binding:"required,max=255"`
}

type DeleteCategoryRequest struct {
	Request
	ID int64
}

type GetCategoryByIDRequest struct {
	Request
	ID int64
}

type GetAllCategoriesRequest struct {
	PagedRequest
}
