package api

import (
	"context"  // Context for handler calls
	"errors"   // Error inspection
	"fmt"      // Message formatting
	"net/http" // HTTP status codes
	"strings"  // Joining validation messages

	"fina/internal/domain" // Importing domain models
	"fina/internal/dto"    // Request and response shapes

	"github.com/gin-gonic/gin"               // Gin web framework
	"github.com/go-playground/validator/v10" // Validation error details
)

// CategoryHandler is what the category endpoints need from the handler layer
type CategoryHandler interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest) dto.Response[*domain.Category]
	Update(ctx context.Context, req dto.UpdateCategoryRequest) dto.Response[*domain.Category]
	Delete(ctx context.Context, req dto.DeleteCategoryRequest) dto.Response[*domain.Category]
	GetByID(ctx context.Context, req dto.GetCategoryByIDRequest) dto.Response[*domain.Category]
	GetAll(ctx context.Context, req dto.GetAllCategoriesRequest) dto.PagedResponse[[]domain.Category]
}

// TransactionHandler is what the transaction endpoints need from the handler layer
type TransactionHandler interface {
	Create(ctx context.Context, req dto.CreateTransactionRequest) dto.Response[*domain.Transaction]
	Update(ctx context.Context, req dto.UpdateTransactionRequest) dto.Response[*domain.Transaction]
	Delete(ctx context.Context, req dto.DeleteTransactionRequest) dto.Response[*domain.Transaction]
	GetByID(ctx context.Context, req dto.GetTransactionByIDRequest) dto.Response[*domain.Transaction]
	GetByPeriod(ctx context.Context, req dto.GetTransactionsByPeriodRequest) dto.PagedResponse[[]domain.Transaction]
}

// idURI binds the :id path parameter
type idURI struct {
	ID int64 `uri:"id" binding:"required,min=1"` // Entity ID from the path
}

// bindID reads :id, answering 400 itself when it is not a positive integer
func bindID(c *gin.Context) (int64, bool) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, err)
		return 0, false
	}
	return uri.ID, true
}

// badRequest answers 400 with the standard envelope
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewResponse[any](nil, http.StatusBadRequest, validationMessage(err)))
}

// reply writes resp with its own status code
func reply[T any](c *gin.Context, resp dto.Response[T]) {
	c.JSON(resp.Code, resp)
}

// replyPaged writes a paged response with its own status code
func replyPaged[T any](c *gin.Context, resp dto.PagedResponse[T]) {
	c.JSON(resp.Code, resp)
}

// created answers 201 with a Location header, or the failure code
func created[T any](c *gin.Context, resp dto.Response[T], location string) {
	if resp.IsSuccess() {
		c.Header("Location", location)
	}
	c.JSON(resp.Code, resp)
}

// validationMessage turns binding errors into a readable sentence
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request: " + err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return strings.Join(msgs, "; ")
}

// Health answers the liveness check
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "OK"})
}
