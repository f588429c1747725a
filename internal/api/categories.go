package api

import (
	"fmt" // Location header formatting

	"fina/internal/dto"        // Request and response shapes
	"fina/internal/middleware" // Caller identity

	"github.com/gin-gonic/gin" // Gin web framework
)

// CreateCategoryEndpoint creates a category for the caller
func CreateCategoryEndpoint(h CategoryHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateCategoryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err) // Validation failed
			return
		}
		req.UserID = c.GetString(middleware.UserIDKey) // Owner comes from the caller identity
		resp := h.Create(c.Request.Context(), req)
		var id int64 // ID of the new category, when created
		if resp.Data != nil {
			id = resp.Data.ID
		}
		created(c, resp, fmt.Sprintf("/v1/categories/%d", id))
	}
}

// UpdateCategoryEndpoint replaces title and description of a category
func UpdateCategoryEndpoint(h CategoryHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c) // Parse the path ID
		if !ok {
			return
		}
		var req dto.UpdateCategoryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		req.ID = id
		req.UserID = c.GetString(middleware.UserIDKey)
		reply(c, h.Update(c.Request.Context(), req))
	}
}

// DeleteCategoryEndpoint deletes a category
func DeleteCategoryEndpoint(h CategoryHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		req := dto.DeleteCategoryRequest{Request: dto.Request{UserID: c.GetString(middleware.UserIDKey)}, ID: id}
		reply(c, h.Delete(c.Request.Context(), req))
	}
}

// GetCategoryByIDEndpoint returns one category
func GetCategoryByIDEndpoint(h CategoryHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		req := dto.GetCategoryByIDRequest{Request: dto.Request{UserID: c.GetString(middleware.UserIDKey)}, ID: id}
		reply(c, h.GetByID(c.Request.Context(), req))
	}
}

// GetAllCategoriesEndpoint returns a page of categories
func GetAllCategoriesEndpoint(h CategoryHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.GetAllCategoriesRequest // Bind pageNumber and pageSize from the query string
		if err := c.ShouldBindQuery(&req); err != nil {
			badRequest(c, err)
			return
		}
		req.UserID = c.GetString(middleware.UserIDKey)
		replyPaged(c, h.GetAll(c.Request.Context(), req))
	}
}
