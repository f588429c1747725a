package handler

import (
	"context"  // Request scoped cancellation
	"fmt"      // Cache key formatting
	"net/http" // HTTP status codes

	"fina/internal/db"     // Unit of work
	"fina/internal/domain" // Importing domain models
	"fina/internal/dto"    // Request and response shapes
	"fina/internal/utils"  // Cache

	"gorm.io/gorm" // GORM ORM
)

// CategoryHandler implements the category operations
type CategoryHandler struct {
	db    *gorm.DB     // Database connection
	cache *utils.Cache // Optional read-through cache
}

// NewCategoryHandler builds a handler; cache may be nil to disable caching
func NewCategoryHandler(db *gorm.DB, cache *utils.Cache) *CategoryHandler {
	return &CategoryHandler{db: db, cache: cache}
}

type categoryResponse = dto.Response[*domain.Category]

func categoryError(code int, message string) categoryResponse {
	return dto.NewResponse[*domain.Category](nil, code, message)
}

// Create stores a new category owned by the requester
func (h *CategoryHandler) Create(ctx context.Context, req dto.CreateCategoryRequest) categoryResponse {
	category := &domain.Category{
		UserID:      req.UserID,      // Owner
		Title:       req.Title,       // Display name
		Description: req.Description, // Free text
	}

	uow := db.NewContext(h.db)     // Start a unit of work
	uow.Categories().Add(category) // Schedule the insert
	if err := uow.SaveChanges(ctx); err != nil {
		logFailure(err, "Failed to create category", req.UserID, 0)
		return categoryError(http.StatusInternalServerError, "Could not create the category")
	}

	invalidate(ctx, h.cache, cacheScope("categories", req.UserID)) // Cached pages are stale now
	return dto.NewResponse(category, http.StatusCreated, "Category created successfully")
}

// Update replaces the title and description of an owned category
func (h *CategoryHandler) Update(ctx context.Context, req dto.UpdateCategoryRequest) categoryResponse {
	uow := db.NewContext(h.db)                                            // Start a unit of work
	category, err := findOwned(ctx, uow.Categories(), req.ID, req.UserID) // Load the caller's row
	if err != nil {
		logFailure(err, "Failed to load category", req.UserID, req.ID)
		return categoryError(http.StatusInternalServerError, "Could not update the category")
	}
	if category == nil {
		return categoryError(http.StatusNotFound, "Category not found") // Absent or not owned
	}

	category.Title = req.Title             // Only title and description change
	category.Description = req.Description // ID and owner stay as stored

	uow.Categories().Update(category) // Schedule the write back
	if err := uow.SaveChanges(ctx); err != nil {
		logFailure(err, "Failed to update category", req.UserID, req.ID)
		return categoryError(http.StatusInternalServerError, "Could not update the category")
	}

	invalidate(ctx, h.cache, cacheScope("categories", req.UserID)) // Cached pages are stale now
	return dto.NewResponse(category, http.StatusOK, "Category updated successfully")
}

// Delete removes an owned category and returns it
func (h *CategoryHandler) Delete(ctx context.Context, req dto.DeleteCategoryRequest) categoryResponse {
	uow := db.NewContext(h.db)                                            // Start a unit of work
	category, err := findOwned(ctx, uow.Categories(), req.ID, req.UserID) // Load the caller's row
	if err != nil {
		logFailure(err, "Failed to load category", req.UserID, req.ID)
		return categoryError(http.StatusInternalServerError, "Could not delete the category")
	}
	if category == nil {
		return categoryError(http.StatusNotFound, "Category not found") // Absent or not owned
	}

	uow.Categories().Remove(category) // Schedule the delete
	if err := uow.SaveChanges(ctx); err != nil {
		logFailure(err, "Failed to delete category", req.UserID, req.ID)
		return categoryError(http.StatusInternalServerError, "Could not delete the category")
	}

	invalidate(ctx, h.cache, cacheScope("categories", req.UserID)) // Cached pages are stale now
	return dto.NewResponse(category, http.StatusOK, "Category deleted successfully")
}

// GetByID returns one owned category
func (h *CategoryHandler) GetByID(ctx context.Context, req dto.GetCategoryByIDRequest) categoryResponse {
	scope := cacheScope("categories", req.UserID) // Per-user cache scope
	return cachedRead(ctx, h.cache, scope, fmt.Sprintf("id:%d", req.ID), func() categoryResponse {
		category, err := findOwned(ctx, db.NewContext(h.db).Categories(), req.ID, req.UserID)
		if err != nil {
			logFailure(err, "Failed to load category", req.UserID, req.ID)
			return categoryError(http.StatusInternalServerError, "Could not retrieve the category")
		}
		if category == nil {
			return categoryError(http.StatusNotFound, "Category not found") // Absent or not owned
		}
		return dto.NewResponse(category, http.StatusOK, "")
	})
}

// GetAll returns one page of the requester's categories ordered by title
func (h *CategoryHandler) GetAll(ctx context.Context, req dto.GetAllCategoriesRequest) dto.PagedResponse[[]domain.Category] {
	req.Normalize()                               // Apply paging defaults
	scope := cacheScope("categories", req.UserID) // Per-user cache scope
	key := fmt.Sprintf("page:%d:size:%d", req.PageNumber, req.PageSize)
	return cachedRead(ctx, h.cache, scope, key, func() dto.PagedResponse[[]domain.Category] {
		query := db.NewContext(h.db).Categories().Query().
			Where("user_id = ?", req.UserID). // Caller's rows only
			OrderBy("title").                 // Alphabetical
			OrderBy("id")                     // Stable paging

		categories, count, err := page(ctx, query, req.PagedRequest) // Page and total
		if err != nil {
			logFailure(err, "Failed to list categories", req.UserID, 0)
			return dto.NewPagedError[[]domain.Category](http.StatusInternalServerError, "Could not retrieve the categories")
		}
		return dto.NewPagedResponse(categories, count, req.PageNumber, req.PageSize)
	})
}
