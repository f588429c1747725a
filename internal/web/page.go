// Package web serves the server-rendered front-end. Pages call the handler
// layer in-process instead of going through the JSON API.
package web

import (
	"context"       // Handler calls
	"fmt"           // Error wrapping
	"html/template" // Page templates
	"io/fs"         // Embedded file systems
	"net/http"      // HTTP status codes
	"strconv"       // Query parameter parsing

	"fina/internal/domain"     // Importing domain models
	"fina/internal/dto"        // Request and response shapes
	"fina/internal/middleware" // Request id and access log
	appweb "fina/web"          // Embedded templates and assets

	"github.com/gin-gonic/gin" // Gin web framework
)

// CategoryLister is the part of the category handler the listing page uses
type CategoryLister interface {
	GetAll(ctx context.Context, req dto.GetAllCategoriesRequest) dto.PagedResponse[[]domain.Category]
}

// categoriesPage is the view model of categories.html
type categoriesPage struct {
	Title      string            // Page heading
	Categories []domain.Category // Rows of the current page
	Error      string            // Banner text, empty on success
	PageNumber int               // Current page
	PageSize   int               // Rows per page
	TotalPages int               // Pager bound
	TotalCount int64             // Total categories of the user
}

func (p categoriesPage) HasPrev() bool { return p.PageNumber > 1 }
func (p categoriesPage) HasNext() bool { return p.PageNumber < p.TotalPages }
func (p categoriesPage) PrevPage() int { return p.PageNumber - 1 }
func (p categoriesPage) NextPage() int { return p.PageNumber + 1 }

// NewRouter builds the front-end engine with embedded templates and assets
func NewRouter(categories CategoryLister, userID string) (*gin.Engine, error) {
	tmpl, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html") // Parse embedded templates
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	static, err := fs.Sub(appweb.StaticFS, "static") // Serve assets from the static root
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	r := gin.New()                                                     // Initialize Gin router
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery()) // Common middleware
	r.SetHTMLTemplate(tmpl)                                            // HTML renderer
	r.StaticFS("/static", http.FS(static))                             // Stylesheets

	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/categories") }) // Home is the category list
	r.GET("/categories", CategoriesPage(categories, userID))                         // Category listing
	return r, nil
}

// CategoriesPage renders the category listing of userID.
// Bad paging parameters fall back to the defaults instead of failing the page.
func CategoriesPage(categories CategoryLister, userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		pageNumber := dto.DefaultPageNumber // Default page
		pageSize := dto.DefaultPageSize     // Default page size
		if v, err := strconv.Atoi(c.Query("pageNumber")); err == nil && v > 0 {
			pageNumber = v
		}
		if v, err := strconv.Atoi(c.Query("pageSize")); err == nil && v > 0 && v <= dto.MaxPageSize {
			pageSize = v
		}

		// In-process call, no HTTP hop
		resp := categories.GetAll(c.Request.Context(), dto.GetAllCategoriesRequest{
			PagedRequest: dto.PagedRequest{
				Request:    dto.Request{UserID: userID},
				PageNumber: pageNumber,
				PageSize:   pageSize,
			},
		})

		page := categoriesPage{
			Title:      "Categories",
			PageNumber: pageNumber,
			PageSize:   pageSize,
		}
		if resp.IsSuccess() {
			page.Categories = resp.Data
			page.TotalPages = resp.TotalPages
			page.TotalCount = resp.TotalCount
		} else {
			page.Error = resp.Message // Shown as a banner over an empty list
		}
		c.HTML(http.StatusOK, "categories.html", page) // The page itself always renders
	}
}
