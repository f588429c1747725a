package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fina/internal/domain"
	"fina/internal/dto"
	"fina/internal/handler"
	"fina/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeLister struct {
	resp dto.PagedResponse[[]domain.Category]
	got  dto.GetAllCategoriesRequest
}

func (f *fakeLister) GetAll(_ context.Context, req dto.GetAllCategoriesRequest) dto.PagedResponse[[]domain.Category] {
	f.got = req
	return f.resp
}

func get(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestCategoriesPage_RendersHandlerData(t *testing.T) {
	gdb := testutil.NewDB(t)
	categories := handler.NewCategoryHandler(gdb, nil)
	for _, title := range []string{"Rent", "Food"} {
		resp := categories.Create(context.Background(), dto.CreateCategoryRequest{
			Request:     dto.Request{UserID: "test@fina.dev"},
			Title:       title,
			Description: title + " <b>bills</b>",
		})
		require.True(t, resp.IsSuccess())
	}

	r, err := NewRouter(categories, "test@fina.dev")
	require.NoError(t, err)

	rec := get(t, r, "/categories")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<h1>Categories</h1>")
	assert.Contains(t, body, "Food")
	assert.Contains(t, body, "Rent")
	assert.Contains(t, body, "&lt;b&gt;bills&lt;/b&gt;", "descriptions are escaped")
	assert.Less(t, strings.Index(body, "Food"), strings.Index(body, "Rent"), "ordered by title")
	assert.NotContains(t, body, "snackbar")
}

func TestCategoriesPage_ShowsErrorBanner(t *testing.T) {
	lister := &fakeLister{resp: dto.NewPagedError[[]domain.Category](http.StatusInternalServerError, "Could not retrieve the categories")}
	r, err := NewRouter(lister, "test@fina.dev")
	require.NoError(t, err)

	rec := get(t, r, "/categories")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Could not retrieve the categories")
	assert.NotContains(t, rec.Body.String(), "No categories yet.")
}

func TestCategoriesPage_PagingParameters(t *testing.T) {
	lister := &fakeLister{resp: dto.NewPagedResponse([]domain.Category{{ID: 1, Title: "A"}}, 30, 2, 10)}
	r, err := NewRouter(lister, "test@fina.dev")
	require.NoError(t, err)

	rec := get(t, r, "/categories?pageNumber=2&pageSize=10")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, lister.got.PageNumber)
	assert.Equal(t, 10, lister.got.PageSize)
	assert.Equal(t, "test@fina.dev", lister.got.UserID)
	body := rec.Body.String()
	assert.Contains(t, body, "Page 2 of 3")
	assert.Contains(t, body, `href="/categories?pageNumber=1&amp;pageSize=10"`)
	assert.Contains(t, body, `href="/categories?pageNumber=3&amp;pageSize=10"`)

	get(t, r, "/categories?pageNumber=-4&pageSize=abc")
	assert.Equal(t, dto.DefaultPageNumber, lister.got.PageNumber)
	assert.Equal(t, dto.DefaultPageSize, lister.got.PageSize)
}

func TestRouter_RootRedirectsAndServesAssets(t *testing.T) {
	r, err := NewRouter(&fakeLister{resp: dto.NewPagedResponse([]domain.Category{}, 0, 1, 25)}, "u")
	require.NoError(t, err)

	rec := get(t, r, "/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/categories", rec.Header().Get("Location"))

	rec = get(t, r, "/static/app.css")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = get(t, r, "/categories")
	assert.Contains(t, rec.Body.String(), "No categories yet.")
}
