package category_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-writeup/internal/category"
	categoryerrors "go-writeup/internal/category/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeCategoryService struct {
	category.Service
	ListCategoriesFn    func(ctx context.Context, includeInactive bool) ([]category.CategoryResponse, error)
	SetCategoryActiveFn func(ctx context.Context, id string, active bool) (category.CategoryResponse, error)
	ListRulesFn         func(ctx context.Context, categoryID string) ([]category.RuleResponse, error)
}

func (f *fakeCategoryService) ListCategories(ctx context.Context, includeInactive bool) ([]category.CategoryResponse, error) {
	return f.ListCategoriesFn(ctx, includeInactive)
}
func (f *fakeCategoryService) SetCategoryActive(ctx context.Context, id string, active bool) (category.CategoryResponse, error) {
	return f.SetCategoryActiveFn(ctx, id, active)
}
func (f *fakeCategoryService) ListRules(ctx context.Context, categoryID string) ([]category.RuleResponse, error) {
	return f.ListRulesFn(ctx, categoryID)
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestCategoryHandler_ListCategories(t *testing.T) {
	var gotInactive bool
	svc := &fakeCategoryService{
		ListCategoriesFn: func(ctx context.Context, includeInactive bool) ([]category.CategoryResponse, error) {
			gotInactive = includeInactive
			return []category.CategoryResponse{{ID: "1", Name: "Attendance", IsActive: true}}, nil
		},
	}
	r := newRouter()
	r.GET("/categories", category.NewHandler(svc).ListCategories)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/categories?include_inactive=true", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, gotInactive)
	assert.Contains(t, w.Body.String(), "Attendance")
}

func TestCategoryHandler_SetCategoryActive(t *testing.T) {
	t.Run("requires is_active", func(t *testing.T) {
		r := newRouter()
		r.PATCH("/categories/:id/active", category.NewHandler(&fakeCategoryService{}).SetCategoryActive)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/categories/x/active", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("false is a valid value", func(t *testing.T) {
		svc := &fakeCategoryService{
			SetCategoryActiveFn: func(ctx context.Context, id string, active bool) (category.CategoryResponse, error) {
				assert.False(t, active)
				return category.CategoryResponse{ID: id, IsActive: active}, nil
			},
		}
		r := newRouter()
		r.PATCH("/categories/:id/active", category.NewHandler(svc).SetCategoryActive)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/categories/abc/active", strings.NewReader(`{"is_active":false}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCategoryHandler_ListRules_NotFound(t *testing.T) {
	svc := &fakeCategoryService{
		ListRulesFn: func(ctx context.Context, categoryID string) ([]category.RuleResponse, error) {
			return nil, categoryerrors.ErrCategoryNotFound
		},
	}
	r := newRouter()
	r.GET("/categories/:id/rules", category.NewHandler(svc).ListRules)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/categories/abc/rules", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
