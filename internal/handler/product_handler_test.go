package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bakeapi/internal/middleware"
	"bakeapi/internal/model"
	"bakeapi/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeCatalogService struct {
	fakeProductService
	products map[int64]*model.Product
	err      error
}

func (f *fakeCatalogService) GetProductByID(_ context.Context, id int64) (*model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.products[id]
	if !ok {
		return nil, service.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeCatalogService) DeleteProduct(_ context.Context, id int64, _ int) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.products[id]; !ok {
		return service.ErrProductNotFound
	}
	delete(f.products, id)
	return nil
}

func newCatalogRouter(svc service.ProductService, callerID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	identityMW := func(c *gin.Context) {
		c.Set(middleware.AuthUserKey, callerID)
		c.Next()
	}
	NewProductHandler(svc).RegisterProductRoutes(api, identityMW)
	return router
}

func TestProductHandler_GetProductByID(t *testing.T) {
	svc := &fakeCatalogService{products: map[int64]*model.Product{
		11: {ID: 11, UserID: 2, Name: "Baguette tradition", Price: 1.30, Status: model.ProductStatusForSale},
	}}
	router := newCatalogRouter(svc, 2)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products/11", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Baguette tradition")
}

func TestProductHandler_GetProductByID_NotFound(t *testing.T) {
	router := newCatalogRouter(&fakeCatalogService{products: map[int64]*model.Product{}}, 2)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products/99", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, w.Body.String())
}

func TestProductHandler_GetProductByID_InvalidID(t *testing.T) {
	router := newCatalogRouter(&fakeCatalogService{}, 2)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductHandler_DeleteProduct_Idempotent404(t *testing.T) {
	svc := &fakeCatalogService{products: map[int64]*model.Product{
		11: {ID: 11, UserID: 2, Name: "Baguette", Price: 1.30, Status: model.ProductStatusForSale},
	}}
	router := newCatalogRouter(svc, 2)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/products/11", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// A second delete of the same id is 404, same as any unknown id
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/products/11", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductHandler_DeleteProduct_Forbidden(t *testing.T) {
	router := newCatalogRouter(&fakeCatalogService{err: service.ErrForbidden}, 3)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/products/11", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Forbidden access"}`, w.Body.String())
}
