package httphandler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/motorline/partstore/internal/adapter/httphandler"
	"github.com/motorline/partstore/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogReader struct {
	mock.Mock
}

func (m *MockCatalogReader) BrowseProducts(
	ctx context.Context, q domain.ProductQuery,
) ([]domain.Product, error) {
	args := m.Called(ctx, q)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

func (m *MockCatalogReader) GetProduct(
	ctx context.Context, id string,
) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockCatalogReader) ListCategories(
	ctx context.Context,
) ([]domain.Category, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]domain.Category)
	return cs, args.Error(1)
}

func (m *MockCatalogReader) SearchProducts(
	ctx context.Context, query string,
) (domain.SearchResult, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.SearchResult), args.Error(1)
}

func catalogProducts() []domain.Product {
	return []domain.Product{
		{ProductID: "p1", Name: "Front Brake Rotor", PartNumber: "BR-4410",
			Category: "brakes", Brand: "Brembo", Price: 89.99, InStock: true},
		{ProductID: "p2", Name: "Oil Filter", PartNumber: "OF-7317",
			Category: "filters", Brand: "Bosch", Price: 12.99, InStock: true},
		{ProductID: "p3", Name: "Strut Mount", PartNumber: "SM-9042",
			Category: "suspension", Brand: "KYB", Price: 42.30, InStock: false},
	}
}

func newCatalogServer(reader *MockCatalogReader) *http.ServeMux {
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, reader)
	return mux
}

func TestGetProducts(t *testing.T) {
	t.Run("PlainListing", func(t *testing.T) {
		reader := new(MockCatalogReader)
		reader.On("BrowseProducts", mock.Anything, domain.ProductQuery{}).
			Return(catalogProducts(), nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		newCatalogServer(reader).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp httphandler.ProductsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.Total)
		assert.Equal(t, "p1", resp.Products[0].ID)
	})

	t.Run("QueryParamsReachEngine", func(t *testing.T) {
		reader := new(MockCatalogReader)
		want := domain.ProductQuery{
			Category: "brakes", Brand: "Brembo",
			Featured: true, InStock: true, Search: "rotor",
		}
		reader.On("BrowseProducts", mock.Anything, want).
			Return(catalogProducts()[:1], nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/v1/products?category=brakes&brand=Brembo&featured=true&inStock=true&search=rotor",
			nil)
		newCatalogServer(reader).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		reader.AssertExpectations(t)
	})

	t.Run("FacetsAndSortApplied", func(t *testing.T) {
		reader := new(MockCatalogReader)
		reader.On("BrowseProducts", mock.Anything, domain.ProductQuery{}).
			Return(catalogProducts(), nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/v1/products?categories=brakes&categories=filters&sort=price-asc",
			nil)
		newCatalogServer(reader).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp httphandler.ProductsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, 2, resp.Total)
		assert.Equal(t, "p2", resp.Products[0].ID)
		assert.Equal(t, "p1", resp.Products[1].ID)
	})

	t.Run("HalfOpenPricePairIgnored", func(t *testing.T) {
		reader := new(MockCatalogReader)
		reader.On("BrowseProducts", mock.Anything, domain.ProductQuery{}).
			Return(catalogProducts(), nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/v1/products?minPrice=50", nil)
		newCatalogServer(reader).ServeHTTP(rec, req)

		var resp httphandler.ProductsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.Total)
	})

	t.Run("ReaderFailure", func(t *testing.T) {
		reader := new(MockCatalogReader)
		reader.On("BrowseProducts", mock.Anything, mock.Anything).
			Return(nil, context.DeadlineExceeded)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		newCatalogServer(reader).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestGetProductByID(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		reader := new(MockCatalogReader)
		reader.On("GetProduct", mock.Anything, "p1").
			Return(catalogProducts()[0], nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/products/p1", nil)
		newCatalogServer(reader).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var dto httphandler.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
		assert.Equal(t, "BR-4410", dto.PartNumber)
	})

	t.Run("NotFound", func(t *testing.T) {
		reader := new(MockCatalogReader)
		reader.On("GetProduct", mock.Anything, "ghost").
			Return(domain.Product{}, domain.ErrNotFound)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/products/ghost", nil)
		newCatalogServer(reader).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSearch(t *testing.T) {
	t.Run("ActiveWithResults", func(t *testing.T) {
		reader := new(MockCatalogReader)
		reader.On("SearchProducts", mock.Anything, "rotor").
			Return(domain.SearchResult{
				Active:  true,
				Results: catalogProducts()[:1],
			}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/search?q=rotor", nil)
		newCatalogServer(reader).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp httphandler.SearchResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Active)
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("BlankQueryInactive", func(t *testing.T) {
		reader := new(MockCatalogReader)
		reader.On("SearchProducts", mock.Anything, "").
			Return(domain.SearchResult{}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/search", nil)
		newCatalogServer(reader).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp httphandler.SearchResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Active)
		assert.Zero(t, resp.Total)
	})
}

func TestAllowJSON(t *testing.T) {
	t.Run("RejectsNonJSONBody", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/inquiries",
			strings.NewReader("name=x"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		httphandler.AllowJSON(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}
