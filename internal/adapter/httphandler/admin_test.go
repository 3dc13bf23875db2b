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

type MockCatalogAdmin struct {
	mock.Mock
}

func (m *MockCatalogAdmin) CreateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockCatalogAdmin) UpdateProduct(
	ctx context.Context, p domain.Product,
) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockCatalogAdmin) DeleteProduct(
	ctx context.Context, id string,
) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalogAdmin) CreateCategory(
	ctx context.Context, c domain.Category,
) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCatalogAdmin) UpdateCategory(
	ctx context.Context, c domain.Category,
) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCatalogAdmin) DeleteCategory(
	ctx context.Context, slug string,
) error {
	return m.Called(ctx, slug).Error(0)
}

type MockInquiryAccepter struct {
	mock.Mock
}

func (m *MockInquiryAccepter) AcceptInquiry(
	ctx context.Context, inq domain.Inquiry,
) (domain.Inquiry, error) {
	args := m.Called(ctx, inq)
	return args.Get(0).(domain.Inquiry), args.Error(1)
}

func newAdminServer(admin *MockCatalogAdmin) *http.ServeMux {
	mux := http.NewServeMux()
	httphandler.RegisterAdmin(mux, admin)
	return mux
}

func TestAdminProducts(t *testing.T) {
	t.Run("CreateMapsNestedDTO", func(t *testing.T) {
		admin := new(MockCatalogAdmin)
		admin.On("CreateProduct", mock.Anything,
			mock.MatchedBy(func(p domain.Product) bool {
				return p.Name == "Engine Mount" &&
					len(p.Specifications) == 1 &&
					p.Specifications[0].Name == "Position" &&
					len(p.Compatibility) == 1 &&
					p.Compatibility[0].Make == "Toyota"
			})).
			Return(domain.Product{ProductID: "p9", Name: "Engine Mount"}, nil)

		body := `{
			"name": "Engine Mount",
			"partNumber": "EM-3301",
			"brand": "Anchor",
			"category": "engine",
			"price": 38.75,
			"specifications": [{"key": "Position", "value": "Front"}],
			"compatibility": [
				{"make": "Toyota", "model": "Corolla", "yearStart": 2014, "yearEnd": 2019}
			]
		}`

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/products",
			strings.NewReader(body))
		newAdminServer(admin).ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var dto httphandler.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
		assert.Equal(t, "p9", dto.ID)
		admin.AssertExpectations(t)
	})

	t.Run("CreateRequiresFields", func(t *testing.T) {
		admin := new(MockCatalogAdmin)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/products",
			strings.NewReader(`{"name": "No Part Number"}`))
		newAdminServer(admin).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		admin.AssertNotCalled(t, "CreateProduct")
	})

	t.Run("UpdateUsesPathID", func(t *testing.T) {
		admin := new(MockCatalogAdmin)
		admin.On("UpdateProduct", mock.Anything,
			mock.MatchedBy(func(p domain.Product) bool {
				return p.ProductID == "p1"
			})).Return(nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/v1/admin/products/p1",
			strings.NewReader(`{"name": "Front Brake Rotor", "partNumber": "BR-4410", "brand": "Brembo"}`))
		newAdminServer(admin).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		admin.AssertExpectations(t)
	})

	t.Run("UpdateMissingProduct", func(t *testing.T) {
		admin := new(MockCatalogAdmin)
		admin.On("UpdateProduct", mock.Anything, mock.Anything).
			Return(domain.ErrNotFound)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/v1/admin/products/ghost",
			strings.NewReader(`{"name": "x"}`))
		newAdminServer(admin).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		admin := new(MockCatalogAdmin)
		admin.On("DeleteProduct", mock.Anything, "p1").Return(nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/v1/admin/products/p1", nil)
		newAdminServer(admin).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestAdminCategories(t *testing.T) {
	t.Run("CreateRequiresSlugAndName", func(t *testing.T) {
		admin := new(MockCatalogAdmin)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/categories",
			strings.NewReader(`{"slug": "brakes"}`))
		newAdminServer(admin).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		admin := new(MockCatalogAdmin)
		admin.On("DeleteCategory", mock.Anything, "ghost").
			Return(domain.ErrNotFound)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete,
			"/v1/admin/categories/ghost", nil)
		newAdminServer(admin).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPostInquiry(t *testing.T) {
	newServer := func(a *MockInquiryAccepter) *http.ServeMux {
		mux := http.NewServeMux()
		httphandler.RegisterInquiries(mux, a)
		return mux
	}

	t.Run("Accepted", func(t *testing.T) {
		accepter := new(MockInquiryAccepter)
		accepter.On("AcceptInquiry", mock.Anything,
			mock.MatchedBy(func(inq domain.Inquiry) bool {
				return inq.Kind == domain.InquiryRFQ && inq.Quantity == 12
			})).
			Return(domain.Inquiry{InquiryID: "inq-1"}, nil)

		body := `{
			"kind": "rfq",
			"name": "A. Buyer",
			"email": "buyer@example.com",
			"productId": "p1",
			"quantity": 12
		}`

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/inquiries",
			strings.NewReader(body))
		newServer(accepter).ServeHTTP(rec, req)

		require.Equal(t, http.StatusAccepted, rec.Code)

		var resp httphandler.InquiryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "inq-1", resp.InquiryID)
	})

	t.Run("UnknownKindRejected", func(t *testing.T) {
		accepter := new(MockInquiryAccepter)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/inquiries",
			strings.NewReader(`{"kind": "spam", "name": "x", "email": "x@y.z"}`))
		newServer(accepter).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		accepter.AssertNotCalled(t, "AcceptInquiry")
	})
}
