package port

import (
	"context"

	"github.com/motorline/partstore/internal/core/domain"
)

// Outbound: collection store.

type ProductsRepository interface {
	FetchProducts(context.Context, domain.StoreQuery) ([]domain.Product, error)
	FetchProductByID(ctx context.Context, id string) (domain.Product, error)
	CreateProduct(context.Context, domain.Product) (domain.Product, error)
	UpdateProduct(context.Context, domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

type CategoriesRepository interface {
	FetchCategories(context.Context) ([]domain.Category, error)
	ResolveCategoryID(ctx context.Context, slug string) (string, error)
	CreateCategory(context.Context, domain.Category) error
	UpdateCategory(context.Context, domain.Category) error
	DeleteCategory(ctx context.Context, slug string) error
}

// FallbackCatalog supplies the static product and category set used
// when the store is unreachable.
type FallbackCatalog interface {
	Products() []domain.Product
	Categories() []domain.Category
}

// Outbound: event stream.

type InquiryProducer interface {
	ProduceInquiry(context.Context, domain.Inquiry) error
}

type ProductUpdateProducer interface {
	ProduceProductUpdate(context.Context, domain.Product) error
}

// Inbound: operations exposed to the HTTP layer.

type CatalogReader interface {
	BrowseProducts(context.Context, domain.ProductQuery) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	ListCategories(context.Context) ([]domain.Category, error)
	SearchProducts(ctx context.Context, query string) (domain.SearchResult, error)
}

type CatalogAdmin interface {
	CreateProduct(context.Context, domain.Product) (domain.Product, error)
	UpdateProduct(context.Context, domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
	CreateCategory(context.Context, domain.Category) error
	UpdateCategory(context.Context, domain.Category) error
	DeleteCategory(ctx context.Context, slug string) error
}

type InquiryAccepter interface {
	AcceptInquiry(context.Context, domain.Inquiry) (domain.Inquiry, error)
}
