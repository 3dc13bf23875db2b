package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/motorline/partstore/internal/core/catalog"
	"github.com/motorline/partstore/internal/core/domain"
	"github.com/motorline/partstore/internal/core/port"
	"github.com/motorline/partstore/pkg/retry"
)

var _ port.CatalogReader = (*Service)(nil)
var _ port.CatalogAdmin = (*Service)(nil)
var _ port.InquiryAccepter = (*Service)(nil)

const fetchAttempts = 2

// Service is the catalog query engine plus the admin and inquiry
// operations built around it. Reads degrade gracefully: when the store
// is unreachable the last-known-good snapshot is served, and before the
// first successful fetch the static fallback catalog is.
type Service struct {
	products   port.ProductsRepository
	categories port.CategoriesRepository
	fallback   port.FallbackCatalog
	inquiries  port.InquiryProducer
	updates    port.ProductUpdateProducer

	mu       sync.RWMutex
	snapshot []domain.Product
}

func New(
	products port.ProductsRepository,
	categories port.CategoriesRepository,
	fallback port.FallbackCatalog,
	inquiries port.InquiryProducer,
	updates port.ProductUpdateProducer,
) *Service {
	return &Service{
		products:   products,
		categories: categories,
		fallback:   fallback,
		inquiries:  inquiries,
		updates:    updates,
	}
}

// BrowseProducts runs the coarse storage-level fetch. An unresolvable
// category slug degrades to "no category filter", never to an empty
// page; a store failure degrades to the fallback list.
func (s *Service) BrowseProducts(
	ctx context.Context, q domain.ProductQuery,
) ([]domain.Product, error) {
	const op = "Service.BrowseProducts"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sq := domain.StoreQuery{
		CategoryID: s.resolveCategory(ctx, q.Category),
		Brand:      q.Brand,
		Featured:   q.Featured,
		InStock:    q.InStock,
		Search:     q.Search,
	}

	ps, err := retry.DoWithResult(ctx, s.retryConfig(),
		func() ([]domain.Product, error) {
			return s.products.FetchProducts(ctx, sq)
		})
	if err != nil {
		log.Error("store fetch failed, serving fallback", "err", err)
		return s.fallbackProducts(), nil
	}

	if q.IsZero() {
		s.keepSnapshot(ps)
	}
	return ps, nil
}

// resolveCategory maps a slug to its storage id. Stale or unknown slugs
// return an empty id so the category filter is silently skipped.
func (s *Service) resolveCategory(ctx context.Context, slug string) string {
	const op = "Service.resolveCategory"

	if slug == "" {
		return ""
	}

	id, err := s.categories.ResolveCategoryID(ctx, slug)
	if err != nil {
		slog.Warn("category lookup failed, filter skipped",
			"op", op, "slug", slug, "err", err)
		return ""
	}
	return id
}

func (s *Service) GetProduct(
	ctx context.Context, id string,
) (domain.Product, error) {
	const op = "Service.GetProduct"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.products.FetchProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Product{}, fmt.Errorf("%s: %w", op, err)
		}

		log.Error("store fetch failed, searching fallback", "err", err)
		for _, fp := range s.fallbackProducts() {
			if fp.ProductID == id {
				return fp, nil
			}
		}
		return domain.Product{}, fmt.Errorf("%s: %w", op, domain.ErrUnavailable)
	}
	return p, nil
}

func (s *Service) ListCategories(
	ctx context.Context,
) ([]domain.Category, error) {
	const op = "Service.ListCategories"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cs, err := s.categories.FetchCategories(ctx)
	if err != nil {
		log.Error("store fetch failed, serving fallback", "err", err)
		return s.fallback.Categories(), nil
	}
	return cs, nil
}

// SearchProducts fetches the full catalog and applies the wide-field
// search matcher over it. A blank query yields an inactive result, not
// an error.
func (s *Service) SearchProducts(
	ctx context.Context, query string,
) (domain.SearchResult, error) {
	const op = "Service.SearchProducts"

	ps, err := s.BrowseProducts(ctx, domain.ProductQuery{})
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("%s: %w", op, err)
	}
	return catalog.MatchSearch(ps, query), nil
}

func (s *Service) CreateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	const op = "Service.CreateProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.products.CreateProduct(ctx, p)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	s.emitProductUpdate(ctx, op, created)
	return created, nil
}

func (s *Service) UpdateProduct(ctx context.Context, p domain.Product) error {
	const op = "Service.UpdateProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.products.UpdateProduct(ctx, p); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.emitProductUpdate(ctx, op, p)
	return nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	const op = "Service.DeleteProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.products.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Service) CreateCategory(ctx context.Context, c domain.Category) error {
	const op = "Service.CreateCategory"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.categories.CreateCategory(ctx, c); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Service) UpdateCategory(ctx context.Context, c domain.Category) error {
	const op = "Service.UpdateCategory"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.categories.UpdateCategory(ctx, c); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Service) DeleteCategory(ctx context.Context, slug string) error {
	const op = "Service.DeleteCategory"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.categories.DeleteCategory(ctx, slug); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// AcceptInquiry assigns the inquiry an id and hands it to the event
// stream. Producing is the operation itself, so a produce failure is
// the caller's failure.
func (s *Service) AcceptInquiry(
	ctx context.Context, inq domain.Inquiry,
) (domain.Inquiry, error) {
	const op = "Service.AcceptInquiry"

	if err := ctx.Err(); err != nil {
		return domain.Inquiry{}, fmt.Errorf("%s: %w", op, err)
	}

	inq.InquiryID = uuid.NewString()
	if err := s.inquiries.ProduceInquiry(ctx, inq); err != nil {
		return domain.Inquiry{}, fmt.Errorf("%s: %w", op, err)
	}
	return inq, nil
}

// emitProductUpdate is best-effort: the write already committed, so a
// produce failure is logged and swallowed.
func (s *Service) emitProductUpdate(
	ctx context.Context, op string, p domain.Product,
) {
	if err := s.updates.ProduceProductUpdate(ctx, p); err != nil {
		slog.Error("failed to emit product update",
			"op", op, "productID", p.ProductID, "err", err)
	}
}

func (s *Service) keepSnapshot(ps []domain.Product) {
	s.mu.Lock()
	s.snapshot = ps
	s.mu.Unlock()
}

func (s *Service) fallbackProducts() []domain.Product {
	s.mu.RLock()
	snap := s.snapshot
	s.mu.RUnlock()

	if snap != nil {
		return snap
	}
	return s.fallback.Products()
}

func (s *Service) retryConfig() retry.Config {
	return retry.Config{
		MaxAttempts: fetchAttempts,
		Backoff:     retry.LinearBackoff(50 * time.Millisecond),
	}
}
