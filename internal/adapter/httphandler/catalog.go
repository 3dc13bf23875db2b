package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/motorline/partstore/internal/core/catalog"
	"github.com/motorline/partstore/internal/core/domain"
	"github.com/motorline/partstore/internal/core/port"
)

// GET v1/products?category=&brand=&featured=&inStock=&search=
//	&categories=&brands=&makes=&minPrice=&maxPrice=&stockOnly=&sort=
// GET v1/products/{id}
// GET v1/categories
// GET v1/search?q=

type CatalogHandler struct {
	reader port.CatalogReader
}

func RegisterCatalog(mux *http.ServeMux, reader port.CatalogReader) {
	h := CatalogHandler{reader}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
	mux.HandleFunc("GET /v1/categories", h.GetCategories)
	mux.HandleFunc("GET /v1/search", h.Search)
}

// GetProducts runs the coarse store-level query, then the in-memory
// facet composer and sort strategy over the fetched list, mirroring the
// two-tier narrowing of the storefront.
func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProducts"
	log := slog.With("op", op)

	params := r.URL.Query()

	ps, err := h.reader.BrowseProducts(r.Context(), domain.ProductQuery{
		Category: params.Get("category"),
		Brand:    params.Get("brand"),
		Featured: params.Get("featured") == "true",
		InStock:  params.Get("inStock") == "true",
		Search:   params.Get("search"),
	})
	if err != nil {
		http.Error(w, "failed to fetch products", http.StatusServiceUnavailable)
		log.Error("failed to browse products", "err", err)
		return
	}

	ps = catalog.ComposeFacets(ps, facetCriteria(params))
	ps = catalog.SortProducts(ps, catalog.SortStrategy(params.Get("sort")))

	writeJSON(w, log, ProductsResponse{
		Products: toProductDTOs(ps),
		Total:    len(ps),
	})
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProduct"
	log := slog.With("op", op)

	p, err := h.reader.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to fetch product", http.StatusServiceUnavailable)
		log.Error("failed to get product", "err", err)
		return
	}

	writeJSON(w, log, toProductDTO(p))
}

func (h CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetCategories"
	log := slog.With("op", op)

	cs, err := h.reader.ListCategories(r.Context())
	if err != nil {
		http.Error(w, "failed to fetch categories", http.StatusServiceUnavailable)
		log.Error("failed to list categories", "err", err)
		return
	}

	dtos := make([]Category, len(cs))
	for i, c := range cs {
		dtos[i] = toCategoryDTO(c)
	}
	writeJSON(w, log, dtos)
}

func (h CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.Search"
	log := slog.With("op", op)

	res, err := h.reader.SearchProducts(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		http.Error(w, "failed to search products", http.StatusServiceUnavailable)
		log.Error("failed to search", "err", err)
		return
	}

	writeJSON(w, log, SearchResponse{
		Active:   res.Active,
		Products: toProductDTOs(res.Results),
		Total:    len(res.Results),
	})
}

func facetCriteria(params url.Values) domain.FacetCriteria {
	c := domain.FacetCriteria{
		Categories: params["categories"],
		Brands:     params["brands"],
		Makes:      params["makes"],
		InStock:    params.Get("stockOnly") == "true",
	}

	if minP, err := strconv.ParseFloat(params.Get("minPrice"), 64); err == nil {
		c.MinPrice = &minP
	}
	if maxP, err := strconv.ParseFloat(params.Get("maxPrice"), 64); err == nil {
		c.MaxPrice = &maxP
	}
	return c
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}
