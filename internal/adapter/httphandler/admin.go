package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/motorline/partstore/internal/core/domain"
	"github.com/motorline/partstore/internal/core/port"
)

// POST   v1/admin/products          JSON (201 Created, 400, 500)
// PUT    v1/admin/products/{id}     JSON (200 OK, 400, 404, 500)
// DELETE v1/admin/products/{id}          (204 No content, 404, 500)
// POST   v1/admin/categories        JSON (201 Created, 400, 500)
// PUT    v1/admin/categories/{slug} JSON (200 OK, 400, 404, 500)
// DELETE v1/admin/categories/{slug}      (204 No content, 404, 500)
//
// Authentication sits in front of this surface, outside the service.

type AdminHandler struct {
	admin port.CatalogAdmin
}

func RegisterAdmin(mux *http.ServeMux, admin port.CatalogAdmin) {
	h := AdminHandler{admin}
	mux.HandleFunc("POST /v1/admin/products", h.PostProduct)
	mux.HandleFunc("PUT /v1/admin/products/{id}", h.PutProduct)
	mux.HandleFunc("DELETE /v1/admin/products/{id}", h.DeleteProduct)
	mux.HandleFunc("POST /v1/admin/categories", h.PostCategory)
	mux.HandleFunc("PUT /v1/admin/categories/{slug}", h.PutCategory)
	mux.HandleFunc("DELETE /v1/admin/categories/{slug}", h.DeleteCategory)
}

func (h AdminHandler) PostProduct(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.PostProduct"
	log := slog.With("op", op)

	var dto Product
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}
	if dto.Name == "" || dto.PartNumber == "" || dto.Brand == "" {
		http.Error(w, "name, partNumber and brand are required",
			http.StatusBadRequest)
		return
	}

	created, err := h.admin.CreateProduct(r.Context(), dto.toDomain())
	if err != nil {
		http.Error(w, "failed to create product", http.StatusInternalServerError)
		log.Error("failed to create product", "err", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toProductDTO(created)); err != nil {
		log.Error("failed to write response body", "err", err)
		return
	}

	log.Info("product created", "productID", created.ProductID)
}

func (h AdminHandler) PutProduct(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.PutProduct"
	log := slog.With("op", op)

	var dto Product
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	p := dto.toDomain()
	p.ProductID = r.PathValue("id")

	if err := h.admin.UpdateProduct(r.Context(), p); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to update product", http.StatusInternalServerError)
		log.Error("failed to update product", "err", err)
		return
	}

	writeJSON(w, log, toProductDTO(p))
	log.Info("product updated", "productID", p.ProductID)
}

func (h AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.DeleteProduct"
	log := slog.With("op", op)

	id := r.PathValue("id")
	if err := h.admin.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to delete product", http.StatusInternalServerError)
		log.Error("failed to delete product", "err", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	log.Info("product deleted", "productID", id)
}

func (h AdminHandler) PostCategory(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.PostCategory"
	log := slog.With("op", op)

	var dto Category
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}
	if dto.Slug == "" || dto.Name == "" {
		http.Error(w, "slug and name are required", http.StatusBadRequest)
		return
	}

	if err := h.admin.CreateCategory(r.Context(), dto.toDomain()); err != nil {
		http.Error(w, "failed to create category", http.StatusInternalServerError)
		log.Error("failed to create category", "err", err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	log.Info("category created", "slug", dto.Slug)
}

func (h AdminHandler) PutCategory(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.PutCategory"
	log := slog.With("op", op)

	var dto Category
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	c := dto.toDomain()
	c.Slug = r.PathValue("slug")

	if err := h.admin.UpdateCategory(r.Context(), c); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to update category", http.StatusInternalServerError)
		log.Error("failed to update category", "err", err)
		return
	}

	writeJSON(w, log, toCategoryDTO(c))
	log.Info("category updated", "slug", c.Slug)
}

func (h AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.DeleteCategory"
	log := slog.With("op", op)

	slug := r.PathValue("slug")
	if err := h.admin.DeleteCategory(r.Context(), slug); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to delete category", http.StatusInternalServerError)
		log.Error("failed to delete category", "err", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	log.Info("category deleted", "slug", slug)
}
