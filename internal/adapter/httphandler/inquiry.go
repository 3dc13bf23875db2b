package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/motorline/partstore/internal/core/domain"
	"github.com/motorline/partstore/internal/core/port"
)

// POST v1/inquiries JSON (202 Accepted, 400 Bad request, 503)

type InquiryHandler struct {
	accepter port.InquiryAccepter
}

func RegisterInquiries(mux *http.ServeMux, accepter port.InquiryAccepter) {
	h := InquiryHandler{accepter}
	mux.HandleFunc("POST /v1/inquiries", h.PostInquiry)
}

func (h InquiryHandler) PostInquiry(w http.ResponseWriter, r *http.Request) {
	const op = "InquiryHandler.PostInquiry"
	log := slog.With("op", op)

	var dto Inquiry
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if dto.Name == "" || dto.Email == "" {
		http.Error(w, "name and email are required", http.StatusBadRequest)
		return
	}
	switch domain.InquiryKind(dto.Kind) {
	case domain.InquiryContact, domain.InquiryRFQ:
	default:
		http.Error(w, "kind must be contact or rfq", http.StatusBadRequest)
		return
	}

	inq, err := h.accepter.AcceptInquiry(r.Context(), dto.toDomain())
	if err != nil {
		http.Error(w, "failed to accept inquiry", http.StatusServiceUnavailable)
		log.Error("failed to accept inquiry", "err", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	if err := json.NewEncoder(w).Encode(InquiryResponse{inq.InquiryID}); err != nil {
		log.Error("failed to write response body", "err", err)
		return
	}

	log.Info("inquiry accepted", "inquiryID", inq.InquiryID, "kind", inq.Kind)
}
