package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/festivepros/inquiry/internal/handoff"
	"github.com/festivepros/inquiry/internal/inquiry"
)

// SelectedProduct handles GET /api/products/selected: it serves the product
// snapshot currently in the hand-off store. 404 when nothing has been
// selected or the stored value does not parse.
func (h *Handler) SelectedProduct(w http.ResponseWriter, r *http.Request) {
	raw, err := h.store.Get(r.Context(), h.cfg.Inquiry.HandoffKey)
	if err != nil {
		if !errors.Is(err, handoff.ErrNotFound) {
			h.log.Error().Err(err).Msg("failed to read selected product")
		}
		http.Error(w, "no product selected", http.StatusNotFound)
		return
	}

	p, err := inquiry.ParseProduct(raw)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to parse selected product")
		http.Error(w, "no product selected", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// SelectProduct handles PUT /api/products/selected: the listing side stashes
// its selection for the inquiry flow to pick up.
func (h *Handler) SelectProduct(w http.ResponseWriter, r *http.Request) {
	var p inquiry.ProductSnapshot
	if err := readJSON(r, &p); err != nil {
		http.Error(w, "invalid product", http.StatusBadRequest)
		return
	}
	if p.Price < 0 {
		http.Error(w, "invalid product", http.StatusBadRequest)
		return
	}

	raw, err := encodeProduct(p)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to encode product")
		http.Error(w, "invalid product", http.StatusBadRequest)
		return
	}

	if err := h.store.Put(r.Context(), h.cfg.Inquiry.HandoffKey, raw); err != nil {
		h.log.Error().Err(err).Msg("failed to store selected product")
		http.Error(w, "failed to store selection", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func encodeProduct(p inquiry.ProductSnapshot) (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
