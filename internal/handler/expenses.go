package handler

import (
	"fmt"
	"net/http"

	"github.com/Dan9191/unidash/internal/export"
	"github.com/Dan9191/unidash/internal/state"
	"github.com/gorilla/mux"
)

type entryRequest struct {
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
}

// ListEntries handles GET /expenses
func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.Entries(r.Context(), sessionOf(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// AddEntry handles POST /expenses
func (h *Handler) AddEntry(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	entry, err := h.svc.AddEntry(r.Context(), sessionOf(r), state.EntryInput{
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
		Type:        req.Type,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// DeleteEntry handles DELETE /expenses/{id}
func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteEntry(r.Context(), sessionOf(r), mux.Vars(r)["id"]); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Summary handles GET /expenses/summary
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context(), sessionOf(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// ExportCSV handles GET /expenses/export
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	sheet, err := h.svc.ExportCSV(r.Context(), sessionOf(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(sheet)
}

// EmailExport handles POST /expenses/export/email
func (h *Handler) EmailExport(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.EmailExport(r.Context(), sessionOf(r)); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "sent"})
}
