package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type quickNoteRequest struct {
	Text string `json:"text"`
}

// ListNotes handles GET /notes?q=
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.Notes(r.Context(), sessionOf(r), r.URL.Query().Get("q"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

// CreateNote handles POST /notes
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	note, err := h.svc.CreateNote(r.Context(), sessionOf(r), req.Title, req.Content)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

// UpdateNote handles PUT /notes/{id}
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	note, err := h.svc.UpdateNote(r.Context(), sessionOf(r), mux.Vars(r)["id"], req.Title, req.Content)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// DeleteNote handles DELETE /notes/{id}
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteNote(r.Context(), sessionOf(r), mux.Vars(r)["id"]); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// NoteHTML handles GET /notes/{id}/html
func (h *Handler) NoteHTML(w http.ResponseWriter, r *http.Request) {
	html, err := h.svc.NoteHTML(r.Context(), sessionOf(r), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// QuickNote handles GET /notes/quick
func (h *Handler) QuickNote(w http.ResponseWriter, r *http.Request) {
	note, err := h.svc.QuickNote(r.Context(), sessionOf(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// SetQuickNote handles PUT /notes/quick
func (h *Handler) SetQuickNote(w http.ResponseWriter, r *http.Request) {
	var req quickNoteRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	note, err := h.svc.SetQuickNote(r.Context(), sessionOf(r), req.Text)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}
