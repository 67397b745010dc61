package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

type taskRequest struct {
	Title string `json:"title"`
}

type orderRequest struct {
	IDs []string `json:"ids"`
}

// ListTasks handles GET /tasks?q=&filter=
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tasks, err := h.svc.Tasks(r.Context(), sessionOf(r), q.Get("q"), q.Get("filter"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// TaskStats handles GET /tasks/stats
func (h *Handler) TaskStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.TaskStats(r.Context(), sessionOf(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// AddTask handles POST /tasks
func (h *Handler) AddTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	task, err := h.svc.AddTask(r.Context(), sessionOf(r), req.Title)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

// ToggleTask handles PATCH /tasks/{id}/toggle
func (h *Handler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.svc.ToggleTask(r.Context(), sessionOf(r), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/{id}
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteTask(r.Context(), sessionOf(r), mux.Vars(r)["id"]); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReorderTasks handles PUT /tasks/order
func (h *Handler) ReorderTasks(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	tasks, err := h.svc.ReorderTasks(r.Context(), sessionOf(r), req.IDs)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}
