package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Routes mounts the API on r. Everything except signup, login and the health
// check sits behind auth.
func (h *Handler) Routes(r *mux.Router, auth mux.MiddlewareFunc) {
	// Public routes
	r.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/healthz", h.Healthz).Methods(http.MethodGet)

	// Protected routes
	p := r.PathPrefix("/").Subrouter()
	p.Use(auth)
	p.HandleFunc("/logout", h.Logout).Methods(http.MethodPost)
	p.HandleFunc("/dashboard", h.Dashboard).Methods(http.MethodGet)

	p.HandleFunc("/tasks", h.ListTasks).Methods(http.MethodGet)
	p.HandleFunc("/tasks", h.AddTask).Methods(http.MethodPost)
	p.HandleFunc("/tasks/stats", h.TaskStats).Methods(http.MethodGet)
	p.HandleFunc("/tasks/order", h.ReorderTasks).Methods(http.MethodPut)
	p.HandleFunc("/tasks/{id}/toggle", h.ToggleTask).Methods(http.MethodPatch)
	p.HandleFunc("/tasks/{id}", h.DeleteTask).Methods(http.MethodDelete)

	p.HandleFunc("/expenses", h.ListEntries).Methods(http.MethodGet)
	p.HandleFunc("/expenses", h.AddEntry).Methods(http.MethodPost)
	p.HandleFunc("/expenses/summary", h.Summary).Methods(http.MethodGet)
	p.HandleFunc("/expenses/export", h.ExportCSV).Methods(http.MethodGet)
	p.HandleFunc("/expenses/export/email", h.EmailExport).Methods(http.MethodPost)
	p.HandleFunc("/expenses/{id}", h.DeleteEntry).Methods(http.MethodDelete)

	p.HandleFunc("/notes", h.ListNotes).Methods(http.MethodGet)
	p.HandleFunc("/notes", h.CreateNote).Methods(http.MethodPost)
	p.HandleFunc("/notes/quick", h.QuickNote).Methods(http.MethodGet)
	p.HandleFunc("/notes/quick", h.SetQuickNote).Methods(http.MethodPut)
	p.HandleFunc("/notes/{id}", h.UpdateNote).Methods(http.MethodPut)
	p.HandleFunc("/notes/{id}", h.DeleteNote).Methods(http.MethodDelete)
	p.HandleFunc("/notes/{id}/html", h.NoteHTML).Methods(http.MethodGet)

	p.HandleFunc("/profile", h.GetProfile).Methods(http.MethodGet)
	p.HandleFunc("/profile", h.UpdateProfile).Methods(http.MethodPut)
	p.HandleFunc("/profile/avatar", h.UploadAvatar).Methods(http.MethodPost)
	p.HandleFunc("/theme", h.GetTheme).Methods(http.MethodGet)
	p.HandleFunc("/theme", h.SetTheme).Methods(http.MethodPut)
	p.HandleFunc("/theme/toggle", h.ToggleTheme).Methods(http.MethodPost)
	p.HandleFunc("/settings", h.GetSettings).Methods(http.MethodGet)
	p.HandleFunc("/settings", h.SaveSettings).Methods(http.MethodPut)
	p.HandleFunc("/data", h.ClearData).Methods(http.MethodDelete)
	p.HandleFunc("/weather", h.Weather).Methods(http.MethodGet)
}
