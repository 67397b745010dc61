package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Dan9191/unidash/internal/export"
	"github.com/Dan9191/unidash/internal/service"
	"github.com/Dan9191/unidash/internal/session"
	"github.com/Dan9191/unidash/internal/state"
	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Healthz reports that the process is serving
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// fail maps err to a status code and writes it as {"error": msg}.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.Errorf("%s %s failed: %v", r.Method, r.URL.Path, err)
		writeJSON(w, status, map[string]string{"error": "internal error"})
		return
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, state.ErrEmptyTitle),
		errors.Is(err, state.ErrInvalidFilter),
		errors.Is(err, state.ErrEmptyDescription),
		errors.Is(err, state.ErrInvalidAmount),
		errors.Is(err, state.ErrInvalidType),
		errors.Is(err, state.ErrEmptyNote),
		errors.Is(err, state.ErrEmptyName),
		errors.Is(err, state.ErrInvalidTheme),
		errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrAvatarType),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidZone),
		errors.Is(err, service.ErrNoRecipient),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, state.ErrNoteNotFound),
		errors.Is(err, export.ErrNoData):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, service.ErrAvatarTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, service.ErrMailDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

var errBadRequest = errors.New("malformed request body")

// decode reads a JSON body into v.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		return errBadRequest
	}
	return nil
}

// sessionOf returns the session bound by the auth middleware. A missing
// session yields the zero value, which every service call rejects.
func sessionOf(r *http.Request) session.Session {
	sess, _ := session.FromContext(r.Context())
	return sess
}
