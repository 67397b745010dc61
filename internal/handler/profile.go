package handler

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/Dan9191/unidash/internal/models"
	"github.com/Dan9191/unidash/internal/service"
)

type themeRequest struct {
	Theme string `json:"theme"`
}

type themeResponse struct {
	Theme string `json:"theme"`
}

// GetProfile handles GET /profile
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.Profile(r.Context(), sessionOf(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// UpdateProfile handles PUT /profile
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req service.ProfileUpdate
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	profile, err := h.svc.UpdateProfile(r.Context(), sessionOf(r), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// UploadAvatar handles POST /profile/avatar. The image is either the
// "avatar" field of a multipart form or the raw request body.
func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, service.MaxAvatarBytes+64<<10)

	var src io.Reader = r.Body
	if mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mediaType == "multipart/form-data" {
		file, _, err := r.FormFile("avatar")
		if err != nil {
			h.fail(w, r, avatarReadError(err))
			return
		}
		defer file.Close()
		src = file
	}

	data, err := io.ReadAll(io.LimitReader(src, service.MaxAvatarBytes+1))
	if err != nil {
		h.fail(w, r, avatarReadError(err))
		return
	}
	profile, err := h.svc.UploadAvatar(r.Context(), sessionOf(r), data)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// avatarReadError maps a failure to read the upload to the error reported.
func avatarReadError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return service.ErrAvatarTooLarge
	}
	return errBadRequest
}

// GetTheme handles GET /theme
func (h *Handler) GetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.svc.Theme(r.Context(), sessionOf(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, themeResponse{Theme: theme})
}

// SetTheme handles PUT /theme
func (h *Handler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	theme, err := h.svc.SetTheme(r.Context(), sessionOf(r), req.Theme)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, themeResponse{Theme: theme})
}

// ToggleTheme handles POST /theme/toggle
func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.svc.ToggleTheme(r.Context(), sessionOf(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, themeResponse{Theme: theme})
}

// GetSettings handles GET /settings
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.Settings(r.Context(), sessionOf(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// SaveSettings handles PUT /settings
func (h *Handler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var req models.Settings
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	settings, err := h.svc.SaveSettings(r.Context(), sessionOf(r), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// ClearData handles DELETE /data
func (h *Handler) ClearData(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearData(r.Context(), sessionOf(r)); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Weather handles GET /weather?city=
func (h *Handler) Weather(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Weather(r.Context(), sessionOf(r), r.URL.Query().Get("city"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
