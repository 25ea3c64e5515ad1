package httphandler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET  /v1/auth/forms/{mode}
// POST /v1/auth/login
// POST /v1/auth/register
// POST /v1/auth/reset-password
// POST /v1/auth/verify-email

var authModes = map[string]domain.AuthMode{
	"login":          domain.ModeLogin,
	"register":       domain.ModeRegister,
	"reset-password": domain.ModeResetPassword,
	"verify-email":   domain.ModeEmailVerification,
}

type AuthHandler struct {
	flow port.AuthFlow
}

func RegisterAuth(mux *http.ServeMux, flow port.AuthFlow) {
	h := AuthHandler{flow}
	mux.HandleFunc("GET /v1/auth/forms/{mode}", h.GetForm)
	mux.HandleFunc("POST /v1/auth/{mode}", h.PostSubmit)
}

func (h AuthHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.GetForm"
	log := slog.With("op", op)

	mode, ok := authModes[r.PathValue("mode")]
	if !ok {
		writeError(w, log, fmt.Errorf("unknown auth mode: %w", domain.ErrNotFound))
		return
	}

	meta := h.flow.Form(mode)

	view := AuthFormView{
		Mode:        string(mode),
		Title:       meta.Title,
		ButtonTitle: meta.ButtonTitle,
	}
	for _, f := range meta.Fields {
		view.Fields = append(view.Fields, string(f))
	}
	writeJSON(w, log, http.StatusOK, view)
}

func (h AuthHandler) PostSubmit(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.PostSubmit"
	log := slog.With("op", op)

	mode, ok := authModes[r.PathValue("mode")]
	if !ok {
		writeError(w, log, fmt.Errorf("unknown auth mode: %w", domain.ErrNotFound))
		return
	}

	var req AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	form := domain.AuthForm{
		Username:         req.Username,
		Email:            req.Email,
		Password:         req.Password,
		VerificationCode: req.VerificationCode,
	}

	res, err := h.flow.Submit(r.Context(), mode, form)
	if err != nil {
		writeError(w, log, err)
		return
	}

	view := AuthResultView{
		Message:    res.Message,
		RedirectTo: res.RedirectTo,
		UserID:     res.Session.UserID,
	}
	writeJSON(w, log, http.StatusOK, view)
	log.Info("auth flow completed", "mode", mode)
}
