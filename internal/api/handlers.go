package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"rainbox/internal/auth"
	"rainbox/internal/highlight"
	"rainbox/internal/models"
	"rainbox/internal/storage"
)

// Authenticator is the slice of the auth service the handlers consume.
type Authenticator interface {
	Register(ctx context.Context, username, email, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	Resolve(token string) (auth.Subject, error)
}

// Handlers contains HTTP handlers for the rainbox API
type Handlers struct {
	auth         Authenticator
	renderer     highlight.Renderer
	storage      storage.Storage
	defaultTheme string
}

// HandlerOption configures optional handler dependencies.
type HandlerOption func(*Handlers)

// WithStorage provides the credential store for health checks.
func WithStorage(store storage.Storage) HandlerOption {
	return func(h *Handlers) {
		h.storage = store
	}
}

// WithDefaultTheme overrides the theme applied when a request omits one.
func WithDefaultTheme(theme string) HandlerOption {
	return func(h *Handlers) {
		h.defaultTheme = theme
	}
}

// NewHandlers creates a new handlers instance
func NewHandlers(authService Authenticator, renderer highlight.Renderer, opts ...HandlerOption) *Handlers {
	h := &Handlers{
		auth:         authService,
		renderer:     renderer,
		defaultTheme: "default",
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register handles account creation requests
// POST /register
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, models.ErrorCodeBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, models.ErrorCodeBadRequest, err.Error())
		return
	}

	userID, err := h.auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrDuplicateUsername):
			h.writeErrorResponse(w, http.StatusBadRequest, models.ErrorCodeDuplicateUsername, "Username already registered")
		case errors.Is(err, storage.ErrDuplicateEmail):
			h.writeErrorResponse(w, http.StatusBadRequest, models.ErrorCodeDuplicateEmail, "Email already registered")
		default:
			slog.Error("Registration failed", "username", req.Username, "error", err)
			h.writeErrorResponse(w, http.StatusInternalServerError, models.ErrorCodeInternalError, "Internal server error")
		}
		return
	}

	slog.Info("User registered", "user_id", userID, "username", req.Username)
	h.writeJSONResponse(w, http.StatusOK, &models.MessageResponse{Message: "User created successfully"})
}

// Token handles password logins and mints bearer tokens. The request body is
// form-encoded in the OAuth2 password-grant shape.
// POST /token
func (h *Handlers) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, models.ErrorCodeBadRequest, "Invalid form body")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	token, err := h.auth.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			h.writeErrorResponse(w, http.StatusUnauthorized, models.ErrorCodeUnauthorized, "Incorrect username or password")
			return
		}
		slog.Error("Login failed", "username", username, "error", err)
		h.writeErrorResponse(w, http.StatusInternalServerError, models.ErrorCodeInternalError, "Internal server error")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, &models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Highlight renders a code snippet as a styled HTML document. Authentication
// and rate limiting have already run as middleware by the time this executes;
// any failure from the renderer surfaces as a 400 carrying its message.
// POST /highlight
func (h *Handlers) Highlight(w http.ResponseWriter, r *http.Request) {
	subject, ok := SubjectFromRequest(r)
	if !ok {
		// The auth middleware guards this route; reaching here without a
		// subject is a wiring bug.
		h.writeErrorResponse(w, http.StatusUnauthorized, models.ErrorCodeUnauthorized, "Not authenticated")
		return
	}

	var req models.HighlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, models.ErrorCodeBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(h.defaultTheme); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, models.ErrorCodeBadRequest, err.Error())
		return
	}

	result, err := h.renderer.Render(req.Code, req.Language, req.Theme)
	if err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, models.ErrorCodeBadRequest, err.Error())
		return
	}

	slog.Debug("Rendered snippet",
		"subject", subject.ID,
		"language", req.Language,
		"theme", req.Theme,
		"bytes", len(result.HTML))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "<style>%s</style>%s", result.CSS, result.HTML)
}

// HealthCheck reports service liveness and the credential store's reachability.
// GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := models.NewHealthCheckResponse(models.StatusHealthy)
	response.AddComponent("api", models.StatusHealthy, "API is operational")

	status := http.StatusOK
	if h.storage != nil {
		if err := h.storage.Ping(r.Context()); err != nil {
			response.Status = models.StatusUnhealthy
			response.AddComponent("storage", models.StatusUnhealthy, err.Error())
			status = http.StatusServiceUnavailable
		} else {
			response.AddComponent("storage", models.StatusHealthy, "Storage is operational")
		}
	}

	h.writeJSONResponse(w, status, response)
}

// writeJSONResponse writes a JSON response with the given status code
func (h *Handlers) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already written; nothing to do but log it.
		slog.Error("Error encoding JSON response", "error", err)
	}
}

// writeErrorResponse writes a structured JSON error response
func (h *Handlers) writeErrorResponse(w http.ResponseWriter, statusCode int, errorCode, detail string) {
	h.writeJSONResponse(w, statusCode, models.NewErrorResponse(detail, errorCode))
}
