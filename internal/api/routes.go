package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"rainbox/internal/models"
)

type routeOptions struct {
	otelServiceName string
	rateLimiter     func(http.Handler) http.Handler
}

// RouteOption configures optional route behavior.
type RouteOption func(*routeOptions)

// WithOTelMiddleware adds OpenTelemetry HTTP instrumentation middleware.
func WithOTelMiddleware(serviceName string) RouteOption {
	return func(o *routeOptions) {
		o.otelServiceName = serviceName
	}
}

// WithRateLimiter installs rate limiting middleware on the protected routes.
// It runs after authentication so the limiter sees the resolved subject.
func WithRateLimiter(middleware func(http.Handler) http.Handler) RouteOption {
	return func(o *routeOptions) {
		o.rateLimiter = middleware
	}
}

// SetupRoutes configures the HTTP routes for the API. The highlight endpoint
// runs the full pipeline in order: authenticate, rate-limit, render.
func SetupRoutes(handlers *Handlers, opts ...RouteOption) *mux.Router {
	options := &routeOptions{}
	for _, opt := range opts {
		opt(options)
	}

	router := mux.NewRouter()

	if options.otelServiceName != "" {
		router.Use(otelmux.Middleware(options.otelServiceName,
			otelmux.WithFilter(func(r *http.Request) bool {
				return r.URL.Path != "/health"
			}),
		))
	}

	router.HandleFunc("/register", handlers.Register).Methods("POST")
	router.HandleFunc("/token", handlers.Token).Methods("POST")
	router.HandleFunc("/health", handlers.HealthCheck).Methods("GET")

	protected := router.PathPrefix("/highlight").Subrouter()
	protected.Use(authMiddleware(handlers.auth))
	if options.rateLimiter != nil {
		protected.Use(options.rateLimiter)
	}
	protected.HandleFunc("", handlers.Highlight).Methods("POST")

	router.Use(loggingMiddleware)
	router.Use(recoveryMiddleware)

	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		errorResp := models.NewErrorResponse("Method not allowed", models.ErrorCodeBadRequest)
		json.NewEncoder(w).Encode(errorResp)
	})

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

// recoveryMiddleware handles panics
func recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("Panic recovered", "error", err, "path", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				errorResp := models.NewErrorResponse("Internal server error", models.ErrorCodeInternalError)
				json.NewEncoder(w).Encode(errorResp)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
