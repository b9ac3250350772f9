package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dewinson2/MJCL/internal/auth"
	"github.com/dewinson2/MJCL/internal/cache"
	"github.com/dewinson2/MJCL/internal/contact"
	"github.com/dewinson2/MJCL/internal/handler"
	"github.com/dewinson2/MJCL/internal/job"
	"github.com/dewinson2/MJCL/internal/logger"
	"github.com/dewinson2/MJCL/internal/metrics"
)

// Options carries everything the HTTP layer needs
type Options struct {
	Port           int
	TrustedProxies []string
	// SecureCookie marks the admin session cookie Secure
	SecureCookie bool
	// StorageName is reported by /version ("postgres" or "memory")
	StorageName string
	// Ready lists the dependencies checked by /readyz
	Ready map[string]handler.Pinger

	Jobs    job.Service
	Contact contact.Service
	Auth    auth.Service
	Cache   cache.Cache
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree. Exposed for tests.
func NewRouter(opts Options) chi.Router {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.Ready))
	r.Get("/version", handler.HandleVersion(opts.StorageName))
	r.Handle("/metrics", promhttp.Handler())

	jobHandler := handler.NewJobHandler(opts.Jobs, opts.Cache)
	contactHandler := handler.NewContactHandler(opts.Contact, opts.Cache)
	authHandler := handler.NewAuthHandler(opts.Auth, opts.SecureCookie)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", jobHandler.HandleListActive)
			r.Get("/grouped", jobHandler.HandleListGrouped)
			r.Get("/{slug}", jobHandler.HandleGetBySlug)
		})
		r.Get("/contact", contactHandler.HandleGet)

		r.Route("/admin", func(r chi.Router) {
			r.With(LoginGuardMiddleware(opts.TrustedProxies, detector)).
				Post("/login", authHandler.HandleLogin)

			r.Group(func(r chi.Router) {
				r.Use(SessionMiddleware(opts.Auth, opts.TrustedProxies, detector))

				r.Post("/logout", authHandler.HandleLogout)

				r.Route("/jobs", func(r chi.Router) {
					r.Get("/", jobHandler.HandleAdminList)
					r.Post("/", jobHandler.HandleCreate)
					r.Get("/{id}", jobHandler.HandleAdminGet)
					r.Put("/{id}", jobHandler.HandleUpdate)
					r.Delete("/{id}", jobHandler.HandleDelete)
				})

				r.Get("/contact", contactHandler.HandleAdminGet)
				r.Put("/contact", contactHandler.HandleUpdate)
			})
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		for _, p := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
