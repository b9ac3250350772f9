package server

import (
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dewinson2/MJCL/internal/auth"
	"github.com/dewinson2/MJCL/internal/handler"
	"github.com/dewinson2/MJCL/internal/logger"
)

// SessionMiddleware admits requests carrying a valid admin session, either
// as a bearer token or as the session cookie.
func SessionMiddleware(verifier auth.Service, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := handler.SessionToken(r)

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_token", token != "",
					"ip", ip,
					"error", err)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
		})
	}
}

// LoginGuardMiddleware refuses login attempts from addresses with too many
// recent failures and counts every rejected attempt.
func LoginGuardMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)
			if detector.IsBlocked(ip) {
				logger.FromContext(r.Context()).Warn(LogMsgLoginBlocked, "ip", ip)
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)
			if rw.statusCode == http.StatusUnauthorized {
				detector.RecordFailedAuth(ip)
			}
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// activity is what the detector knows about one client address in the
// current window.
type activity struct {
	failedAuth int
	requests   int
}

// SuspiciousActivityDetector counts failed logins and requests per client
// address over a fixed window.
type SuspiciousActivityDetector struct {
	mu          sync.Mutex
	byIP        map[string]*activity
	windowStart time.Time
	now         func() time.Time
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		byIP:        make(map[string]*activity),
		windowStart: time.Now(),
		now:         time.Now,
	}
}

// lookup returns the counters for ip, starting a fresh window first when the
// current one has elapsed. Caller holds s.mu.
func (s *SuspiciousActivityDetector) lookup(ip string) *activity {
	if now := s.now(); now.Sub(s.windowStart) > DetectorWindow {
		clear(s.byIP)
		s.windowStart = now
	}
	a, ok := s.byIP[ip]
	if !ok {
		a = &activity{}
		s.byIP[ip] = a
	}
	return a
}

// RecordFailedAuth counts a rejected credential from ip.
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.lookup(ip)
	a.failedAuth++
	if a.failedAuth >= FailedAuthAlertAfter {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", a.failedAuth)
	}
}

// IsBlocked reports whether ip reached the failed authentication limit in
// the current window.
func (s *SuspiciousActivityDetector) IsBlocked(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lookup(ip).failedAuth >= FailedAuthBlockAfter
}

// RecordRequest counts a request from ip and reports whether it is still
// within budget.
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.lookup(ip)
	a.requests++
	if a.requests <= MaxRequestsPerWindow {
		return true
	}
	if a.requests%100 == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", a.requests)
	}
	return false
}

// requests returns the request count for ip in the current window.
func (s *SuspiciousActivityDetector) requests(ip string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lookup(ip).requests
}

// RateLimitMiddleware rejects clients above the per-window request budget
func RateLimitMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)
			if !detector.RecordRequest(ip) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// It only trusts X-Forwarded-For if the request comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if !slices.Contains(trustedProxies, remoteIP) {
		return remoteIP
	}
	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	// Rightmost entry is the hop that connected to our trusted proxy
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
