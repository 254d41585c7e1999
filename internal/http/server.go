package http

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"budget/internal/auth"
	"budget/internal/session"
	"budget/internal/sheets"
)

// Options carries the route layer's fixed configuration.
type Options struct {
	Addr string

	// CookieSecret signs session cookie values (HMAC-SHA256).
	CookieSecret []byte
	// SecureCookies marks cookies secure; off only in development.
	SecureCookies bool
	// SessionTTL is the absolute session lifetime (12h in production).
	SessionTTL time.Duration

	// CategoriesRange and AuthUsersRange are the two column ranges read
	// on every categories fetch.
	CategoriesRange string
	AuthUsersRange  string

	// StaticDir is served at the root when it exists.
	StaticDir string
}

// Server composes the verifier, sheet gateway and session store behind
// the four budget endpoints.
type Server struct {
	http.Server
	opts     Options
	verifier auth.TokenVerifier
	columns  sheets.ColumnReader
	appender sheets.EntryAppender
	sessions session.Store
}

// NewServer configures routes and middleware, returning a ready-to-run
// http.Server.
func NewServer(opts Options, verifier auth.TokenVerifier, columns sheets.ColumnReader, appender sheets.EntryAppender, sessions session.Store) *Server {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = session.DefaultTTL
	}

	mux := http.NewServeMux()
	s := &Server{
		Server: http.Server{
			Addr:    opts.Addr,
			Handler: mux,
		},
		opts:     opts,
		verifier: verifier,
		columns:  columns,
		appender: appender,
		sessions: sessions,
	}

	mux.HandleFunc("GET /budget/categories", s.withRequest(s.handleCategories))
	mux.HandleFunc("POST /api/v1/auth/google", s.withRequest(s.handleGoogleLogin))
	mux.HandleFunc("POST /budget/needsSignIn", s.withRequest(s.handleNeedsSignIn))
	mux.HandleFunc("POST /budget/submitSingleEntry", s.withRequest(s.handleSubmitSingleEntry))
	mux.HandleFunc("GET /healthz", handleHealth)

	// Static assets for the web client, when present.
	if opts.StaticDir != "" {
		if info, err := os.Stat(opts.StaticDir); err == nil && info.IsDir() {
			mux.Handle("/", http.FileServer(http.Dir(opts.StaticDir)))
		}
	}

	return s
}

// withRequest adds request IDs, logging, security headers and panic
// recovery around a handler.
func (s *Server) withRequest(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := generateRequestID()

		clientIP := r.Header.Get("X-Forwarded-For")
		if clientIP == "" {
			clientIP = r.RemoteAddr
		}

		ctx := r.Context()
		slog.InfoContext(ctx, "Request started",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"client_ip", clientIP)

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		defer func() {
			if rec := recover(); rec != nil {
				slog.ErrorContext(ctx, "Handler panic",
					"request_id", requestID,
					"error", rec,
					"stack", string(debug.Stack()))
				http.Error(rw, "Internal Server Error", http.StatusInternalServerError)
			}
			slog.InfoContext(ctx, "Request completed",
				"request_id", requestID,
				"method", r.Method,
				"url", r.URL.Path,
				"status", rw.statusCode,
				"duration_ms", time.Since(start).Milliseconds())
		}()

		next(rw, r)
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// currentSession resolves the request's cookie to a live session. A
// missing cookie, bad signature, or expired entry all read as "no
// session".
func (s *Server) currentSession(r *http.Request) (session.Session, bool) {
	id, ok := s.readSessionCookie(r)
	if !ok {
		return session.Session{}, false
	}
	sess, err := s.sessions.Get(r.Context(), id)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			slog.WarnContext(r.Context(), "Session lookup failed", "error", err)
		}
		return session.Session{}, false
	}
	return sess, true
}
