package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"budget/internal/core"
	"budget/internal/session"
)

type (
	googleLoginRequest struct {
		Token string `json:"token"`
	}

	needsSignInResponse struct {
		NeedsSignIn bool `json:"needsSignIn"`
	}

	submitEntryRequest struct {
		BudgetEntryObj core.BudgetEntry `json:"budgetEntryObj"`
	}
)

// handleCategories serves GET /budget/categories. It reads the category
// and allow-list columns in one batch, recomputes the session's
// authorization from the fresh allow-list, and returns the category map.
// The session overwrite makes this endpoint double as an authorization
// refresh.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	cols, err := s.columns.ReadColumns(r.Context(), []string{s.opts.CategoriesRange, s.opts.AuthUsersRange})
	if err != nil {
		slog.ErrorContext(r.Context(), "Spreadsheet read failed", "error", err)
		s.writeDomainError(w, err)
		return
	}
	if len(cols) < 2 {
		s.writeDomainError(w, fmt.Errorf("%w: please try again later", core.ErrEmptyResult))
		return
	}
	authUsers := cols[1]

	sess, ok := s.currentSession(r)
	if !ok || sess.Email == "" || !slices.Contains(authUsers, sess.Email) {
		s.writeDomainError(w, fmt.Errorf("%w: please login to view data", core.ErrNotAuthenticated))
		return
	}

	// Unconditional overwrite with freshly computed authorization.
	sess.NeedsSignIn = false
	sess.AuthUsers = authUsers
	if err := s.sessions.Save(r.Context(), sess); err != nil {
		slog.ErrorContext(r.Context(), "Session save failed", "error", err)
		s.writeDomainError(w, err)
		return
	}

	categories, err := core.BuildCategoryMap(cols[0])
	if err != nil {
		slog.ErrorContext(r.Context(), "Category column malformed", "error", err)
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// handleGoogleLogin serves POST /api/v1/auth/google. A verified token
// signs the session in immediately; allow-list membership is checked on
// the next categories fetch, not here.
func (s *Server) handleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req googleLoginRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Token) == "" {
		s.writeDomainError(w, fmt.Errorf("%w: missing token", core.ErrMalformedRequest))
		return
	}

	ident, err := s.verifier.Verify(r.Context(), req.Token)
	if err != nil {
		slog.WarnContext(r.Context(), "Token verification failed", "error", err)
		s.writeDomainError(w, err)
		return
	}

	sess := session.New(ident.Email, s.opts.SessionTTL)
	if err := s.sessions.Save(r.Context(), sess); err != nil {
		slog.ErrorContext(r.Context(), "Session save failed", "error", err)
		s.writeDomainError(w, err)
		return
	}
	s.setSessionCookie(w, sess.ID)

	writeJSON(w, http.StatusOK, ident)
}

// handleNeedsSignIn serves POST /budget/needsSignIn: a pure read of the
// current session state, always 200.
func (s *Server) handleNeedsSignIn(w http.ResponseWriter, r *http.Request) {
	resp := needsSignInResponse{NeedsSignIn: true}
	if sess, ok := s.currentSession(r); ok && !sess.NeedsSignIn {
		resp.NeedsSignIn = false
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleSubmitSingleEntry serves POST /budget/submitSingleEntry. The
// append requires a signed-in session whose email is in the cached
// allow-list; an empty cache rejects even a signed-in session.
func (s *Server) handleSubmitSingleEntry(w http.ResponseWriter, r *http.Request) {
	var req submitEntryRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	entry := req.BudgetEntryObj
	if err := entry.Validate(); err != nil {
		s.writeDomainError(w, fmt.Errorf("%w: %v", core.ErrMalformedRequest, err))
		return
	}

	sess, ok := s.currentSession(r)
	if !ok || !sess.Authorized() {
		s.writeDomainError(w, fmt.Errorf("%w: please sign in to post data", core.ErrNotAuthorized))
		return
	}

	// Rewrite the session record, keeping its absolute expiry.
	sess.NeedsSignIn = false
	if err := s.sessions.Save(r.Context(), sess); err != nil {
		slog.ErrorContext(r.Context(), "Session save failed", "error", err)
		s.writeDomainError(w, err)
		return
	}

	res, err := s.appender.Append(r.Context(), entry)
	if err != nil {
		slog.ErrorContext(r.Context(), "Entry append failed", "error", err, "entry", entry.String())
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
