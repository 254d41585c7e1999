package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
	"time"
)

// sessionCookie matches the cookie name the web client already carries.
const sessionCookie = "sessionId"

// setSessionCookie issues the session cookie: HTTP-only, secure outside
// development, absolute lifetime from issuance (not sliding). The value
// is the opaque session identifier plus an HMAC signature; the
// structured session payload stays server-side.
func (s *Server) setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    signValue(s.opts.CookieSecret, id),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.SecureCookies,
		MaxAge:   int(s.opts.SessionTTL / time.Second),
		SameSite: http.SameSiteLaxMode,
	})
}

// readSessionCookie returns the session identifier carried by the
// request, rejecting values with a missing or invalid signature.
func (s *Server) readSessionCookie(r *http.Request) (string, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return "", false
	}
	return verifyValue(s.opts.CookieSecret, c.Value)
}

// signValue encodes "id.sig" with sig = HMAC-SHA256(secret, id).
func signValue(secret []byte, id string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(id))
	return id + "." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// verifyValue splits "id.sig" and checks the signature in constant time.
func verifyValue(secret []byte, value string) (string, bool) {
	id, sig, ok := strings.Cut(value, ".")
	if !ok || id == "" {
		return "", false
	}
	got, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return "", false
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(id))
	if !hmac.Equal(got, mac.Sum(nil)) {
		return "", false
	}
	return id, true
}
