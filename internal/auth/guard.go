package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"
)

// SessionCookie names the cookie carrying the signed session token.
const SessionCookie = "session"

// ErrUnauthenticated signals a failed gate check. The boundary layer
// translates it into a redirect to the login page or a 401, as fits the
// request.
var ErrUnauthenticated = errors.New("authentication required")

// Identity marks a request that passed the session gate. The app has a
// single shared credential, so there is nothing to carry beyond the flag.
type Identity struct {
	Authenticated bool
}

// Authenticator combines the token codec with the shared family password.
// Construct one at startup and inject it; it never re-reads configuration.
type Authenticator struct {
	codec          *TokenCodec
	familyPassword []byte
}

func New(secret, familyPassword string) *Authenticator {
	return &Authenticator{
		codec:          NewTokenCodec(secret),
		familyPassword: []byte(familyPassword),
	}
}

// CheckPassword compares candidate against the shared family password in
// constant time. A single shared secret on a trusted LAN, so no per-user
// hashing.
func (a *Authenticator) CheckPassword(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), a.familyPassword) == 1
}

// IssueToken creates a fresh session token after a successful password check.
func (a *Authenticator) IssueToken() (string, error) {
	return a.codec.Issue()
}

// VerifyToken reports whether token is currently valid.
func (a *Authenticator) VerifyToken(token string) bool {
	return a.codec.Verify(token)
}

// CurrentIdentity reads the session cookie from the request and returns the
// identity it proves, if any. Pure read, no side effects.
func (a *Authenticator) CurrentIdentity(r *http.Request) (Identity, bool) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return Identity{}, false
	}
	if !a.codec.Verify(cookie.Value) {
		return Identity{}, false
	}
	return Identity{Authenticated: true}, true
}

// Require is CurrentIdentity with a hard failure: it returns
// ErrUnauthenticated when the request carries no valid session.
func (a *Authenticator) Require(r *http.Request) (Identity, error) {
	identity, ok := a.CurrentIdentity(r)
	if !ok {
		return Identity{}, ErrUnauthenticated
	}
	return identity, nil
}

// SetSessionCookie attaches a session token to the response for the token's
// full lifetime.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie logs the client out by expiring the cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
