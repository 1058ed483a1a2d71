// Package auth handles the admin session: cookie store setup, credential
// checks and the middleware guarding dashboard routes.
package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"

	"github.com/wnjuguna/portfolio/internal/store"
	"github.com/wnjuguna/portfolio/models"
)

const (
	// SessionName is the cookie holding the admin session.
	SessionName = "portfolio_session"

	sessionKeyAdminID = "admin_id"
)

// ErrInvalidCredentials covers every login failure: unknown username, wrong
// password and a valid password on a non-staff account. Callers must not be
// able to tell these apart.
var ErrInvalidCredentials = errors.New("invalid credentials or insufficient permissions")

type contextKey struct{}

// NewCookieStore builds the session store the way the server uses it:
// 30 day sessions, HttpOnly, secure cookies only in production.
func NewCookieStore(key string, secure bool) *sessions.CookieStore {
	cs := sessions.NewCookieStore([]byte(key))
	cs.MaxAge(86400 * 30)
	cs.Options.Path = "/"
	cs.Options.HttpOnly = true
	cs.Options.Secure = secure
	return cs
}

// Manager ties the cookie store to the account records.
type Manager struct {
	Sessions sessions.Store
	Store    *store.Store
}

// Authenticate validates a username/password pair and requires staff
// privilege. Any failure returns ErrInvalidCredentials.
func (m *Manager) Authenticate(ctx context.Context, username, password string) (models.AdminUser, error) {
	admin, err := m.Store.AdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.AdminUser{}, ErrInvalidCredentials
		}
		return models.AdminUser{}, err
	}
	if !CheckPassword(admin.PasswordHash, password) || !admin.IsStaff {
		return models.AdminUser{}, ErrInvalidCredentials
	}
	return admin, nil
}

// SignIn establishes the session for the given admin.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, adminID uint) error {
	session, _ := m.Sessions.Get(r, SessionName)
	session.Values[sessionKeyAdminID] = adminID
	return session.Save(r, w)
}

// SignOut destroys the session.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.Sessions.Get(r, SessionName)
	delete(session.Values, sessionKeyAdminID)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// CurrentAdmin resolves the session to an admin record. A stale session
// pointing at a deleted or demoted account counts as unauthenticated.
func (m *Manager) CurrentAdmin(r *http.Request) (models.AdminUser, bool) {
	session, err := m.Sessions.Get(r, SessionName)
	if err != nil {
		return models.AdminUser{}, false
	}
	id, ok := session.Values[sessionKeyAdminID].(uint)
	if !ok || id == 0 {
		return models.AdminUser{}, false
	}
	admin, err := m.Store.AdminByID(r.Context(), id)
	if err != nil || !admin.IsStaff {
		return models.AdminUser{}, false
	}
	return admin, true
}

// RequireAdmin guards dashboard routes. Unauthenticated callers are
// redirected to the login form, never given an error status. The resolved
// admin is placed on the request context for handlers.
func (m *Manager) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin, ok := m.CurrentAdmin(r)
		if !ok {
			http.Redirect(w, r, "/login/", http.StatusSeeOther)
			return
		}
		ctx := context.WithValue(r.Context(), contextKey{}, admin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminFrom returns the admin resolved by RequireAdmin.
func AdminFrom(ctx context.Context) (models.AdminUser, bool) {
	admin, ok := ctx.Value(contextKey{}).(models.AdminUser)
	return admin, ok
}

// HashPassword hashes a password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
