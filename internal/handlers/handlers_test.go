package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/wnjuguna/portfolio/internal/auth"
	"github.com/wnjuguna/portfolio/internal/mailer"
	"github.com/wnjuguna/portfolio/internal/store"
	"github.com/wnjuguna/portfolio/internal/uploads"
	"github.com/wnjuguna/portfolio/models"
)

type fakeMailer struct {
	err  error
	sent []mailer.Message
}

func (f *fakeMailer) Send(_ context.Context, msg mailer.Message) error {
	f.sent = append(f.sent, msg)
	return f.err
}

type testApp struct {
	store  *store.Store
	mailer *fakeMailer
	server *httptest.Server
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "portfolio.db")
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	st := store.New(db)
	am := &auth.Manager{
		Sessions: auth.NewCookieStore("test-session-key", false),
		Store:    st,
	}
	fm := &fakeMailer{}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h, err := New(st, am, uploads.NewDiskStore(t.TempDir()), fm, log)
	if err != nil {
		t.Fatalf("build handlers: %v", err)
	}

	srv := httptest.NewServer(h.Router(""))
	t.Cleanup(srv.Close)

	return &testApp{store: st, mailer: fm, server: srv}
}

// client returns an HTTP client with a cookie jar that does not follow
// redirects, so tests can assert on Location headers.
func (a *testApp) client(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func (a *testApp) seedAdmin(t *testing.T, username, password string, staff bool) {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	admin := models.AdminUser{Username: username, PasswordHash: hash, IsStaff: staff}
	if err := a.store.AdminUpdate(context.Background(), &admin); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
}

func (a *testApp) postForm(t *testing.T, c *http.Client, path string, form url.Values) *http.Response {
	t.Helper()

	resp, err := c.PostForm(a.server.URL+path, form)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (a *testApp) get(t *testing.T, c *http.Client, path string) *http.Response {
	t.Helper()

	resp, err := c.Get(a.server.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// login signs the client in as the given account and fails the test if the
// dashboard redirect does not happen.
func (a *testApp) login(t *testing.T, c *http.Client, username, password string) {
	t.Helper()

	resp := a.postForm(t, c, "/login/", url.Values{
		"username": {username},
		"password": {password},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("login status = %d, want %d", resp.StatusCode, http.StatusSeeOther)
	}
	if loc := resp.Header.Get("Location"); loc != "/dashboard/" {
		t.Fatalf("login redirect = %q, want /dashboard/", loc)
	}
}
