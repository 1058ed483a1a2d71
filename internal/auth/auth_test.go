package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/wnjuguna/portfolio/internal/store"
	"github.com/wnjuguna/portfolio/models"
)

func setupManager(t *testing.T) *Manager {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "auth.db")
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

	return &Manager{
		Sessions: NewCookieStore("test-session-key", false),
		Store:    store.New(db),
	}
}

func seedAccount(t *testing.T, m *Manager, username, password string, staff bool) {
	t.Helper()

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	admin := models.AdminUser{Username: username, PasswordHash: hash, IsStaff: staff}
	if err := m.Store.AdminUpdate(context.Background(), &admin); err != nil {
		t.Fatalf("seed account: %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	m := setupManager(t)
	seedAccount(t, m, "admin", "secret", true)
	seedAccount(t, m, "viewer", "secret", false)
	ctx := context.Background()

	admin, err := m.Authenticate(ctx, "admin", "secret")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if admin.Username != "admin" {
		t.Fatalf("Username = %q", admin.Username)
	}

	// Unknown user, wrong password and a non-staff account must all fail
	// with the same error.
	failures := []struct{ username, password string }{
		{"nobody", "secret"},
		{"admin", "wrong"},
		{"viewer", "secret"},
	}
	for _, f := range failures {
		_, err := m.Authenticate(ctx, f.username, f.password)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("Authenticate(%q, %q) error = %v, want ErrInvalidCredentials", f.username, f.password, err)
		}
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !CheckPassword(hash, "secret") {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatal("wrong password accepted")
	}
	if CheckPassword("not-a-hash", "secret") {
		t.Fatal("garbage hash accepted")
	}
}

func TestAdminFromMissing(t *testing.T) {
	if _, ok := AdminFrom(context.Background()); ok {
		t.Fatal("AdminFrom on an empty context should report false")
	}
}
