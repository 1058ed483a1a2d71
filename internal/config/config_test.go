package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SESSION_KEY", "k")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("Addr = %q", cfg.Addr)
	}
	if cfg.Database.Driver != "sqlite" || cfg.Database.DSN != "data/portfolio.db" {
		t.Fatalf("Database = %+v", cfg.Database)
	}
	if cfg.Uploads.Backend != "disk" || cfg.Uploads.Dir != "media" {
		t.Fatalf("Uploads = %+v", cfg.Uploads)
	}
	if cfg.SMTP.Port != 587 {
		t.Fatalf("SMTP.Port = %d", cfg.SMTP.Port)
	}
	if cfg.IsProd() {
		t.Fatal("default env should not be production")
	}
}

func TestLoadRequiresSessionKey(t *testing.T) {
	t.Setenv("SESSION_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() without SESSION_KEY should fail")
	}
}

func TestLoadS3RequiresBucket(t *testing.T) {
	t.Setenv("SESSION_KEY", "k")
	t.Setenv("UPLOADS_BACKEND", "s3")
	t.Setenv("BUCKET_NAME", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() with the s3 backend and no bucket should fail")
	}
}

func TestLoadRejectsBadSMTPPort(t *testing.T) {
	t.Setenv("SESSION_KEY", "k")
	t.Setenv("SMTP_PORT", "not-a-port")

	if _, err := Load(); err == nil {
		t.Fatal("Load() with a non-numeric SMTP_PORT should fail")
	}
}

func TestLoadProduction(t *testing.T) {
	t.Setenv("SESSION_KEY", "k")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.IsProd() {
		t.Fatal("IsProd() = false for APP_ENV=production")
	}
}
