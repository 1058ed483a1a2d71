package config

import (
	"errors"
	"os"
	"strconv"
)

// Config carries everything the server needs, loaded from the environment.
// A .env file is read by the entrypoint before Load runs.
type Config struct {
	Addr       string
	Env        string
	SessionKey string

	Database DatabaseConfig
	Uploads  UploadsConfig
	SMTP     SMTPConfig
	Admin    AdminConfig
}

type DatabaseConfig struct {
	// Driver is "sqlite" or "postgres".
	Driver string
	DSN    string
}

type UploadsConfig struct {
	// Backend is "disk" or "s3".
	Backend string
	// Dir is the media root for the disk backend, also used as the public
	// mount point for uploaded files.
	Dir string

	Bucket          string
	AccountID       string
	AccessKeyID     string
	AccessKeySecret string
	PublicURL       string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// AdminConfig seeds the admin account on first boot.
type AdminConfig struct {
	Username string
	Password string
}

// IsProd reports whether the server runs with production hardening (secure
// session cookies).
func (c Config) IsProd() bool {
	return c.Env == "production"
}

// Load reads the configuration from the environment, applying defaults that
// make local development work out of the box.
func Load() (Config, error) {
	cfg := Config{
		Addr:       getenv("ADDR", ":8080"),
		Env:        getenv("APP_ENV", "local"),
		SessionKey: os.Getenv("SESSION_KEY"),
		Database: DatabaseConfig{
			Driver: getenv("DB_DRIVER", "sqlite"),
			DSN:    getenv("DB_DSN", "data/portfolio.db"),
		},
		Uploads: UploadsConfig{
			Backend:         getenv("UPLOADS_BACKEND", "disk"),
			Dir:             getenv("UPLOADS_DIR", "media"),
			Bucket:          os.Getenv("BUCKET_NAME"),
			AccountID:       os.Getenv("ACCOUNT_ID"),
			AccessKeyID:     os.Getenv("ACCESS_KEY_ID"),
			AccessKeySecret: os.Getenv("ACCESS_KEY_SECRET"),
			PublicURL:       os.Getenv("PUBLIC_URL"),
		},
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getenv("SMTP_FROM", "no-reply@localhost"),
		},
		Admin: AdminConfig{
			Username: getenv("ADMIN_USERNAME", "admin"),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
	}

	port := getenv("SMTP_PORT", "587")
	p, err := strconv.Atoi(port)
	if err != nil {
		return Config{}, errors.New("SMTP_PORT must be a number")
	}
	cfg.SMTP.Port = p

	if cfg.SessionKey == "" {
		return Config{}, errors.New("SESSION_KEY is required")
	}
	if cfg.Uploads.Backend == "s3" && cfg.Uploads.Bucket == "" {
		return Config{}, errors.New("BUCKET_NAME is required for the s3 uploads backend")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
