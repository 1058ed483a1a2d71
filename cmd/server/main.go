package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/wnjuguna/portfolio/internal/auth"
	"github.com/wnjuguna/portfolio/internal/config"
	"github.com/wnjuguna/portfolio/internal/database"
	"github.com/wnjuguna/portfolio/internal/handlers"
	"github.com/wnjuguna/portfolio/internal/mailer"
	"github.com/wnjuguna/portfolio/internal/store"
	"github.com/wnjuguna/portfolio/internal/uploads"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "err", err)
		os.Exit(1)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Error("open database", "err", err)
		os.Exit(1)
	}
	st := store.New(db)

	// Seed the admin account on first boot.
	if cfg.Admin.Password != "" {
		hash, err := auth.HashPassword(cfg.Admin.Password)
		if err != nil {
			log.Error("hash admin password", "err", err)
			os.Exit(1)
		}
		if err := st.EnsureAdmin(context.Background(), cfg.Admin.Username, hash); err != nil {
			log.Error("seed admin account", "err", err)
			os.Exit(1)
		}
	}

	am := &auth.Manager{
		Sessions: auth.NewCookieStore(cfg.SessionKey, cfg.IsProd()),
		Store:    st,
	}

	var uploadStore uploads.Store
	var mediaDir string
	if cfg.Uploads.Backend == "s3" {
		uploadStore, err = uploads.NewS3Store(context.Background(), cfg.Uploads)
		if err != nil {
			log.Error("configure s3 uploads", "err", err)
			os.Exit(1)
		}
	} else {
		uploadStore = uploads.NewDiskStore(cfg.Uploads.Dir)
		mediaDir = cfg.Uploads.Dir
	}

	h, err := handlers.New(st, am, uploadStore, mailer.NewSMTP(cfg.SMTP), log)
	if err != nil {
		log.Error("build handlers", "err", err)
		os.Exit(1)
	}

	log.Info("starting server", "addr", cfg.Addr, "env", cfg.Env)
	if err := http.ListenAndServe(cfg.Addr, h.Router(mediaDir)); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
