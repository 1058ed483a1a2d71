// Package handlers contains every HTTP handler: the public site, the login
// flow and the admin dashboard.
package handlers

import (
	"encoding/gob"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wnjuguna/portfolio/internal/auth"
	"github.com/wnjuguna/portfolio/internal/mailer"
	"github.com/wnjuguna/portfolio/internal/store"
	"github.com/wnjuguna/portfolio/internal/uploads"
	"github.com/wnjuguna/portfolio/web"
)

// Handlers carries every dependency a request needs. Nothing is global; the
// authenticated admin travels on the request context.
type Handlers struct {
	Store   *store.Store
	Auth    *auth.Manager
	Uploads uploads.Store
	Mailer  mailer.Mailer

	log       *slog.Logger
	templates map[string]*template.Template
}

func New(st *store.Store, am *auth.Manager, up uploads.Store, ml mailer.Mailer, log *slog.Logger) (*Handlers, error) {
	templates, err := parseTemplates(web.Templates)
	if err != nil {
		return nil, err
	}
	return &Handlers{
		Store:     st,
		Auth:      am,
		Uploads:   up,
		Mailer:    ml,
		log:       log,
		templates: templates,
	}, nil
}

func init() {
	gob.Register(Flash{})
}

// urlID parses the {id} route parameter. ok is false for anything that is
// not a positive integer.
func urlID(r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
