package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"

	"github.com/wnjuguna/portfolio/internal/auth"
	"github.com/wnjuguna/portfolio/models"
)

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Level   string // "success", "error" or "warning"
	Message string
}

// viewData is what every template executes against.
type viewData struct {
	Admin   *models.AdminUser
	Flashes []Flash
	Data    any
}

// parseTemplates builds one template set per page, each paired with the
// shared layout.
func parseTemplates(fsys fs.FS) (map[string]*template.Template, error) {
	pages, err := fs.Glob(fsys, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	sets := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		name := path.Base(page)
		t, err := template.New(name).ParseFS(fsys, "templates/layout.html", page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		sets[name] = t
	}
	return sets, nil
}

// render executes a page template inside the layout. Flashes queued on the
// session are consumed here.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, page string, data any) {
	t, ok := h.templates[page]
	if !ok {
		h.log.Error("unknown template", "page", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vd := viewData{Data: data, Flashes: h.popFlashes(w, r)}
	if admin, ok := auth.AdminFrom(r.Context()); ok {
		vd.Admin = &admin
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", vd); err != nil {
		h.log.Error("render template", "page", page, "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (h *Handlers) notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	h.render(w, r, "404.html", nil)
}

func (h *Handlers) flash(w http.ResponseWriter, r *http.Request, level, message string) {
	session, _ := h.Auth.Sessions.Get(r, auth.SessionName)
	session.AddFlash(Flash{Level: level, Message: message})
	if err := session.Save(r, w); err != nil {
		h.log.Error("save flash", "err", err)
	}
}

func (h *Handlers) popFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	session, err := h.Auth.Sessions.Get(r, auth.SessionName)
	if err != nil {
		return nil
	}
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(r, w); err != nil {
		h.log.Error("save session after flashes", "err", err)
	}

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}
