package handlers

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/wnjuguna/portfolio/web"
)

// Router builds the full route table. mediaDir is the disk uploads root to
// serve under /media/; empty when uploads go to object storage.
func (h *Handlers) Router(mediaDir string) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Public site
	r.Get("/", h.Home)
	r.Get("/about/", h.About)
	r.Get("/projects/", h.Projects)
	r.Get("/projects/{id}/", h.ProjectDetail)
	r.Get("/contact/", h.Contact)
	r.Post("/contact/", h.Contact)
	r.With(httprate.Limit(
		10,
		1*time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint),
	)).Post("/contact/submit/", h.ContactSubmit)

	// Accounts
	r.Get("/login/", h.Login)
	r.Post("/login/", h.Login)
	r.Group(func(r chi.Router) {
		r.Use(h.Auth.RequireAdmin)
		r.Get("/logout/", h.Logout)
		r.Get("/settings/", h.Settings)
		r.Post("/settings/", h.Settings)
	})

	// Admin dashboard
	r.Route("/dashboard", func(r chi.Router) {
		r.Use(h.Auth.RequireAdmin)

		r.Get("/", h.Dashboard)

		r.Get("/projects/", h.ProjectsManage)
		r.Get("/projects/new/", h.ProjectCreate)
		r.Post("/projects/new/", h.ProjectCreate)
		r.Get("/projects/{id}/edit/", h.ProjectEdit)
		r.Post("/projects/{id}/edit/", h.ProjectEdit)
		r.Post("/projects/{id}/delete/", h.ProjectDelete)

		r.Get("/skills/", h.SkillsManage)
		r.Get("/skills/new/", h.SkillCreate)
		r.Post("/skills/new/", h.SkillCreate)
		r.Get("/skills/{id}/edit/", h.SkillEdit)
		r.Post("/skills/{id}/edit/", h.SkillEdit)
		r.Post("/skills/{id}/delete/", h.SkillDelete)

		r.Get("/about/", h.AboutManage)
		r.Post("/about/", h.AboutManage)

		r.Get("/messages/", h.MessagesManage)
		r.Get("/messages/{id}/", h.MessageDetail)
		r.Post("/messages/{id}/delete/", h.MessageDelete)
		r.Get("/messages/{id}/reply/", h.ReplyToMessage)
		r.Post("/messages/{id}/reply/", h.ReplyToMessage)
		r.Post("/reply/{id}/delete/", h.ReplyDelete)
	})

	// Assets
	staticFS, _ := fs.Sub(web.Static, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	if mediaDir != "" {
		r.Handle("/media/*", http.StripPrefix("/media/", http.FileServer(http.Dir(mediaDir))))
	}

	r.NotFound(h.notFound)
	return r
}
