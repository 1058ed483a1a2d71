package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wnjuguna/portfolio/internal/store"
	"github.com/wnjuguna/portfolio/models"
)

type homeData struct {
	About       *models.About
	SkillGroups []models.SkillGroup
	Projects    []models.Project
}

// Home renders the landing page: about, skills grouped by category and the
// first 10 projects.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	about, err := h.Store.AboutGet(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	skills, err := h.Store.SkillList(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	projects, err := h.Store.ProjectList(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if len(projects) > 10 {
		projects = projects[:10]
	}

	h.render(w, r, "index.html", homeData{
		About:       about,
		SkillGroups: models.GroupSkills(skills),
		Projects:    projects,
	})
}

func (h *Handlers) About(w http.ResponseWriter, r *http.Request) {
	about, err := h.Store.AboutGet(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	skills, err := h.Store.SkillList(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, "about.html", homeData{
		About:       about,
		SkillGroups: models.GroupSkills(skills),
	})
}

func (h *Handlers) Projects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Store.ProjectList(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, "projects.html", map[string]any{"Projects": projects})
}

func (h *Handlers) ProjectDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	project, err := h.Store.ProjectGet(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	others, err := h.Store.ProjectOthers(r.Context(), id, 3)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, "project_detail.html", map[string]any{
		"Project":       project,
		"OtherProjects": others,
	})
}

// Contact renders the contact form and handles the redirect-based
// submission path.
func (h *Handlers) Contact(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		form := parseContactForm(r)
		if form.validate() != "" {
			h.flash(w, r, "error", "Please fill in all fields.")
			h.render(w, r, "contact.html", nil)
			return
		}

		msg := models.ContactMessage{Name: form.Name, Email: form.Email, Message: form.Message}
		if err := h.Store.MessageCreate(r.Context(), &msg); err != nil {
			h.serverError(w, r, err)
			return
		}
		h.flash(w, r, "success", "Your message has been sent successfully!")
		http.Redirect(w, r, "/contact/", http.StatusSeeOther)
		return
	}

	h.render(w, r, "contact.html", nil)
}

// ContactSubmit is the machine-readable submission path used by the contact
// page script. Responses always carry a success flag; a persistence failure
// is reported as a generic error rather than a 500.
func (h *Handlers) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	form := parseContactForm(r)
	if msg := form.validate(); msg != "" {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": msg})
		return
	}

	record := models.ContactMessage{Name: form.Name, Email: form.Email, Message: form.Message}
	if err := h.Store.MessageCreate(r.Context(), &record); err != nil {
		h.log.Error("persist contact message", "err", err)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "An error occurred. Please try again."})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "Thank you! Your message has been sent."})
}

func (h *Handlers) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error("request failed", "path", r.URL.Path, "err", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
