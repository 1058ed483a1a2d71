package handlers

import (
	"errors"
	"net/http"

	"github.com/wnjuguna/portfolio/internal/store"
	"github.com/wnjuguna/portfolio/models"
)

// Dashboard shows the summary counts.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Store.Counts(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, "dashboard.html", counts)
}

func (h *Handlers) ProjectsManage(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Store.ProjectList(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, "projects_manage.html", map[string]any{"Projects": projects})
}

// saveUpload stores an optional uploaded file. When the field was left
// empty it returns ("", nil) and the caller keeps the existing value.
func (h *Handlers) saveUpload(r *http.Request, field, dir string) (string, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer file.Close()

	return h.Uploads.Save(r.Context(), dir, header.Filename, header.Header.Get("Content-Type"), file)
}

func (h *Handlers) ProjectCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		form := parseProjectForm(r)
		if msg := form.validate(); msg != "" {
			h.flash(w, r, "error", msg)
			h.render(w, r, "project_form.html", map[string]any{"Form": form})
			return
		}

		var project models.Project
		form.apply(&project)

		image, err := h.saveUpload(r, "image", "projects")
		if err != nil {
			h.serverError(w, r, err)
			return
		}
		project.Image = image

		if err := h.Store.ProjectCreate(r.Context(), &project); err != nil {
			h.serverError(w, r, err)
			return
		}
		h.flash(w, r, "success", "Project created successfully!")
		http.Redirect(w, r, "/dashboard/projects/", http.StatusSeeOther)
		return
	}

	h.render(w, r, "project_form.html", nil)
}

func (h *Handlers) ProjectEdit(w http.ResponseWriter, r *http.Request) {
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

	if r.Method == http.MethodPost {
		form := parseProjectForm(r)
		if msg := form.validate(); msg != "" {
			h.flash(w, r, "error", msg)
			h.render(w, r, "project_form.html", map[string]any{"Project": project, "Form": form})
			return
		}
		form.apply(&project)

		// An omitted image keeps the current one.
		image, err := h.saveUpload(r, "image", "projects")
		if err != nil {
			h.serverError(w, r, err)
			return
		}
		if image != "" {
			project.Image = image
		}

		if err := h.Store.ProjectUpdate(r.Context(), &project); err != nil {
			h.serverError(w, r, err)
			return
		}
		h.flash(w, r, "success", "Project updated successfully!")
		http.Redirect(w, r, "/dashboard/projects/", http.StatusSeeOther)
		return
	}

	h.render(w, r, "project_form.html", map[string]any{"Project": project})
}

func (h *Handlers) ProjectDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		h.notFound(w, r)
		return
	}
	if err := h.Store.ProjectDelete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.notFound(w, r)
			return
		}
		h.serverError(w, r, err)
		return
	}
	h.flash(w, r, "success", "Project deleted successfully!")
	http.Redirect(w, r, "/dashboard/projects/", http.StatusSeeOther)
}

func (h *Handlers) SkillsManage(w http.ResponseWriter, r *http.Request) {
	skills, err := h.Store.SkillList(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, "skills_manage.html", map[string]any{"Skills": skills})
}

func (h *Handlers) SkillCreate(w http.ResponseWriter, r *http.Request) {
	categories := models.SkillCategories()

	if r.Method == http.MethodPost {
		form := parseSkillForm(r)
		if msg := form.validate(); msg != "" {
			h.flash(w, r, "error", msg)
			h.render(w, r, "skill_form.html", map[string]any{"Categories": categories, "Form": form})
			return
		}

		skill := models.Skill{
			Name:        form.Name,
			Category:    form.Category,
			Proficiency: form.Proficiency,
			SortOrder:   form.SortOrder,
		}
		if err := h.Store.SkillCreate(r.Context(), &skill); err != nil {
			h.serverError(w, r, err)
			return
		}
		h.flash(w, r, "success", "Skill created successfully!")
		http.Redirect(w, r, "/dashboard/skills/", http.StatusSeeOther)
		return
	}

	h.render(w, r, "skill_form.html", map[string]any{"Categories": categories})
}

func (h *Handlers) SkillEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		h.notFound(w, r)
		return
	}
	skill, err := h.Store.SkillGet(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	categories := models.SkillCategories()

	if r.Method == http.MethodPost {
		form := parseSkillForm(r)
		if msg := form.validate(); msg != "" {
			h.flash(w, r, "error", msg)
			h.render(w, r, "skill_form.html", map[string]any{"Skill": skill, "Categories": categories, "Form": form})
			return
		}

		skill.Name = form.Name
		skill.Category = form.Category
		skill.Proficiency = form.Proficiency
		skill.SortOrder = form.SortOrder
		if err := h.Store.SkillUpdate(r.Context(), &skill); err != nil {
			h.serverError(w, r, err)
			return
		}
		h.flash(w, r, "success", "Skill updated successfully!")
		http.Redirect(w, r, "/dashboard/skills/", http.StatusSeeOther)
		return
	}

	h.render(w, r, "skill_form.html", map[string]any{"Skill": skill, "Categories": categories})
}

func (h *Handlers) SkillDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		h.notFound(w, r)
		return
	}
	if err := h.Store.SkillDelete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.notFound(w, r)
			return
		}
		h.serverError(w, r, err)
		return
	}
	h.flash(w, r, "success", "Skill deleted successfully!")
	http.Redirect(w, r, "/dashboard/skills/", http.StatusSeeOther)
}

// AboutManage creates the about record on first save and overwrites every
// field afterwards. There is no partial update; the form always submits the
// full record.
func (h *Handlers) AboutManage(w http.ResponseWriter, r *http.Request) {
	about, err := h.Store.AboutGet(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	if r.Method == http.MethodPost {
		form := parseAboutForm(r)
		if about == nil {
			about = &models.About{}
		}
		form.apply(about)

		image, err := h.saveUpload(r, "profile_image", "profile")
		if err != nil {
			h.serverError(w, r, err)
			return
		}
		if image != "" {
			about.ProfileImage = &image
		}

		if err := h.Store.AboutSave(r.Context(), about); err != nil {
			h.serverError(w, r, err)
			return
		}
		h.flash(w, r, "success", "About section updated successfully!")
		http.Redirect(w, r, "/dashboard/about/", http.StatusSeeOther)
		return
	}

	h.render(w, r, "about_manage.html", map[string]any{"About": about})
}
