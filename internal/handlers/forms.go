package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/wnjuguna/portfolio/models"
)

// Each POST operation has an explicit form struct: parse pulls the typed,
// trimmed fields off the request, validate returns the user-facing error
// message or "".

type contactForm struct {
	Name    string
	Email   string
	Message string
}

func parseContactForm(r *http.Request) contactForm {
	return contactForm{
		Name:    strings.TrimSpace(r.FormValue("name")),
		Email:   strings.TrimSpace(r.FormValue("email")),
		Message: strings.TrimSpace(r.FormValue("message")),
	}
}

func (f contactForm) validate() string {
	if f.Name == "" || f.Email == "" || f.Message == "" {
		return "All fields are required"
	}
	return ""
}

type loginForm struct {
	Username string
	Password string
}

func parseLoginForm(r *http.Request) loginForm {
	return loginForm{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: strings.TrimSpace(r.FormValue("password")),
	}
}

type settingsForm struct {
	Username        string
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

func parseSettingsForm(r *http.Request) settingsForm {
	return settingsForm{
		Username:        strings.TrimSpace(r.FormValue("username")),
		CurrentPassword: r.FormValue("current_password"),
		NewPassword:     r.FormValue("new_password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}
}

// wantsPasswordChange reports whether any password field was filled in, in
// which case the full password-change rules apply.
func (f settingsForm) wantsPasswordChange() bool {
	return f.CurrentPassword != "" || f.NewPassword != "" || f.ConfirmPassword != ""
}

type projectForm struct {
	Title           string
	Description     string
	LongDescription string
	Technologies    string
	GithubURL       string
	LiveURL         string
	SortOrder       int
}

func parseProjectForm(r *http.Request) projectForm {
	order, _ := strconv.Atoi(strings.TrimSpace(r.FormValue("sort_order")))
	return projectForm{
		Title:           strings.TrimSpace(r.FormValue("title")),
		Description:     strings.TrimSpace(r.FormValue("description")),
		LongDescription: strings.TrimSpace(r.FormValue("long_description")),
		Technologies:    strings.TrimSpace(r.FormValue("technologies")),
		GithubURL:       strings.TrimSpace(r.FormValue("github_url")),
		LiveURL:         strings.TrimSpace(r.FormValue("live_url")),
		SortOrder:       order,
	}
}

func (f projectForm) validate() string {
	if f.Title == "" || f.Description == "" || f.Technologies == "" {
		return "Please fill in all required fields."
	}
	return ""
}

// apply copies the form onto a project. Empty optional fields become NULL,
// never empty strings. The image is handled separately by the caller.
func (f projectForm) apply(p *models.Project) {
	p.Title = f.Title
	p.Description = f.Description
	p.LongDescription = optional(f.LongDescription)
	p.Technologies = f.Technologies
	p.GithubURL = optional(f.GithubURL)
	p.LiveURL = optional(f.LiveURL)
	p.SortOrder = f.SortOrder
}

type skillForm struct {
	Name           string
	Category       string
	ProficiencyRaw string
	Proficiency    int
	SortOrder      int
}

func parseSkillForm(r *http.Request) skillForm {
	order, _ := strconv.Atoi(strings.TrimSpace(r.FormValue("sort_order")))
	return skillForm{
		Name:           strings.TrimSpace(r.FormValue("name")),
		Category:       strings.TrimSpace(r.FormValue("category")),
		ProficiencyRaw: strings.TrimSpace(r.FormValue("proficiency")),
		SortOrder:      order,
	}
}

// validate applies one consistent proficiency policy on both create and
// edit: a blank value defaults to 50, anything non-numeric or outside 1-100
// is rejected.
func (f *skillForm) validate() string {
	if f.Name == "" || f.Category == "" {
		return "Please fill in all required fields."
	}
	if !models.ValidCategory(f.Category) {
		return "Please choose a valid category."
	}
	if f.ProficiencyRaw == "" {
		f.Proficiency = 50
		return ""
	}
	p, err := strconv.Atoi(f.ProficiencyRaw)
	if err != nil || p < 1 || p > 100 {
		return "Proficiency must be a number between 1 and 100."
	}
	f.Proficiency = p
	return ""
}

type aboutForm struct {
	Name            string
	Role            string
	Institution     string
	Bio             string
	Interests       string
	ExperienceLevel string
}

func parseAboutForm(r *http.Request) aboutForm {
	return aboutForm{
		Name:            strings.TrimSpace(r.FormValue("name")),
		Role:            strings.TrimSpace(r.FormValue("role")),
		Institution:     strings.TrimSpace(r.FormValue("institution")),
		Bio:             strings.TrimSpace(r.FormValue("bio")),
		Interests:       strings.TrimSpace(r.FormValue("interests")),
		ExperienceLevel: strings.TrimSpace(r.FormValue("experience_level")),
	}
}

func (f aboutForm) apply(a *models.About) {
	a.Name = f.Name
	a.Role = f.Role
	a.Institution = f.Institution
	a.Bio = f.Bio
	a.Interests = f.Interests
	a.ExperienceLevel = f.ExperienceLevel
}

func parseReplyText(r *http.Request) string {
	return strings.TrimSpace(r.FormValue("reply_text"))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
