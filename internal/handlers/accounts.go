package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/wnjuguna/portfolio/internal/auth"
	"github.com/wnjuguna/portfolio/internal/store"
)

// Login renders the login form and handles submissions. Every failure mode
// shows the same generic message.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.Auth.CurrentAdmin(r); ok {
		http.Redirect(w, r, "/dashboard/", http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodPost {
		form := parseLoginForm(r)
		admin, err := h.Auth.Authenticate(r.Context(), form.Username, form.Password)
		if err != nil {
			if !errors.Is(err, auth.ErrInvalidCredentials) {
				h.serverError(w, r, err)
				return
			}
			h.flash(w, r, "error", "Invalid credentials or insufficient permissions.")
			h.render(w, r, "login.html", nil)
			return
		}

		if err := h.Auth.SignIn(w, r, admin.ID); err != nil {
			h.serverError(w, r, err)
			return
		}
		h.flash(w, r, "success", fmt.Sprintf("Welcome back, %s!", admin.Username))
		http.Redirect(w, r, "/dashboard/", http.StatusSeeOther)
		return
	}

	h.render(w, r, "login.html", nil)
}

// Logout destroys the session. Reached only through RequireAdmin.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.SignOut(w, r); err != nil {
		h.serverError(w, r, err)
		return
	}
	h.flash(w, r, "success", "You have been logged out successfully.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Settings lets the admin rename the account and change the password. The
// two sub-operations are independent; a password change re-establishes the
// session so the admin stays logged in.
func (h *Handlers) Settings(w http.ResponseWriter, r *http.Request) {
	admin, _ := auth.AdminFrom(r.Context())

	if r.Method == http.MethodPost {
		form := parseSettingsForm(r)

		if form.Username != admin.Username {
			if form.Username == "" {
				h.flash(w, r, "error", "Username cannot be empty.")
				h.render(w, r, "settings.html", nil)
				return
			}
			if _, err := h.Store.AdminByUsername(r.Context(), form.Username); err == nil {
				h.flash(w, r, "error", "That username is already taken.")
				h.render(w, r, "settings.html", nil)
				return
			} else if !errors.Is(err, store.ErrNotFound) {
				h.serverError(w, r, err)
				return
			}
			admin.Username = form.Username
			if err := h.Store.AdminUpdate(r.Context(), &admin); err != nil {
				h.serverError(w, r, err)
				return
			}
			h.flash(w, r, "success", "Username updated successfully.")
		}

		if form.wantsPasswordChange() {
			switch {
			case !auth.CheckPassword(admin.PasswordHash, form.CurrentPassword):
				h.flash(w, r, "error", "Current password is incorrect.")
			case form.NewPassword == "":
				h.flash(w, r, "error", "New password cannot be empty.")
			case form.NewPassword != form.ConfirmPassword:
				h.flash(w, r, "error", "New passwords do not match.")
			default:
				hash, err := auth.HashPassword(form.NewPassword)
				if err != nil {
					h.serverError(w, r, err)
					return
				}
				admin.PasswordHash = hash
				if err := h.Store.AdminUpdate(r.Context(), &admin); err != nil {
					h.serverError(w, r, err)
					return
				}
				// Re-save the session so the credential change does not
				// log the admin out.
				if err := h.Auth.SignIn(w, r, admin.ID); err != nil {
					h.serverError(w, r, err)
					return
				}
				h.flash(w, r, "success", "Password changed successfully.")
			}
		}

		http.Redirect(w, r, "/settings/", http.StatusSeeOther)
		return
	}

	h.render(w, r, "settings.html", nil)
}
