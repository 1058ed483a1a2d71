package handlers

import (
	"net/http"
	"net/url"
	"testing"
)

func TestLoginSuccess(t *testing.T) {
	app := newTestApp(t)
	app.seedAdmin(t, "admin", "correct", true)
	c := app.client(t)

	app.login(t, c, "admin", "correct")

	resp := app.get(t, c, "/dashboard/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("dashboard after login status = %d, want 200", resp.StatusCode)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)
	app.seedAdmin(t, "admin", "correct", true)
	c := app.client(t)

	resp := app.postForm(t, c, "/login/", url.Values{
		"username": {"admin"},
		"password": {"wrong"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("failed login status = %d, want 200 (form re-render)", resp.StatusCode)
	}

	resp = app.get(t, c, "/dashboard/")
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/login/" {
		t.Fatalf("dashboard without session = %d -> %q, want redirect to /login/", resp.StatusCode, resp.Header.Get("Location"))
	}
}

func TestLoginNonStaffRejectedDespiteCorrectPassword(t *testing.T) {
	app := newTestApp(t)
	app.seedAdmin(t, "staffless_user", "correct", false)
	c := app.client(t)

	resp := app.postForm(t, c, "/login/", url.Values{
		"username": {"staffless_user"},
		"password": {"correct"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("non-staff login status = %d, want 200", resp.StatusCode)
	}

	resp = app.get(t, c, "/dashboard/")
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("non-staff account got a session: status = %d", resp.StatusCode)
	}
}

func TestLogoutRequiresSession(t *testing.T) {
	app := newTestApp(t)
	c := app.client(t)

	resp := app.get(t, c, "/logout/")
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/login/" {
		t.Fatalf("logout without session = %d -> %q", resp.StatusCode, resp.Header.Get("Location"))
	}
}

func TestLogoutDestroysSession(t *testing.T) {
	app := newTestApp(t)
	app.seedAdmin(t, "admin", "correct", true)
	c := app.client(t)
	app.login(t, c, "admin", "correct")

	resp := app.get(t, c, "/logout/")
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/" {
		t.Fatalf("logout = %d -> %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	resp = app.get(t, c, "/dashboard/")
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("dashboard after logout status = %d, want redirect", resp.StatusCode)
	}
}

func TestSettingsPasswordChangeKeepsSession(t *testing.T) {
	app := newTestApp(t)
	app.seedAdmin(t, "admin", "old-password", true)
	c := app.client(t)
	app.login(t, c, "admin", "old-password")

	resp := app.postForm(t, c, "/settings/", url.Values{
		"username":         {"admin"},
		"current_password": {"old-password"},
		"new_password":     {"new-password"},
		"confirm_password": {"new-password"},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("settings status = %d, want redirect", resp.StatusCode)
	}

	// The credential change must not log the admin out.
	resp = app.get(t, c, "/dashboard/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("dashboard after password change = %d, want 200", resp.StatusCode)
	}

	// And the new password must work on a fresh session.
	fresh := app.client(t)
	app.login(t, fresh, "admin", "new-password")
}

func TestSettingsPasswordChangeRejectsWrongCurrent(t *testing.T) {
	app := newTestApp(t)
	app.seedAdmin(t, "admin", "old-password", true)
	c := app.client(t)
	app.login(t, c, "admin", "old-password")

	resp := app.postForm(t, c, "/settings/", url.Values{
		"username":         {"admin"},
		"current_password": {"not-it"},
		"new_password":     {"new-password"},
		"confirm_password": {"new-password"},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("settings status = %d", resp.StatusCode)
	}

	// Old password still valid.
	fresh := app.client(t)
	app.login(t, fresh, "admin", "old-password")
}

func TestSettingsRenameRejectsEmptyUsername(t *testing.T) {
	app := newTestApp(t)
	app.seedAdmin(t, "admin", "pw", true)
	c := app.client(t)
	app.login(t, c, "admin", "pw")

	resp := app.postForm(t, c, "/settings/", url.Values{"username": {""}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("empty rename status = %d, want 200 (form re-render)", resp.StatusCode)
	}

	// Account is unchanged.
	fresh := app.client(t)
	app.login(t, fresh, "admin", "pw")
}

func TestSettingsRename(t *testing.T) {
	app := newTestApp(t)
	app.seedAdmin(t, "admin", "pw", true)
	c := app.client(t)
	app.login(t, c, "admin", "pw")

	resp := app.postForm(t, c, "/settings/", url.Values{"username": {"wilson"}})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("rename status = %d", resp.StatusCode)
	}

	fresh := app.client(t)
	app.login(t, fresh, "wilson", "pw")
}
