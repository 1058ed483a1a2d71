package uploads

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskStoreSave(t *testing.T) {
	root := t.TempDir()
	d := NewDiskStore(root)

	url, err := d.Save(context.Background(), "projects", "my shot.txt", "text/plain", strings.NewReader("hello"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !strings.HasPrefix(url, "/media/projects/") {
		t.Fatalf("url = %q, want a /media/projects/ path", url)
	}
	if strings.Contains(url, " ") {
		t.Fatalf("url %q contains an unencoded space", url)
	}
	if !strings.HasSuffix(url, "my%20shot.txt") {
		t.Fatalf("url = %q, want the original filename kept", url)
	}

	// The stored file carries the content unchanged for non-image uploads.
	key := strings.TrimPrefix(url, "/media/")
	key = strings.ReplaceAll(key, "%20", " ")
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(key)))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "hello" {
		t.Fatalf("stored content = %q", data)
	}
}

func TestDiskStoreUniqueKeys(t *testing.T) {
	d := NewDiskStore(t.TempDir())
	ctx := context.Background()

	a, err := d.Save(ctx, "projects", "same.txt", "text/plain", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	b, err := d.Save(ctx, "projects", "same.txt", "text/plain", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if a == b {
		t.Fatalf("two uploads of the same filename share a key: %q", a)
	}
}

func TestDiskStoreCancelledContext(t *testing.T) {
	d := NewDiskStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := d.Save(ctx, "projects", "x.txt", "text/plain", strings.NewReader("x")); err == nil {
		t.Fatal("Save() with a cancelled context should fail")
	}
}

func TestCleanURL(t *testing.T) {
	tests := []struct{ in, want string }{
		{"/media/projects/a b.png", "/media/projects/a%20b.png"},
		{"/media/projects/plain.png", "/media/projects/plain.png"},
		{"https://cdn.example.com/k ey", "https://cdn.example.com/k%20ey"},
	}
	for _, tt := range tests {
		if got := CleanURL(tt.in); got != tt.want {
			t.Fatalf("CleanURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
