package uploads

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/wnjuguna/portfolio/internal/errs"
)

// DiskStore writes uploads below a media root on the local filesystem. The
// server mounts the root at /media/ so returned paths are directly servable.
type DiskStore struct {
	Root string
}

func NewDiskStore(root string) *DiskStore {
	return &DiskStore{Root: root}
}

func (d *DiskStore) Save(ctx context.Context, dir, filename, contentType string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", errs.Wrap(err, "read upload")
	}
	data = normalize(data, contentType)

	key := objectKey(dir, filepath.Base(filename))
	dst := filepath.Join(d.Root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", errs.Wrap(err, "create upload directory")
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", errs.Wrap(err, "write upload")
	}

	return CleanURL(path.Join("/media", key)), nil
}
