// Package uploads stores user-submitted images and hands back the public
// path they are served from.
package uploads

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/h2non/bimg"
)

// Images wider than this are downscaled before storage.
const maxImageWidth = 1600

// Store saves an uploaded file under the given directory ("projects",
// "profile") and returns the public path or URL it will be served from.
type Store interface {
	Save(ctx context.Context, dir, filename, contentType string, r io.Reader) (string, error)
}

// objectKey builds a collision-free storage key that keeps the original
// filename visible.
func objectKey(dir, filename string) string {
	return fmt.Sprintf("%s/%s_%s", dir, uuid.New().String(), filename)
}

// normalize downscales oversized images. Anything bimg cannot read is
// stored as uploaded.
func normalize(data []byte, contentType string) []byte {
	if !strings.HasPrefix(contentType, "image/") {
		return data
	}

	img := bimg.NewImage(data)
	size, err := img.Size()
	if err != nil || size.Width <= maxImageWidth {
		return data
	}

	resized, err := img.Process(bimg.Options{Width: maxImageWidth})
	if err != nil {
		return data
	}
	return resized
}

// CleanURL percent-encodes spaces and normalizes the URL for storage.
func CleanURL(urlStr string) string {
	urlStr = strings.ReplaceAll(urlStr, " ", "%20")
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return urlStr
	}
	return parsedURL.String()
}
