// Package download saves full-size photos to disk.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/five82/getphotos/internal/unsplash"
)

// Save streams the photo's full-size image into dir and returns the written
// path. The file appears only once the body has been fully written.
func Save(ctx context.Context, client *http.Client, photo unsplash.Photo, dir string) (string, error) {
	src := strings.TrimSpace(photo.DownloadURL())
	if src == "" {
		return "", fmt.Errorf("photo %q has no image url", photo.ID)
	}
	if client == nil {
		client = http.DefaultClient
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	dest := filepath.Join(dir, FileName(photo))
	tmp, err := os.CreateTemp(dir, ".getphotos-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close image: %w", err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", fmt.Errorf("rename image: %w", err)
	}
	return dest, nil
}

// FileName returns "<id>-<username>.jpg", with unsafe characters replaced.
func FileName(photo unsplash.Photo) string {
	parts := []string{}
	for _, p := range []string{photo.ID, photo.User.Username} {
		if s := sanitize(p); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "photo")
	}
	return strings.Join(parts, "-") + ".jpg"
}

func sanitize(value string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(value) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
