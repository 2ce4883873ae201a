// Package disk stores case photos on the local filesystem for development.
package disk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Store writes photos under Dir and serves them from BaseURL.
type Store struct {
	dir     string
	baseURL string
}

// New creates the directory if needed.
func New(dir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("disk: create %s: %w", dir, err)
	}
	return &Store{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir returns the directory photos are written to.
func (s *Store) Dir() string { return s.dir }

// Ping reports whether the photo directory is still present.
func (s *Store) Ping(context.Context) error {
	fi, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("disk: stat %s: %w", s.dir, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("disk: %s is not a directory", s.dir)
	}
	return nil
}

// Upload writes r to <dir>/<name><ext> and returns <baseURL>/<name><ext>.
// A partially written file is removed on error.
func (s *Store) Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	if !validName(name) {
		return "", fmt.Errorf("disk: invalid name %q", name)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	file := name + extension(contentType)
	path := filepath.Join(s.dir, file)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("disk: create %s: %w", file, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("disk: write %s: %w", file, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("disk: close %s: %w", file, err)
	}

	return s.baseURL + "/" + url.PathEscape(file), nil
}

// Delete removes the photo stored under name, whatever its extension.
// Deleting a missing photo is not an error.
func (s *Store) Delete(_ context.Context, name string) error {
	if !validName(name) {
		return fmt.Errorf("disk: invalid name %q", name)
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("disk: read %s: %w", s.dir, err)
	}
	for _, e := range entries {
		file := e.Name()
		if e.IsDir() || strings.TrimSuffix(file, filepath.Ext(file)) != name {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, file)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("disk: remove %s: %w", file, err)
		}
	}
	return nil
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

func extension(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}
