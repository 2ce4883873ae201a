package app

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"strings"

	"github.com/ronrahal/athar-syria-s-hope/internal/adapter/blob/cloudinary"
	"github.com/ronrahal/athar-syria-s-hope/internal/adapter/blob/disk"
	"github.com/ronrahal/athar-syria-s-hope/internal/config"
)

type photoStore interface {
	Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, name string) error
	Ping(ctx context.Context) error
}

// blobBackend is the configured photo store. files is non-nil when photos
// must be served by this process.
type blobBackend struct {
	store photoStore
	files *fileRoute
}

// fileRoute serves a directory under a URL path prefix.
type fileRoute struct {
	prefix  string
	handler http.Handler
}

func newBlobStore(cfg config.BlobConfig) (blobBackend, error) {
	switch cfg.Provider {
	case config.BlobProviderCloudinary:
		s, err := cloudinary.New(cfg.CloudinaryURL, cfg.CloudinaryFolder)
		if err != nil {
			return blobBackend{}, err
		}
		return blobBackend{store: s}, nil

	case config.BlobProviderDisk:
		s, err := disk.New(cfg.DiskDir, cfg.DiskBaseURL)
		if err != nil {
			return blobBackend{}, err
		}
		route, err := diskRoute(cfg.DiskBaseURL, s.Dir())
		if err != nil {
			return blobBackend{}, err
		}
		return blobBackend{store: s, files: route}, nil
	}
	return blobBackend{}, fmt.Errorf("app: unknown blob provider %q", cfg.Provider)
}

// diskRoute mounts dir at the path of baseURL. baseURL may be absolute
// ("http://localhost:8080/uploads") or a bare path ("/uploads").
func diskRoute(baseURL, dir string) (*fileRoute, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("app: parse disk base url: %w", err)
	}
	prefix := "/" + strings.Trim(u.Path, "/") + "/"
	if prefix == "//" {
		return nil, fmt.Errorf("app: disk base url %q has no path", baseURL)
	}
	return &fileRoute{
		prefix:  prefix,
		handler: http.StripPrefix(prefix, http.FileServer(noDirListing{http.Dir(dir)})),
	}, nil
}

// noDirListing hides directory indexes from http.FileServer.
type noDirListing struct {
	fs http.FileSystem
}

func (n noDirListing) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if st.IsDir() {
		f.Close()
		return nil, fs.ErrNotExist
	}
	return f, nil
}
