// Package assets fetches brick sprites, reduces each to a terminal colour and
// keeps them in a cache the renderer reads from.
package assets

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"
)

//go:embed imgs/*.png
var defaultPack embed.FS

// Source opens sprite files by relative name, e.g. "imgs/27_devil_1_1.png".
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// ErrNotFound is returned when a source has no file with the given name.
var ErrNotFound = errors.New("assets: sprite not found")

// HTTPSource fetches sprites from a static file server.
type HTTPSource struct {
	base   string
	client *http.Client
}

// NewHTTPSource creates a source rooted at base. A trailing slash is added
// when missing.
func NewHTTPSource(base string, timeout time.Duration) *HTTPSource {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return &HTTPSource{
		base:   base,
		client: &http.Client{Timeout: timeout},
	}
}

// Open issues a GET for base+name.
func (s *HTTPSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	url := s.base + name
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("assets: build request for %s: %w", url, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("assets: fetch %s: %w", url, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	case resp.StatusCode != http.StatusOK:
		resp.Body.Close()
		return nil, fmt.Errorf("assets: fetch %s: unexpected status %s", url, resp.Status)
	}
	return resp.Body, nil
}

// String returns the base URL.
func (s *HTTPSource) String() string {
	return s.base
}

// FSSource reads sprites from a filesystem.
type FSSource struct {
	fsys fs.FS
	desc string
}

// NewFSSource wraps fsys. desc names the source in logs.
func NewFSSource(fsys fs.FS, desc string) *FSSource {
	return &FSSource{fsys: fsys, desc: desc}
}

// DefaultSource returns the sprite pack compiled into the binary.
func DefaultSource() *FSSource {
	return NewFSSource(defaultPack, "embedded")
}

// Open opens name in the filesystem.
func (s *FSSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := s.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("assets: open %s: %w", name, err)
	}
	return f, nil
}

// String returns the source description.
func (s *FSSource) String() string {
	return s.desc
}

// NewSource picks a source for base: empty means the embedded pack, an
// http(s) URL means HTTPSource, anything else is a local directory.
func NewSource(base string, timeout time.Duration) (Source, error) {
	switch {
	case base == "":
		return DefaultSource(), nil
	case strings.HasPrefix(base, "http://") || strings.HasPrefix(base, "https://"):
		return NewHTTPSource(base, timeout), nil
	}

	info, err := os.Stat(base)
	if err != nil {
		return nil, fmt.Errorf("assets: sprite directory %s: %w", base, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets: sprite path %s is not a directory", base)
	}
	return NewFSSource(os.DirFS(base), base), nil
}
