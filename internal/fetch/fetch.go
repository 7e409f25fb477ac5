// Package fetch implements the host side of systemFetch: HTTP(S) requests and
// local file reads.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"barescript/internal/value"
)

var (
	ErrStatus      = errors.New("unexpected HTTP status")
	ErrOutsideRoot = errors.New("path outside fetch root")
)

type Client struct {
	HTTP *http.Client
	// Root confines non-HTTP reads to a directory tree. Paths must be
	// relative and may not leave Root, including through symlinks. An empty
	// Root reads any path the process can open.
	Root string
}

func NewClient(root string, timeout time.Duration) *Client {
	return &Client{
		HTTP: &http.Client{Timeout: timeout},
		Root: root,
	}
}

func isHTTP(u string) bool {
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}

// Fetch retrieves a resource. It has the value.FetchFunc signature.
func (c *Client) Fetch(ctx context.Context, req *value.FetchRequest) (string, error) {
	if isHTTP(req.URL) {
		return c.fetchHTTP(ctx, req)
	}
	return c.readFile(req.URL)
}

func (c *Client) fetchHTTP(ctx context.Context, req *value.FetchRequest) (string, error) {
	method := http.MethodGet
	var body io.Reader
	if req.Body != nil {
		method = http.MethodPost
		body = strings.NewReader(*req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", req.URL, err)
	}
	for name, v := range req.Headers {
		httpReq.Header.Set(name, v)
	}

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request to %s failed: %w", req.URL, err)
	}
	defer resp.Body.Close()

	slog.Debug("fetched", slog.String("method", method), slog.String("url", req.URL), slog.Int("status", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w %d for %s", ErrStatus, resp.StatusCode, req.URL)
	}

	bytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response from %s: %w", req.URL, err)
	}
	return string(bytes), nil
}

func (c *Client) readFile(u string) (string, error) {
	name := filepath.FromSlash(strings.TrimPrefix(u, "file://"))
	if c.Root == "" {
		bytes, err := os.ReadFile(name)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", u, err)
		}
		return string(bytes), nil
	}

	if filepath.IsAbs(name) || !filepath.IsLocal(name) {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, u)
	}
	root, err := os.OpenRoot(c.Root)
	if err != nil {
		return "", fmt.Errorf("failed to open fetch root %s: %w", c.Root, err)
	}
	defer root.Close()

	file, err := root.Open(name)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", u, err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", u, err)
	}
	return string(bytes), nil
}

// RelativeURLFn returns a URL rewriter that resolves relative URLs against
// base, an HTTP(S) URL or a directory. Absolute URLs and paths pass through.
func RelativeURLFn(base string) func(string) string {
	return func(u string) string {
		if base == "" || isAbsolute(u) {
			return u
		}
		if isHTTP(base) {
			baseURL, err := url.Parse(base)
			if err != nil {
				return u
			}
			ref, err := url.Parse(u)
			if err != nil {
				return u
			}
			return baseURL.ResolveReference(ref).String()
		}
		return path.Join(base, u)
	}
}

func isAbsolute(u string) bool {
	if strings.HasPrefix(u, "/") {
		return true
	}
	parsed, err := url.Parse(u)
	return err == nil && parsed.Scheme != ""
}
