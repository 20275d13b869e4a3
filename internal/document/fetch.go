// Package document downloads candidate schedule PDFs and reduces their text
// to the lines worth showing the model.
package document

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"shipsched/internal/domain"
)

// Fetcher downloads one document to a private temp file.
type Fetcher struct {
	client *http.Client
	dir    string
}

func NewFetcher(dir string, timeout time.Duration) *Fetcher {
	if dir == "" {
		dir = os.TempDir()
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Fetcher{client: &http.Client{Timeout: timeout}, dir: dir}
}

// Fetch saves url to dir/schedule-<uuid>.pdf. The caller must run cleanup
// once extraction is done; it is a no-op when err is non-nil.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, func(), error) {
	noop := func() {}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", noop, domain.FetchError{URL: url, Err: err}
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", noop, domain.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", noop, domain.FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return "", noop, domain.FetchError{URL: url, Err: fmt.Errorf("prepare download dir: %w", err)}
	}
	path := filepath.Join(f.dir, "schedule-"+uuid.NewString()+".pdf")
	out, err := os.Create(path)
	if err != nil {
		return "", noop, domain.FetchError{URL: url, Err: err}
	}
	cleanup := func() { _ = os.Remove(path) }

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		cleanup()
		return "", noop, domain.FetchError{URL: url, Err: fmt.Errorf("read body: %w", err)}
	}
	if err := out.Close(); err != nil {
		cleanup()
		return "", noop, domain.FetchError{URL: url, Err: err}
	}
	return path, cleanup, nil
}
