package carriers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/134.0.0.0 Safari/537.36"

// Page is one page request.
type Page struct {
	URL    string
	Query  url.Values
	Header http.Header
}

// PageRenderer loads a page and returns its parsed DOM.
type PageRenderer interface {
	Render(ctx context.Context, page Page) (*goquery.Document, error)
}

// HTTPRenderer fetches pages over plain HTTP. Cookies persist across calls so
// session-gated result pages work after visiting their entry page.
type HTTPRenderer struct {
	client *http.Client
}

func NewHTTPRenderer(timeout time.Duration) *HTTPRenderer {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	jar, _ := cookiejar.New(nil)
	return &HTTPRenderer{client: &http.Client{Timeout: timeout, Jar: jar}}
}

func (r *HTTPRenderer) Render(ctx context.Context, page Page) (*goquery.Document, error) {
	u := page.URL
	if len(page.Query) > 0 {
		sep := "?"
		if strings.Contains(u, "?") {
			sep = "&"
		}
		u += sep + page.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	for k, vs := range page.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("page %s http %d: %s", page.URL, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return goquery.NewDocumentFromReader(resp.Body)
}

// Anchor is a link found on a page.
type Anchor struct {
	Href string
	Text string
}

// WaitConfig bounds how long WaitForAnchors keeps polling.
type WaitConfig struct {
	Timeout  time.Duration
	Interval time.Duration
}

func (w WaitConfig) normalized() WaitConfig {
	if w.Timeout <= 0 {
		w.Timeout = 10 * time.Second
	}
	if w.Interval <= 0 {
		w.Interval = time.Second
	}
	return w
}

// WaitForAnchors renders page until at least one anchor satisfies match or
// the timeout elapses, then returns whatever matched (possibly nothing). It
// fails only when no render ever succeeded.
func WaitForAnchors(ctx context.Context, r PageRenderer, page Page, wait WaitConfig, match func(Anchor) bool) ([]Anchor, error) {
	wait = wait.normalized()
	deadline := time.Now().Add(wait.Timeout)

	var lastErr error
	rendered := false
	for {
		doc, err := r.Render(ctx, page)
		if err != nil {
			lastErr = err
		} else {
			rendered = true
			if found := collectAnchors(doc, match); len(found) > 0 {
				return found, nil
			}
		}

		if time.Now().Add(wait.Interval).After(deadline) {
			break
		}
		select {
		case <-ctx.Done():
			if rendered {
				return nil, nil
			}
			return nil, ctx.Err()
		case <-time.After(wait.Interval):
		}
	}

	if !rendered {
		return nil, lastErr
	}
	return nil, nil
}

func collectAnchors(doc *goquery.Document, match func(Anchor) bool) []Anchor {
	var out []Anchor
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		a := Anchor{Href: strings.TrimSpace(href), Text: strings.TrimSpace(s.Text())}
		if a.Href != "" && match(a) {
			out = append(out, a)
		}
	})
	return out
}

func hasPDFSuffix(a Anchor) bool {
	return strings.HasSuffix(strings.ToLower(a.Href), ".pdf")
}

// resolveLink turns href into an absolute URL relative to base.
func resolveLink(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(ref).String()
}
