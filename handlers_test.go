package journal

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	writePost(t, dir, "january.md", januaryPost)
	writePost(t, dir, "march.md", marchPost)

	static := t.TempDir()
	if err := os.WriteFile(filepath.Join(static, "favicon.svg"), []byte("<svg></svg>"), 0o644); err != nil {
		t.Fatal(err)
	}

	a := New(SiteConfig{
		Name:       "Test Journal",
		URL:        "http://example.test",
		ContentDir: dir,
		StaticDir:  static,
		ImagesDir:  t.TempDir(),
	})
	if err := a.init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func get(a *App, target string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func TestHomeListsPosts(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Notes from March") || !strings.Contains(body, "Notes from January") {
		t.Errorf("home page missing post titles: %q", body)
	}
	// Newest first.
	if strings.Index(body, "Notes from March") > strings.Index(body, "Notes from January") {
		t.Error("posts not listed newest first")
	}
}

func TestHomeSearchFilters(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/?q=coding")
	body := rec.Body.String()
	if !strings.Contains(body, "Notes from March") {
		t.Errorf("search should keep the tagged post: %q", body)
	}
	if strings.Contains(body, "Notes from January") {
		t.Errorf("search should drop non-matching posts: %q", body)
	}
}

func TestHomeEmptyResult(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/?q=zzzzz")
	if !strings.Contains(rec.Body.String(), "No posts match") {
		t.Errorf("missing empty-result state: %q", rec.Body.String())
	}
}

func TestHomePartialForHTMX(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/?partial=posts&q=coding", "HX-Request", "true")
	body := rec.Body.String()
	if strings.Contains(body, "<!DOCTYPE html>") {
		t.Errorf("partial response should not include the page shell: %q", body)
	}
	if !strings.Contains(body, "Notes from March") {
		t.Errorf("partial missing filtered post: %q", body)
	}
}

func TestPostPageRendersBody(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/blog/march/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "March heading") {
		t.Errorf("post body not rendered: %q", body)
	}
	if !strings.Contains(body, "BlogPosting") {
		t.Errorf("missing JSON-LD block: %q", body)
	}
}

func TestUnknownSlugIs404(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/blog/nope/")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Page not found") {
		t.Errorf("404 page missing message: %q", rec.Body.String())
	}
}

func TestBlogRedirectsHome(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/blog")
	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want 301", rec.Code)
	}
}

func TestFeed(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/feed.xml")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<rss") || !strings.Contains(body, "Notes from March") {
		t.Errorf("feed malformed: %q", body)
	}
}

func TestSitemap(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/sitemap.xml")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "urlset") || !strings.Contains(body, "http://example.test/blog/march/") {
		t.Errorf("sitemap malformed: %q", body)
	}
}

func TestRobots(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/robots.txt")
	if !strings.Contains(rec.Body.String(), "Sitemap: http://example.test/sitemap.xml") {
		t.Errorf("robots.txt missing sitemap: %q", rec.Body.String())
	}
}

func TestHomeLoadsHtmxScript(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/")
	body := rec.Body.String()
	if !strings.Contains(body, "<script src=\"https://unpkg.com/htmx.org@") {
		t.Errorf("page shell missing htmx script tag: %q", body)
	}
	csp := rec.Header().Get("Content-Security-Policy")
	if !strings.Contains(csp, "https://unpkg.com") {
		t.Errorf("CSP blocks the htmx script host: %q", csp)
	}
}

func TestFaviconServedWithoutRedirect(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/favicon.svg")
	if rec.Code == http.StatusMovedPermanently {
		t.Fatal("/favicon.svg should not be trailing-slash redirected")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestStylesheetServed(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/public/journal.css")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Errorf("Content-Type = %q, want text/css", ct)
	}
}
