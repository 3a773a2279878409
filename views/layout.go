// Package views holds the shared page types and templ components for the
// journal frontend.
package views

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

// htmxScriptURL is the pinned htmx release that powers the live-search
// partial swap. Sites that prefer a local copy can drop htmx.min.js into
// their static dir and override the layout via custom routes.
const htmxScriptURL = "https://unpkg.com/htmx.org@1.9.12/dist/htmx.min.js"

// esc escapes s for safe interpolation into HTML text and attributes.
func esc(s string) string {
	return html.EscapeString(s)
}

// layout wraps body in the site page shell: head with SEO metadata, site
// header, and footer.
func layout(site Site, meta PageMeta, jsonLD string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := meta.Title
		if title == "" {
			title = site.Name
		}
		io.WriteString(w, "<!DOCTYPE html><html lang=\"en\"><head>")
		io.WriteString(w, "<meta charset=\"utf-8\"/>")
		io.WriteString(w, "<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>")
		io.WriteString(w, "<title>"+esc(title)+"</title>")
		if meta.Description != "" {
			io.WriteString(w, "<meta name=\"description\" content=\""+esc(meta.Description)+"\"/>")
		}
		if meta.URL != "" {
			io.WriteString(w, "<link rel=\"canonical\" href=\""+esc(meta.URL)+"\"/>")
			io.WriteString(w, "<meta property=\"og:url\" content=\""+esc(meta.URL)+"\"/>")
		}
		io.WriteString(w, "<meta property=\"og:title\" content=\""+esc(title)+"\"/>")
		if meta.OGType != "" {
			io.WriteString(w, "<meta property=\"og:type\" content=\""+esc(meta.OGType)+"\"/>")
		}
		io.WriteString(w, "<link rel=\"alternate\" type=\"application/rss+xml\" title=\""+esc(site.Name)+"\" href=\"/feed.xml\"/>")
		io.WriteString(w, "<link rel=\"stylesheet\" href=\"/public/journal.css\"/>")
		io.WriteString(w, "<script src=\""+htmxScriptURL+"\" defer></script>")
		if jsonLD != "" {
			io.WriteString(w, "<script type=\"application/ld+json\">"+jsonLD+"</script>")
		}
		io.WriteString(w, "</head><body>")

		io.WriteString(w, "<header class=\"site\"><h1><a href=\"/\">"+esc(site.Name)+"</a></h1>")
		if site.Description != "" {
			io.WriteString(w, "<p>"+esc(site.Description)+"</p>")
		}
		io.WriteString(w, "</header><main>")

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		io.WriteString(w, "</main><footer class=\"site\"><p>")
		if site.Author != "" {
			io.WriteString(w, esc(site.Author)+" &middot; ")
		}
		io.WriteString(w, "<a href=\"/feed.xml\">RSS</a></p></footer>")
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}
