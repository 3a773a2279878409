package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// NotFound renders the styled 404 page.
func NotFound(site Site) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, "<h1>Page not found</h1>")
		_, err := io.WriteString(w, "<p>That post doesn't exist. <a href=\"/\">Back to the journal.</a></p>")
		return err
	})
	return layout(site, PageMeta{Title: "Not found"}, "", body)
}

// ServerError renders the styled 500 page.
func ServerError(site Site) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, "<h1>Something went wrong</h1>")
		_, err := io.WriteString(w, "<p>Try again in a moment, or head <a href=\"/\">back to the journal</a>.</p>")
		return err
	})
	return layout(site, PageMeta{Title: "Server error"}, "", body)
}
