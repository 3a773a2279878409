package views

import (
	"html/template"
	"time"
)

// Site holds site-wide settings passed into every page component so
// nothing is hardcoded in templates.
type Site struct {
	Name        string // site name shown in the header and feed
	URL         string // canonical URL, no trailing slash
	Description string // site description for RSS and meta tags
	Author      string // author name for JSON-LD
}

// Post is the lightweight metadata record used for listing. The body is
// never loaded for a Post; see RenderedPost.
type Post struct {
	Slug        string
	Title       string
	Date        time.Time
	Description string
	Tags        []string
	Link        string
}

// DateString formats the post date for display and feed output.
func (p Post) DateString() string {
	return p.Date.Format("2006-01-02")
}

// RenderedPost is a Post together with its body rendered to HTML. It is
// produced per request and never cached.
type RenderedPost struct {
	Post
	Body template.HTML
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}
