package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// PostPage renders a single post: metadata header, rendered body, and
// related posts by shared tag.
func PostPage(site Site, post RenderedPost, related []Post) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, "<article><header>")
		io.WriteString(w, "<h1>"+esc(post.Title)+"</h1>")
		io.WriteString(w, "<time datetime=\""+post.DateString()+"\">"+post.DateString()+"</time>")
		if len(post.Tags) > 0 {
			io.WriteString(w, "<nav class=\"tags\">")
			for _, t := range post.Tags {
				io.WriteString(w, tagPill(t, "/?tag="+PathEscape(t), false))
			}
			io.WriteString(w, "</nav>")
		}
		io.WriteString(w, "</header>")

		// Body is trusted output of the markdown renderer.
		io.WriteString(w, string(post.Body))
		io.WriteString(w, "</article>")

		if len(related) > 0 {
			io.WriteString(w, "<aside class=\"related\"><h2>Related posts</h2><ul class=\"posts\">")
			for _, p := range related {
				io.WriteString(w, "<li><a href=\""+esc(p.Link)+"\">"+esc(p.Title)+"</a></li>")
			}
			io.WriteString(w, "</ul></aside>")
		}
		return nil
	})
	meta := PageMeta{
		Title:       post.Title,
		Description: post.Description,
		URL:         buildURL(site.URL, "blog", post.Slug),
		OGType:      "article",
	}
	return layout(site, meta, BlogPostingJsonLD(site, post.Post), body)
}
