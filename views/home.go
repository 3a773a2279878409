package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Home renders the post index with the search box, tag pills, and the
// filtered listing.
func Home(site Site, posts []Post, query, activeTag string, tags []string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, "<form class=\"search\" method=\"get\" action=\"/\">")
		io.WriteString(w, "<input type=\"search\" name=\"q\" placeholder=\"Search posts...\" value=\""+esc(query)+"\"")
		io.WriteString(w, " hx-get=\"/?partial=posts\" hx-trigger=\"input changed delay:300ms, search\" hx-target=\"#post-list\" hx-push-url=\"true\"/>")
		if activeTag != "" {
			io.WriteString(w, "<input type=\"hidden\" name=\"tag\" value=\""+esc(activeTag)+"\"/>")
		}
		io.WriteString(w, "</form>")

		if len(tags) > 0 {
			io.WriteString(w, "<nav class=\"tags\">")
			io.WriteString(w, tagPill("all", "/", activeTag == ""))
			for _, t := range tags {
				io.WriteString(w, tagPill(t, "/?tag="+PathEscape(t), t == activeTag))
			}
			io.WriteString(w, "</nav>")
		}

		io.WriteString(w, "<div id=\"post-list\">")
		if err := PostList(posts, query, activeTag).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</div>")
		return err
	})
	meta := PageMeta{
		Title:       site.Name,
		Description: site.Description,
		URL:         buildURL(site.URL),
		OGType:      "website",
	}
	return layout(site, meta, WebsiteJsonLD(site), body)
}

// PostList renders just the listing, used as the HTMX swap target for
// live search.
func PostList(posts []Post, query, activeTag string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(posts) == 0 {
			msg := "No posts yet."
			if query != "" || activeTag != "" {
				msg = "No posts match your search."
			}
			_, err := io.WriteString(w, "<p class=\"empty\">"+esc(msg)+"</p>")
			return err
		}
		io.WriteString(w, "<ul class=\"posts\">")
		for _, p := range posts {
			io.WriteString(w, "<li><time datetime=\""+p.DateString()+"\">"+p.DateString()+"</time>")
			io.WriteString(w, "<a href=\""+esc(p.Link)+"\">"+esc(p.Title)+"</a>")
			if p.Description != "" {
				io.WriteString(w, "<p>"+esc(p.Description)+"</p>")
			}
			io.WriteString(w, "</li>")
		}
		_, err := io.WriteString(w, "</ul>")
		return err
	})
}

func tagPill(label, href string, active bool) string {
	class := "tag"
	if active {
		class += " active"
	}
	return "<a class=\"" + class + "\" href=\"" + esc(href) + "\">" + esc(label) + "</a>"
}
