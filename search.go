package journal

import (
	"sort"
	"strings"

	"github.com/mvanek/journal/views"
)

// FilterPosts returns the posts whose title, description, or any tag
// contains query, compared case-insensitively. An empty or whitespace-only
// query matches everything. The input slice is never mutated; the result is
// always a fresh slice in the original order.
func FilterPosts(posts []views.Post, query string) []views.Post {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]views.Post, 0, len(posts))
	if query == "" {
		return append(out, posts...)
	}
	for _, p := range posts {
		if postMatches(p, query) {
			out = append(out, p)
		}
	}
	return out
}

func postMatches(p views.Post, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}

// FilterByTag returns the posts carrying tag, compared case-insensitively
// after trimming. An empty tag matches everything.
func FilterByTag(posts []views.Post, tag string) []views.Post {
	tag = normalizeTag(tag)
	out := make([]views.Post, 0, len(posts))
	if tag == "" {
		return append(out, posts...)
	}
	for _, p := range posts {
		for _, t := range p.Tags {
			if normalizeTag(t) == tag {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// ListTags returns the sorted, deduplicated tags across posts.
func ListTags(posts []views.Post) []string {
	set := make(map[string]struct{})
	for _, p := range posts {
		for _, t := range p.Tags {
			if tag := normalizeTag(t); tag != "" {
				set[tag] = struct{}{}
			}
		}
	}
	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
