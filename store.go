package journal

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/mvanek/journal/markdown"
	"github.com/mvanek/journal/views"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = errors.New("journal: post not found")

// ParseError reports a content file whose frontmatter could not be decoded
// or fails validation.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("journal: parse %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Store reads posts from a directory of Markdown files with YAML
// frontmatter. The directory is the sole data source; nothing is written
// back at runtime.
type Store struct {
	dir      string
	renderer *markdown.Renderer
	lenient  bool
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLenientParsing makes ListPosts log and skip malformed content files
// instead of failing the whole listing. The default is strict: the first
// parse error aborts.
func WithLenientParsing() StoreOption {
	return func(s *Store) {
		s.lenient = true
	}
}

// NewStore creates a Store rooted at dir. Posts are rendered through r when
// requested by slug.
func NewStore(dir string, r *markdown.Renderer, opts ...StoreOption) *Store {
	s := &Store{dir: dir, renderer: r}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// postMeta is the typed frontmatter envelope. Title and date are required;
// anything missing or unparseable surfaces as a *ParseError rather than a
// partially populated record.
type postMeta struct {
	Title       string   `yaml:"title" toml:"title"`
	Date        string   `yaml:"date" toml:"date"`
	Description string   `yaml:"description" toml:"description"`
	Tags        []string `yaml:"tags" toml:"tags"`
}

func (m postMeta) toPost(slug string) (views.Post, error) {
	if strings.TrimSpace(m.Title) == "" {
		return views.Post{}, errors.New("missing required field: title")
	}
	date, err := parseDate(m.Date)
	if err != nil {
		return views.Post{}, err
	}
	return views.Post{
		Slug:        slug,
		Title:       m.Title,
		Date:        date,
		Description: m.Description,
		Tags:        FilterEmpty(m.Tags),
		Link:        "/blog/" + slug + "/",
	}, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("missing required field: date")
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
}

// ListPosts scans the content directory and returns all post summaries
// sorted by date descending. Only frontmatter is decoded; bodies are
// discarded. A failure to read the directory fails the whole call. A
// malformed file aborts the listing unless WithLenientParsing is set.
func (s *Store) ListPosts() ([]views.Post, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("journal: read content dir %s: %w", s.dir, err)
	}

	var posts []views.Post
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		post, err := s.readSummary(entry.Name())
		if err != nil {
			if s.lenient {
				log.Printf("journal: skipping %s: %v", entry.Name(), err)
				continue
			}
			return nil, err
		}
		posts = append(posts, post)
	}

	// Stable sort keeps directory order for posts sharing a date.
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
	return posts, nil
}

func (s *Store) readSummary(name string) (views.Post, error) {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		return views.Post{}, fmt.Errorf("journal: open %s: %w", name, err)
	}
	defer f.Close()

	var meta postMeta
	if _, err := frontmatter.Parse(f, &meta); err != nil {
		return views.Post{}, &ParseError{File: name, Err: err}
	}
	post, err := meta.toPost(strings.TrimSuffix(name, ".md"))
	if err != nil {
		return views.Post{}, &ParseError{File: name, Err: err}
	}
	return post, nil
}

// GetPost resolves slug to a content file, parses its frontmatter and body,
// and returns the post with its body rendered to HTML. Returns ErrNotFound
// when no file matches.
func (s *Store) GetPost(slug string) (views.RenderedPost, error) {
	name := normalizeSlug(slug)
	if name == "" {
		return views.RenderedPost{}, ErrNotFound
	}

	raw, err := os.ReadFile(filepath.Join(s.dir, name+".md"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return views.RenderedPost{}, ErrNotFound
		}
		return views.RenderedPost{}, fmt.Errorf("journal: read post %s: %w", name, err)
	}

	var meta postMeta
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		return views.RenderedPost{}, &ParseError{File: name + ".md", Err: err}
	}
	post, err := meta.toPost(name)
	if err != nil {
		return views.RenderedPost{}, &ParseError{File: name + ".md", Err: err}
	}

	html, err := s.renderer.Render(body)
	if err != nil {
		return views.RenderedPost{}, fmt.Errorf("journal: render post %s: %w", name, err)
	}

	return views.RenderedPost{Post: post, Body: template.HTML(html)}, nil
}

// normalizeSlug strips a trailing .md extension and rejects anything that
// could escape the content directory.
func normalizeSlug(slug string) string {
	slug = strings.TrimSuffix(strings.TrimSpace(slug), ".md")
	if slug == "" || slug == "." || slug == ".." {
		return ""
	}
	if strings.ContainsAny(slug, `/\`) {
		return ""
	}
	return slug
}
