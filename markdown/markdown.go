// Package markdown renders post bodies to HTML using goldmark with table
// support and syntax-highlighted fenced code blocks.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts Markdown source to HTML. It is stateless after
// construction and safe for concurrent use; rendering is deterministic for
// identical input.
type Renderer struct {
	md       goldmark.Markdown
	sanitize bool
	policy   *bluemonday.Policy
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSanitizer runs rendered HTML through a bluemonday UGC policy. Content
// authored by the site owner does not need this; enable it when serving
// markdown from untrusted sources.
func WithSanitizer() Option {
	return func(r *Renderer) {
		r.sanitize = true
	}
}

// New returns a Renderer with GFM tables, strikethrough, auto heading IDs,
// and chroma class-based highlighting for fenced code blocks.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
				extension.Strikethrough,
				highlighting.NewHighlighting(
					highlighting.WithFormatOptions(
						chromahtml.WithClasses(true),
					),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.sanitize {
		// The UGC policy strips the class attributes chroma relies on,
		// so allow them back on code-related elements.
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("class").OnElements("pre", "code", "span", "div", "table")
		p.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
		r.policy = p
	}
	return r
}

// Render converts src to HTML.
func (r *Renderer) Render(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	if r.policy != nil {
		return r.policy.SanitizeBytes(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

// Component wraps the rendered HTML of src as a templ.Component so views
// can embed post bodies directly.
func (r *Renderer) Component(src string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out, err := r.Render([]byte(src))
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	})
}
