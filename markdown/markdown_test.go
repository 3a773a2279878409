package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	src := "| Name | Value |\n| ---- | ----- |\n| one  | 1     |\n"
	out, err := New().Render([]byte(src))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	got := string(out)
	if !strings.Contains(got, "<table>") || !strings.Contains(got, "<th>Name</th>") {
		t.Errorf("table not rendered: %q", got)
	}
	if !strings.Contains(got, "<td>one</td>") {
		t.Errorf("table cell missing: %q", got)
	}
}

func TestRenderCodeBlockHighlighted(t *testing.T) {
	src := "```go\nfmt.Println(\"hi\")\n```\n"
	out, err := New().Render([]byte(src))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	got := string(out)
	if !strings.Contains(got, "chroma") {
		t.Errorf("fenced code not highlighted with chroma classes: %q", got)
	}
	if !strings.Contains(got, "<pre") || !strings.Contains(got, "<code") {
		t.Errorf("fenced code missing pre/code: %q", got)
	}
}

func TestRenderStrikethrough(t *testing.T) {
	out, err := New().Render([]byte("~~gone~~"))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(string(out), "<del>gone</del>") {
		t.Errorf("strikethrough not rendered: %q", out)
	}
}

func TestRenderHeadingID(t *testing.T) {
	out, err := New().Render([]byte("## Some Heading"))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(string(out), `id="some-heading"`) {
		t.Errorf("auto heading id missing: %q", out)
	}
}

func TestRenderDeterministic(t *testing.T) {
	src := []byte("# Title\n\nSome *text* with `code`.\n\n```go\nx := 1\n```\n")
	r := New()
	first, err := r.Render(src)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	second, err := r.Render(src)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("identical input produced different output")
	}
}

func TestSanitizerStripsScript(t *testing.T) {
	src := []byte("hello\n\n<script>alert(1)</script>\n")
	out, err := New(WithSanitizer()).Render(src)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(string(out), "<script>") {
		t.Errorf("sanitizer let script through: %q", out)
	}
	if !strings.Contains(string(out), "hello") {
		t.Errorf("sanitizer dropped legitimate content: %q", out)
	}
}

func TestSanitizerKeepsChromaClasses(t *testing.T) {
	src := []byte("```go\nx := 1\n```\n")
	out, err := New(WithSanitizer()).Render(src)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(string(out), "chroma") {
		t.Errorf("sanitizer stripped chroma classes: %q", out)
	}
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := New().Component("**bold**").Render(context.Background(), &buf); err != nil {
		t.Fatalf("Component render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "<strong>bold</strong>") {
		t.Errorf("component output = %q", buf.String())
	}
}
