package markdown_test

import (
	"strings"
	"testing"

	"wayne/internal/platform/markdown"
)

type note struct {
	ID    string `yaml:"id"`
	Level int    `yaml:"level"`
}

func TestRenderThenDecode(t *testing.T) {
	t.Parallel()
	rendered, err := markdown.Render(note{ID: "d-1", Level: 3}, "# Debrief\n")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(rendered, "---\nid: d-1\nlevel: 3\n---\n") {
		t.Fatalf("unexpected frontmatter layout: %q", rendered)
	}
	var got note
	body, err := markdown.Decode(rendered, &got)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != "d-1" || got.Level != 3 {
		t.Fatalf("unexpected decoded note: %+v", got)
	}
	if body != "\n# Debrief\n" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestDecodeRejectsMissingOrUnterminatedFrontmatter(t *testing.T) {
	t.Parallel()
	var got note
	if _, err := markdown.Decode("# plain note\n", &got); err == nil {
		t.Fatalf("expected error for note without frontmatter")
	}
	if _, err := markdown.Decode("---\nid: x\n", &got); err == nil {
		t.Fatalf("expected error for unterminated frontmatter")
	}
}
