package pipeline

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGoldmarkConverter_ToHTML - Book HTML rendering
// ---------------------------------------------------------------------------

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		docs         []Document
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "no documents",
			docs:         nil,
			wantContains: []string{"<!DOCTYPE html>", "<title>Book</title>", "<body>\n</body>"},
		},
		{
			name: "section per document",
			docs: []Document{
				{Title: "Intro", Body: "Hello **world**"},
				{Title: "Second", Body: "More"},
			},
			wantContains: []string{
				"<title>Intro</title>",
				`<h1 id="intro">Intro</h1>`,
				"<strong>world</strong>",
				`<h1 id="second">Second</h1>`,
			},
		},
		{
			name: "title escaped",
			docs: []Document{{Title: "A <b> & C", Body: ""}},
			wantContains: []string{
				"<title>A &lt;b&gt; &amp; C</title>",
				"A &lt;b&gt; &amp; C</h1>",
			},
		},
		{
			name:         "missing document placeholder",
			docs:         []Document{{Title: "Gone", Rel: "gone.md", Missing: true}},
			wantContains: []string{"<p>[Missing file: gone.md]</p>"},
		},
		{
			name:         "raw HTML dropped",
			docs:         []Document{{Title: "T", Body: "<script>alert(1)</script>\n\ntext"}},
			wantContains: []string{"<p>text</p>"},
			wantExcludes: []string{"<script>"},
		},
		{
			name:         "GFM table",
			docs:         []Document{{Title: "T", Body: "| a | b |\n|---|---|\n| 1 | 2 |"}},
			wantContains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:         "code highlighted with classes",
			docs:         []Document{{Title: "T", Body: "```go\nfunc main() {}\n```"}},
			wantContains: []string{`class="chroma"`},
		},
	}

	conv := NewGoldmarkConverter()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.docs, ".")
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML() missing %q in:\n%s", want, got)
				}
			}
			for _, bad := range tt.wantExcludes {
				if strings.Contains(got, bad) {
					t.Errorf("ToHTML() unexpectedly contains %q", bad)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ToHTML_UniqueIDs(t *testing.T) {
	t.Parallel()

	docs := []Document{
		{Title: "Overview", Body: "## Overview\n\ntext"},
		{Title: "Overview", Body: "## Overview"},
	}

	got, err := NewGoldmarkConverter().ToHTML(context.Background(), docs, ".")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}

	for _, id := range []string{`id="overview"`, `id="overview-1"`, `id="overview-2"`, `id="overview-3"`} {
		if n := strings.Count(got, id); n != 1 {
			t.Errorf("%s appears %d times, want 1", id, n)
		}
	}
}

func TestGoldmarkConverter_ToHTML_RebasesLinks(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("slash-rooted fixtures")
	}

	docs := []Document{{Title: "C1", Dir: "/book/ch1", Body: "![fig](img/a.png)"}}
	got, err := NewGoldmarkConverter().ToHTML(context.Background(), docs, "/book")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if !strings.Contains(got, `src="ch1/img/a.png"`) {
		t.Errorf("image not rebased:\n%s", got)
	}
}

func TestGoldmarkConverter_ToHTML_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkConverter().ToHTML(ctx, []Document{{Title: "A"}}, ".")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// TestSlugify
// ---------------------------------------------------------------------------

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"Hello World", "hello-world"},
		{"  Trim  me  ", "trim-me"},
		{"snake_case-and-dash", "snake-case-and-dash"},
		{"C++ & Go!", "c-go"},
		{"Élan vital", "élan-vital"},
		{"***", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			if got := slugify(tt.in); got != tt.want {
				t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
