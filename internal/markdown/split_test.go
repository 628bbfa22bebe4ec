package markdown

import (
	"strings"
	"testing"
)

func TestSplitAlwaysEmitsPreambleFirst(t *testing.T) {
	sections := Split("## First\nbody\n", nil)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Title != "Header" || sections[0].Priority != PriorityPreamble {
		t.Fatalf("unexpected preamble: %+v", sections[0])
	}
	if sections[0].Content != "" {
		t.Fatalf("expected empty preamble, got %q", sections[0].Content)
	}
}

func TestSplitSectionBoundaries(t *testing.T) {
	text := "intro line\n## Alpha\nalpha body\n## Beta\nbeta body"
	sections := Split(text, nil)

	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	if sections[0].Content != "intro line\n" {
		t.Fatalf("preamble content: %q", sections[0].Content)
	}
	if sections[1].Title != "Alpha" || sections[1].Content != "## Alpha\nalpha body\n" {
		t.Fatalf("alpha section: %+v", sections[1])
	}
	if sections[2].Title != "Beta" || sections[2].Content != "## Beta\nbeta body\n" {
		t.Fatalf("beta section: %+v", sections[2])
	}
}

func TestSplitReconstructsSource(t *testing.T) {
	cases := []string{
		"no headings at all",
		"intro\n## A\na body\n## B\nb body\n",
		"## A\nonly section",
		"",
	}
	for _, text := range cases {
		var b strings.Builder
		for _, s := range Split(text, nil) {
			b.WriteString(s.Content)
		}
		// Line accounting always adds exactly one trailing newline.
		if want := text + "\n"; b.String() != want {
			t.Errorf("reconstruction of %q: got %q, want %q", text, b.String(), want)
		}
	}
}

func TestSplitPriorities(t *testing.T) {
	text := "pre\n## Keep Me\nkept\n## Other\ndropped\n"
	sections := Split(text, []string{"Keep Me"})

	got := map[string]Priority{}
	for _, s := range sections {
		got[s.Title] = s.Priority
	}
	if got["Header"] != PriorityPreamble {
		t.Errorf("Header priority = %d", got["Header"])
	}
	if got["Keep Me"] != PriorityPreserved {
		t.Errorf("Keep Me priority = %d", got["Keep Me"])
	}
	if got["Other"] != PriorityNormal {
		t.Errorf("Other priority = %d", got["Other"])
	}
}

func TestSplitTitleMatchingIsExact(t *testing.T) {
	sections := Split("## Keep Me Not\nbody\n", []string{"Keep Me"})
	if sections[1].Priority != PriorityNormal {
		t.Fatalf("partial title match should not preserve: %+v", sections[1])
	}
}

func TestSplitTrimsTitles(t *testing.T) {
	sections := Split("##   Spaced Out  \nbody\n", []string{"Spaced Out"})
	if sections[1].Title != "Spaced Out" {
		t.Fatalf("title = %q", sections[1].Title)
	}
	if sections[1].Priority != PriorityPreserved {
		t.Fatalf("trimmed title should match preserve list")
	}
}

func TestSplitIgnoresDeeperHeadings(t *testing.T) {
	text := "## Top\nbody\n### Nested\nmore\n#### Deeper\n"
	sections := Split(text, nil)
	if len(sections) != 2 {
		t.Fatalf("expected preamble plus one section, got %d", len(sections))
	}
	if !strings.Contains(sections[1].Content, "### Nested") {
		t.Fatalf("nested heading should stay inside its parent: %q", sections[1].Content)
	}
}

func TestSplitIsLineBasedInsideCodeFences(t *testing.T) {
	// The splitter deliberately does not parse fences; a heading-shaped line
	// inside a code block still opens a section.
	text := "```\n## Looks Like A Heading\n```\n"
	sections := Split(text, nil)
	if len(sections) != 2 {
		t.Fatalf("expected the fenced line to open a section, got %d sections", len(sections))
	}
	if sections[1].Title != "Looks Like A Heading" {
		t.Fatalf("title = %q", sections[1].Title)
	}
}

func TestSplitEmptyText(t *testing.T) {
	sections := Split("", nil)
	if len(sections) != 1 {
		t.Fatalf("expected only the preamble, got %d sections", len(sections))
	}
	if sections[0].Content != "\n" {
		t.Fatalf("empty input preamble = %q", sections[0].Content)
	}
}
