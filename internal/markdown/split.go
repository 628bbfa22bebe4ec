// Package markdown splits documents into prioritized sections for
// budget-aware truncation.
package markdown

import "strings"

// Priority ranks sections for truncation. Higher values are kept first.
type Priority int

const (
	// PriorityPreamble marks the synthetic leading section that holds
	// everything before the first heading.
	PriorityPreamble Priority = 0
	// PriorityNormal marks an ordinary headed section.
	PriorityNormal Priority = 1
	// PriorityPreserved marks a section whose title matched the preserve list.
	PriorityPreserved Priority = 2
)

// Section is one heading-delimited slice of a document. Content begins with
// the heading line itself (except for the preamble) and every line is
// newline-terminated, so concatenating all sections reproduces the source
// text with exactly one extra newline appended.
type Section struct {
	Title    string
	Content  string
	Priority Priority
}

// sectionPrefix opens a new section. Only level-2 headings delimit sections;
// deeper headings stay inside their parent.
const sectionPrefix = "## "

// Split divides text into sections on level-2 markdown headings.
//
// The scan is strictly line-based: any line beginning with "## " starts a
// section, even inside fenced code blocks. The first returned section is
// always a synthetic "Header" preamble, emitted even when empty. A headed
// section is PriorityPreserved when its trimmed title exactly matches an
// entry in preserve, otherwise PriorityNormal. Sections appear in document
// order and the input is never modified.
func Split(text string, preserve []string) []Section {
	preserved := make(map[string]bool, len(preserve))
	for _, title := range preserve {
		preserved[title] = true
	}

	lines := strings.Split(text, "\n")

	var sections []Section
	title := "Header"
	prio := PriorityPreamble
	start := 0

	flush := func(end int) {
		content := ""
		if end > start {
			content = strings.Join(lines[start:end], "\n") + "\n"
		}
		sections = append(sections, Section{Title: title, Content: content, Priority: prio})
	}

	for i, line := range lines {
		if !strings.HasPrefix(line, sectionPrefix) {
			continue
		}
		flush(i)
		title = strings.TrimSpace(strings.TrimPrefix(line, sectionPrefix))
		prio = PriorityNormal
		if preserved[title] {
			prio = PriorityPreserved
		}
		start = i
	}
	flush(len(lines))
	return sections
}
