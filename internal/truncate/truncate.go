// Package truncate fits text into token budgets, keeping high-priority
// markdown sections ahead of everything else.
package truncate

import (
	"strings"

	"github.com/notesmgr/notectx/internal/budget"
	"github.com/notesmgr/notectx/internal/markdown"
)

// Markers appended where content was cut. Marker text is not charged
// against the budget, so output may exceed it by the marker's own size.
const (
	contentMarker = "\n\n[Content truncated due to token budget]"
	sectionMarker = "\n\n[Section truncated due to token budget]\n\n"
)

// bucketOrder is the priority order sections are emitted in.
var bucketOrder = []markdown.Priority{
	markdown.PriorityPreserved,
	markdown.PriorityNormal,
	markdown.PriorityPreamble,
}

// Text fits text into a budget of tokens.
//
// Text whose estimate already fits is returned unchanged. With no preserve
// titles the text is cut to the budget's character equivalent and a marker
// is appended. With preserve titles the text is split into sections and
// reassembled bucket by bucket (preserved, then normal, then the preamble),
// keeping document order inside each bucket. A section that fits whole is
// appended and charged; the first section that does not fit is cut to the
// remaining allowance, marked, and ends processing for every bucket.
func Text(text string, tokens int, preserve []string) string {
	if budget.Estimate(text) <= tokens {
		return text
	}
	if len(preserve) == 0 {
		return runePrefix(text, tokens*budget.CharsPerToken) + contentMarker
	}

	sections := markdown.Split(text, preserve)

	var out strings.Builder
	remaining := tokens
	for _, prio := range bucketOrder {
		if remaining <= 0 {
			break
		}
		for _, s := range sections {
			if s.Priority != prio {
				continue
			}
			cost := budget.Estimate(s.Content)
			if cost <= remaining {
				out.WriteString(s.Content)
				remaining -= cost
				continue
			}
			out.WriteString(runePrefix(s.Content, remaining*budget.CharsPerToken))
			out.WriteString(sectionMarker)
			remaining = 0
			break
		}
	}
	return out.String()
}

// runePrefix returns the first n runes of s.
func runePrefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if n >= len(runes) {
		return s
	}
	return string(runes[:n])
}
