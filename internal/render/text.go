// Package render turns a heuristics report into display text, PDF and
// Markdown documents.
package render

import (
	"strings"

	"github.com/hyperifyio/goheuristics/internal/heuristics"
)

// Title heads exported documents.
const Title = "Nielsen HCI Heuristic Evaluation Report"

// Text renders each heuristic label as a heading followed by its findings as
// indented bullets and a blank separator line.
func Text(r heuristics.Report) string {
	var b strings.Builder
	for _, s := range r.Sections {
		b.WriteString(s.Heuristic.Label())
		b.WriteString("\n")
		for _, f := range s.Findings {
			b.WriteString("  - ")
			b.WriteString(f)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
