// Package heuristics maps the content of a single page onto Nielsen's ten
// usability heuristics.
package heuristics

import (
	"fmt"
	"regexp"

	"github.com/hyperifyio/goheuristics/internal/document"
)

// Heuristic is one of Nielsen's ten usability principles, numbered 1..10.
type Heuristic int

const (
	VisibilityOfSystemStatus Heuristic = iota + 1
	MatchSystemAndRealWorld
	UserControlAndFreedom
	ConsistencyAndStandards
	ErrorPrevention
	RecognitionRatherThanRecall
	FlexibilityAndEfficiency
	AestheticAndMinimalistDesign
	ErrorRecovery
	HelpAndDocumentation
)

var names = map[Heuristic]string{
	VisibilityOfSystemStatus:     "Visibility of System Status",
	MatchSystemAndRealWorld:      "Match Between System and Real World",
	UserControlAndFreedom:        "User Control and Freedom",
	ConsistencyAndStandards:      "Consistency and Standards",
	ErrorPrevention:              "Error Prevention",
	RecognitionRatherThanRecall:  "Recognition Rather Than Recall",
	FlexibilityAndEfficiency:     "Flexibility and Efficiency of Use",
	AestheticAndMinimalistDesign: "Aesthetic and Minimalist Design",
	ErrorRecovery:                "Error Recovery",
	HelpAndDocumentation:         "Help and Documentation",
}

// Name returns the heuristic name without its number.
func (h Heuristic) Name() string {
	if n, ok := names[h]; ok {
		return n
	}
	return fmt.Sprintf("Heuristic(%d)", int(h))
}

// Label is the numbered heading used for display and export, e.g.
// "1. Visibility of System Status".
func (h Heuristic) Label() string { return fmt.Sprintf("%d. %s", int(h), h.Name()) }

func (h Heuristic) String() string { return h.Label() }

// All returns the heuristics in canonical order.
func All() []Heuristic {
	out := make([]Heuristic, 0, len(checks))
	for _, c := range checks {
		out = append(out, c.heuristic)
	}
	return out
}

// DensityThreshold is the character count above which a page is considered dense.
const DensityThreshold = 5000

var (
	jargonRe     = regexp.MustCompile(`(?i)api|backend|exception`)
	undoRe       = regexp.MustCompile(`(?i)back|cancel|undo`)
	errorTextRe  = regexp.MustCompile(`(?i)error|invalid|failed`)
	helpAnchorRe = regexp.MustCompile(`(?i)help|faq|support`)
)

// check is one content predicate and the two findings it can produce.
type check struct {
	heuristic Heuristic
	positive  string
	negative  string
	test      func(*document.Document) bool
}

// checks is in canonical order; Evaluate relies on it.
var checks = []check{
	{
		heuristic: VisibilityOfSystemStatus,
		positive:  "Status indicators found.",
		negative:  "No obvious system status feedback detected.",
		test:      func(d *document.Document) bool { return d.ContainsText("loading") },
	},
	{
		heuristic: MatchSystemAndRealWorld,
		positive:  "Technical jargon detected.",
		negative:  "Language appears user-friendly.",
		test:      func(d *document.Document) bool { return d.TextMatches(jargonRe) },
	},
	{
		heuristic: UserControlAndFreedom,
		positive:  "Undo/Cancel navigation found.",
		negative:  "No undo or cancel options detected.",
		test:      func(d *document.Document) bool { return d.AnchorTextMatches(undoRe) },
	},
	{
		heuristic: ConsistencyAndStandards,
		positive:  "Standard UI components (buttons/forms) detected.",
		negative:  "Few standard UI components detected.",
		test:      func(d *document.Document) bool { return d.HasElement("button") },
	},
	{
		heuristic: ErrorPrevention,
		positive:  "Forms detected — input validation should be reviewed.",
		negative:  "No forms detected.",
		test:      func(d *document.Document) bool { return d.HasElement("form") },
	},
	{
		heuristic: RecognitionRatherThanRecall,
		positive:  "Labels detected to aid recognition.",
		negative:  "Few labels detected.",
		test:      func(d *document.Document) bool { return d.HasElement("label") },
	},
	{
		heuristic: FlexibilityAndEfficiency,
		positive:  "Keyboard shortcuts detected.",
		negative:  "No keyboard shortcuts detected.",
		test:      func(d *document.Document) bool { return d.HasAttribute("accesskey") },
	},
	{
		heuristic: AestheticAndMinimalistDesign,
		positive:  "High content density detected.",
		negative:  "Content density appears reasonable.",
		test:      func(d *document.Document) bool { return d.TextLength() > DensityThreshold },
	},
	{
		heuristic: ErrorRecovery,
		positive:  "Error messages detected.",
		negative:  "No visible error messages detected.",
		test:      func(d *document.Document) bool { return d.TextMatches(errorTextRe) },
	},
	{
		heuristic: HelpAndDocumentation,
		positive:  "Help/FAQ links detected.",
		negative:  "No help documentation detected.",
		test:      func(d *document.Document) bool { return d.AnchorTextMatches(helpAnchorRe) },
	},
}

// Evaluate runs every check against doc in canonical order. It performs no I/O,
// so identical documents always produce identical reports.
func Evaluate(url string, doc *document.Document) Report {
	r := Report{URL: url, Sections: make([]Section, 0, len(checks))}
	for _, c := range checks {
		finding := c.negative
		if c.test(doc) {
			finding = c.positive
		}
		r.add(c.heuristic, finding)
	}
	return r
}
