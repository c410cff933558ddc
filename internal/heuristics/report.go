package heuristics

// Section holds the findings recorded under one heuristic.
type Section struct {
	Heuristic Heuristic
	Findings  []string
}

// Report is the ordered outcome of one analysis: one section per heuristic,
// in canonical order.
type Report struct {
	URL      string
	Sections []Section
}

// add appends finding to the section for h, creating it at the end if absent.
func (r *Report) add(h Heuristic, finding string) {
	for i := range r.Sections {
		if r.Sections[i].Heuristic == h {
			r.Sections[i].Findings = append(r.Sections[i].Findings, finding)
			return
		}
	}
	r.Sections = append(r.Sections, Section{Heuristic: h, Findings: []string{finding}})
}

// Findings returns the findings recorded for h, or nil.
func (r Report) Findings(h Heuristic) []string {
	for _, s := range r.Sections {
		if s.Heuristic == h {
			return s.Findings
		}
	}
	return nil
}

// FindingCount is the total number of findings across all sections.
func (r Report) FindingCount() int {
	n := 0
	for _, s := range r.Sections {
		n += len(s.Findings)
	}
	return n
}

// Complete reports whether r holds every heuristic in canonical order, each
// with at least one finding.
func (r Report) Complete() bool {
	all := All()
	if len(r.Sections) != len(all) {
		return false
	}
	for i, h := range all {
		if r.Sections[i].Heuristic != h || len(r.Sections[i].Findings) == 0 {
			return false
		}
	}
	return true
}
