package heuristics

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goheuristics/internal/document"
	"github.com/hyperifyio/goheuristics/internal/fetch"
)

// PageGetter retrieves one page. *fetch.Client satisfies it.
type PageGetter interface {
	Get(ctx context.Context, url string) (fetch.Page, error)
}

// Analyzer turns one URL into a Report.
type Analyzer struct {
	Getter PageGetter
}

// NewAnalyzer returns an Analyzer that fetches pages with getter.
func NewAnalyzer(getter PageGetter) *Analyzer {
	return &Analyzer{Getter: getter}
}

// Analyze fetches url, parses the page and evaluates every heuristic. A fetch
// failure aborts the call; no partial report is ever returned.
func (a *Analyzer) Analyze(ctx context.Context, url string) (Report, error) {
	page, err := a.Getter.Get(ctx, url)
	if err != nil {
		return Report{}, err
	}
	doc := document.Parse(page.Body, page.ContentType)
	r := Evaluate(url, doc)
	log.Info().
		Str("url", url).
		Str("title", doc.Title()).
		Int("chars", doc.TextLength()).
		Msg("page analyzed")
	return r, nil
}
